package dom

import "fmt"

// Node is a node inside a document tree. A *Node is the handle callers hold;
// two handles are the same node exactly when the pointers are equal.
type Node struct {
	nodeType NodeType

	// Owning links
	firstChild  strongLink
	nextSibling strongLink

	// Back-references that do not keep their target alive
	parent          weakLink
	previousSibling weakLink
	lastChild       weakLink

	// Type-specific data (only one will be non-nil based on nodeType)
	elementData  *ElementData
	contents     *Contents // Text and Comment
	docTypeData  *Doctype
	documentData *DocumentData
}

// NewElement creates a detached element node. Later attributes with the same
// name replace earlier ones.
func NewElement(name QualName, attrs ...Attribute) *Node {
	m := make(map[QualName]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	return &Node{
		nodeType: ElementNode,
		elementData: &ElementData{
			name:  name,
			attrs: borrowCell[map[QualName]string]{v: m},
		},
	}
}

// NewText creates a detached text node.
func NewText(value string) *Node {
	return &Node{
		nodeType: TextNode,
		contents: &Contents{cell: borrowCell[string]{v: value}},
	}
}

// NewComment creates a detached comment node.
func NewComment(value string) *Node {
	return &Node{
		nodeType: CommentNode,
		contents: &Contents{cell: borrowCell[string]{v: value}},
	}
}

// NewDoctype creates a detached doctype node.
func NewDoctype(name, publicID, systemID string) *Node {
	return &Node{
		nodeType: DocumentTypeNode,
		docTypeData: &Doctype{
			name:     name,
			publicID: publicID,
			systemID: systemID,
		},
	}
}

// NewDocument creates a document node in no-quirks mode.
func NewDocument() *Node {
	return &Node{
		nodeType:     DocumentNode,
		documentData: &DocumentData{quirksMode: NoQuirks},
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// AsElement returns element-specific data, or nil if n is not an element.
func (n *Node) AsElement() *ElementData {
	return n.elementData
}

// AsText returns the contents of a text node, or nil if n is not text.
func (n *Node) AsText() *Contents {
	if n.nodeType != TextNode {
		return nil
	}
	return n.contents
}

// AsComment returns the contents of a comment node, or nil if n is not a
// comment.
func (n *Node) AsComment() *Contents {
	if n.nodeType != CommentNode {
		return nil
	}
	return n.contents
}

// AsDoctype returns doctype-specific data, or nil if n is not a doctype.
func (n *Node) AsDoctype() *Doctype {
	return n.docTypeData
}

// AsDocument returns document-specific data, or nil if n is not a document.
func (n *Node) AsDocument() *DocumentData {
	return n.documentData
}

// Parent returns the parent node, or nil if n is the root of its tree.
func (n *Node) Parent() *Node {
	return upgrade(&n.parent)
}

// FirstChild returns the first child node, or nil if there are no children.
func (n *Node) FirstChild() *Node {
	return n.firstChild.get()
}

// LastChild returns the last child node, or nil if there are no children.
func (n *Node) LastChild() *Node {
	return upgrade(&n.lastChild)
}

// PreviousSibling returns the previous sibling node, or nil if this is the
// first child.
func (n *Node) PreviousSibling() *Node {
	return upgrade(&n.previousSibling)
}

// NextSibling returns the next sibling node, or nil if this is the last child.
func (n *Node) NextSibling() *Node {
	return n.nextSibling.get()
}

// HasChildren returns true if this node has any child nodes.
func (n *Node) HasChildren() bool {
	return !n.firstChild.isEmpty()
}

// Root returns the topmost ancestor of n, or n itself if it has no parent.
func (n *Node) Root() *Node {
	root := n
	for p := root.Parent(); p != nil; p = p.Parent() {
		root = p
	}
	return root
}

// String describes the node's variant and identity for debugging.
func (n *Node) String() string {
	switch n.nodeType {
	case ElementNode:
		return fmt.Sprintf("Element(%s) @ %p", n.elementData.name, n)
	case TextNode:
		return fmt.Sprintf("Text(%q) @ %p", n.contents.cell.v, n)
	case CommentNode:
		return fmt.Sprintf("Comment(%q) @ %p", n.contents.cell.v, n)
	case DocumentTypeNode:
		return fmt.Sprintf("Doctype(%s) @ %p", n.docTypeData.name, n)
	case DocumentNode:
		return fmt.Sprintf("Document(%s) @ %p", n.documentData.quirksMode, n)
	default:
		return fmt.Sprintf("Node(%s) @ %p", n.nodeType, n)
	}
}
