// Package dom implements a mutable document tree for markup languages.
//
// Each Node owns its first child and its next sibling, and only weakly
// references its parent, its previous sibling and its last child. Holding a
// *Node therefore keeps alive that node, its descendants and its following
// siblings (with their descendants), but nothing above or before it. Keep a
// reference to the root for as long as the tree is in use.
//
// Trees are not safe for concurrent use.
package dom

// NodeType identifies the variant of a Node. The numeric values follow the
// DOM Living Standard.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// DocumentTypeNode represents a DocumentType node.
	DocumentTypeNode NodeType = 10
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentTypeNode:
		return "DOCUMENT_TYPE_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
