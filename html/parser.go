// Package html builds dom trees from HTML source using golang.org/x/net/html
// as the underlying parser implementation.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/chrisuehlinger/domtree/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses HTML from a string and returns a document node.
func Parse(htmlContent string) (*dom.Node, error) {
	return ParseReader(strings.NewReader(htmlContent))
}

// ParseReader parses HTML from an io.Reader and returns a document node whose
// quirks mode reflects its doctype.
func ParseReader(r io.Reader) (*dom.Node, error) {
	netNode, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	doc := convertTree(netNode)
	doc.AsDocument().SetQuirksMode(doctypeQuirksMode(findDoctype(netNode)))
	return doc, nil
}

// ParseFragment parses an HTML fragment in the context of a parent element.
// context may be nil, in which case the fragment is parsed as body content.
func ParseFragment(fragment string, context *dom.Node) ([]*dom.Node, error) {
	return ParseFragmentReader(strings.NewReader(fragment), context)
}

// ParseFragmentReader parses an HTML fragment from a reader. The returned
// nodes are detached roots.
func ParseFragmentReader(r io.Reader, context *dom.Node) ([]*dom.Node, error) {
	var contextNode *html.Node
	if context != nil {
		if el := context.AsElement(); el != nil {
			name := el.Name()
			contextNode = &html.Node{
				Type:      html.ElementNode,
				DataAtom:  atom.Lookup([]byte(name.Local)),
				Data:      name.Local,
				Namespace: shortNamespace(name.Namespace),
			}
		}
	}
	netNodes, err := html.ParseFragment(r, contextNode)
	if err != nil {
		return nil, fmt.Errorf("parsing html fragment: %w", err)
	}
	nodes := make([]*dom.Node, 0, len(netNodes))
	for _, nn := range netNodes {
		if node := convertTree(nn); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// convertTree converts a golang.org/x/net/html subtree into a dom subtree.
// Each frame on the stack remembers the next source child to convert and the
// dom node it is appended to, so deeply nested input does not grow the call
// stack.
func convertTree(root *html.Node) *dom.Node {
	out := convertNode(root)
	if out == nil {
		return nil
	}

	type frame struct {
		next   *html.Node
		parent *dom.Node
	}
	stack := []frame{{next: root.FirstChild, parent: out}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		src := top.next
		if src == nil {
			stack = stack[:len(stack)-1]
			continue
		}
		top.next = src.NextSibling

		node := convertNode(src)
		if node == nil {
			continue
		}
		top.parent.Append(node)
		if src.FirstChild != nil {
			stack = append(stack, frame{next: src.FirstChild, parent: node})
		}
	}
	return out
}

// convertNode converts a single golang.org/x/net/html node, without its
// children. Error and raw nodes have no dom equivalent and yield nil.
func convertNode(n *html.Node) *dom.Node {
	switch n.Type {
	case html.DocumentNode:
		return dom.NewDocument()
	case html.ElementNode:
		return dom.NewElement(elementName(n), convertAttributes(n.Attr)...)
	case html.TextNode:
		return dom.NewText(n.Data)
	case html.CommentNode:
		return dom.NewComment(n.Data)
	case html.DoctypeNode:
		var publicID, systemID string
		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				publicID = a.Val
			case "system":
				systemID = a.Val
			}
		}
		return dom.NewDoctype(n.Data, publicID, systemID)
	default:
		return nil
	}
}

// elementName returns the qualified name of an element, reusing the atom
// table's interned string for known HTML names.
func elementName(n *html.Node) dom.QualName {
	local := n.Data
	if n.DataAtom != 0 {
		local = n.DataAtom.String()
	}
	return dom.QualName{Namespace: namespaceURI(n.Namespace), Local: local}
}

func convertAttributes(attrs []html.Attribute) []dom.Attribute {
	result := make([]dom.Attribute, len(attrs))
	for i, a := range attrs {
		result[i] = dom.Attribute{
			Name:  dom.QualName{Namespace: attributeNamespaceURI(a.Namespace), Local: a.Key},
			Value: a.Val,
		}
	}
	return result
}

// namespaceURI maps the short element namespace names used by
// golang.org/x/net/html to namespace URIs.
func namespaceURI(short string) string {
	switch short {
	case "":
		return dom.HTMLNamespace
	case "svg":
		return dom.SVGNamespace
	case "math":
		return dom.MathMLNamespace
	default:
		return short
	}
}

func shortNamespace(uri string) string {
	switch uri {
	case dom.HTMLNamespace:
		return ""
	case dom.SVGNamespace:
		return "svg"
	case dom.MathMLNamespace:
		return "math"
	default:
		return uri
	}
}

// attributeNamespaceURI maps adjusted foreign attribute namespaces.
func attributeNamespaceURI(short string) string {
	switch short {
	case "xlink":
		return dom.XLinkNamespace
	case "xml":
		return dom.XMLNamespace
	case "xmlns":
		return dom.XMLNSNamespace
	default:
		return short
	}
}

func findDoctype(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			return c
		}
	}
	return nil
}
