package dom

import (
	"iter"
	"strings"
)

// EdgeKind says whether a traversal step enters or leaves a node.
type EdgeKind uint8

const (
	Start EdgeKind = iota
	End
)

// Edge is one step of a tree traversal.
type Edge struct {
	Kind EdgeKind
	Node *Node
}

// Children yields the children of n in order. The next sibling is read before
// each child is yielded, so the loop body may detach the current child.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.FirstChild(); c != nil; {
			next := c.NextSibling()
			if !yield(c) {
				return
			}
			c = next
		}
	}
}

// ReverseChildren yields the children of n from last to first.
func (n *Node) ReverseChildren() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.LastChild(); c != nil; {
			previous := c.PreviousSibling()
			if !yield(c) {
				return
			}
			c = previous
		}
	}
}

// Ancestors yields the parent of n, then its parent, up to the root.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return n.Parent().inclusiveAncestors
}

// InclusiveAncestors yields n followed by its ancestors.
func (n *Node) InclusiveAncestors() iter.Seq[*Node] {
	return n.inclusiveAncestors
}

func (n *Node) inclusiveAncestors(yield func(*Node) bool) {
	for current := n; current != nil; current = current.Parent() {
		if !yield(current) {
			return
		}
	}
}

// FollowingSiblings yields the siblings after n in order.
func (n *Node) FollowingSiblings() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for s := n.NextSibling(); s != nil; s = s.NextSibling() {
			if !yield(s) {
				return
			}
		}
	}
}

// PrecedingSiblings yields the siblings before n, nearest first.
func (n *Node) PrecedingSiblings() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for s := n.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			if !yield(s) {
				return
			}
		}
	}
}

// Traverse yields a Start edge when entering each node of the subtree rooted
// at n and an End edge when leaving it, in tree order. The walk follows links
// only, so it uses constant memory regardless of depth. The tree must not be
// modified during the traversal.
func (n *Node) Traverse() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		current := n
		for {
			if !yield(Edge{Kind: Start, Node: current}) {
				return
			}
			if child := current.FirstChild(); child != nil {
				current = child
				continue
			}
			for {
				if !yield(Edge{Kind: End, Node: current}) {
					return
				}
				if current == n {
					return
				}
				if next := current.NextSibling(); next != nil {
					current = next
					break
				}
				current = current.Parent()
				if current == nil {
					return
				}
			}
		}
	}
}

// InclusiveDescendants yields n and then every node below it in tree order.
func (n *Node) InclusiveDescendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for edge := range n.Traverse() {
			if edge.Kind == Start && !yield(edge.Node) {
				return
			}
		}
	}
}

// Descendants yields every node below n in tree order.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := range n.InclusiveDescendants() {
			if d != n && !yield(d) {
				return
			}
		}
	}
}

// TextContents returns the concatenated contents of n and its descendant
// text nodes.
func (n *Node) TextContents() string {
	var sb strings.Builder
	for d := range n.InclusiveDescendants() {
		if text := d.AsText(); text != nil {
			sb.WriteString(text.String())
		}
	}
	return sb.String()
}
