package dom

import "fmt"

// CheckTree verifies the link invariants of the subtree rooted at root and
// returns an InvalidStateError describing the first violation found, or nil.
//
// For every node checked: a first child has no previous sibling and points
// back to its parent, every child's next sibling points back to it, the last
// child reached by walking siblings is the parent's last child, and a node
// without children has no last child. If root has no parent it must not have
// siblings. Cycles introduced by moving a node under itself are reported
// rather than looped over.
func CheckTree(root *Node) error {
	if root == nil {
		return nil
	}
	if root.Parent() == nil && (root.PreviousSibling() != nil || root.NextSibling() != nil) {
		return violation("root %s has siblings", root)
	}

	seen := map[*Node]struct{}{root: {}}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		first := n.FirstChild()
		if first == nil {
			if last := n.LastChild(); last != nil {
				return violation("%s has no first child but has last child %s", n, last)
			}
			continue
		}
		if prev := first.PreviousSibling(); prev != nil {
			return violation("first child %s of %s has previous sibling %s", first, n, prev)
		}

		var last *Node
		for c := first; c != nil; c = c.NextSibling() {
			if _, ok := seen[c]; ok {
				return violation("%s is reachable twice; the tree contains a cycle", c)
			}
			seen[c] = struct{}{}
			if p := c.Parent(); p != n {
				return violation("%s is a child of %s but its parent is %v", c, n, p)
			}
			if next := c.NextSibling(); next != nil && next.PreviousSibling() != c {
				return violation("%s follows %s but its previous sibling is %v", next, c, next.PreviousSibling())
			}
			stack = append(stack, c)
			last = c
		}
		if got := n.LastChild(); got != last {
			return violation("last child of %s is %v, expected %s", n, got, last)
		}
	}
	return nil
}

func violation(format string, args ...any) *DOMError {
	return ErrInvalidState(fmt.Sprintf(format, args...))
}
