package dom

// Detach removes n from its parent and siblings. Children are not affected:
// n keeps its subtree and becomes the root of it.
//
// To discard a node and its descendants, detach it and drop every reference
// to it, or call Release.
func (n *Node) Detach() {
	parentWeak := n.parent.take()
	previousWeak := n.previousSibling.take()
	next := n.nextSibling.take()

	parent := parentWeak.Value()
	previous := previousWeak.Value()

	if next != nil {
		next.previousSibling.set(previousWeak)
	} else if parent != nil {
		parent.lastChild.set(previousWeak)
	}

	if previous != nil {
		previous.nextSibling.set(next)
	} else if parent != nil {
		parent.firstChild.set(next)
	}
}

// Append adds newChild after the existing children of n. newChild is
// detached from its previous position first.
//
// newChild must not be n or one of its ancestors; see AppendChecked.
func (n *Node) Append(newChild *Node) {
	newChild.Detach()
	newChild.parent.set(downgrade(n))
	lastWeak := n.lastChild.replace(downgrade(newChild))
	if last := lastWeak.Value(); last != nil {
		newChild.previousSibling.set(lastWeak)
		if debugAssertions {
			invariant(last.nextSibling.isEmpty(), "last child %s has a next sibling", last)
		}
		last.nextSibling.set(newChild)
		return
	}
	if debugAssertions {
		invariant(n.firstChild.isEmpty(), "%s has a first child but no last child", n)
	}
	n.firstChild.set(newChild)
}

// Prepend adds newChild before the existing children of n. newChild is
// detached from its previous position first.
//
// newChild must not be n or one of its ancestors; see PrependChecked.
func (n *Node) Prepend(newChild *Node) {
	newChild.Detach()
	newChild.parent.set(downgrade(n))
	if first := n.firstChild.take(); first != nil {
		if debugAssertions {
			invariant(first.previousSibling.isEmpty(), "first child %s has a previous sibling", first)
		}
		first.previousSibling.set(downgrade(newChild))
		newChild.nextSibling.set(first)
	} else {
		n.lastChild.set(downgrade(newChild))
	}
	n.firstChild.set(newChild)
}

// InsertAfter places newSibling immediately after n, under the same parent.
// newSibling is detached from its previous position first.
//
// newSibling must not be n or one of its ancestors; see InsertAfterChecked.
func (n *Node) InsertAfter(newSibling *Node) {
	newSibling.Detach()
	newSibling.parent.set(n.parent.get())
	newSibling.previousSibling.set(downgrade(n))
	if next := n.nextSibling.take(); next != nil {
		if debugAssertions {
			invariant(next.PreviousSibling() == n, "%s is not the previous sibling of %s", n, next)
		}
		next.previousSibling.set(downgrade(newSibling))
		newSibling.nextSibling.set(next)
	} else if parent := n.Parent(); parent != nil {
		if debugAssertions {
			invariant(parent.LastChild() == n, "%s is not the last child of %s", n, parent)
		}
		parent.lastChild.set(downgrade(newSibling))
	}
	n.nextSibling.set(newSibling)
}

// InsertBefore places newSibling immediately before n, under the same
// parent. newSibling is detached from its previous position first.
//
// newSibling must not be n or one of its ancestors; see InsertBeforeChecked.
func (n *Node) InsertBefore(newSibling *Node) {
	newSibling.Detach()
	newSibling.parent.set(n.parent.get())
	newSibling.nextSibling.set(n)
	previousWeak := n.previousSibling.replace(downgrade(newSibling))
	if previous := previousWeak.Value(); previous != nil {
		newSibling.previousSibling.set(previousWeak)
		if debugAssertions {
			invariant(previous.NextSibling() == n, "%s is not the next sibling of %s", n, previous)
		}
		previous.nextSibling.set(newSibling)
		return
	}
	if parent := n.Parent(); parent != nil {
		if debugAssertions {
			invariant(parent.FirstChild() == n, "%s is not the first child of %s", n, parent)
		}
		parent.firstChild.set(newSibling)
	}
}

// AppendChecked is like Append but returns a HierarchyRequestError instead
// of creating a cycle when newChild is n or one of its ancestors.
func (n *Node) AppendChecked(newChild *Node) error {
	if err := n.validateInsertion(newChild); err != nil {
		return err
	}
	n.Append(newChild)
	return nil
}

// PrependChecked is like Prepend but returns a HierarchyRequestError instead
// of creating a cycle when newChild is n or one of its ancestors.
func (n *Node) PrependChecked(newChild *Node) error {
	if err := n.validateInsertion(newChild); err != nil {
		return err
	}
	n.Prepend(newChild)
	return nil
}

// InsertAfterChecked is like InsertAfter but returns a HierarchyRequestError
// when newSibling is n or one of its ancestors.
func (n *Node) InsertAfterChecked(newSibling *Node) error {
	if err := n.validateInsertion(newSibling); err != nil {
		return err
	}
	n.InsertAfter(newSibling)
	return nil
}

// InsertBeforeChecked is like InsertBefore but returns a
// HierarchyRequestError when newSibling is n or one of its ancestors.
func (n *Node) InsertBeforeChecked(newSibling *Node) error {
	if err := n.validateInsertion(newSibling); err != nil {
		return err
	}
	n.InsertBefore(newSibling)
	return nil
}

// validateInsertion rejects moving node to a position under or next to
// itself. For sibling insertions the new parent is n's parent, whose
// ancestors are all ancestors of n, so one check covers both cases.
func (n *Node) validateInsertion(node *Node) error {
	if node == nil {
		return ErrHierarchyRequest("The node to be inserted is nil.")
	}
	if n.isInclusiveAncestor(node) {
		return ErrHierarchyRequest("The new node contains the insertion point.")
	}
	return nil
}

// isInclusiveAncestor returns true if node is this node or an ancestor of this node.
func (n *Node) isInclusiveAncestor(node *Node) bool {
	for current := n; current != nil; current = current.Parent() {
		if current == node {
			return true
		}
	}
	return false
}
