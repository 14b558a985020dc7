package dom

// Release detaches n and dismantles the subtree it owns, clearing every link
// of n and of each of its descendants.
//
// Memory is reclaimed by the garbage collector either way; Release is for
// callers that hold handles into a discarded subtree and want each of those
// handles to stop pinning the nodes after it. Afterwards every released node
// is a childless root.
//
// Release does not check whether descendants are still referenced elsewhere.
// A handle retained into the subtree still points at its node, but that node
// has lost its children, its siblings and its parent. Detach any descendant
// that should survive before calling Release.
//
// The walk keeps the ancestors of the current node on an explicit stack, so
// its depth is bounded by memory rather than by the call stack.
func (n *Node) Release() {
	n.Detach()

	var stack []*Node
	current := n
	for {
		if child := current.firstChild.take(); child != nil {
			stack = append(stack, current)
			current = child
			continue
		}
		current.lastChild.take()
		current.parent.take()
		current.previousSibling.take()
		if next := current.nextSibling.take(); next != nil {
			current = next
			continue
		}
		if len(stack) == 0 {
			return
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}
