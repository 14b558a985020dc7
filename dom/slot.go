package dom

import "weak"

// slot is a single-owner mutable cell holding an optional value.
// The zero value is empty. Every link field of a Node is a slot.
type slot[T comparable] struct {
	v T
}

func (s *slot[T]) get() T {
	return s.v
}

func (s *slot[T]) set(v T) {
	s.v = v
}

// take returns the held value and leaves the slot empty.
func (s *slot[T]) take() T {
	var zero T
	v := s.v
	s.v = zero
	return v
}

// replace stores v and returns the previous value.
func (s *slot[T]) replace(v T) T {
	old := s.v
	s.v = v
	return old
}

func (s *slot[T]) isEmpty() bool {
	var zero T
	return s.v == zero
}

// strongLink owns its target.
type strongLink = slot[*Node]

// weakLink refers to its target without keeping it alive.
type weakLink = slot[weak.Pointer[Node]]

// downgrade returns a weak reference to n. A nil node yields the empty
// weak pointer.
func downgrade(n *Node) weak.Pointer[Node] {
	if n == nil {
		return weak.Pointer[Node]{}
	}
	return weak.Make(n)
}

// upgrade resolves a weak link slot to its target, or nil if the slot is
// empty or the target has been collected.
func upgrade(s *weakLink) *Node {
	return s.get().Value()
}

// borrowCell guards a payload that may be mutated in place. At most one
// mutable borrow can be outstanding at a time.
type borrowCell[T any] struct {
	v        T
	borrowed bool
}

func (c *borrowCell[T]) load() T {
	if c.borrowed {
		panic(ErrBorrowConflict)
	}
	return c.v
}

func (c *borrowCell[T]) store(v T) {
	if c.borrowed {
		panic(ErrBorrowConflict)
	}
	c.v = v
}

// borrow hands fn a mutable view of the payload. Reading or writing the
// same cell again before fn returns panics with ErrBorrowConflict.
func (c *borrowCell[T]) borrow(fn func(*T)) {
	if c.borrowed {
		panic(ErrBorrowConflict)
	}
	c.borrowed = true
	defer func() { c.borrowed = false }()
	fn(&c.v)
}
