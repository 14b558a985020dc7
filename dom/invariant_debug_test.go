//go:build domdebug

package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverViolation runs fn and returns the InvalidStateError it panicked with.
func recoverViolation(t *testing.T, fn func()) (err *DOMError) {
	t.Helper()
	defer func() {
		p := recover()
		require.NotNil(t, p, "expected an invariant violation")
		domErr, ok := p.(*DOMError)
		require.True(t, ok, "panic value %v is not a *DOMError", p)
		err = domErr
	}()
	fn()
	return nil
}

func TestInvariant_AppendAfterLastChildWithSibling(t *testing.T) {
	parent := NewElement(HTMLName("ul"))
	last := NewElement(HTMLName("li"))
	parent.Append(last)
	last.nextSibling.set(NewText("stray"))

	err := recoverViolation(t, func() { parent.Append(NewElement(HTMLName("li"))) })
	assert.Equal(t, "InvalidStateError", err.Name)
	assert.Contains(t, err.Message, "has a next sibling")
}

func TestInvariant_AppendWithFirstChildButNoLastChild(t *testing.T) {
	parent := NewElement(HTMLName("ul"))
	parent.Append(NewElement(HTMLName("li")))
	parent.lastChild.take()

	err := recoverViolation(t, func() { parent.Append(NewElement(HTMLName("li"))) })
	assert.Equal(t, "InvalidStateError", err.Name)
}

func TestInvariant_PrependBeforeFirstChildWithPrevious(t *testing.T) {
	parent := NewElement(HTMLName("ul"))
	first := NewElement(HTMLName("li"))
	parent.Append(first)
	stray := NewText("stray")
	first.previousSibling.set(downgrade(stray))

	err := recoverViolation(t, func() { parent.Prepend(NewElement(HTMLName("li"))) })
	assert.Equal(t, "InvalidStateError", err.Name)
	assert.Contains(t, err.Message, "has a previous sibling")
}

func TestInvariant_ConsistentTreeDoesNotPanic(t *testing.T) {
	parent := NewElement(HTMLName("ul"))
	a := NewElement(HTMLName("li"))
	assert.NotPanics(t, func() {
		parent.Append(a)
		parent.Prepend(NewText("x"))
		a.InsertBefore(NewComment("c"))
		a.InsertAfter(NewText("y"))
	})
	require.NoError(t, CheckTree(parent))
}
