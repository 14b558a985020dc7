package dom

import (
	"errors"
	"fmt"
)

// DOMError represents a DOM exception with a name and message.
type DOMError struct {
	Name    string
	Message string
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Is reports whether target is a DOMError with the same name.
func (e *DOMError) Is(target error) bool {
	var other *DOMError
	if !errors.As(target, &other) {
		return false
	}
	return other.Name == e.Name
}

// ErrHierarchyRequest creates a HierarchyRequestError.
func ErrHierarchyRequest(message string) *DOMError {
	return &DOMError{Name: "HierarchyRequestError", Message: message}
}

// ErrInvalidState creates an InvalidStateError.
func ErrInvalidState(message string) *DOMError {
	return &DOMError{Name: "InvalidStateError", Message: message}
}

// ErrBorrowConflict is the panic value raised when a text, comment or
// attribute payload is accessed while a mutable borrow of it is active.
var ErrBorrowConflict = errors.New("dom: payload is already mutably borrowed")
