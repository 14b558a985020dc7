package dom

import (
	"cmp"
	"slices"
)

// Well-known namespace URIs.
const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	XLinkNamespace  = "http://www.w3.org/1999/xlink"
	XMLNamespace    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace  = "http://www.w3.org/2000/xmlns/"
)

// QualName is a namespace-qualified name used for elements and attributes.
// Attributes without a namespace use an empty Namespace.
type QualName struct {
	Namespace string
	Local     string
}

// HTMLName returns the qualified name of an element in the HTML namespace.
func HTMLName(local string) QualName {
	return QualName{Namespace: HTMLNamespace, Local: local}
}

// AttrName returns the qualified name of an attribute with no namespace.
func AttrName(local string) QualName {
	return QualName{Local: local}
}

func (q QualName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

func compareQualNames(a, b QualName) int {
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(a.Local, b.Local)
}

// Attribute is a single name/value pair used when creating elements.
type Attribute struct {
	Name  QualName
	Value string
}

// ElementData holds data specific to Element nodes.
type ElementData struct {
	name  QualName
	attrs borrowCell[map[QualName]string]
}

// Name returns the element's qualified name.
func (e *ElementData) Name() QualName {
	return e.name
}

// Attribute returns the value of the named attribute.
func (e *ElementData) Attribute(name QualName) (string, bool) {
	v, ok := e.attrs.load()[name]
	return v, ok
}

// SetAttribute sets an attribute value, creating it if it doesn't exist.
func (e *ElementData) SetAttribute(name QualName, value string) {
	e.attrs.borrow(func(m *map[QualName]string) {
		(*m)[name] = value
	})
}

// RemoveAttribute removes an attribute from the element.
func (e *ElementData) RemoveAttribute(name QualName) {
	e.attrs.borrow(func(m *map[QualName]string) {
		delete(*m, name)
	})
}

// Attributes returns a snapshot of the attributes ordered by namespace and
// local name.
func (e *ElementData) Attributes() []Attribute {
	m := e.attrs.load()
	attrs := make([]Attribute, 0, len(m))
	for name, value := range m {
		attrs = append(attrs, Attribute{Name: name, Value: value})
	}
	slices.SortFunc(attrs, func(a, b Attribute) int {
		return compareQualNames(a.Name, b.Name)
	})
	return attrs
}

// BorrowAttributes gives fn direct access to the attribute map. Any other
// access to this element's attributes while fn runs panics with
// ErrBorrowConflict.
func (e *ElementData) BorrowAttributes(fn func(map[QualName]string)) {
	e.attrs.borrow(func(m *map[QualName]string) {
		fn(*m)
	})
}

// Contents is the mutable string payload of text and comment nodes.
type Contents struct {
	cell borrowCell[string]
}

func (c *Contents) String() string {
	return c.cell.load()
}

// Set replaces the contents.
func (c *Contents) Set(s string) {
	c.cell.store(s)
}

// Append adds s to the end of the contents.
func (c *Contents) Append(s string) {
	c.cell.borrow(func(v *string) {
		*v += s
	})
}

// Borrow gives fn a mutable view of the contents. Any other access to the
// same contents while fn runs panics with ErrBorrowConflict.
func (c *Contents) Borrow(fn func(*string)) {
	c.cell.borrow(fn)
}

// Doctype holds data specific to DocumentType nodes. It cannot change after
// creation.
type Doctype struct {
	name     string
	publicID string
	systemID string
}

// Name returns the name of the doctype, such as "html".
func (d *Doctype) Name() string {
	return d.name
}

// PublicID returns the public identifier of the doctype.
func (d *Doctype) PublicID() string {
	return d.publicID
}

// SystemID returns the system identifier of the doctype.
func (d *Doctype) SystemID() string {
	return d.systemID
}

// QuirksMode is the document-level parsing mode chosen by the tree builder.
type QuirksMode uint8

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (m QuirksMode) String() string {
	switch m {
	case NoQuirks:
		return "no-quirks"
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "unknown"
	}
}

// DocumentData holds data specific to Document nodes.
type DocumentData struct {
	quirksMode QuirksMode
}

// QuirksMode returns the quirks mode of the document, as determined by the
// HTML parser.
func (d *DocumentData) QuirksMode() QuirksMode {
	return d.quirksMode
}

// SetQuirksMode records the quirks mode chosen by the tree builder.
func (d *DocumentData) SetQuirksMode(mode QuirksMode) {
	d.quirksMode = mode
}
