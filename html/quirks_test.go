package html

import (
	"errors"
	"testing"

	"github.com/chrisuehlinger/domtree/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errBoom }

func TestQuirksModeFor(t *testing.T) {
	tests := []struct {
		name     string
		doctype  *dom.Node
		expected dom.QuirksMode
	}{
		{"html5", dom.NewDoctype("html", "", ""), dom.NoQuirks},
		{"uppercase name", dom.NewDoctype("HTML", "", ""), dom.NoQuirks},
		{"other name", dom.NewDoctype("svg", "", ""), dom.Quirks},
		{"html 3.2", dom.NewDoctype("html", "-//W3C//DTD HTML 3.2 Final//EN", ""), dom.Quirks},
		{"exact quirky public id", dom.NewDoctype("html", "HTML", ""), dom.Quirks},
		{"ibm system id", dom.NewDoctype("html", "", "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"), dom.Quirks},
		{"4.01 transitional without system id", dom.NewDoctype("html", "-//W3C//DTD HTML 4.01 Transitional//EN", ""), dom.Quirks},
		{"4.01 transitional with system id", dom.NewDoctype("html", "-//W3C//DTD HTML 4.01 Transitional//EN", "http://www.w3.org/TR/html4/loose.dtd"), dom.LimitedQuirks},
		{"xhtml transitional", dom.NewDoctype("html", "-//W3C//DTD XHTML 1.0 Transitional//EN", "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"), dom.LimitedQuirks},
		{"4.01 strict", dom.NewDoctype("html", "-//W3C//DTD HTML 4.01//EN", "http://www.w3.org/TR/html4/strict.dtd"), dom.NoQuirks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuirksModeFor(tt.doctype.AsDoctype()))
		})
	}

	assert.Equal(t, dom.Quirks, QuirksModeFor(nil))
}

func TestParse_SetsQuirksMode(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"><p>x`)
	require.NoError(t, err)
	assert.Equal(t, dom.LimitedQuirks, doc.AsDocument().QuirksMode())

	doc, err = Parse(`<p>no doctype`)
	require.NoError(t, err)
	assert.Equal(t, dom.Quirks, doc.AsDocument().QuirksMode())
}

func TestParse_EmptySystemIDIsPresent(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" ""><p>x`)
	require.NoError(t, err)
	assert.Equal(t, dom.LimitedQuirks, doc.AsDocument().QuirksMode())
	assert.Equal(t, "", doc.FirstChild().AsDoctype().SystemID())

	doc, err = Parse(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"><p>x`)
	require.NoError(t, err)
	assert.Equal(t, dom.Quirks, doc.AsDocument().QuirksMode())
}
