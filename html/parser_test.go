package html

import (
	"strings"
	"testing"

	"github.com/chrisuehlinger/domtree/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findElement(root *dom.Node, local string) *dom.Node {
	for n := range root.InclusiveDescendants() {
		if el := n.AsElement(); el != nil && el.Name().Local == local {
			return n
		}
	}
	return nil
}

func TestParse_BasicDocument(t *testing.T) {
	input := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body><p>Hello, World!</p></body>
</html>`

	doc, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, dom.DocumentNode, doc.NodeType())
	assert.Equal(t, dom.NoQuirks, doc.AsDocument().QuirksMode())

	doctype := doc.FirstChild()
	require.NotNil(t, doctype.AsDoctype())
	assert.Equal(t, "html", doctype.AsDoctype().Name())

	htmlNode := doctype.NextSibling()
	require.NotNil(t, htmlNode.AsElement())
	assert.Equal(t, dom.HTMLName("html"), htmlNode.AsElement().Name())
	assert.Same(t, doc, htmlNode.Parent())
	assert.Same(t, htmlNode, doc.LastChild())

	var children []string
	for c := range htmlNode.Children() {
		if el := c.AsElement(); el != nil {
			children = append(children, el.Name().Local)
		}
	}
	assert.Equal(t, []string{"head", "body"}, children)

	p := findElement(doc, "p")
	require.NotNil(t, p)
	assert.Equal(t, "Hello, World!", p.TextContents())
	require.NoError(t, dom.CheckTree(doc))
}

func TestParse_MalformedHTML(t *testing.T) {
	// The HTML5 parser repairs malformed input.
	doc, err := Parse(`<p>unclosed paragraph<div>nested div</p></div>`)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, dom.Quirks, doc.AsDocument().QuirksMode())
	require.NoError(t, dom.CheckTree(doc))
}

func TestParse_Attributes(t *testing.T) {
	doc, err := Parse(`<div id="main" class="container" data-value="123">content</div>`)
	require.NoError(t, err)

	div := findElement(doc, "div")
	require.NotNil(t, div)
	el := div.AsElement()

	for name, want := range map[string]string{
		"id":         "main",
		"class":      "container",
		"data-value": "123",
	} {
		got, ok := el.Attribute(dom.AttrName(name))
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParse_ForeignContent(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE html><body><svg><a xlink:href="#x"><text>t</text></a></svg><math><mi>x</mi></math></body>`)
	require.NoError(t, err)

	svg := findElement(doc, "svg")
	require.NotNil(t, svg)
	assert.Equal(t, dom.SVGNamespace, svg.AsElement().Name().Namespace)

	link := svg.FirstChild()
	require.NotNil(t, link.AsElement())
	href, ok := link.AsElement().Attribute(dom.QualName{Namespace: dom.XLinkNamespace, Local: "href"})
	assert.True(t, ok)
	assert.Equal(t, "#x", href)

	mi := findElement(doc, "mi")
	require.NotNil(t, mi)
	assert.Equal(t, dom.MathMLNamespace, mi.AsElement().Name().Namespace)
}

func TestParse_Comments(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE html><body><!-- note --><p>x</p></body>`)
	require.NoError(t, err)

	body := findElement(doc, "body")
	require.NotNil(t, body)
	comment := body.FirstChild()
	require.NotNil(t, comment.AsComment())
	assert.Equal(t, " note ", comment.AsComment().String())
}

func TestParse_DeeplyNested(t *testing.T) {
	const depth = 400
	input := "<!DOCTYPE html><body>" + strings.Repeat("<span>", depth) + "deep" + strings.Repeat("</span>", depth)

	doc, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, "deep", doc.TextContents())
	require.NoError(t, dom.CheckTree(doc))
}

func TestParseFragment(t *testing.T) {
	context := dom.NewElement(dom.HTMLName("ul"))
	nodes, err := ParseFragment(`<li>one</li><li>two</li>`, context)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	for i, want := range []string{"one", "two"} {
		assert.Nil(t, nodes[i].Parent())
		assert.Nil(t, nodes[i].NextSibling())
		assert.Equal(t, "li", nodes[i].AsElement().Name().Local)
		assert.Equal(t, want, nodes[i].TextContents())
	}

	for _, n := range nodes {
		context.Append(n)
	}
	assert.Equal(t, "onetwo", context.TextContents())
	require.NoError(t, dom.CheckTree(context))
}

func TestParseFragment_NoContext(t *testing.T) {
	nodes, err := ParseFragment(`text <b>bold</b>`, nil)
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
	assert.Equal(t, "html", nodes[0].AsElement().Name().Local)
}

func TestParseReader_Error(t *testing.T) {
	_, err := ParseReader(failingReader{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "parsing html")
}
