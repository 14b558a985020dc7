package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisuehlinger/domtree/dom"
	"github.com/chrisuehlinger/domtree/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"
)

const sampleDocument = `<!DOCTYPE html><html><head><title>t</title></head><body><p>hi</p></body></html>`

func TestCollectStats(t *testing.T) {
	doc, err := html.Parse(sampleDocument)
	require.NoError(t, err)

	stats := collectStats(doc)
	assert.Equal(t, 9, stats.Nodes)
	assert.Equal(t, 5, stats.MaxDepth)
	assert.Equal(t, 3, stats.TextBytes)
	assert.Equal(t, "no-quirks", stats.QuirksMode)
	assert.Equal(t, map[string]int{
		"DOCUMENT_NODE":      1,
		"DOCUMENT_TYPE_NODE": 1,
		"ELEMENT_NODE":       5,
		"TEXT_NODE":          2,
	}, stats.ByType)
	assert.Equal(t, map[string]int{"html": 1, "head": 1, "title": 1, "body": 1, "p": 1}, stats.Elements)
}

func TestCollectStats_Fragment(t *testing.T) {
	root := dom.NewElement(dom.HTMLName("div"))
	root.Append(dom.NewText("abc"))

	stats := collectStats(root)
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Empty(t, stats.QuirksMode)
}

func testApp(out *bytes.Buffer, cmd *cli.Command) *cli.App {
	return &cli.App{
		Name:      "domtree",
		Writer:    out,
		ErrWriter: &bytes.Buffer{},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "error"},
		},
		Commands: []*cli.Command{cmd},
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestStatsCommand_JSON(t *testing.T) {
	path := writeFile(t, "index.html", sampleDocument)

	var out bytes.Buffer
	require.NoError(t, testApp(&out, statsCmd).Run([]string{"domtree", "stats", "--json", path}))

	var got treeStats
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 9, got.Nodes)
	assert.Equal(t, 5, got.MaxDepth)
}

func TestStatsCommand_Text(t *testing.T) {
	path := writeFile(t, "index.html", sampleDocument)

	var out bytes.Buffer
	require.NoError(t, testApp(&out, statsCmd).Run([]string{"domtree", "stats", path}))
	assert.Contains(t, out.String(), "nodes: 9\n")
	assert.Contains(t, out.String(), "quirks mode: no-quirks\n")
	assert.Contains(t, out.String(), "<title> 1\n")
}

func TestStatsCommand_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := testApp(&out, statsCmd).Run([]string{"domtree", "stats", filepath.Join(t.TempDir(), "missing.html")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
