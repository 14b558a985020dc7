package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/chrisuehlinger/domtree/dom"
	cli "github.com/urfave/cli/v2"
)

var statsCmd = &cli.Command{
	Name:      "stats",
	Usage:     "report node counts and tree depth of an HTML document",
	ArgsUsage: "<file.html>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "json",
			Usage:   "output results as JSON",
			EnvVars: []string{"DOMTREE_JSON"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := configLogger(cctx, cctx.App.ErrWriter)
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one document path")
		}
		doc, err := loadDocument(logger, cctx.Args().First())
		if err != nil {
			return err
		}
		if err := dom.CheckTree(doc); err != nil {
			return fmt.Errorf("inconsistent tree: %w", err)
		}
		stats := collectStats(doc)
		logger.Info("collected stats", "nodes", stats.Nodes, "depth", stats.MaxDepth)

		if cctx.Bool("json") {
			enc := json.NewEncoder(cctx.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		return stats.write(cctx.App.Writer)
	},
}

// treeStats summarises a document tree.
type treeStats struct {
	Nodes      int            `json:"nodes"`
	MaxDepth   int            `json:"maxDepth"`
	QuirksMode string         `json:"quirksMode,omitempty"`
	ByType     map[string]int `json:"byType"`
	Elements   map[string]int `json:"elements"`
	TextBytes  int            `json:"textBytes"`
}

func collectStats(root *dom.Node) treeStats {
	stats := treeStats{
		ByType:   make(map[string]int),
		Elements: make(map[string]int),
	}
	if doc := root.AsDocument(); doc != nil {
		stats.QuirksMode = doc.QuirksMode().String()
	}

	depth := 0
	for edge := range root.Traverse() {
		if edge.Kind == dom.End {
			depth--
			continue
		}
		depth++
		stats.MaxDepth = max(stats.MaxDepth, depth)

		n := edge.Node
		stats.Nodes++
		stats.ByType[n.NodeType().String()]++
		if el := n.AsElement(); el != nil {
			stats.Elements[el.Name().Local]++
		}
		if text := n.AsText(); text != nil {
			stats.TextBytes += len(text.String())
		}
	}
	return stats
}

func (s treeStats) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "nodes: %d\nmax depth: %d\ntext bytes: %d\n", s.Nodes, s.MaxDepth, s.TextBytes); err != nil {
		return err
	}
	if s.QuirksMode != "" {
		fmt.Fprintf(w, "quirks mode: %s\n", s.QuirksMode)
	}
	for _, name := range slices.Sorted(maps.Keys(s.ByType)) {
		fmt.Fprintf(w, "  %-20s %d\n", name, s.ByType[name])
	}
	for _, name := range slices.Sorted(maps.Keys(s.Elements)) {
		fmt.Fprintf(w, "  <%s> %d\n", name, s.Elements[name])
	}
	return nil
}
