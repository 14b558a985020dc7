package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chrisuehlinger/domtree/dom"
	"github.com/chrisuehlinger/domtree/html"
)

// loadDocument parses the HTML file at path.
func loadDocument(logger *slog.Logger, path string) (*dom.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := html.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed document", "path", path, "quirks", doc.AsDocument().QuirksMode())
	return doc, nil
}
