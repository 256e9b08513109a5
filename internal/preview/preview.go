// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders generated markdown partials to standalone
// HTML files for local inspection before the docs site picks them up.
package preview

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// HTML converts a markdown fragment to HTML. The partials embed raw
// container and definition-list elements, so unsafe rendering is on.
func HTML(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// File renders the markdown file at path to a sibling .html file and
// returns the output path.
func File(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	out, err := HTML(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	htmlPath := strings.TrimSuffix(path, ".md") + ".html"
	if err := os.WriteFile(htmlPath, out, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	return htmlPath, nil
}
