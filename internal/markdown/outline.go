// Package markdown extracts heading outlines from markdown documents.
package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// Heading is one entry in a document outline.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Outliner parses markdown documents into heading outlines.
type Outliner struct {
	parser goldmark.Markdown
}

// NewOutliner creates an Outliner configured with a goldmark parser.
func NewOutliner() *Outliner {
	md := goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Outliner{
		parser: md,
	}
}

// Outline parses a markdown document and returns its headings in document
// order, H1 through H6. A document without headings yields an empty
// outline.
func (o *Outliner) Outline(source []byte) ([]Heading, error) {
	reader := text.NewReader(source)
	doc := o.parser.Parser().Parse(reader)

	tree, err := toc.Inspect(doc, source,
		toc.MinDepth(1),
		toc.MaxDepth(6),
		toc.Compact(true),
	)
	if err != nil {
		return nil, fmt.Errorf("inspect TOC: %w", err)
	}

	headings := flatten(tree.Items, 1, nil)
	return headings, nil
}

// flatten walks the TOC tree depth-first, recording each item with its
// depth as the heading level.
func flatten(items toc.Items, level int, out []Heading) []Heading {
	for _, item := range items {
		// Compact TOC levels can hold structural placeholders with no
		// title; descend without emitting them.
		if len(item.Title) > 0 {
			out = append(out, Heading{Level: level, Title: string(item.Title)})
		}
		if len(item.Items) > 0 {
			out = flatten(item.Items, level+1, out)
		}
	}
	return out
}
