package mcp

import (
	"strings"
	"testing"

	"github.com/bull/github-docs-mcp/internal/docs"
)

func TestParseDocListingURI(t *testing.T) {
	org, repo, err := parseDocListingURI("documentation://acme/widgets")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if org != "acme" || repo != "widgets" {
		t.Errorf("got org=%q repo=%q", org, repo)
	}

	for _, bad := range []string{
		"documentation://acme",
		"documentation://acme/widgets/extra",
		"content://acme/widgets",
		"documentation://",
	} {
		if _, _, err := parseDocListingURI(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseContentURI(t *testing.T) {
	org, repo, path, err := parseContentURI("content://acme/widgets/doc/readme.md")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if org != "acme" || repo != "widgets" || path != "doc/readme.md" {
		t.Errorf("got org=%q repo=%q path=%q", org, repo, path)
	}

	for _, bad := range []string{
		"content://acme/widgets",
		"content://acme",
		"documentation://acme/widgets/doc/readme.md",
	} {
		if _, _, _, err := parseContentURI(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFormatDocListing(t *testing.T) {
	files := []docs.DocFile{
		{Name: "readme.md", Path: "doc/readme.md", Type: docs.TypeMarkdown, Size: 11},
		{Name: "api.yaml", Path: "doc/api.yaml", Type: docs.TypeOpenAPI, Size: 42},
	}

	out := formatDocListing("acme", "a", files)

	for _, want := range []string{
		"Documentation in acme/a",
		"readme.md",
		"Type: markdown",
		"Size: 42 bytes",
		"Path: doc/api.yaml",
		"Total: 2 files",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDocListing_Empty(t *testing.T) {
	out := formatDocListing("acme", "b", nil)
	if out != "No documentation found in acme/b/doc folder" {
		t.Errorf("unexpected empty listing: %q", out)
	}
}
