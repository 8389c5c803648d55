// Package mcp provides the MCP server surface over the GitHub docs
// operations.
package mcp

import (
	"github.com/bull/github-docs-mcp/internal/docs"
	"github.com/bull/github-docs-mcp/internal/markdown"
)

// OrgReposInput defines the input parameters for the get_org_repos tool.
type OrgReposInput struct {
	// Org is the GitHub organization to enumerate.
	Org string `json:"org" jsonschema:"GitHub organization name (e.g. microsoft)"`
}

// OrgReposOutput lists every repository in the organization with its
// doc-folder flag.
type OrgReposOutput struct {
	Repos []docs.RepoSummary `json:"repos"`
	Count int                `json:"count"`
}

// RepoDocsInput defines the input parameters for the get_repo_docs tool.
type RepoDocsInput struct {
	Org  string `json:"org" jsonschema:"GitHub organization name"`
	Repo string `json:"repo" jsonschema:"Repository name"`
}

// RepoDocsOutput lists the recognized documentation files in the
// repository's doc/ folder.
type RepoDocsOutput struct {
	Files []docs.DocFile `json:"files"`
	Count int            `json:"count"`
}

// FileContentInput defines the input parameters for the get_file_content
// tool.
type FileContentInput struct {
	Org  string `json:"org" jsonschema:"GitHub organization name"`
	Repo string `json:"repo" jsonschema:"Repository name"`
	Path string `json:"path" jsonschema:"File path within the repository (e.g. doc/readme.md)"`
}

// SearchDocsInput defines the input parameters for the search_documentation
// tool.
type SearchDocsInput struct {
	Org   string `json:"org" jsonschema:"GitHub organization name"`
	Query string `json:"query" jsonschema:"Free-text search query (e.g. authentication)"`
}

// SearchDocsOutput contains the org-wide doc search hits.
type SearchDocsOutput struct {
	Results []docs.SearchHit `json:"results"`
	Count   int              `json:"count"`
	// Message provides informational context (e.g. no matches found).
	Message string `json:"message,omitempty"`
}

// OutlineInput defines the input parameters for the get_doc_outline tool.
type OutlineInput struct {
	Org  string `json:"org" jsonschema:"GitHub organization name"`
	Repo string `json:"repo" jsonschema:"Repository name"`
	Path string `json:"path" jsonschema:"Markdown file path within the repository"`
}

// OutlineOutput contains the heading outline of a markdown document.
type OutlineOutput struct {
	Path     string             `json:"path"`
	Headings []markdown.Heading `json:"headings"`
	Count    int                `json:"count"`
}
