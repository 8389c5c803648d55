package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/github-docs-mcp/internal/docs"
)

// Resource URI schemes. documentation:// lists a repository's doc folder as
// readable text; content:// serves one file's decoded content.
const (
	docListingScheme = "documentation"
	contentScheme    = "content"
)

// registerResources adds the two URI-addressable read views.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "documentation://{org}/{repo}",
		Name:        "repo-documentation",
		Description: "Human-readable listing of a repository's /doc folder",
		MIMEType:    "text/plain",
	}, s.handleDocListingResource)

	// {+path} is reserved expansion: doc file paths carry slashes, which a
	// plain {path} variable would refuse to match.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "content://{org}/{repo}/{+path}",
		Name:        "file-content",
		Description: "Decoded content of a single repository file",
	}, s.handleContentResource)
}

// handleDocListingResource serves documentation://{org}/{repo}.
func (s *Server) handleDocListingResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	org, repo, err := parseDocListingURI(req.Params.URI)
	if err != nil {
		return errorContents(req.Params.URI, err), nil
	}

	files, err := s.docs.ListRepoDocs(ctx, org, repo)
	if err != nil {
		return errorContents(req.Params.URI, err), nil
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     formatDocListing(org, repo, files),
		}},
	}, nil
}

// handleContentResource serves content://{org}/{repo}/{path}. The MIME
// type follows the file's classified content type.
func (s *Server) handleContentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	org, repo, path, err := parseContentURI(req.Params.URI)
	if err != nil {
		return errorContents(req.Params.URI, err), nil
	}

	content, err := s.docs.GetFileContent(ctx, org, repo, path)
	if err != nil {
		return errorContents(req.Params.URI, err), nil
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: docs.DetermineType(content.Name).MIMEType(),
			Text:     content.Content,
		}},
	}, nil
}

// errorContents wraps a failure as a single-key error object so resource
// reads degrade to structured payloads instead of protocol errors.
func errorContents(uri string, err error) *mcp.ReadResourceResult {
	payload, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: err.Error()})

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(payload),
		}},
	}
}

func parseDocListingURI(uri string) (org, repo string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid resource URI %q: %w", uri, err)
	}
	repo = strings.Trim(u.Path, "/")
	if u.Scheme != docListingScheme || u.Host == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("resource URI must look like documentation://org/repo, got %q", uri)
	}
	return u.Host, repo, nil
}

func parseContentURI(uri string) (org, repo, path string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid resource URI %q: %w", uri, err)
	}
	repo, path, found := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if u.Scheme != contentScheme || u.Host == "" || repo == "" || !found || path == "" {
		return "", "", "", fmt.Errorf("resource URI must look like content://org/repo/path, got %q", uri)
	}
	return u.Host, repo, path, nil
}

// formatDocListing renders a doc listing as readable text, one block per
// file plus a trailing total.
func formatDocListing(org, repo string, files []docs.DocFile) string {
	if len(files) == 0 {
		return fmt.Sprintf("No documentation found in %s/%s/doc folder", org, repo)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Documentation in %s/%s\n", org, repo)
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	for _, f := range files {
		fmt.Fprintf(&b, "%s\n", f.Name)
		fmt.Fprintf(&b, "   Type: %s\n", f.Type)
		fmt.Fprintf(&b, "   Size: %d bytes\n", f.Size)
		fmt.Fprintf(&b, "   Path: %s\n\n", f.Path)
	}

	fmt.Fprintf(&b, "Total: %d files", len(files))
	return b.String()
}
