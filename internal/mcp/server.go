package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/github-docs-mcp/internal/docs"
	ghclient "github.com/bull/github-docs-mcp/internal/github"
	"github.com/bull/github-docs-mcp/internal/markdown"
)

// Server wraps the MCP server with dependencies.
type Server struct {
	server   *mcp.Server
	docs     *docs.Service
	outliner *markdown.Outliner
	github   *ghclient.Client
}

// Config holds server dependencies.
type Config struct {
	Docs     *docs.Service
	Outliner *markdown.Outliner
	GitHub   *ghclient.Client
}

// NewServer creates a configured MCP server with tools and resources
// registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "github-docs-mcp",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_org_repos",
		Description: "Fetch all repositories from a GitHub organization, each flagged with whether it has a /doc folder.",
	}, makeOrgReposHandler(cfg.Docs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_repo_docs",
		Description: "List documentation files in a repository's /doc folder. Supported types: Markdown, Mermaid, SVG, OpenAPI, Postman.",
	}, makeRepoDocsHandler(cfg.Docs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_file_content",
		Description: "Fetch a file from a repository and decode its content to text.",
	}, makeFileContentHandler(cfg.Docs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_documentation",
		Description: "Search documentation files across all repositories in an organization using GitHub code search.",
	}, makeSearchHandler(cfg.Docs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_doc_outline",
		Description: "Fetch a markdown documentation file and return its heading outline.",
	}, makeOutlineHandler(cfg.Docs, cfg.Outliner))

	s := &Server{
		server:   server,
		docs:     cfg.Docs,
		outliner: cfg.Outliner,
		github:   cfg.GitHub,
	}
	s.registerResources()

	return s
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server instance.
// Used by transport handlers that need to wrap the server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}
