package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v81/github"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/github-docs-mcp/internal/docs"
	ghclient "github.com/bull/github-docs-mcp/internal/github"
	"github.com/bull/github-docs-mcp/internal/markdown"
)

// newTestServer builds a full Server against an httptest GitHub fixture:
// org "acme", repo "a", one markdown file doc/readme.md containing "hello".
func newTestServer(t *testing.T) *Server {
	t.Helper()

	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/a/contents/doc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"type": "file", "name": "readme.md", "path": "doc/readme.md", "sha": "s1", "size": 5,
			 "html_url": "h1", "download_url": "d1"}
		]`)
	})
	mux.HandleFunc("/repos/acme/a/contents/doc/readme.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"type": "file", "name": "readme.md", "path": "doc/readme.md",
			"sha": "s1", "size": 5, "encoding": "base64", "content": %q}`, encoded)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	client := &ghclient.Client{Client: gh}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := docs.NewService(client, logger, 2)

	return NewServer(&Config{
		Docs:     service,
		Outliner: markdown.NewOutliner(),
		GitHub:   client,
	})
}

// TestServer_EndToEnd connects an in-memory client and drives a tool call
// and both resource views through the SDK, so registration problems
// (schema tags, URI templates) fail here instead of at first real use.
func TestServer_EndToEnd(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	_, err := server.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.1.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	// Tool call round trip.
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_repo_docs",
		Arguments: map[string]any{"org": "acme", "repo": "a"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	var out RepoDocsOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Files, 1)
	assert.Equal(t, "readme.md", out.Files[0].Name)
	assert.Equal(t, docs.TypeMarkdown, out.Files[0].Type)

	// Doc listing view.
	listing, err := session.ReadResource(ctx, &mcp.ReadResourceParams{
		URI: "documentation://acme/a",
	})
	require.NoError(t, err)
	require.Len(t, listing.Contents, 1)
	assert.Contains(t, listing.Contents[0].Text, "readme.md")
	assert.Contains(t, listing.Contents[0].Text, "Total: 1 files")

	// Content view: the path variable spans a slash.
	content, err := session.ReadResource(ctx, &mcp.ReadResourceParams{
		URI: "content://acme/a/doc/readme.md",
	})
	require.NoError(t, err)
	require.Len(t, content.Contents, 1)
	assert.Equal(t, "hello", content.Contents[0].Text)
	assert.Equal(t, "text/markdown", content.Contents[0].MIMEType)
}
