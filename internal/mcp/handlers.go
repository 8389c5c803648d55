package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/github-docs-mcp/internal/docs"
	"github.com/bull/github-docs-mcp/internal/markdown"
)

// errorResult converts an operation failure into a structured tool error.
// Upstream failures never surface as protocol errors: the caller always
// receives a well-formed result with the error message as its payload.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// makeOrgReposHandler creates the get_org_repos tool handler.
func makeOrgReposHandler(svc *docs.Service) func(
	context.Context, *mcp.CallToolRequest, OrgReposInput,
) (*mcp.CallToolResult, OrgReposOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input OrgReposInput) (
		*mcp.CallToolResult, OrgReposOutput, error,
	) {
		repos, err := svc.ListOrgRepos(ctx, input.Org)
		if err != nil {
			return errorResult(err), OrgReposOutput{}, nil
		}
		return nil, OrgReposOutput{Repos: repos, Count: len(repos)}, nil
	}
}

// makeRepoDocsHandler creates the get_repo_docs tool handler.
func makeRepoDocsHandler(svc *docs.Service) func(
	context.Context, *mcp.CallToolRequest, RepoDocsInput,
) (*mcp.CallToolResult, RepoDocsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RepoDocsInput) (
		*mcp.CallToolResult, RepoDocsOutput, error,
	) {
		files, err := svc.ListRepoDocs(ctx, input.Org, input.Repo)
		if err != nil {
			return errorResult(err), RepoDocsOutput{}, nil
		}
		return nil, RepoDocsOutput{Files: files, Count: len(files)}, nil
	}
}

// makeFileContentHandler creates the get_file_content tool handler.
// The output is the file's metadata with content decoded to UTF-8 text.
func makeFileContentHandler(svc *docs.Service) func(
	context.Context, *mcp.CallToolRequest, FileContentInput,
) (*mcp.CallToolResult, docs.FileContent, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FileContentInput) (
		*mcp.CallToolResult, docs.FileContent, error,
	) {
		content, err := svc.GetFileContent(ctx, input.Org, input.Repo, input.Path)
		if err != nil {
			return errorResult(err), docs.FileContent{}, nil
		}
		return nil, *content, nil
	}
}

// makeSearchHandler creates the search_documentation tool handler.
func makeSearchHandler(svc *docs.Service) func(
	context.Context, *mcp.CallToolRequest, SearchDocsInput,
) (*mcp.CallToolResult, SearchDocsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchDocsInput) (
		*mcp.CallToolResult, SearchDocsOutput, error,
	) {
		hits, err := svc.SearchDocs(ctx, input.Org, input.Query)
		if err != nil {
			return errorResult(err), SearchDocsOutput{}, nil
		}
		out := SearchDocsOutput{Results: hits, Count: len(hits)}
		if len(hits) == 0 {
			out.Results = []docs.SearchHit{}
			out.Message = "No matching documentation found. Try broader search terms."
		}
		return nil, out, nil
	}
}

// makeOutlineHandler creates the get_doc_outline tool handler. It fetches
// the file, requires it to classify as markdown, and extracts the heading
// outline.
func makeOutlineHandler(svc *docs.Service, outliner *markdown.Outliner) func(
	context.Context, *mcp.CallToolRequest, OutlineInput,
) (*mcp.CallToolResult, OutlineOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input OutlineInput) (
		*mcp.CallToolResult, OutlineOutput, error,
	) {
		content, err := svc.GetFileContent(ctx, input.Org, input.Repo, input.Path)
		if err != nil {
			return errorResult(err), OutlineOutput{}, nil
		}
		if docs.DetermineType(content.Name) != docs.TypeMarkdown {
			return errorResult(fmt.Errorf("%s is not a markdown file", input.Path)), OutlineOutput{}, nil
		}

		headings, err := outliner.Outline([]byte(content.Content))
		if err != nil {
			return errorResult(err), OutlineOutput{}, nil
		}
		if headings == nil {
			headings = []markdown.Heading{}
		}
		return nil, OutlineOutput{
			Path:     content.Path,
			Headings: headings,
			Count:    len(headings),
		}, nil
	}
}
