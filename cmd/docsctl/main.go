// Package main provides docsctl, a CLI for exercising the GitHub docs
// operations directly without an MCP client.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bull/github-docs-mcp/internal/config"
	"github.com/bull/github-docs-mcp/internal/docs"
	ghclient "github.com/bull/github-docs-mcp/internal/github"
	"github.com/bull/github-docs-mcp/internal/logging"
	"github.com/bull/github-docs-mcp/internal/markdown"
)

var rootCmd = &cobra.Command{
	Use:   "docsctl",
	Short: "GitHub organization documentation tool",
	Long: `CLI for browsing and searching the /doc folders of a GitHub organization.

Environment variables:
  GITHUB_TOKEN         GitHub token for higher rate limits (optional)
  GITHUB_API_BASE_URL  API base URL (default: https://api.github.com)
  LOG_LEVEL            debug, info, warn, or error (default: info)`,
}

var reposCmd = &cobra.Command{
	Use:   "repos <org>",
	Short: "List an organization's repositories with doc-folder detection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		repos, err := svc.ListOrgRepos(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(repos)
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs <org> <repo>",
	Short: "List documentation files in a repository's /doc folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		files, err := svc.ListRepoDocs(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(files)
	},
}

var contentCmd = &cobra.Command{
	Use:   "content <org> <repo> <path>",
	Short: "Print a file's decoded content",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		file, err := svc.GetFileContent(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Print(file.Content)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <org> <query>...",
	Short: "Search doc folders across an organization",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		hits, err := svc.SearchDocs(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return printJSON(hits)
	},
}

var outlineCmd = &cobra.Command{
	Use:   "outline <org> <repo> <path>",
	Short: "Print the heading outline of a markdown doc file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		file, err := svc.GetFileContent(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if docs.DetermineType(file.Name) != docs.TypeMarkdown {
			return fmt.Errorf("%s is not a markdown file", file.Path)
		}
		headings, err := markdown.NewOutliner().Outline([]byte(file.Content))
		if err != nil {
			return err
		}
		for _, h := range headings {
			fmt.Printf("%s %s\n", strings.Repeat("#", h.Level), h.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reposCmd, docsCmd, contentCmd, searchCmd, outlineCmd)
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService builds the docs service from the environment, warning about
// a missing token the same way the server does.
func newService() (*docs.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel)

	if !cfg.HasToken() {
		slog.Warn("GITHUB_TOKEN not set, API rate limits will be restricted")
	}

	client, err := ghclient.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return docs.NewService(client, slog.Default(), cfg.FallbackConcurrency), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
