// Package main provides the MCP server entry point for GitHub organization
// documentation.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bull/github-docs-mcp/internal/config"
	"github.com/bull/github-docs-mcp/internal/docs"
	ghclient "github.com/bull/github-docs-mcp/internal/github"
	"github.com/bull/github-docs-mcp/internal/logging"
	"github.com/bull/github-docs-mcp/internal/markdown"
	mcpserver "github.com/bull/github-docs-mcp/internal/mcp"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if !cfg.HasToken() {
		slog.Warn("GITHUB_TOKEN not set, API rate limits will be restricted")
	}

	// One GitHub client for the process lifetime; every operation reuses
	// its connection pool.
	ghClient, err := ghclient.New(cfg)
	if err != nil {
		slog.Error("failed to create GitHub client", "error", err)
		os.Exit(1)
	}

	if err := ghClient.PingWithRetry(ctx); err != nil {
		slog.Error("GitHub API unreachable", "base_url", cfg.APIBaseURL, "error", err)
		os.Exit(1)
	}

	service := docs.NewService(ghClient, slog.Default(), cfg.FallbackConcurrency)

	server := mcpserver.NewServer(&mcpserver.Config{
		Docs:     service,
		Outliner: markdown.NewOutliner(),
		GitHub:   ghClient,
	})

	// HTTP endpoints: landing, health, and the MCP streamable transport.
	mux := http.NewServeMux()
	mux.HandleFunc("/", mcpserver.NewLandingHandler())
	mux.HandleFunc("/health", mcpserver.NewHealthHandler(ghClient))
	mux.Handle("/mcp", mcpserver.NewHTTPHandler(server, nil))
	handler := mcpserver.WithRequestID(mux)

	addr := "0.0.0.0:" + cfg.Port

	if cfg.ServerMode {
		// HTTP mode: serve MCP over HTTP for remote clients
		slog.Info("starting HTTP server", "addr", addr, "mcp", "/mcp", "health", "/health")
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
		return
	}

	// Stdio mode: run MCP server over stdin/stdout for local clients.
	// The HTTP health endpoint still runs in the background.
	go func() {
		slog.Info("starting health server", "addr", addr)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("health server error", "error", err)
		}
	}()

	slog.Info("starting GitHub Docs MCP Server (stdio mode)")
	if err := server.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
