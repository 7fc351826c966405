package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dhollis/tines-mcp/internal/config"
	"github.com/dhollis/tines-mcp/internal/tines"
	"github.com/dhollis/tines-mcp/internal/tools"
)

func main() {
	// stdout carries the MCP stdio transport, so all logging goes to stderr.
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded; using existing environment variables", zap.Error(err))
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Configuration error", zap.Error(err))
	}
	logger.Info("Tines MCP server initialized", zap.String("api_url", cfg.BaseURL))
	logger.Info("API token loaded successfully")

	client, err := tines.NewClient(cfg.BaseURL, cfg.APIToken, logger)
	if err != nil {
		logger.Fatal("Failed to create Tines client", zap.Error(err))
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tines-mcp",
		Version: "0.1.0",
	}, nil)

	tools.RegisterStoryTools(server, client)
	tools.RegisterDraftTools(server, client)
	tools.RegisterActionTools(server, client)
	tools.RegisterTypedActionTools(server, client)
	tools.RegisterNoteTools(server, client)
	tools.RegisterDebugTool(server, client)

	logger.Info("Starting Tines MCP server")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
