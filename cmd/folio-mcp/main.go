package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folio/internal/adapters/filesystem"
	mcpadapter "folio/internal/adapters/mcp"
	"folio/internal/config"
)

func main() {
	docsFlag := flag.String("docs", config.DocumentsPath(), "path to the documents root")
	flag.Parse()

	root := config.ExpandHome(*docsFlag)
	store := filesystem.NewStore()

	deps := mcpadapter.Deps{
		Root:    root,
		Store:   store,
		Scanner: filesystem.NewCrawler(store),
		Indexer: filesystem.NewIndexBuilder(store),
	}

	mcpServer := server.NewMCPServer(
		"folio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("folio-mcp: %v", err)
	}
}
