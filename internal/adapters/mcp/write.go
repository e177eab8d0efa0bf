package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folio/internal/application/commands"
	"folio/internal/ports"
)

// RegisterWriteTools adds all record-writing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, d Deps) {
	s.AddTool(initFolderTool(), initFolderHandler(d))
	s.AddTool(initFileTool(), initFileHandler(d))
	s.AddTool(updateMetadataTool(), updateMetadataHandler(d))
}

// --- init_folder_metadata ---

func initFolderTool() mcp.Tool {
	return mcp.NewTool("init_folder_metadata",
		mcp.WithDescription("Create the metadata record for a folder, seeded with its current statistics."),
		mcp.WithString("dir",
			mcp.Description("Folder path, relative to the documents root"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Display name (defaults to the folder name)"),
		),
		mcp.WithString("description",
			mcp.Description("Short description"),
		),
		mcp.WithString("category",
			mcp.Description("Category (default other)"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
		),
		mcp.WithString("author",
			mcp.Description("Author (defaults to the current user)"),
		),
		mcp.WithString("language",
			mcp.Description("Language code (default en)"),
		),
	)
}

func initFolderHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", "")
		if dir == "" {
			return toolError(fmt.Errorf("dir is required"))
		}
		abs, err := resolvePath(d.Root, dir)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewInitFolderCommand(d.Store, abs, ports.FolderInit{
			Name:        req.GetString("name", ""),
			Description: req.GetString("description", ""),
			Category:    req.GetString("category", ""),
			Tags:        splitTags(req.GetString("tags", "")),
			Author:      req.GetString("author", ""),
			Language:    req.GetString("language", ""),
		})
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- init_file_metadata ---

func initFileTool() mcp.Tool {
	return mcp.NewTool("init_file_metadata",
		mcp.WithDescription("Create the metadata record for a file, filling stat, type and checksum data."),
		mcp.WithString("file",
			mcp.Description("File path, relative to the documents root"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Display title (defaults to the file name)"),
		),
		mcp.WithString("description",
			mcp.Description("Short description"),
		),
		mcp.WithString("category",
			mcp.Description("Category"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
		),
		mcp.WithString("author",
			mcp.Description("Author (defaults to the current user)"),
		),
		mcp.WithString("language",
			mcp.Description("Language code (default en)"),
		),
	)
}

func initFileHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		if file == "" {
			return toolError(fmt.Errorf("file is required"))
		}
		abs, err := resolvePath(d.Root, file)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewInitFileCommand(d.Store, abs, ports.FileInit{
			Title:       req.GetString("title", ""),
			Description: req.GetString("description", ""),
			Category:    req.GetString("category", ""),
			Tags:        splitTags(req.GetString("tags", "")),
			Author:      req.GetString("author", ""),
			Language:    req.GetString("language", ""),
		})
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_metadata ---

func updateMetadataTool() mcp.Tool {
	return mcp.NewTool("update_metadata",
		mcp.WithDescription("Merge fields into an existing metadata record. The record's updated timestamp is refreshed."),
		mcp.WithString("path",
			mcp.Description("Path of the file or folder, relative to the documents root"),
			mcp.Required(),
		),
		mcp.WithString("updates",
			mcp.Description("JSON object of fields to merge into the record"),
			mcp.Required(),
		),
	)
}

func updateMetadataHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")
		if rel == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		raw := req.GetString("updates", "")
		if raw == "" {
			return toolError(fmt.Errorf("updates is required"))
		}
		var updates map[string]any
		if err := json.Unmarshal([]byte(raw), &updates); err != nil {
			return toolError(fmt.Errorf("updates must be a JSON object: %w", err))
		}

		abs, err := resolvePath(d.Root, rel)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewUpdateRecordCommand(d.Store, abs, updates)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
