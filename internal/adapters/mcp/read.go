package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folio/internal/application/commands"
	"folio/internal/domain"
	"folio/internal/ports"
)

// Deps carries the documents root and the adapters the MCP tools run
// against.
type Deps struct {
	Root    string
	Store   ports.MetadataStore
	Scanner ports.Scanner
	Indexer ports.Indexer
}

// RegisterReadTools adds all read-only metadata tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, d Deps) {
	s.AddTool(searchMetadataTool(), searchMetadataHandler(d))
	s.AddTool(facetCountsTool(), facetCountsHandler(d))
	s.AddTool(readMetadataTool(), readMetadataHandler(d))
	s.AddTool(scanSummaryTool(), scanSummaryHandler(d))
}

// --- search_metadata ---

func searchMetadataTool() mcp.Tool {
	return mcp.NewTool("search_metadata",
		mcp.WithDescription("Search folder and file metadata records. All clauses are optional and combined with AND; without arguments every record is returned."),
		mcp.WithString("query",
			mcp.Description("Text matched against names, titles, descriptions, subjects, keywords and tags"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags; a record matches when it carries any of them"),
		),
		mcp.WithString("category",
			mcp.Description("Exact category"),
		),
		mcp.WithString("type",
			mcp.Description("File type (pdf, epub, ...); only file records carry one"),
		),
		mcp.WithString("author",
			mcp.Description("Author substring"),
		),
		mcp.WithString("from",
			mcp.Description("Records updated on or after this ISO date"),
		),
		mcp.WithString("to",
			mcp.Description("Records updated on or before this ISO date"),
		),
	)
}

func searchMetadataHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		crit := domain.NewCriteria()
		crit.Query = req.GetString("query", "")
		crit.Tags = splitTags(req.GetString("tags", ""))
		crit.Category = req.GetString("category", "")
		crit.FileType = req.GetString("type", "")
		crit.Author = req.GetString("author", "")
		crit.DateFrom = req.GetString("from", "")
		crit.DateTo = req.GetString("to", "")

		idx, err := d.Indexer.Build(ctx, d.Root)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(commands.FormatResults(domain.Search(idx, crit))), nil
	}
}

// --- facet_counts ---

func facetCountsTool() mcp.Tool {
	return mcp.NewTool("facet_counts",
		mcp.WithDescription("Count categories, tags, file types and authors across all file metadata records."),
	)
}

func facetCountsHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idx, err := d.Indexer.Build(ctx, d.Root)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(commands.FormatFacets(domain.Facets(idx))), nil
	}
}

// --- read_metadata ---

func readMetadataTool() mcp.Tool {
	return mcp.NewTool("read_metadata",
		mcp.WithDescription("Read the raw metadata record of a file or folder."),
		mcp.WithString("path",
			mcp.Description("Path of the file or folder, relative to the documents root"),
			mcp.Required(),
		),
	)
}

func readMetadataHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")
		if rel == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		abs, err := resolvePath(d.Root, rel)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewReadRecordCommand(d.Store, abs)
		record, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- scan_summary ---

func scanSummaryTool() mcp.Tool {
	return mcp.NewTool("scan_summary",
		mcp.WithDescription("Scan the documents tree and summarize its inventory: folder and file counts, total size, and the files missing metadata records."),
		mcp.WithString("path",
			mcp.Description("Subtree to scan, relative to the documents root. Omit to scan the whole tree."),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Descend into subfolders (default true)"),
		),
		mcp.WithNumber("max_depth",
			mcp.Description("Recursion depth limit; -1 means unlimited"),
		),
	)
}

func scanSummaryHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		abs, err := resolvePath(d.Root, req.GetString("path", "."))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewScanCommand(d.Scanner, abs, req.GetBool("recursive", true), req.GetInt("max_depth", -1), nil)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + "\n\n" + commands.FormatMissing(result.Inventory)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// resolvePath maps a root-relative path onto the documents tree,
// rejecting paths that climb out of it.
func resolvePath(root, rel string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(rel, "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("path escapes documents root: %s", rel)
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
