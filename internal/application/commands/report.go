package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strings"

	"folio/internal/domain"
)

// missingListLimit caps how many metadata-less files the HTML report lists.
const missingListLimit = 50

// WriteJSONReport writes the inventory to path as indented UTF-8 JSON.
func WriteJSONReport(inv *domain.Inventory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(inv); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}

	return f.Close()
}

// WriteHTMLReport renders the inventory as a standalone HTML page and
// writes it to path.
func WriteHTMLReport(inv *domain.Inventory, path string) error {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, newReportData(inv)); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatMissing renders the scanned files lacking a metadata record, one
// path per line.
func FormatMissing(inv *domain.Inventory) string {
	missing := inv.WithoutMetadata()
	if len(missing) == 0 {
		return "All files have metadata.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Files without metadata (%d):\n", len(missing))
	for _, f := range missing {
		fmt.Fprintf(&b, "  - %s\n", f.Path)
	}
	return b.String()
}

type typeCount struct {
	Extension string
	Count     int
}

type reportData struct {
	Title     string
	BasePath  string
	ScannedAt string
	Stats     domain.InventoryStats
	TotalSize string
	Missing   []domain.InventoryFile
	Types     []typeCount
}

func newReportData(inv *domain.Inventory) reportData {
	missing := inv.WithoutMetadata()
	if len(missing) > missingListLimit {
		missing = missing[:missingListLimit]
	}

	types := make([]typeCount, 0, len(inv.Statistics.FilesByType))
	for ext, count := range inv.Statistics.FilesByType {
		label := ext
		if label == "" {
			label = "no extension"
		}
		types = append(types, typeCount{Extension: label, Count: count})
	}
	// Most frequent first; ties in extension order so output is stable.
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Extension < types[j].Extension
	})

	title := inv.BasePath
	if i := strings.LastIndexByte(title, os.PathSeparator); i >= 0 {
		title = title[i+1:]
	}

	return reportData{
		Title:     title,
		BasePath:  inv.BasePath,
		ScannedAt: inv.ScannedAt,
		Stats:     inv.Statistics,
		TotalSize: domain.FormatSize(inv.Statistics.TotalSize),
		Missing:   missing,
		Types:     types,
	}
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Scan report - {{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .header {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin-bottom: 20px;
        }
        .stat-card {
            background: white;
            padding: 15px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .stat-value {
            font-size: 2em;
            font-weight: bold;
            color: #0066cc;
        }
        .stat-label {
            color: #666;
            margin-top: 5px;
        }
        .section {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h2 {
            margin-top: 0;
            color: #333;
        }
        .file-list {
            list-style: none;
            padding: 0;
        }
        .file-item {
            padding: 10px;
            border-bottom: 1px solid #eee;
            display: flex;
            justify-content: space-between;
            align-items: center;
        }
        .file-item:hover {
            background: #f9f9f9;
        }
        .badge {
            display: inline-block;
            padding: 3px 8px;
            border-radius: 3px;
            font-size: 0.85em;
            margin-left: 5px;
        }
        .badge-warning {
            background: #fff3cd;
            color: #856404;
        }
        .file-path {
            color: #666;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Scan report</h1>
        <p><strong>Path:</strong> {{.BasePath}}</p>
        <p><strong>Date:</strong> {{.ScannedAt}}</p>
    </div>

    <div class="stats">
        <div class="stat-card">
            <div class="stat-value">{{.Stats.TotalFolders}}</div>
            <div class="stat-label">Folders</div>
        </div>
        <div class="stat-card">
            <div class="stat-value">{{.Stats.TotalFiles}}</div>
            <div class="stat-label">Files</div>
        </div>
        <div class="stat-card">
            <div class="stat-value">{{.TotalSize}}</div>
            <div class="stat-label">Total size</div>
        </div>
        <div class="stat-card">
            <div class="stat-value">{{.Stats.FilesWithMetadata}}</div>
            <div class="stat-label">With metadata</div>
        </div>
        <div class="stat-card">
            <div class="stat-value">{{.Stats.FilesWithoutMetadata}}</div>
            <div class="stat-label">Without metadata</div>
        </div>
    </div>

    <div class="section">
        <h2>Files without metadata</h2>
        <ul class="file-list">
{{- if .Missing}}
{{- range .Missing}}
            <li class="file-item">
                <div>
                    <strong>{{.Name}}</strong>
                    <div class="file-path">{{.Path}}</div>
                </div>
                <span class="badge badge-warning">No metadata</span>
            </li>
{{- end}}
{{- else}}
            <li class="file-item">All files have metadata.</li>
{{- end}}
        </ul>
    </div>

    <div class="section">
        <h2>File type distribution</h2>
        <ul class="file-list">
{{- range .Types}}
            <li class="file-item"><strong>{{.Extension}}</strong> <span>{{.Count}} files</span></li>
{{- end}}
        </ul>
    </div>
</body>
</html>
`))
