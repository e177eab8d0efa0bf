package web

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"folio/internal/adapters/filesystem"
)

func TestHandleFolder(t *testing.T) {
	t.Run("returns record readme and listing", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/folder/docs")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FolderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Project Docs", resp.Folder["name"])
		assert.Empty(t, resp.Readme)
		assert.Empty(t, resp.Subfolders)

		require.Len(t, resp.Files, 2)
		assert.Equal(t, "report.pdf", resp.Files[0].Name)
		assert.Equal(t, "docs/report.pdf", resp.Files[0].Path)
		assert.Equal(t, int64(len("report body")), resp.Files[0].Size)
		require.NotNil(t, resp.Files[0].Metadata)
		assert.Equal(t, "Quarterly Report", resp.Files[0].Metadata["title"])

		assert.Equal(t, "report.toc.md", resp.Files[1].Name)
		assert.Nil(t, resp.Files[1].Metadata)
	})

	t.Run("serves the tree root", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/folder/")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FolderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Library", resp.Folder["name"])
		assert.Equal(t, "# Library\n", resp.Readme)

		var names []string
		for _, f := range resp.Files {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"broken.txt", "guide.pdf", "guide.summary.md", "notes.txt"}, names)
		assert.Nil(t, resp.Files[0].Metadata)
		assert.Equal(t, "Install Guide", resp.Files[1].Metadata["title"])
		assert.Equal(t, "guide.pdf", resp.Files[1].Path)

		require.Len(t, resp.Subfolders, 1)
		assert.Equal(t, "docs", resp.Subfolders[0].Name)
		assert.Equal(t, "docs", resp.Subfolders[0].Path)
		assert.Equal(t, "Project Docs", resp.Subfolders[0].Metadata["name"])
	})

	t.Run("missing folder returns not found", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/folder/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Folder not found", resp.Error)
	})

	t.Run("file path returns not found", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/folder/guide.pdf")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/folder/../outside")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleFile(t *testing.T) {
	t.Run("returns record and toc", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/file/docs/report.pdf")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "report.pdf", resp.File)
		assert.Equal(t, "docs/report.pdf", resp.Path)
		assert.Equal(t, "Quarterly Report", resp.Metadata["title"])
		assert.Equal(t, "# Contents: report.pdf\n", resp.TOC)
		assert.Empty(t, resp.Summary)
	})

	t.Run("returns summary artifact", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/file/guide.pdf")

		var resp FileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "# Summary: guide.pdf\n", resp.Summary)
	})

	t.Run("missing file serves empty detail", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/file/docs/ghost.txt")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"metadata":{}`)

		var resp FileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ghost.txt", resp.File)
		assert.Equal(t, "docs/ghost.txt", resp.Path)
		assert.Empty(t, resp.Summary)
		assert.Empty(t, resp.TOC)
	})

	t.Run("malformed record reads as absent", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/file/broken.txt")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"metadata":{}`)
	})
}

func TestHandleDownload(t *testing.T) {
	t.Run("serves file as attachment", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/download/docs/report.pdf")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "report body", rec.Body.String())
		disposition := rec.Header().Get(echo.HeaderContentDisposition)
		assert.Contains(t, disposition, "attachment")
		assert.Contains(t, disposition, "report.pdf")
	})

	t.Run("missing file returns not found", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/download/ghost.bin")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "File not found", resp.Error)
	})

	t.Run("directory returns not found", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/download/docs")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		server := setupTestServer(t)
		secret := filepath.Join(filepath.Dir(server.root), "secret.txt")
		require.NoError(t, os.WriteFile(secret, []byte("classified"), 0o644))

		rec := get(t, server, "/download/../secret.txt")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "classified")
	})
}

func TestHandleStats(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	files := map[string]string{
		".folder-meta.json": `{"name": "Docs"}`,
		"a.txt":             "aaaa",
		"a.meta.json":       `{"filename": "a.txt"}`,
		"sub/b.md":          "bb",
		".hidden/c.txt":     "cc",
	}
	var wantSize int64
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
		if !strings.HasPrefix(path.Base(rel), ".") {
			wantSize += int64(len(content))
		}
	}

	indexer := filesystem.NewIndexBuilder(filesystem.NewStore())
	server, err := NewServer(root, indexer, zap.NewNop(), nil)
	require.NoError(t, err)

	rec := get(t, server, "/api/stats")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalFolders)
	assert.Equal(t, 4, resp.TotalFiles)
	assert.Equal(t, wantSize, resp.TotalSize)
}
