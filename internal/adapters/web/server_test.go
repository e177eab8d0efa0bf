package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"folio/internal/adapters/filesystem"
	"folio/internal/domain"
)

// fixtureTree writes a small documents tree and returns its root.
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "library")

	files := map[string]string{
		".folder-meta.json":      `{"name": "Library", "description": "Reference shelf", "category": "reference"}`,
		".folder-readme.md":      "# Library\n",
		"guide.pdf":              "pdf body",
		"guide.meta.json":        `{"filename": "guide.pdf", "title": "Install Guide", "fileType": "pdf", "tags": ["setup"], "author": "ops"}`,
		"guide.summary.md":       "# Summary: guide.pdf\n",
		"notes.txt":              "plain notes\n",
		"broken.txt":             "broken body",
		"broken.meta.json":       `{not json`,
		"docs/.folder-meta.json": `{"name": "Project Docs", "category": "docs", "tags": ["work"]}`,
		"docs/report.pdf":        "report body",
		"docs/report.meta.json":  `{"filename": "report.pdf", "title": "Quarterly Report", "fileType": "pdf", "tags": ["finance"], "author": "alice"}`,
		"docs/report.toc.md":     "# Contents: report.pdf\n",
		".archive/old.txt":       "old data",
	}
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	indexer := filesystem.NewIndexBuilder(filesystem.NewStore())
	server, err := NewServer(fixtureTree(t), indexer, zap.NewNop(), nil)
	require.NoError(t, err)
	return server
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestNewServer(t *testing.T) {
	indexer := filesystem.NewIndexBuilder(filesystem.NewStore())

	t.Run("creates server with valid config", func(t *testing.T) {
		cfg := &Config{
			Host: "localhost",
			Port: 8080,
		}

		server, err := NewServer(t.TempDir(), indexer, zap.NewNop(), cfg)
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.echo)
		assert.Equal(t, cfg, server.config)
		assert.True(t, filepath.IsAbs(server.root))
	})

	t.Run("uses defaults when config is nil", func(t *testing.T) {
		server, err := NewServer(t.TempDir(), indexer, zap.NewNop(), nil)
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, "localhost", server.config.Host)
		assert.Equal(t, 8080, server.config.Port)
	})

	t.Run("returns error when logger is nil", func(t *testing.T) {
		_, err := NewServer(t.TempDir(), indexer, nil, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger is required")
	})

	t.Run("returns error when indexer is nil", func(t *testing.T) {
		_, err := NewServer(t.TempDir(), nil, zap.NewNop(), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "indexer cannot be nil")
	})

	t.Run("returns error when root is empty", func(t *testing.T) {
		_, err := NewServer("", indexer, zap.NewNop(), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "documents root")
	})
}

func TestHandleHealth(t *testing.T) {
	server := setupTestServer(t)

	rec := get(t, server, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleSearch(t *testing.T) {
	t.Run("matches file records by query", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/search?q=quarterly")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.Results
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Folders)
		require.Len(t, resp.Files, 1)
		assert.Equal(t, "Quarterly Report", resp.Files[0].Title)
		assert.Equal(t, "docs", resp.Files[0].Path)
	})

	t.Run("filters by tag", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/search?tags=finance")

		var resp domain.Results
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Files, 1)
		assert.Equal(t, "report.pdf", resp.Files[0].Filename)
	})

	t.Run("filters by category", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/search?category=docs")

		var resp domain.Results
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Folders, 1)
		assert.Equal(t, "Project Docs", resp.Folders[0].Name)
		assert.Empty(t, resp.Files)
	})

	t.Run("filters by author", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/search?author=alice")

		var resp domain.Results
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Folders)
		require.Len(t, resp.Files, 1)
		assert.Equal(t, "report.pdf", resp.Files[0].Filename)
	})

	t.Run("serializes empty partitions as arrays", func(t *testing.T) {
		server := setupTestServer(t)

		rec := get(t, server, "/api/search?q=nosuchthing")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"folders":[]`)
		assert.Contains(t, rec.Body.String(), `"files":[]`)
	})
}

func TestHandleFacets(t *testing.T) {
	server := setupTestServer(t)

	rec := get(t, server, "/api/facets")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.FacetCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.FileTypes["pdf"])
	assert.Equal(t, 1, resp.Tags["setup"])
	assert.Equal(t, 1, resp.Tags["finance"])
	assert.Equal(t, 1, resp.Authors["ops"])
	assert.Equal(t, 1, resp.Authors["alice"])
	assert.Equal(t, 2, resp.Categories[domain.UnknownBucket])
}

func TestHandleFolders(t *testing.T) {
	server := setupTestServer(t)

	rec := get(t, server, "/api/folders")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp FoldersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Folders, 2)
	assert.Equal(t, ".", resp.Folders[0].Path)
	assert.Equal(t, "Library", resp.Folders[0].Name)
	assert.Equal(t, "docs", resp.Folders[1].Path)
	assert.Equal(t, "Project Docs", resp.Folders[1].Name)
}

func TestHandleMetrics(t *testing.T) {
	server := setupTestServer(t)

	rec := get(t, server, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "folio_index_builds_total")
}
