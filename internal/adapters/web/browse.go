package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/metrics"
)

// ErrorResponse is the body of JSON error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// readRecord loads a sidecar as a raw JSON object. Missing sidecars
// surface as fs.ErrNotExist; anything else is logged as unreadable.
func (s *Server) readRecord(sidecar string) (map[string]any, error) {
	data, err := os.ReadFile(sidecar)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("unreadable record", zap.String("path", sidecar), zap.Error(err))
		}
		return nil, err
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("unreadable record", zap.String("path", sidecar), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// FolderFileInfo is one file listed in a folder detail response.
type FolderFileInfo struct {
	Name     string         `json:"name"`
	Path     string         `json:"path"`
	Size     int64          `json:"size"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SubfolderInfo is one subfolder listed in a folder detail response.
type SubfolderInfo struct {
	Name     string         `json:"name"`
	Path     string         `json:"path"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FolderResponse is the response body for GET /api/folder/*.
type FolderResponse struct {
	Folder     map[string]any   `json:"folder"`
	Readme     string           `json:"readme"`
	Files      []FolderFileInfo `json:"files"`
	Subfolders []SubfolderInfo  `json:"subfolders"`
}

// handleFolder returns one folder's record, readme text and listing.
// Dot-entries and metadata sidecars never appear in the listing; derived
// artifacts do, since they are ordinary markdown files to a browser.
func (s *Server) handleFolder(c echo.Context) error {
	abs, rel, err := s.resolve(c.Param("*"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Folder not found"})
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Folder not found"})
	}

	resp := FolderResponse{
		Folder:     map[string]any{},
		Files:      []FolderFileInfo{},
		Subfolders: []SubfolderInfo{},
	}
	if rec, err := s.readRecord(domain.FolderMetaPath(abs)); err == nil {
		resp.Folder = rec
	}
	if data, err := os.ReadFile(domain.FolderReadmePath(abs)); err == nil {
		resp.Readme = string(data)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		s.logger.Error("failed to list folder", zap.String("path", abs), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list folder")
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			sub := SubfolderInfo{Name: name, Path: path.Join(rel, name)}
			if rec, err := s.readRecord(domain.FolderMetaPath(filepath.Join(abs, name))); err == nil {
				sub.Metadata = rec
			}
			resp.Subfolders = append(resp.Subfolders, sub)
			continue
		}
		if strings.HasSuffix(name, domain.MetaSuffix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		file := FolderFileInfo{Name: name, Path: path.Join(rel, name), Size: fi.Size()}
		if rec, err := s.readRecord(domain.FileMetaPath(filepath.Join(abs, name))); err == nil {
			file.Metadata = rec
		}
		resp.Files = append(resp.Files, file)
	}

	return c.JSON(http.StatusOK, resp)
}

// FileResponse is the response body for GET /api/file/*.
type FileResponse struct {
	File     string         `json:"file"`
	Path     string         `json:"path"`
	Metadata map[string]any `json:"metadata"`
	Summary  string         `json:"summary"`
	TOC      string         `json:"toc"`
}

// handleFile returns one file's record and derived artifacts. The file
// itself is never opened, so records of since-deleted files still serve.
func (s *Server) handleFile(c echo.Context) error {
	abs, rel, err := s.resolve(c.Param("*"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "File not found"})
	}

	resp := FileResponse{
		File:     filepath.Base(abs),
		Path:     rel,
		Metadata: map[string]any{},
	}
	if rec, err := s.readRecord(domain.FileMetaPath(abs)); err == nil {
		resp.Metadata = rec
	}
	if data, err := os.ReadFile(domain.FileSummaryPath(abs)); err == nil {
		resp.Summary = string(data)
	}
	if data, err := os.ReadFile(domain.FileTOCPath(abs)); err == nil {
		resp.TOC = string(data)
	}

	return c.JSON(http.StatusOK, resp)
}

// handleDownload serves a file as an attachment.
func (s *Server) handleDownload(c echo.Context) error {
	abs, _, err := s.resolve(c.Param("*"))
	if err != nil {
		metrics.RecordDownload(0, false)
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "File not found"})
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		metrics.RecordDownload(0, false)
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "File not found"})
	}
	metrics.RecordDownload(info.Size(), true)
	return c.Attachment(abs, info.Name())
}

// StatsResponse is the response body for GET /api/stats.
type StatsResponse struct {
	TotalFolders int   `json:"totalFolders"`
	TotalFiles   int   `json:"totalFiles"`
	TotalSize    int64 `json:"totalSize"`
}

// handleStats reports aggregate counts over the whole tree. Dot-entries
// are not counted; their subtrees still are.
func (s *Server) handleStats(c echo.Context) error {
	var stats StatsResponse
	_ = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || p == s.root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if d.IsDir() {
			stats.TotalFolders++
			return nil
		}
		stats.TotalFiles++
		if info, err := d.Info(); err == nil {
			stats.TotalSize += info.Size()
		}
		return nil
	})
	return c.JSON(http.StatusOK, stats)
}
