package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/metrics"
)

// buildIndex builds a fresh index for one request, so responses always
// reflect the tree currently on disk.
func (s *Server) buildIndex(c echo.Context) (*domain.Index, error) {
	start := time.Now()
	idx, err := s.indexer.Build(c.Request().Context(), s.root)
	if err != nil {
		s.logger.Error("failed to build index", zap.Error(err))
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to build index")
	}
	metrics.RecordIndexBuild(time.Since(start), len(idx.Folders), len(idx.Files))
	return idx, nil
}

// handleSearch runs a metadata search over a freshly built index.
func (s *Server) handleSearch(c echo.Context) error {
	crit := domain.NewCriteria()
	crit.Query = c.QueryParam("q")
	crit.Tags = c.QueryParams()["tags"]
	crit.Category = c.QueryParam("category")
	crit.FileType = c.QueryParam("type")
	crit.Author = c.QueryParam("author")
	crit.DateFrom = c.QueryParam("from")
	crit.DateTo = c.QueryParam("to")

	idx, err := s.buildIndex(c)
	if err != nil {
		return err
	}

	metrics.RecordSearch()
	return c.JSON(http.StatusOK, domain.Search(idx, crit))
}

// handleFacets returns facet counts across the indexed file records.
func (s *Server) handleFacets(c echo.Context) error {
	idx, err := s.buildIndex(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.Facets(idx))
}

// FoldersResponse is the response body for GET /api/folders.
type FoldersResponse struct {
	Folders []domain.FolderEntry `json:"folders"`
}

// handleFolders lists every folder record in the tree.
func (s *Server) handleFolders(c echo.Context) error {
	idx, err := s.buildIndex(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, FoldersResponse{Folders: idx.Folders})
}
