package ports

import (
	"context"

	"folio/internal/domain"
)

// Indexer builds a searchable index from the sidecar records under a
// root directory.
type Indexer interface {
	Build(ctx context.Context, root string) (*domain.Index, error)
}

// ScanOptions controls inventory traversal.
type ScanOptions struct {
	// Recursive descends into subdirectories. When false only the root's
	// immediate children are inventoried.
	Recursive bool
	// MaxDepth bounds descent when Recursive is set. Negative means
	// unbounded; the root sits at depth zero.
	MaxDepth int
	// Exclude replaces the default exclusion patterns when non-nil.
	Exclude []string
}

// Scanner walks a directory tree and reports its metadata coverage.
type Scanner interface {
	Scan(ctx context.Context, root string, opts ScanOptions) (*domain.Inventory, error)
}
