package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
	"folio/internal/domain"
	"folio/internal/ports"
)

// ScanResult contains the result of an inventory scan
type ScanResult struct {
	Inventory *domain.Inventory
	Message   string
}

// ScanCommand walks a directory tree and inventories its metadata coverage
type ScanCommand struct {
	scanner   ports.Scanner
	Path      string
	Recursive bool
	MaxDepth  int
	Exclude   []string
}

// NewScanCommand creates a new ScanCommand. MaxDepth only applies to
// recursive scans; negative means unbounded.
func NewScanCommand(scanner ports.Scanner, path string, recursive bool, maxDepth int, exclude []string) *ScanCommand {
	return &ScanCommand{
		scanner:   scanner,
		Path:      path,
		Recursive: recursive,
		MaxDepth:  maxDepth,
		Exclude:   exclude,
	}
}

// Validate checks if the scan operation is valid
func (c *ScanCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the scan command
func (c *ScanCommand) Execute(ctx context.Context) (*ScanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	inv, err := c.scanner.Scan(ctx, c.Path, ports.ScanOptions{
		Recursive: c.Recursive,
		MaxDepth:  c.MaxDepth,
		Exclude:   c.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", c.Path, err)
	}

	st := inv.Statistics
	return &ScanResult{
		Inventory: inv,
		Message: fmt.Sprintf("Scanned %s: %d folders, %d files, %s total",
			inv.BasePath, st.TotalFolders, st.TotalFiles, domain.FormatSize(st.TotalSize)),
	}, nil
}
