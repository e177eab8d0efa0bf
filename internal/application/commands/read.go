package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
	"folio/internal/ports"
)

// ReadRecordCommand reads the stored metadata record for a file or folder
type ReadRecordCommand struct {
	store ports.MetadataStore
	Path  string
}

// NewReadRecordCommand creates a new ReadRecordCommand
func NewReadRecordCommand(store ports.MetadataStore, path string) *ReadRecordCommand {
	return &ReadRecordCommand{store: store, Path: path}
}

// Validate checks if the read operation is valid
func (c *ReadRecordCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the read record command. The returned object is the
// stored JSON as-is, unknown fields included.
func (c *ReadRecordCommand) Execute(ctx context.Context) (map[string]any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.ReadRecordRaw(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	return rec, nil
}
