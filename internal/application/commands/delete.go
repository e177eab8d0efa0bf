package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
	"folio/internal/ports"
)

// DeleteRecordResult contains the result of a record deletion
type DeleteRecordResult struct {
	DeletedPath string
	Message     string
}

// DeleteRecordCommand removes the metadata record for a file or folder.
// The subject itself is never touched.
type DeleteRecordCommand struct {
	store ports.MetadataStore
	Path  string
}

// NewDeleteRecordCommand creates a new DeleteRecordCommand
func NewDeleteRecordCommand(store ports.MetadataStore, path string) *DeleteRecordCommand {
	return &DeleteRecordCommand{store: store, Path: path}
}

// Validate checks if the delete operation is valid
func (c *DeleteRecordCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the delete record command
func (c *DeleteRecordCommand) Execute(ctx context.Context) (*DeleteRecordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteRecord(c.Path); err != nil {
		return nil, fmt.Errorf("failed to delete record for %s: %w", c.Path, err)
	}

	return &DeleteRecordResult{
		DeletedPath: c.Path,
		Message:     fmt.Sprintf("Deleted record for %s", c.Path),
	}, nil
}
