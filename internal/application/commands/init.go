package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
	"folio/internal/domain"
	"folio/internal/ports"
)

// InitFolderResult contains the result of initializing a folder record
type InitFolderResult struct {
	Record  *domain.FolderMetadata
	Message string
}

// InitFolderCommand creates the metadata record for a folder
type InitFolderCommand struct {
	store ports.MetadataStore
	Dir   string
	Init  ports.FolderInit
}

// NewInitFolderCommand creates a new InitFolderCommand
func NewInitFolderCommand(store ports.MetadataStore, dir string, init ports.FolderInit) *InitFolderCommand {
	return &InitFolderCommand{
		store: store,
		Dir:   dir,
		Init:  init,
	}
}

// Validate checks if the init operation is valid
func (c *InitFolderCommand) Validate() error {
	if c.Dir == "" {
		return &application.ValidationError{
			Field:   "dir",
			Message: "directory is required",
		}
	}
	return nil
}

// Execute runs the init folder command
func (c *InitFolderCommand) Execute(ctx context.Context) (*InitFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.InitFolderRecord(c.Dir, c.Init)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize folder record: %w", err)
	}

	return &InitFolderResult{
		Record:  rec,
		Message: fmt.Sprintf("Created %s", domain.FolderMetaPath(c.Dir)),
	}, nil
}

// InitFileResult contains the result of initializing a file record
type InitFileResult struct {
	Record  *domain.FileMetadata
	Message string
}

// InitFileCommand creates the metadata record for a file
type InitFileCommand struct {
	store ports.MetadataStore
	File  string
	Init  ports.FileInit
}

// NewInitFileCommand creates a new InitFileCommand
func NewInitFileCommand(store ports.MetadataStore, file string, init ports.FileInit) *InitFileCommand {
	return &InitFileCommand{
		store: store,
		File:  file,
		Init:  init,
	}
}

// Validate checks if the init operation is valid
func (c *InitFileCommand) Validate() error {
	return application.ValidateRequired("file", c.File)
}

// Execute runs the init file command
func (c *InitFileCommand) Execute(ctx context.Context) (*InitFileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.InitFileRecord(c.File, c.Init)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file record: %w", err)
	}

	return &InitFileResult{
		Record:  rec,
		Message: fmt.Sprintf("Created %s", domain.FileMetaPath(c.File)),
	}, nil
}
