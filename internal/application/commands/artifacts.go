package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"folio/internal/application"
	"folio/internal/domain"
	"folio/internal/ports"
)

// ArtifactResult contains the path written by an artifact command
type ArtifactResult struct {
	Path    string
	Message string
}

// SummaryCommand writes a summary document next to a file
type SummaryCommand struct {
	store ports.MetadataStore
	File  string
	Text  string
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(store ports.MetadataStore, file, text string) *SummaryCommand {
	return &SummaryCommand{store: store, File: file, Text: text}
}

// Validate checks if the summary operation is valid
func (c *SummaryCommand) Validate() error {
	if err := application.ValidateRequired("file", c.File); err != nil {
		return err
	}

	if c.Text == "" {
		return &application.ValidationError{
			Field:   "text",
			Message: "summary text is required",
		}
	}

	return nil
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context) (*ArtifactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path, err := c.store.WriteSummary(c.File, c.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	return &ArtifactResult{
		Path:    path,
		Message: fmt.Sprintf("Created %s", path),
	}, nil
}

// TOCCommand writes a table-of-contents document next to a file
type TOCCommand struct {
	store    ports.MetadataStore
	File     string
	Sections []domain.TOCSection
}

// NewTOCCommand creates a new TOCCommand
func NewTOCCommand(store ports.MetadataStore, file string, sections []domain.TOCSection) *TOCCommand {
	return &TOCCommand{store: store, File: file, Sections: sections}
}

// Validate checks if the TOC operation is valid
func (c *TOCCommand) Validate() error {
	if err := application.ValidateRequired("file", c.File); err != nil {
		return err
	}

	if len(c.Sections) == 0 {
		return &application.ValidationError{
			Field:   "sections",
			Message: "at least one section is required",
		}
	}

	return nil
}

// Execute runs the TOC command
func (c *TOCCommand) Execute(ctx context.Context) (*ArtifactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path, err := c.store.WriteTOC(c.File, c.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to write table of contents: %w", err)
	}

	return &ArtifactResult{
		Path:    path,
		Message: fmt.Sprintf("Created %s", path),
	}, nil
}

// ReadmeCommand writes a starter README inside a folder, seeded from the
// folder's metadata record when one exists
type ReadmeCommand struct {
	store ports.MetadataStore
	Dir   string
}

// NewReadmeCommand creates a new ReadmeCommand
func NewReadmeCommand(store ports.MetadataStore, dir string) *ReadmeCommand {
	return &ReadmeCommand{store: store, Dir: dir}
}

// Validate checks if the readme operation is valid
func (c *ReadmeCommand) Validate() error {
	if c.Dir == "" {
		return &application.ValidationError{
			Field:   "dir",
			Message: "directory is required",
		}
	}
	return nil
}

// Execute runs the readme command
func (c *ReadmeCommand) Execute(ctx context.Context) (*ArtifactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := filepath.Base(c.Dir)
	if abs, err := filepath.Abs(c.Dir); err == nil {
		name = filepath.Base(abs)
	}
	description := ""
	if rec, ok := c.store.ReadFolderRecord(c.Dir); ok {
		if rec.Name != "" {
			name = rec.Name
		}
		description = rec.Description
	}

	path, err := c.store.WriteFolderReadme(c.Dir, domain.FolderReadmeContent(name, description))
	if err != nil {
		return nil, fmt.Errorf("failed to write readme: %w", err)
	}

	return &ArtifactResult{
		Path:    path,
		Message: fmt.Sprintf("Created %s", path),
	}, nil
}
