package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/adapters/filesystem"
	"folio/internal/application"
	"folio/internal/domain"
	"folio/internal/ports"
)

func TestInitFolderCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid dir",
			dir:     "/tmp/library",
			wantErr: false,
		},
		{
			name:    "empty dir",
			dir:     "",
			wantErr: true,
			errMsg:  "directory is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &InitFolderCommand{Dir: tt.dir}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestInitFileCommand_Validate(t *testing.T) {
	cmd := &InitFileCommand{File: ""}
	err := cmd.Validate()
	if err == nil || !strings.Contains(err.Error(), "file is required") {
		t.Errorf("expected file-required error, got %v", err)
	}

	cmd = &InitFileCommand{File: "report.txt"}
	if err := cmd.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInitCommands_Execute(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "report.txt")
	if err := os.WriteFile(file, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := filesystem.NewStore()

	folderRes, err := NewInitFolderCommand(store, root, ports.FolderInit{Name: "Library"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if folderRes.Record.Name != "Library" {
		t.Errorf("expected name Library, got %q", folderRes.Record.Name)
	}
	if want := "Created " + domain.FolderMetaPath(root); folderRes.Message != want {
		t.Errorf("expected message %q, got %q", want, folderRes.Message)
	}
	if _, err := os.Stat(domain.FolderMetaPath(root)); err != nil {
		t.Errorf("folder sidecar not written: %v", err)
	}

	fileRes, err := NewInitFileCommand(store, file, ports.FileInit{Title: "Report"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if fileRes.Record.Title != "Report" {
		t.Errorf("expected title Report, got %q", fileRes.Record.Title)
	}
	if fileRes.Record.Size != int64(len("hello world")) {
		t.Errorf("expected size %d, got %d", len("hello world"), fileRes.Record.Size)
	}
	if _, err := os.Stat(domain.FileMetaPath(file)); err != nil {
		t.Errorf("file sidecar not written: %v", err)
	}
}

func TestInitFileCommand_MissingSubject(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	cmd := NewInitFileCommand(filesystem.NewStore(), missing, ports.FileInit{})

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
