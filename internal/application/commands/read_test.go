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
	"folio/internal/ports"
)

func TestReadRecordCommand_Validate(t *testing.T) {
	cmd := &ReadRecordCommand{Path: ""}
	err := cmd.Validate()
	if err == nil || !strings.Contains(err.Error(), "path is required") {
		t.Errorf("expected path-required error, got %v", err)
	}
}

func TestReadRecordCommand_Execute(t *testing.T) {
	root := t.TempDir()
	store := filesystem.NewStore()
	if _, err := store.InitFolderRecord(root, ports.FolderInit{Name: "Library", Description: "Books"}); err != nil {
		t.Fatal(err)
	}

	rec, err := NewReadRecordCommand(store, root).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if rec["name"] != "Library" || rec["description"] != "Books" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestReadRecordCommand_Errors(t *testing.T) {
	root := t.TempDir()
	store := filesystem.NewStore()

	_, err := NewReadRecordCommand(store, filepath.Join(root, "absent")).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing subject, got %v", err)
	}

	file := filepath.Join(root, "report.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = NewReadRecordCommand(store, file).Execute(context.Background())
	if !errors.Is(err, application.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord for a subject without a sidecar, got %v", err)
	}
}
