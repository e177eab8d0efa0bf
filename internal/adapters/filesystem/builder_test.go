package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"folio/internal/application"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func setupIndexTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, d := range []string{".git", "a/inner", "b"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	writeJSON(t, filepath.Join(root, ".folder-meta.json"), map[string]any{"name": "Root", "category": "library"})
	writeJSON(t, filepath.Join(root, "note.meta.json"), map[string]any{"title": "Note"})
	writeJSON(t, filepath.Join(root, ".git", "secret.meta.json"), map[string]any{"title": "Secret"})
	writeJSON(t, filepath.Join(root, "a", ".folder-meta.json"), map[string]any{"name": "A"})
	writeJSON(t, filepath.Join(root, "a", "doc.meta.json"), map[string]any{"title": "Doc"})
	writeJSON(t, filepath.Join(root, "a", "inner", "deep.meta.json"), map[string]any{"title": "Deep"})
	writeJSON(t, filepath.Join(root, "b", ".folder-meta.json"), map[string]any{"name": "B"})
	writeJSON(t, filepath.Join(root, "b", "z.meta.json"), map[string]any{"title": "Z"})

	if err := os.WriteFile(filepath.Join(root, "b", "bad.meta.json"), []byte("{nope"), 0644); err != nil {
		t.Fatalf("failed to plant corrupt sidecar: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "note.txt"), []byte("body"), 0644); err != nil {
		t.Fatalf("failed to create primary file: %v", err)
	}
	return root
}

func TestBuild_RecordOrder(t *testing.T) {
	root := setupIndexTree(t)
	builder := NewIndexBuilder(NewStore())

	idx, err := builder.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var folders []string
	for _, f := range idx.Folders {
		folders = append(folders, f.Name+"@"+f.Path)
	}
	wantFolders := []string{"Root@.", "A@a", "B@b"}
	if !reflect.DeepEqual(folders, wantFolders) {
		t.Errorf("expected folders %v, got %v", wantFolders, folders)
	}

	var files []string
	for _, f := range idx.Files {
		files = append(files, f.Title+"@"+f.Path)
	}
	// A hidden directory still contributes records: the build is
	// unfiltered.
	wantFiles := []string{"Note@.", "Secret@.git", "Doc@a", "Deep@a/inner", "Z@b"}
	if !reflect.DeepEqual(files, wantFiles) {
		t.Errorf("expected files %v, got %v", wantFiles, files)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	root := setupIndexTree(t)
	builder := NewIndexBuilder(NewStore())

	first, err := builder.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	second, err := builder.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two builds of an unchanged tree differ")
	}
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	root := setupIndexTree(t)
	store := NewStore()

	sequential := NewIndexBuilder(store)
	sequential.SetWorkers(1)
	parallel := NewIndexBuilder(store)
	parallel.SetWorkers(8)

	seq, err := sequential.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("sequential build failed: %v", err)
	}
	par, err := parallel.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("parallel build failed: %v", err)
	}

	if !reflect.DeepEqual(seq, par) {
		t.Error("parallel build ordering differs from sequential")
	}
}

func TestBuild_MalformedSidecarSkipped(t *testing.T) {
	root := setupIndexTree(t)
	builder := NewIndexBuilder(NewStore())

	idx, err := builder.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, f := range idx.Files {
		if f.Path == "b" && f.Title == "" {
			t.Error("corrupt sidecar leaked into the index")
		}
	}
	if len(idx.Files) != 5 {
		t.Errorf("expected 5 file records, got %d", len(idx.Files))
	}
}

func TestBuild_FolderRecordNotDoubleCounted(t *testing.T) {
	root := setupIndexTree(t)
	builder := NewIndexBuilder(NewStore())

	idx, err := builder.Build(context.Background(), root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, f := range idx.Files {
		if f.Filename == "" && f.Title == "Root" {
			t.Error("folder sidecar loaded as a file record")
		}
	}
	if len(idx.Folders) != 3 {
		t.Errorf("expected 3 folder records, got %d", len(idx.Folders))
	}
}

func TestBuild_EmptyTree(t *testing.T) {
	builder := NewIndexBuilder(NewStore())

	idx, err := builder.Build(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if idx.Folders == nil || idx.Files == nil {
		t.Error("expected allocated empty partitions")
	}
	if len(idx.Folders) != 0 || len(idx.Files) != 0 {
		t.Errorf("expected empty index, got %d/%d", len(idx.Folders), len(idx.Files))
	}
}

func TestBuild_MissingRoot(t *testing.T) {
	builder := NewIndexBuilder(NewStore())

	_, err := builder.Build(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
