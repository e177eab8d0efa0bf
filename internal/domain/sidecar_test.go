package domain

import (
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "report.pdf", "report"},
		{"no extension", "Makefile", "Makefile"},
		{"double extension keeps first", "archive.tar.gz", "archive.tar"},
		{"dotfile keeps name", ".bashrc", ".bashrc"},
		{"sidecar name", "report.meta.json", "report.meta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSidecarPaths(t *testing.T) {
	file := filepath.Join("docs", "report.pdf")

	if got, want := FileMetaPath(file), filepath.Join("docs", "report.meta.json"); got != want {
		t.Errorf("FileMetaPath = %q, want %q", got, want)
	}
	if got, want := FileSummaryPath(file), filepath.Join("docs", "report.summary.md"); got != want {
		t.Errorf("FileSummaryPath = %q, want %q", got, want)
	}
	if got, want := FileTOCPath(file), filepath.Join("docs", "report.toc.md"); got != want {
		t.Errorf("FileTOCPath = %q, want %q", got, want)
	}
	if got, want := FolderMetaPath("docs"), filepath.Join("docs", ".folder-meta.json"); got != want {
		t.Errorf("FolderMetaPath = %q, want %q", got, want)
	}
	if got, want := FolderReadmePath("docs"), filepath.Join("docs", ".folder-readme.md"); got != want {
		t.Errorf("FolderReadmePath = %q, want %q", got, want)
	}
}

func TestIsFileMetaSidecar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"file sidecar", "report.meta.json", true},
		{"folder sidecar not a file sidecar", ".folder-meta.json", false},
		{"plain json", "data.json", false},
		{"primary file", "report.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFileMetaSidecar(tt.in); got != tt.want {
				t.Errorf("IsFileMetaSidecar(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsDerivedArtifact(t *testing.T) {
	if !IsDerivedArtifact("report.summary.md") {
		t.Error("summary file should be a derived artifact")
	}
	if !IsDerivedArtifact("report.toc.md") {
		t.Error("toc file should be a derived artifact")
	}
	if IsDerivedArtifact("report.md") {
		t.Error("plain markdown is not a derived artifact")
	}
}
