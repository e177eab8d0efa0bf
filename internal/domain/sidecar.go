package domain

import (
	"path/filepath"
	"strings"
)

// Sidecar naming convention. A folder's record lives inside the folder
// under a fixed name; a file's record lives next to the file, named after
// the file's stem. Derived artifacts (summary, table of contents) follow
// the same stem rule.
const (
	FolderMetaFile   = ".folder-meta.json"
	FolderReadmeFile = ".folder-readme.md"

	FolderSidecarPrefix = ".folder-"
	MetaSuffix          = ".meta.json"
	SummarySuffix       = ".summary.md"
	TOCSuffix           = ".toc.md"
)

// Stem returns the file name without its final extension. Names that are
// all extension (".bashrc") keep their full name.
func Stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// FolderMetaPath returns the metadata sidecar path for a folder.
func FolderMetaPath(dir string) string {
	return filepath.Join(dir, FolderMetaFile)
}

// FolderReadmePath returns the README path for a folder.
func FolderReadmePath(dir string) string {
	return filepath.Join(dir, FolderReadmeFile)
}

// FileMetaPath returns the metadata sidecar path for a file.
func FileMetaPath(file string) string {
	return sidecarPath(file, MetaSuffix)
}

// FileSummaryPath returns the summary artifact path for a file.
func FileSummaryPath(file string) string {
	return sidecarPath(file, SummarySuffix)
}

// FileTOCPath returns the table-of-contents artifact path for a file.
func FileTOCPath(file string) string {
	return sidecarPath(file, TOCSuffix)
}

func sidecarPath(file, suffix string) string {
	return filepath.Join(filepath.Dir(file), Stem(filepath.Base(file))+suffix)
}

// IsFolderSidecar reports whether name is a folder-level sidecar
// (metadata, README or any other .folder- file).
func IsFolderSidecar(name string) bool {
	return strings.HasPrefix(name, FolderSidecarPrefix)
}

// IsFileMetaSidecar reports whether name is a file metadata sidecar.
// Folder sidecars are excluded so a folder record is never mistaken for a
// file record.
func IsFileMetaSidecar(name string) bool {
	return strings.HasSuffix(name, MetaSuffix) && !strings.HasPrefix(name, FolderSidecarPrefix)
}

// IsDerivedArtifact reports whether name is a derived summary or TOC file.
func IsDerivedArtifact(name string) bool {
	return strings.HasSuffix(name, SummarySuffix) || strings.HasSuffix(name, TOCSuffix)
}
