package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// Class is the walker-facing classification of a directory entry.
type Class int

const (
	ClassExcluded Class = iota
	ClassFolder
	ClassPrimaryFile
	ClassMetadataSidecar
	ClassDerivedArtifact
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassExcluded:
		return "excluded"
	case ClassFolder:
		return "folder"
	case ClassPrimaryFile:
		return "file"
	case ClassMetadataSidecar:
		return "sidecar"
	case ClassDerivedArtifact:
		return "artifact"
	}
	return "unknown"
}

// DefaultExcludePatterns are the path segments filtered walks skip:
// version-control trees, dependency caches, OS housekeeping files and
// virtual environments.
var DefaultExcludePatterns = []string{
	".git", ".svn", "node_modules", "__pycache__",
	".DS_Store", "Thumbs.db", ".venv", "venv",
}

// Hidden reports whether name is a hidden entry that filtered walks skip.
// Hidden JSON files are kept so folder sidecars survive the filter.
func Hidden(name string) bool {
	return strings.HasPrefix(name, ".") && !strings.HasSuffix(name, ".json")
}

// Excluded reports whether relPath, relative to the walk root, hits an
// exclusion pattern on any segment or names a hidden entry.
func Excluded(relPath string, patterns []string) bool {
	norm := filepath.ToSlash(relPath)
	for _, seg := range strings.Split(norm, "/") {
		for _, p := range patterns {
			if seg == p {
				return true
			}
		}
	}
	return Hidden(path.Base(norm))
}

// Classify decides how a walk treats a single entry. Pure function of the
// entry's relative path and kind.
func Classify(relPath string, isDir bool, patterns []string) Class {
	if Excluded(relPath, patterns) {
		return ClassExcluded
	}
	if isDir {
		return ClassFolder
	}
	name := path.Base(filepath.ToSlash(relPath))
	switch {
	case strings.HasPrefix(name, FolderSidecarPrefix) || strings.HasSuffix(name, MetaSuffix):
		return ClassMetadataSidecar
	case IsDerivedArtifact(name):
		return ClassDerivedArtifact
	}
	return ClassPrimaryFile
}
