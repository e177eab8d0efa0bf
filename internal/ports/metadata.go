package ports

import "folio/internal/domain"

// FolderInit carries the caller-supplied fields for a new folder record.
// Zero-value fields fall back to the record defaults.
type FolderInit struct {
	Name        string
	Description string
	Category    string
	Tags        []string
	Author      string
	Language    string
}

// FileInit carries the caller-supplied fields for a new file record.
type FileInit struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Author      string
	Language    string
}

// MetadataStore defines sidecar record persistence. Reads degrade an
// absent or unparseable sidecar to a missing record; point operations
// (init, update, write, delete) surface their errors.
type MetadataStore interface {
	// Reads
	ReadFolderRecord(dir string) (*domain.FolderMetadata, bool)
	ReadFileRecord(file string) (*domain.FileMetadata, bool)
	// ReadRecordRaw returns the stored JSON object for a file or folder
	// subject with every field intact, known or not.
	ReadRecordRaw(path string) (map[string]any, error)

	// Record initialization: computes derived fields (statistics for
	// folders; stat, type and checksum data for files) and persists the
	// sidecar.
	InitFolderRecord(dir string, init FolderInit) (*domain.FolderMetadata, error)
	InitFileRecord(file string, init FileInit) (*domain.FileMetadata, error)

	// Whole-record writes; the updated stamp is refreshed on the way out.
	WriteFolderRecord(dir string, meta *domain.FolderMetadata) error
	WriteFileRecord(file string, meta *domain.FileMetadata) error

	// UpdateRecord merges updates into the stored object key by key,
	// preserving fields it does not know about, and refreshes the
	// updated stamp.
	UpdateRecord(path string, updates map[string]any) (map[string]any, error)

	// DeleteRecord removes a subject's sidecar. The subject itself is
	// never touched.
	DeleteRecord(path string) error

	// Derived artifacts; each returns the path it wrote.
	WriteSummary(file, summary string) (string, error)
	WriteTOC(file string, sections []domain.TOCSection) (string, error)
	WriteFolderReadme(dir, content string) (string, error)
}
