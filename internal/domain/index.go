package domain

import "path"

// FolderEntry is an indexed folder record tagged with the folder's path
// relative to the index root. The embedded record flattens into the JSON
// object with "path" alongside it.
type FolderEntry struct {
	FolderMetadata
	Path string `json:"path"`
}

// FileEntry is an indexed file record tagged with the path of the
// directory that holds it, relative to the index root.
type FileEntry struct {
	FileMetadata
	Path string `json:"path"`
}

// DisplayPath joins the entry's directory path with its file name.
func (e FileEntry) DisplayPath() string {
	return path.Join(e.Path, e.Filename)
}

// Index is the in-memory collection of every sidecar record found under
// Root, in walk order. It is immutable once built; rebuilding is the only
// way to observe filesystem changes.
type Index struct {
	Root    string
	Folders []FolderEntry
	Files   []FileEntry
}

// Criteria is a conjunction of optional search clauses. An unset field
// always passes. Folders and Files gate which index partitions are
// scanned at all.
type Criteria struct {
	Query    string
	Tags     []string
	Category string
	FileType string
	Author   string
	DateFrom string
	DateTo   string
	Folders  bool
	Files    bool
}

// NewCriteria returns criteria that match everything: no clauses set and
// both partitions searched.
func NewCriteria() Criteria {
	return Criteria{Folders: true, Files: true}
}

// Results holds matches in index order. Matching is boolean; nothing is
// ranked or re-sorted.
type Results struct {
	Folders []FolderEntry `json:"folders"`
	Files   []FileEntry   `json:"files"`
}

// Total returns the combined number of matches.
func (r Results) Total() int {
	return len(r.Folders) + len(r.Files)
}

// FacetCounts aggregates field frequencies across indexed file records.
type FacetCounts struct {
	Categories map[string]int `json:"categories"`
	Tags       map[string]int `json:"tags"`
	FileTypes  map[string]int `json:"fileTypes"`
	Authors    map[string]int `json:"authors"`
}
