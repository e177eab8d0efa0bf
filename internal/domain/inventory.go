package domain

import "fmt"

// Inventory is the full result of a filesystem scan: every visited folder
// and primary file plus aggregate statistics. Marshals to the JSON scan
// report layout.
type Inventory struct {
	ScannedAt  string            `json:"scannedAt"`
	BasePath   string            `json:"basePath"`
	Folders    []InventoryFolder `json:"folders"`
	Files      []InventoryFile   `json:"files"`
	Statistics InventoryStats    `json:"statistics"`
}

// InventoryFolder is one scanned folder. MetadataFile is null when the
// folder has no sidecar; Metadata is present only when the sidecar parsed.
type InventoryFolder struct {
	Path         string       `json:"path"`
	Name         string       `json:"name"`
	HasMetadata  bool         `json:"hasMetadata"`
	MetadataFile *string      `json:"metadataFile"`
	Metadata     *FolderBrief `json:"metadata,omitempty"`
}

// FolderBrief is the metadata excerpt embedded in inventory folder entries.
type FolderBrief struct {
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// InventoryFile is one scanned primary file.
type InventoryFile struct {
	Path         string     `json:"path"`
	Name         string     `json:"name"`
	Extension    string     `json:"extension"`
	Size         int64      `json:"size"`
	Modified     string     `json:"modified"`
	HasMetadata  bool       `json:"hasMetadata"`
	HasSummary   bool       `json:"hasSummary"`
	HasToc       bool       `json:"hasToc"`
	MetadataFile *string    `json:"metadataFile"`
	Metadata     *FileBrief `json:"metadata,omitempty"`
}

// FileBrief is the metadata excerpt embedded in inventory file entries.
type FileBrief struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FileType    string   `json:"fileType"`
	Tags        []string `json:"tags"`
}

// InventoryStats aggregates the scan. FilesByType keys are lowercase
// extensions; files without one count under "".
type InventoryStats struct {
	TotalFolders         int            `json:"totalFolders"`
	TotalFiles           int            `json:"totalFiles"`
	TotalSize            int64          `json:"totalSize"`
	FilesByType          map[string]int `json:"filesByType"`
	FilesWithMetadata    int            `json:"filesWithMetadata"`
	FilesWithoutMetadata int            `json:"filesWithoutMetadata"`
}

// WithoutMetadata returns the scanned files lacking a sidecar record.
func (inv *Inventory) WithoutMetadata() []InventoryFile {
	var missing []InventoryFile
	for _, f := range inv.Files {
		if !f.HasMetadata {
			missing = append(missing, f)
		}
	}
	return missing
}

// FormatSize renders a byte count in human-readable units.
func FormatSize(size int64) string {
	s := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if s < 1024.0 {
			return fmt.Sprintf("%.1f %s", s, unit)
		}
		s /= 1024.0
	}
	return fmt.Sprintf("%.1f PB", s)
}
