package domain

import "time"

// TimeLayout is the ISO-8601 layout records store timestamps in. Local
// time, no zone suffix. The layout sorts lexicographically in
// chronological order, which date-range filtering relies on.
const TimeLayout = "2006-01-02T15:04:05.999999"

// Timestamp returns the current time formatted for record fields.
func Timestamp() string {
	return time.Now().Format(TimeLayout)
}

// Defaults applied when a record is initialized without explicit values.
const (
	DefaultFolderStatus   = "active"
	DefaultFileStatus     = "final"
	DefaultFolderCategory = "other"
	DefaultLanguage       = "en"
	UnknownAuthor         = "unknown"
)

// FolderStatistics summarizes a folder's immediate children at the time
// its record was initialized.
type FolderStatistics struct {
	TotalFiles      int            `json:"totalFiles"`
	TotalSubfolders int            `json:"totalSubfolders"`
	TotalSize       int64          `json:"totalSize"`
	FileTypes       map[string]int `json:"fileTypes"`
}

// Checksum holds content digests of the described file. Empty when the
// file could not be read at init time.
type Checksum struct {
	MD5    string `json:"md5,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
}

// FolderMetadata is the sidecar record describing a folder.
type FolderMetadata struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Tags           []string         `json:"tags"`
	Created        string           `json:"created"`
	Updated        string           `json:"updated"`
	Author         string           `json:"author"`
	Language       string           `json:"language"`
	Status         string           `json:"status"`
	Statistics     FolderStatistics `json:"statistics"`
	RelatedFolders []string         `json:"relatedFolders"`
	QuickLinks     []string         `json:"quickLinks"`
	Keywords       []string         `json:"keywords"`
	Subject        string           `json:"subject,omitempty"`
}

// FileMetadata is the sidecar record describing a file.
type FileMetadata struct {
	Filename    string   `json:"filename"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FileType    FileType `json:"fileType"`
	MimeType    string   `json:"mimeType"`
	Size        int64    `json:"size"`
	Created     string   `json:"created"`
	Updated     string   `json:"updated"`
	Accessed    string   `json:"accessed"`
	Author      string   `json:"author"`
	Language    string   `json:"language"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags"`
	Keywords    []string `json:"keywords"`
	Status      string   `json:"status"`
	Checksum    Checksum `json:"checksum"`
	Subject     string   `json:"subject,omitempty"`
}
