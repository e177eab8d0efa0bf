package domain

import (
	"mime"
	"path/filepath"
	"strings"
)

// FileType classifies a file by extension for search and faceting.
type FileType string

const (
	FileTypePDF     FileType = "pdf"
	FileTypeTxt     FileType = "txt"
	FileTypeMd      FileType = "md"
	FileTypeDocx    FileType = "docx"
	FileTypeODT     FileType = "odt"
	FileTypeRTF     FileType = "rtf"
	FileTypeTeX     FileType = "tex"
	FileTypeHTML    FileType = "html"
	FileTypeEPUB    FileType = "epub"
	FileTypeImage   FileType = "image"
	FileTypeVideo   FileType = "video"
	FileTypeAudio   FileType = "audio"
	FileTypeArchive FileType = "archive"
	FileTypeCode    FileType = "code"
	FileTypeData    FileType = "data"
	FileTypeOther   FileType = "other"
)

// fileTypes maps a lowercase extension, dot included, to its FileType.
var fileTypes = map[string]FileType{
	".pdf":  FileTypePDF,
	".txt":  FileTypeTxt,
	".md":   FileTypeMd,
	".docx": FileTypeDocx,
	".doc":  FileTypeDocx,
	".odt":  FileTypeODT,
	".rtf":  FileTypeRTF,
	".tex":  FileTypeTeX,
	".html": FileTypeHTML,
	".htm":  FileTypeHTML,
	".epub": FileTypeEPUB,
	".jpg":  FileTypeImage,
	".jpeg": FileTypeImage,
	".png":  FileTypeImage,
	".gif":  FileTypeImage,
	".svg":  FileTypeImage,
	".mp4":  FileTypeVideo,
	".avi":  FileTypeVideo,
	".mkv":  FileTypeVideo,
	".mp3":  FileTypeAudio,
	".wav":  FileTypeAudio,
	".flac": FileTypeAudio,
	".zip":  FileTypeArchive,
	".tar":  FileTypeArchive,
	".gz":   FileTypeArchive,
	".rar":  FileTypeArchive,
	".py":   FileTypeCode,
	".js":   FileTypeCode,
	".java": FileTypeCode,
	".cpp":  FileTypeCode,
	".c":    FileTypeCode,
	".json": FileTypeData,
	".xml":  FileTypeData,
	".csv":  FileTypeData,
}

// mimeTypes pins MIME values for the extensions the type table knows.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".odt":  "application/vnd.oasis.opendocument.text",
	".rtf":  "application/rtf",
	".tex":  "application/x-tex",
	".html": "text/html",
	".htm":  "text/html",
	".epub": "application/epub+zip",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".mp3":  "audio/mpeg",
	".wav":  "audio/x-wav",
	".flac": "audio/flac",
	".zip":  "application/zip",
	".tar":  "application/x-tar",
	".gz":   "application/gzip",
	".rar":  "application/vnd.rar",
	".py":   "text/x-python",
	".js":   "text/javascript",
	".java": "text/x-java-source",
	".cpp":  "text/x-c++src",
	".c":    "text/x-csrc",
	".json": "application/json",
	".xml":  "application/xml",
	".csv":  "text/csv",
}

// DeriveFileType maps a file name to its FileType by extension,
// case-insensitively. Unknown extensions map to FileTypeOther.
func DeriveFileType(name string) FileType {
	if t, ok := fileTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return FileTypeOther
}

// MIMEType resolves a file's MIME type from its extension, falling back to
// the platform table and finally to application/octet-stream.
func MIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if m, ok := mimeTypes[ext]; ok {
		return m
	}
	if m := mime.TypeByExtension(ext); m != "" {
		if i := strings.Index(m, ";"); i >= 0 {
			m = m[:i]
		}
		return m
	}
	return "application/octet-stream"
}
