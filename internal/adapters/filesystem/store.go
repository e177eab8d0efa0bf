package filesystem

import (
	"bytes"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"folio/internal/application"
	"folio/internal/domain"
	"folio/internal/logging"
	"folio/internal/ports"
)

// Store implements ports.MetadataStore over sidecar files. Reads are
// lock-free; writes serialize through a store-scoped mutex and are
// last-writer-wins.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a sidecar metadata store.
func NewStore() *Store {
	return &Store{}
}

// ReadFolderRecord loads the metadata record of a folder. A missing or
// unparseable sidecar reads as no record.
func (s *Store) ReadFolderRecord(dir string) (*domain.FolderMetadata, bool) {
	sidecar := domain.FolderMetaPath(dir)
	data, err := os.ReadFile(sidecar)
	if err != nil {
		return nil, false
	}

	var meta domain.FolderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		logging.Debug("skipping malformed folder record",
			logging.String("path", sidecar), logging.Err(err))
		return nil, false
	}
	return &meta, true
}

// ReadFileRecord loads the metadata record of a file, same absence
// policy as ReadFolderRecord.
func (s *Store) ReadFileRecord(file string) (*domain.FileMetadata, bool) {
	sidecar := domain.FileMetaPath(file)
	data, err := os.ReadFile(sidecar)
	if err != nil {
		return nil, false
	}

	var meta domain.FileMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		logging.Debug("skipping malformed file record",
			logging.String("path", sidecar), logging.Err(err))
		return nil, false
	}
	return &meta, true
}

// ReadRecordRaw returns the stored JSON object for a file or folder
// subject, unknown fields included.
func (s *Store) ReadRecordRaw(path string) (map[string]any, error) {
	sidecar, err := s.sidecarFor(path)
	if err != nil {
		return nil, err
	}
	return readRawRecord(path, sidecar)
}

// InitFolderRecord creates the metadata record for an existing folder,
// computing statistics over its immediate children.
func (s *Store) InitFolderRecord(dir string, init ports.FolderInit) (*domain.FolderMetadata, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &application.SubjectError{Path: dir, Reason: application.ErrNotFound}
	}
	if !info.IsDir() {
		return nil, &application.SubjectError{Path: dir, Reason: application.ErrInvalidSubject}
	}

	name := init.Name
	if name == "" {
		name = filepath.Base(dir)
	}
	category := init.Category
	if category == "" {
		category = domain.DefaultFolderCategory
	}
	tags := init.Tags
	if tags == nil {
		tags = []string{}
	}

	now := domain.Timestamp()
	meta := &domain.FolderMetadata{
		Name:           name,
		Description:    init.Description,
		Category:       category,
		Tags:           tags,
		Created:        now,
		Updated:        now,
		Author:         authorOrDefault(init.Author),
		Language:       languageOrDefault(init.Language),
		Status:         domain.DefaultFolderStatus,
		Statistics:     folderStatistics(dir),
		RelatedFolders: []string{},
		QuickLinks:     []string{},
		Keywords:       []string{},
	}

	if err := s.writeSidecar(domain.FolderMetaPath(dir), meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// InitFileRecord creates the metadata record for an existing file,
// filling stat, type, mime and checksum data.
func (s *Store) InitFileRecord(file string, init ports.FileInit) (*domain.FileMetadata, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, &application.SubjectError{Path: file, Reason: application.ErrNotFound}
	}
	if info.IsDir() {
		return nil, &application.SubjectError{Path: file, Reason: application.ErrInvalidSubject}
	}

	name := filepath.Base(file)
	title := init.Title
	if title == "" {
		title = domain.Stem(name)
	}
	tags := init.Tags
	if tags == nil {
		tags = []string{}
	}

	modified := info.ModTime().Format(domain.TimeLayout)
	meta := &domain.FileMetadata{
		Filename:    name,
		Title:       title,
		Description: init.Description,
		FileType:    domain.DeriveFileType(name),
		MimeType:    domain.MIMEType(name),
		Size:        info.Size(),
		Created:     modified,
		Updated:     modified,
		Accessed:    domain.Timestamp(),
		Author:      authorOrDefault(init.Author),
		Language:    languageOrDefault(init.Language),
		Category:    init.Category,
		Tags:        tags,
		Keywords:    []string{},
		Status:      domain.DefaultFileStatus,
		Checksum:    fileChecksums(file),
	}

	if err := s.writeSidecar(domain.FileMetaPath(file), meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// WriteFolderRecord overwrites a folder's sidecar, refreshing updated.
func (s *Store) WriteFolderRecord(dir string, meta *domain.FolderMetadata) error {
	meta.Updated = domain.Timestamp()
	return s.writeSidecar(domain.FolderMetaPath(dir), meta)
}

// WriteFileRecord overwrites a file's sidecar, refreshing updated.
func (s *Store) WriteFileRecord(file string, meta *domain.FileMetadata) error {
	meta.Updated = domain.Timestamp()
	return s.writeSidecar(domain.FileMetaPath(file), meta)
}

// UpdateRecord merges updates into a subject's stored record key by
// key. Fields the update does not name, known to the schema or not,
// ride through unchanged.
func (s *Store) UpdateRecord(path string, updates map[string]any) (map[string]any, error) {
	sidecar, err := s.sidecarFor(path)
	if err != nil {
		return nil, err
	}

	record, err := readRawRecord(path, sidecar)
	if err != nil {
		return nil, err
	}

	for k, v := range updates {
		record[k] = v
	}
	record["updated"] = domain.Timestamp()

	if err := s.writeSidecar(sidecar, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteRecord removes a subject's sidecar. The subject itself stays.
func (s *Store) DeleteRecord(path string) error {
	sidecar, err := s.sidecarFor(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(sidecar); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &application.SubjectError{Path: path, Reason: application.ErrNoRecord}
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// WriteSummary writes the summary artifact for a file and returns the
// artifact path.
func (s *Store) WriteSummary(file, summary string) (string, error) {
	if err := s.requireFile(file); err != nil {
		return "", err
	}
	target := domain.FileSummaryPath(file)
	content := domain.SummaryContent(filepath.Base(file), summary)
	if err := s.writeText(target, content); err != nil {
		return "", err
	}
	return target, nil
}

// WriteTOC writes the table-of-contents artifact for a file and returns
// the artifact path.
func (s *Store) WriteTOC(file string, sections []domain.TOCSection) (string, error) {
	if err := s.requireFile(file); err != nil {
		return "", err
	}
	target := domain.FileTOCPath(file)
	content := domain.TOCContent(filepath.Base(file), sections)
	if err := s.writeText(target, content); err != nil {
		return "", err
	}
	return target, nil
}

// WriteFolderReadme writes a folder's README file and returns its path.
func (s *Store) WriteFolderReadme(dir, content string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", &application.SubjectError{Path: dir, Reason: application.ErrNotFound}
	}
	if !info.IsDir() {
		return "", &application.SubjectError{Path: dir, Reason: application.ErrInvalidSubject}
	}
	target := domain.FolderReadmePath(dir)
	if err := s.writeText(target, content); err != nil {
		return "", err
	}
	return target, nil
}

// sidecarFor maps a subject path to its sidecar location, folder or
// file decided by what is on disk.
func (s *Store) sidecarFor(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &application.SubjectError{Path: path, Reason: application.ErrNotFound}
	}
	if info.IsDir() {
		return domain.FolderMetaPath(path), nil
	}
	return domain.FileMetaPath(path), nil
}

func (s *Store) requireFile(file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return &application.SubjectError{Path: file, Reason: application.ErrNotFound}
	}
	if info.IsDir() {
		return &application.SubjectError{Path: file, Reason: application.ErrInvalidSubject}
	}
	return nil
}

// writeSidecar serializes a record with two-space indentation and no
// HTML escaping so stored text survives byte for byte.
func (s *Store) writeSidecar(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (s *Store) writeText(path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readRawRecord(subject, sidecar string) (map[string]any, error) {
	data, err := os.ReadFile(sidecar)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &application.SubjectError{Path: subject, Reason: application.ErrNoRecord}
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", sidecar, err)
	}
	return record, nil
}

// folderStatistics summarizes a folder's immediate children. Every
// file counts, sidecars and hidden files included; dot-directories stay
// out of the subfolder count. An unreadable folder yields zero stats.
func folderStatistics(dir string) domain.FolderStatistics {
	stats := domain.FolderStatistics{FileTypes: map[string]int{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debug("folder statistics unavailable",
			logging.String("path", dir), logging.Err(err))
		return stats
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if !strings.HasPrefix(entry.Name(), ".") {
				stats.TotalSubfolders++
			}
			continue
		}
		stats.TotalFiles++
		info, err := entry.Info()
		if err != nil {
			continue
		}
		stats.TotalSize += info.Size()
		stats.FileTypes[strings.ToLower(filepath.Ext(entry.Name()))]++
	}
	return stats
}

// fileChecksums digests a file's content. Read failures degrade to an
// empty checksum rather than failing the record.
func fileChecksums(path string) domain.Checksum {
	f, err := os.Open(path)
	if err != nil {
		logging.Debug("checksums unavailable",
			logging.String("path", path), logging.Err(err))
		return domain.Checksum{}
	}
	defer f.Close()

	md5Hash := md5.New()
	shaHash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(md5Hash, shaHash), f); err != nil {
		return domain.Checksum{}
	}
	return domain.Checksum{
		MD5:    hex.EncodeToString(md5Hash.Sum(nil)),
		SHA256: hex.EncodeToString(shaHash.Sum(nil)),
	}
}

func authorOrDefault(author string) string {
	if author != "" {
		return author
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return domain.UnknownAuthor
}

func languageOrDefault(lang string) string {
	if lang != "" {
		return lang
	}
	return domain.DefaultLanguage
}
