package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"folio/internal/domain"
	"folio/internal/logging"
	"folio/internal/metrics"
	"folio/internal/ports"
)

// Crawler walks a tree and produces a scan inventory: every visited
// folder and primary file, its metadata coverage, and aggregate
// statistics. Unlike the index builder it respects the exclusion rules,
// and sidecars and derived artifacts never appear as entries.
type Crawler struct {
	store *Store
}

// NewCrawler creates an inventory scanner reading sidecars through the
// given store.
func NewCrawler(store *Store) *Crawler {
	return &Crawler{store: store}
}

// Scan inventories the tree under root. The root itself is not an
// entry; every visited subfolder and primary file is.
func (c *Crawler) Scan(ctx context.Context, root string, opts ports.ScanOptions) (*domain.Inventory, error) {
	start := time.Now()
	base, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan path: %w", err)
	}

	patterns := opts.Exclude
	if patterns == nil {
		patterns = domain.DefaultExcludePatterns
	}

	inv := &domain.Inventory{
		ScannedAt:  domain.Timestamp(),
		BasePath:   base,
		Folders:    []domain.InventoryFolder{},
		Files:      []domain.InventoryFile{},
		Statistics: domain.InventoryStats{FilesByType: map[string]int{}},
	}

	v := Visitor{
		Dir: func(rel string) error {
			if rel == "." {
				return nil
			}
			c.addFolder(inv, base, rel)
			return nil
		},
		File: func(rel string, entry fs.DirEntry) error {
			if domain.Classify(rel, false, patterns) != domain.ClassPrimaryFile {
				return nil
			}
			c.addFile(inv, base, rel, entry)
			return nil
		},
		Error: func(rel string, err error) {
			logging.Warn("no access to directory",
				logging.String("path", rel), logging.Err(err))
		},
	}

	wopts := WalkOptions{
		Recursive: opts.Recursive,
		MaxDepth:  opts.MaxDepth,
		Patterns:  patterns,
		Filtered:  true,
	}
	if err := Walk(ctx, base, wopts, v); err != nil {
		return nil, err
	}
	metrics.RecordScan(time.Since(start))
	return inv, nil
}

func (c *Crawler) addFolder(inv *domain.Inventory, base, rel string) {
	dir := filepath.Join(base, filepath.FromSlash(rel))
	entry := domain.InventoryFolder{
		Path: rel,
		Name: filepath.Base(dir),
	}

	if exists(domain.FolderMetaPath(dir)) {
		entry.HasMetadata = true
		metaRel := path.Join(rel, domain.FolderMetaFile)
		entry.MetadataFile = &metaRel
		// A sidecar that exists but does not parse keeps hasMetadata
		// true and simply carries no excerpt.
		if meta, ok := c.store.ReadFolderRecord(dir); ok {
			entry.Metadata = &domain.FolderBrief{
				Description: meta.Description,
				Category:    meta.Category,
				Tags:        tagsOrEmpty(meta.Tags),
			}
		}
	}

	inv.Folders = append(inv.Folders, entry)
	inv.Statistics.TotalFolders++
}

func (c *Crawler) addFile(inv *domain.Inventory, base, rel string, entry fs.DirEntry) {
	abs := filepath.Join(base, filepath.FromSlash(rel))
	name := entry.Name()

	info, err := entry.Info()
	if err != nil {
		logging.Debug("skipping unreadable file",
			logging.String("path", rel), logging.Err(err))
		return
	}

	file := domain.InventoryFile{
		Path:       rel,
		Name:       name,
		Extension:  filepath.Ext(name),
		Size:       info.Size(),
		Modified:   info.ModTime().Format(domain.TimeLayout),
		HasSummary: exists(domain.FileSummaryPath(abs)),
		HasToc:     exists(domain.FileTOCPath(abs)),
	}

	if exists(domain.FileMetaPath(abs)) {
		file.HasMetadata = true
		metaRel := path.Join(path.Dir(rel), domain.Stem(name)+domain.MetaSuffix)
		file.MetadataFile = &metaRel
		// Only a record that parses counts toward filesWithMetadata; a
		// corrupt sidecar leaves both coverage counters untouched.
		if meta, ok := c.store.ReadFileRecord(abs); ok {
			file.Metadata = &domain.FileBrief{
				Title:       meta.Title,
				Description: meta.Description,
				FileType:    string(meta.FileType),
				Tags:        tagsOrEmpty(meta.Tags),
			}
			inv.Statistics.FilesWithMetadata++
		}
	} else {
		inv.Statistics.FilesWithoutMetadata++
	}

	inv.Files = append(inv.Files, file)
	inv.Statistics.TotalFiles++
	inv.Statistics.TotalSize += info.Size()
	inv.Statistics.FilesByType[strings.ToLower(filepath.Ext(name))]++
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
