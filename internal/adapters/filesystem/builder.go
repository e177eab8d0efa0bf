package filesystem

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"folio/internal/domain"
	"folio/internal/logging"
)

const defaultBuildWorkers = 4

// IndexBuilder collects every sidecar record under a root into an
// in-memory index. The whole tree is walked, exclusion rules do not
// apply; a hidden directory can still hold records.
type IndexBuilder struct {
	store   *Store
	workers int
}

// NewIndexBuilder creates an index builder reading records through the
// given store.
func NewIndexBuilder(store *Store) *IndexBuilder {
	return &IndexBuilder{store: store, workers: defaultBuildWorkers}
}

// SetWorkers bounds the parallel fan-out across top-level subtrees.
// Values below one make the build sequential.
func (b *IndexBuilder) SetWorkers(n int) {
	b.workers = n
}

// Build walks the tree under root and loads every metadata record.
// Records appear in walk order: a directory's folder record, then its
// file records in sidecar name order, then its subdirectories in name
// order. Folder records carry their directory's root-relative path,
// file records the path of the directory containing them.
func (b *IndexBuilder) Build(ctx context.Context, root string) (*domain.Index, error) {
	root = filepath.Clean(root)
	idx := &domain.Index{
		Root:    root,
		Folders: []domain.FolderEntry{},
		Files:   []domain.FileEntry{},
	}

	// Root level first: its own record, its direct file records, and
	// the list of top-level subtrees.
	rootLevel := &collector{store: b.store, base: root, prefix: "."}
	var subtrees []string
	v := rootLevel.visitor()
	rootDir := v.Dir
	v.Dir = func(rel string) error {
		if rel != "." {
			subtrees = append(subtrees, rel)
			return nil
		}
		return rootDir(rel)
	}
	if err := Walk(ctx, root, WalkOptions{}, v); err != nil {
		return nil, err
	}
	idx.Folders = append(idx.Folders, rootLevel.folders...)
	idx.Files = append(idx.Files, rootLevel.files...)

	// Fan out across top-level subtrees. Each collector owns its
	// subtree's slices, and the merge goes in lexicographic subtree
	// order, so a parallel build is byte-identical to a sequential one.
	collectors := make([]*collector, len(subtrees))
	g, gctx := errgroup.WithContext(ctx)
	limit := b.workers
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, sub := range subtrees {
		c := &collector{
			store:  b.store,
			base:   filepath.Join(root, filepath.FromSlash(sub)),
			prefix: sub,
		}
		collectors[i] = c
		g.Go(func() error {
			return Walk(gctx, c.base, WalkOptions{Recursive: true, MaxDepth: -1}, c.visitor())
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range collectors {
		idx.Folders = append(idx.Folders, c.folders...)
		idx.Files = append(idx.Files, c.files...)
	}
	return idx, nil
}

// collector accumulates the records of one walked subtree. base is the
// absolute directory the walk is rooted at, prefix that directory's
// path relative to the index root ("." for the root itself).
type collector struct {
	store   *Store
	base    string
	prefix  string
	folders []domain.FolderEntry
	files   []domain.FileEntry
}

func (c *collector) visitor() Visitor {
	return Visitor{Dir: c.dir, File: c.file, Error: c.unreadable}
}

func (c *collector) dir(rel string) error {
	dir := filepath.Join(c.base, filepath.FromSlash(rel))
	meta, ok := c.store.ReadFolderRecord(dir)
	if !ok {
		return nil
	}
	c.folders = append(c.folders, domain.FolderEntry{
		FolderMetadata: *meta,
		Path:           c.indexPath(rel),
	})
	return nil
}

func (c *collector) file(rel string, entry fs.DirEntry) error {
	if !domain.IsFileMetaSidecar(entry.Name()) {
		return nil
	}
	meta, ok := loadFileSidecar(filepath.Join(c.base, filepath.FromSlash(rel)))
	if !ok {
		return nil
	}
	c.files = append(c.files, domain.FileEntry{
		FileMetadata: *meta,
		Path:         c.indexPath(path.Dir(rel)),
	})
	return nil
}

func (c *collector) unreadable(rel string, err error) {
	logging.Warn("skipping unreadable directory",
		logging.String("path", c.indexPath(rel)), logging.Err(err))
}

// indexPath rebases a walk-relative path onto the subtree's prefix.
func (c *collector) indexPath(rel string) string {
	if c.prefix == "." {
		return rel
	}
	if rel == "." {
		return c.prefix
	}
	return path.Join(c.prefix, rel)
}

// loadFileSidecar parses a file metadata sidecar at its own path. A
// malformed record reads as absent, same policy as the store.
func loadFileSidecar(path string) (*domain.FileMetadata, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var meta domain.FileMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		logging.Debug("skipping malformed file record",
			logging.String("path", path), logging.Err(err))
		return nil, false
	}
	return &meta, true
}
