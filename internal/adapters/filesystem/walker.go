package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"folio/internal/application"
	"folio/internal/domain"
)

// WalkOptions controls traversal of a directory tree.
type WalkOptions struct {
	// Recursive descends into subdirectories. When false only the root's
	// immediate children are visited.
	Recursive bool

	// MaxDepth bounds descent when Recursive is set. The root is depth
	// zero; a directory deeper than MaxDepth is visited but never
	// descended into. Negative means unbounded.
	MaxDepth int

	// Patterns replaces domain.DefaultExcludePatterns when non-nil.
	Patterns []string

	// Filtered applies the exclusion rules (patterns plus hidden
	// entries). When false every entry is visited, which is what the
	// index builder wants.
	Filtered bool
}

// limit returns the effective depth bound, -1 meaning unbounded.
func (o WalkOptions) limit() int {
	if !o.Recursive {
		return 0
	}
	if o.MaxDepth < 0 {
		return -1
	}
	return o.MaxDepth
}

func (o WalkOptions) patterns() []string {
	if o.Patterns != nil {
		return o.Patterns
	}
	return domain.DefaultExcludePatterns
}

// Visitor receives tree entries during a walk. Any nil hook is skipped.
// A non-nil error returned from Dir or File aborts the walk.
type Visitor struct {
	// Dir is called once per visited directory, the root included
	// (relative path "."). For directories past the depth bound it still
	// fires, marking the directory as seen without descending.
	Dir func(rel string) error

	// File is called once per visited file in lexicographic name order
	// within its directory.
	File func(rel string, entry fs.DirEntry) error

	// Error is called when a directory cannot be read. The walk
	// continues with the remaining siblings.
	Error func(rel string, err error)
}

// frame is one directory pending traversal on the explicit work stack.
type frame struct {
	rel   string
	depth int
}

// Walk traverses the tree under root depth-first in pre-order. Within a
// directory, files are visited in lexicographic name order before any
// subdirectory's subtree, and subdirectories are descended in
// lexicographic order, so the event sequence for an unchanged tree is
// reproducible byte for byte.
//
// A subtree whose directory cannot be read is reported through the
// visitor's Error hook and skipped; the walk never aborts for one
// unreadable directory.
func Walk(ctx context.Context, root string, opts WalkOptions, v Visitor) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("walk root %s: %w", root, application.ErrNotFound)
		}
		return fmt.Errorf("failed to stat walk root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("walk root %s: %w", root, application.ErrInvalidSubject)
	}

	limit := opts.limit()
	patterns := opts.patterns()

	// Explicit stack instead of self-recursion so deep trees cannot
	// exhaust the call stack. Subdirectories are pushed in reverse so
	// they pop in lexicographic order.
	stack := []frame{{rel: ".", depth: 0}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if v.Dir != nil {
			if err := v.Dir(f.rel); err != nil {
				return err
			}
		}

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(f.rel)))
		if err != nil {
			if v.Error != nil {
				v.Error(f.rel, err)
			}
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			rel := childRel(f.rel, entry.Name())
			if opts.Filtered && domain.Excluded(rel, patterns) {
				continue
			}
			if entry.IsDir() {
				subdirs = append(subdirs, rel)
				continue
			}
			if v.File != nil {
				if err := v.File(rel, entry); err != nil {
					return err
				}
			}
		}

		if limit >= 0 && f.depth+1 > limit {
			// Children past the bound are seen, not descended.
			for _, rel := range subdirs {
				if v.Dir != nil {
					if err := v.Dir(rel); err != nil {
						return err
					}
				}
			}
			continue
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, frame{rel: subdirs[i], depth: f.depth + 1})
		}
	}

	return nil
}

// childRel joins a parent's walk-relative path with an entry name,
// keeping the root's children free of a "./" prefix. Walk-relative
// paths always use forward slashes.
func childRel(parent, name string) string {
	if parent == "." {
		return name
	}
	return path.Join(parent, name)
}
