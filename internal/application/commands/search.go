package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"folio/internal/application"
	"folio/internal/domain"
	"folio/internal/ports"
)

// descriptionLimit caps how many characters of a record description the
// text output shows.
const descriptionLimit = 100

// SearchResult contains the result of a metadata search
type SearchResult struct {
	Results domain.Results
	Message string
}

// SearchCommand builds a fresh index under a root and searches it
type SearchCommand struct {
	indexer  ports.Indexer
	Root     string
	Criteria domain.Criteria
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(indexer ports.Indexer, root string, criteria domain.Criteria) *SearchCommand {
	return &SearchCommand{
		indexer:  indexer,
		Root:     root,
		Criteria: criteria,
	}
}

// Validate checks if the search operation is valid
func (c *SearchCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return err
	}

	if !c.Criteria.Folders && !c.Criteria.Files {
		return &application.ValidationError{
			Field:   "criteria",
			Message: "at least one of folders or files must be searched",
		}
	}

	return nil
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	idx, err := c.indexer.Build(ctx, c.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}

	res := domain.Search(idx, c.Criteria)
	msg := fmt.Sprintf("Found %d results", res.Total())
	if res.Total() == 0 {
		msg = "No results found"
	}

	return &SearchResult{Results: res, Message: msg}, nil
}

// FacetsResult contains aggregated facet counts
type FacetsResult struct {
	Facets  domain.FacetCounts
	Message string
}

// FacetsCommand builds a fresh index under a root and aggregates facets
type FacetsCommand struct {
	indexer ports.Indexer
	Root    string
}

// NewFacetsCommand creates a new FacetsCommand
func NewFacetsCommand(indexer ports.Indexer, root string) *FacetsCommand {
	return &FacetsCommand{indexer: indexer, Root: root}
}

// Validate checks if the facets operation is valid
func (c *FacetsCommand) Validate() error {
	return application.ValidateRequired("root", c.Root)
}

// Execute runs the facets command
func (c *FacetsCommand) Execute(ctx context.Context) (*FacetsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	idx, err := c.indexer.Build(ctx, c.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}

	return &FacetsResult{
		Facets:  domain.Facets(idx),
		Message: fmt.Sprintf("Aggregated facets across %d file records", len(idx.Files)),
	}, nil
}

// FormatResults renders search results as indented text, grouped into a
// folder section and a file section. Each file line shows that file's
// own display path.
func FormatResults(res domain.Results) string {
	if res.Total() == 0 {
		return "No results found.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found: %d results\n", res.Total())

	if len(res.Folders) > 0 {
		fmt.Fprintf(&b, "\nFolders (%d):\n", len(res.Folders))
		for _, f := range res.Folders {
			name := f.Name
			if name == "" {
				name = "Untitled"
			}
			fmt.Fprintf(&b, "\n  %s\n", name)
			fmt.Fprintf(&b, "    path: %s\n", f.Path)
			if f.Description != "" {
				fmt.Fprintf(&b, "    description: %s\n", truncate(f.Description, descriptionLimit))
			}
			if len(f.Tags) > 0 {
				fmt.Fprintf(&b, "    tags: %s\n", strings.Join(f.Tags, ", "))
			}
		}
	}

	if len(res.Files) > 0 {
		fmt.Fprintf(&b, "\nFiles (%d):\n", len(res.Files))
		for _, f := range res.Files {
			title := f.Title
			if title == "" {
				title = f.Filename
			}
			if title == "" {
				title = "Untitled"
			}
			fmt.Fprintf(&b, "\n  %s\n", title)
			fmt.Fprintf(&b, "    path: %s\n", f.DisplayPath())
			if f.Description != "" {
				fmt.Fprintf(&b, "    description: %s\n", truncate(f.Description, descriptionLimit))
			}
			if len(f.Tags) > 0 {
				fmt.Fprintf(&b, "    tags: %s\n", strings.Join(f.Tags, ", "))
			}
			if f.FileType != "" {
				fmt.Fprintf(&b, "    type: %s\n", f.FileType)
			}
		}
	}

	return b.String()
}

// FormatFacets renders facet counts as sorted sections, one per facet
// field.
func FormatFacets(fc domain.FacetCounts) string {
	sections := []struct {
		title  string
		counts map[string]int
	}{
		{"Categories", fc.Categories},
		{"Tags", fc.Tags},
		{"File types", fc.FileTypes},
		{"Authors", fc.Authors},
	}

	var b strings.Builder
	for _, s := range sections {
		if len(s.counts) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:\n", s.title)
		keys := make([]string, 0, len(s.counts))
		for k := range s.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %d\n", k, s.counts[k])
		}
	}
	if b.Len() == 0 {
		return "No file records indexed.\n"
	}
	return b.String()
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
