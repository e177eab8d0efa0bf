package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/application/commands"
	"folio/internal/config"
	"folio/internal/domain"
)

var (
	searchTags        []string
	searchCategory    string
	searchType        string
	searchAuthor      string
	searchFrom        string
	searchTo          string
	searchFoldersOnly bool
	searchFilesOnly   bool
	searchFacets      bool
	searchJSON        bool
)

var searchCmd = &cobra.Command{
	Use:   "search <path> [query]",
	Short: "Search sidecar records under a tree",
	Long: `Build a fresh index of every sidecar record under a tree and search
it. A free-text query matches names, titles, descriptions, keywords,
and tags; the filter flags narrow by exact field values. All given
criteria must match.

With --facets the records are aggregated into per-field value counts
instead of being filtered.

Examples:
  folio-cli search ~/Documents/library report
  folio-cli search . --tag finance --tag 2024 --type pdf
  folio-cli search . --category work --from 2024-01-01 --files-only
  folio-cli search . --facets --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := config.ExpandHome(args[0])
		ctx := context.Background()

		if searchFacets {
			facetsCmd := commands.NewFacetsCommand(GetIndexer(), root)
			result, err := facetsCmd.Execute(ctx)
			if err != nil {
				return err
			}
			if searchJSON {
				return printJSON(result.Facets)
			}
			fmt.Print(commands.FormatFacets(result.Facets))
			return nil
		}

		criteria := domain.NewCriteria()
		if len(args) > 1 {
			criteria.Query = args[1]
		}
		criteria.Tags = searchTags
		criteria.Category = searchCategory
		criteria.FileType = searchType
		criteria.Author = searchAuthor
		criteria.DateFrom = searchFrom
		criteria.DateTo = searchTo
		if searchFoldersOnly {
			criteria.Files = false
		}
		if searchFilesOnly {
			criteria.Folders = false
		}

		searchCmd := commands.NewSearchCommand(GetIndexer(), root, criteria)
		result, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if searchJSON {
			return printJSON(result.Results)
		}
		fmt.Print(commands.FormatResults(result.Results))
		return nil
	},
}

// printJSON writes v to stdout as indented UTF-8 JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchTags, "tag", nil, "filter by tag (repeatable, any may match)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "require this category")
	searchCmd.Flags().StringVar(&searchType, "type", "", "require this file type (pdf, md, image, ...)")
	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "require this author")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "require an update on or after this date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "require an update on or before this date (YYYY-MM-DD)")
	searchCmd.Flags().BoolVar(&searchFoldersOnly, "folders-only", false, "search folder records only")
	searchCmd.Flags().BoolVar(&searchFilesOnly, "files-only", false, "search file records only")
	searchCmd.Flags().BoolVar(&searchFacets, "facets", false, "aggregate facet counts instead of searching")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit raw JSON instead of formatted text")
	searchCmd.MarkFlagsMutuallyExclusive("folders-only", "files-only")
	rootCmd.AddCommand(searchCmd)
}
