package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/application/commands"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/ports"
)

var (
	metaName        string
	metaTitle       string
	metaDescription string
	metaCategory    string
	metaTags        []string
	metaAuthor      string
	metaLanguage    string
	metaSet         []string
	metaText        string
	metaSections    string
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Manage sidecar metadata records",
	Long: `Manage the sidecar metadata records and derived artifacts of files
and folders. Paths are taken as given, so relative paths resolve
against the current directory, not the documents root.`,
}

var metaInitFolderCmd = &cobra.Command{
	Use:   "init-folder <dir>",
	Short: "Create a folder metadata record",
	Long: `Create the metadata record sidecar for a folder. Statistics over the
folder's contents are computed automatically.

Examples:
  folio-cli meta init-folder ./invoices --name "Invoices" --category finance
  folio-cli meta init-folder . --name "Library" --tags books,reference`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		initCmd := commands.NewInitFolderCommand(GetStore(), config.ExpandHome(args[0]), ports.FolderInit{
			Name:        metaName,
			Description: metaDescription,
			Category:    metaCategory,
			Tags:        metaTags,
			Author:      metaAuthor,
			Language:    metaLanguage,
		})
		result, err := initCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var metaInitFileCmd = &cobra.Command{
	Use:   "init-file <file>",
	Short: "Create a file metadata record",
	Long: `Create the metadata record sidecar for a file. Size, timestamps, file
type, MIME type, and checksums are derived from the file itself.

Examples:
  folio-cli meta init-file ./report.pdf --title "Annual report"
  folio-cli meta init-file notes.md --title "Notes" --tags work,draft`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		initCmd := commands.NewInitFileCommand(GetStore(), config.ExpandHome(args[0]), ports.FileInit{
			Title:       metaTitle,
			Description: metaDescription,
			Category:    metaCategory,
			Tags:        metaTags,
			Author:      metaAuthor,
			Language:    metaLanguage,
		})
		result, err := initCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var metaReadCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Print a metadata record as JSON",
	Long: `Print the stored metadata record of a file or folder as indented
JSON, unknown fields included.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		readCmd := commands.NewReadRecordCommand(GetStore(), config.ExpandHome(args[0]))
		record, err := readCmd.Execute(ctx)
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

var metaUpdateCmd = &cobra.Command{
	Use:   "update <path>",
	Short: "Merge field updates into a record",
	Long: `Merge field updates into an existing metadata record. Fields not
named keep their stored value; the updated timestamp is refreshed.

Values that parse as JSON keep their typed form, so --set size=10
stores a number and --set tags='["a","b"]' stores an array. Anything
else is stored as a string.

Examples:
  folio-cli meta update report.pdf --set status=archived
  folio-cli meta update ./invoices --set 'tags=["finance","2024"]' --set category=finance`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		updates, err := commands.ParseAssignments(metaSet)
		if err != nil {
			return err
		}

		updateCmd := commands.NewUpdateRecordCommand(GetStore(), config.ExpandHome(args[0]), updates)
		result, err := updateCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var metaSummaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Write a summary artifact next to a file",
	Long: `Write a <stem>.summary.md artifact next to a file, holding the given
summary text.

Examples:
  folio-cli meta summary report.pdf --text "Quarterly results and outlook."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		summaryCmd := commands.NewSummaryCommand(GetStore(), config.ExpandHome(args[0]), metaText)
		result, err := summaryCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var metaTOCCmd = &cobra.Command{
	Use:   "toc <file>",
	Short: "Write a table-of-contents artifact next to a file",
	Long: `Write a <stem>.toc.md artifact next to a file. Sections are given as
a JSON array of {title, level, page, summary} objects; level 1 is the
outermost and page and summary are optional.

Examples:
  folio-cli meta toc report.pdf --sections '[{"title":"Intro","level":1,"page":"1"}]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var sections []domain.TOCSection
		if err := json.Unmarshal([]byte(metaSections), &sections); err != nil {
			return fmt.Errorf("sections must be a JSON array: %w", err)
		}

		tocCmd := commands.NewTOCCommand(GetStore(), config.ExpandHome(args[0]), sections)
		result, err := tocCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var metaReadmeCmd = &cobra.Command{
	Use:   "readme <dir>",
	Short: "Write a starter README inside a folder",
	Long: `Write a starter .folder-readme.md inside a folder, seeded from the
folder's metadata record when one exists.

Examples:
  folio-cli meta readme ./invoices`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		readmeCmd := commands.NewReadmeCommand(GetStore(), config.ExpandHome(args[0]))
		result, err := readmeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	metaInitFolderCmd.Flags().StringVar(&metaName, "name", "", "display name of the folder")
	metaInitFolderCmd.Flags().StringVar(&metaDescription, "description", "", "description of the folder")
	metaInitFolderCmd.Flags().StringVar(&metaCategory, "category", "", "category (default other)")
	metaInitFolderCmd.Flags().StringSliceVar(&metaTags, "tags", nil, "tags")
	metaInitFolderCmd.Flags().StringVar(&metaAuthor, "author", "", "author (defaults to the current user)")
	metaInitFolderCmd.Flags().StringVar(&metaLanguage, "language", "", "language code (default en)")
	metaInitFolderCmd.MarkFlagRequired("name")

	metaInitFileCmd.Flags().StringVar(&metaTitle, "title", "", "title of the document")
	metaInitFileCmd.Flags().StringVar(&metaDescription, "description", "", "description of the document")
	metaInitFileCmd.Flags().StringVar(&metaCategory, "category", "", "category")
	metaInitFileCmd.Flags().StringSliceVar(&metaTags, "tags", nil, "tags")
	metaInitFileCmd.Flags().StringVar(&metaAuthor, "author", "", "author (defaults to the current user)")
	metaInitFileCmd.Flags().StringVar(&metaLanguage, "language", "", "language code (default en)")
	metaInitFileCmd.MarkFlagRequired("title")

	metaUpdateCmd.Flags().StringArrayVar(&metaSet, "set", nil, "field update as key=value (repeatable)")

	metaSummaryCmd.Flags().StringVar(&metaText, "text", "", "summary text")
	metaSummaryCmd.MarkFlagRequired("text")

	metaTOCCmd.Flags().StringVar(&metaSections, "sections", "", "sections as a JSON array")
	metaTOCCmd.MarkFlagRequired("sections")

	metaCmd.AddCommand(metaInitFolderCmd)
	metaCmd.AddCommand(metaInitFileCmd)
	metaCmd.AddCommand(metaReadCmd)
	metaCmd.AddCommand(metaUpdateCmd)
	metaCmd.AddCommand(metaSummaryCmd)
	metaCmd.AddCommand(metaTOCCmd)
	metaCmd.AddCommand(metaReadmeCmd)
	rootCmd.AddCommand(metaCmd)
}
