package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/adapters/filesystem"
	"folio/internal/config"
	"folio/internal/ports"
)

var (
	docsPath string
	docsRoot string
	store    ports.MetadataStore
	scanner  ports.Scanner
	indexer  ports.Indexer
)

var rootCmd = &cobra.Command{
	Use:   "folio-cli",
	Short: "CLI for the sidecar-metadata layer of a documents tree",
	Long: `folio-cli manages the sidecar-metadata layer of a documents tree:
JSON records stored next to the files and folders they describe, plus
the derived summary, table-of-contents, and README artifacts.

It provides commands to scan a tree for metadata coverage, initialize
and edit records, search the indexed records, and serve the read-only
HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		docsRoot = config.ExpandHome(docsPath)
		fsStore := filesystem.NewStore()
		store = fsStore
		scanner = filesystem.NewCrawler(fsStore)
		indexer = filesystem.NewIndexBuilder(fsStore)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&docsPath, "docs", "d", config.DocumentsPath(), "path to the documents root")
}

// DocsRoot returns the resolved documents root
func DocsRoot() string {
	return docsRoot
}

// GetStore returns the initialized metadata store
func GetStore() ports.MetadataStore {
	return store
}

// GetScanner returns the initialized scanner
func GetScanner() ports.Scanner {
	return scanner
}

// GetIndexer returns the initialized index builder
func GetIndexer() ports.Indexer {
	return indexer
}
