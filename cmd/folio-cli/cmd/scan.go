package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/application/commands"
	"folio/internal/config"
)

var (
	scanRecursive   bool
	scanMaxDepth    int
	scanExclude     []string
	scanReportFile  string
	scanHTMLFile    string
	scanListMissing bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a tree and report metadata coverage",
	Long: `Scan a directory tree, inventory its folders and files, and report
how many primary files carry a metadata record. Without a path the
documents root is scanned.

The scan always writes a JSON report. Pass --html for a standalone
HTML version of the same report.

Examples:
  folio-cli scan
  folio-cli scan ~/Documents/library -r --max-depth 3
  folio-cli scan . -r --exclude .git,node_modules --list-missing`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := DocsRoot()
		if len(args) > 0 {
			path = config.ExpandHome(args[0])
		}
		ctx := context.Background()

		scanCmd := commands.NewScanCommand(GetScanner(), path, scanRecursive, scanMaxDepth, scanExclude)
		result, err := scanCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if err := commands.WriteJSONReport(result.Inventory, scanReportFile); err != nil {
			return err
		}
		if scanHTMLFile != "" {
			if err := commands.WriteHTMLReport(result.Inventory, scanHTMLFile); err != nil {
				return err
			}
		}

		fmt.Println(result.Message)
		fmt.Printf("Report written to %s\n", scanReportFile)
		if scanHTMLFile != "" {
			fmt.Printf("HTML report written to %s\n", scanHTMLFile)
		}

		if scanListMissing {
			fmt.Println()
			fmt.Print(commands.FormatMissing(result.Inventory))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false, "scan subdirectories recursively")
	scanCmd.Flags().IntVar(&scanMaxDepth, "max-depth", -1, "maximum recursion depth, negative means unbounded")
	scanCmd.Flags().StringSliceVar(&scanExclude, "exclude", nil, "names and glob patterns to skip")
	scanCmd.Flags().StringVar(&scanReportFile, "report", "scan_report.json", "JSON report output file")
	scanCmd.Flags().StringVar(&scanHTMLFile, "html", "", "also write an HTML report to this file")
	scanCmd.Flags().BoolVar(&scanListMissing, "list-missing", false, "list primary files without a metadata record")
	rootCmd.AddCommand(scanCmd)
}
