package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/editor"
	"folio/internal/adapters/filesystem"
	"folio/internal/adapters/tui"
	"folio/internal/config"
)

func main() {
	root := config.ExpandHome(config.DocumentsPath())
	if len(os.Args) > 1 {
		root = config.ExpandHome(os.Args[1])
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: documents root %s is not a directory\n", root)
		os.Exit(1)
	}

	// Initialize adapters
	store := filesystem.NewStore()
	indexer := filesystem.NewIndexBuilder(store)
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(root, store, indexer, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
