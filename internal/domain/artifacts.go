package domain

import (
	"fmt"
	"strings"
)

// SummaryContent renders the body of a <stem>.summary.md artifact.
func SummaryContent(fileName, summary string) string {
	return fmt.Sprintf("# Summary: %s\n\n%s\n", fileName, summary)
}

// TOCSection is one entry of a generated table of contents. Level 1 is
// the outermost; Page and Summary are optional.
type TOCSection struct {
	Title   string `json:"title"`
	Level   int    `json:"level"`
	Page    string `json:"page,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// TOCContent renders the body of a <stem>.toc.md artifact.
func TOCContent(fileName string, sections []TOCSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Table of contents: %s\n\n", fileName)
	for _, s := range sections {
		level := s.Level
		if level < 1 {
			level = 1
		}
		indent := strings.Repeat("  ", level-1)
		if s.Page != "" {
			fmt.Fprintf(&b, "%s- %s (p. %s)\n", indent, s.Title, s.Page)
		} else {
			fmt.Fprintf(&b, "%s- %s\n", indent, s.Title)
		}
		if s.Summary != "" {
			fmt.Fprintf(&b, "%s  %s\n", indent, s.Summary)
		}
	}
	return b.String()
}

// FolderReadmeContent renders a starter .folder-readme.md body.
func FolderReadmeContent(name, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", name)
	if description != "" {
		fmt.Fprintf(&b, "\n%s\n", formatDescriptionSentence(description))
	}
	b.WriteString("\n## Contents\n")
	return b.String()
}

// formatDescriptionSentence capitalizes a description and trims any
// trailing period so templates can punctuate consistently.
func formatDescriptionSentence(description string) string {
	if description == "" {
		return "Description pending"
	}
	desc := strings.ToUpper(description[:1]) + description[1:]
	return strings.TrimSuffix(desc, ".")
}
