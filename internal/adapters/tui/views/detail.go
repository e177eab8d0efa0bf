package views

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/application/commands"
	"folio/internal/domain"
	"folio/internal/ports"
)

// DetailKeyMap defines key bindings for the record detail view
type DetailKeyMap struct {
	Edit     key.Binding
	Open     key.Binding
	OpenFile key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Back     key.Binding
}

var DetailKeys = DetailKeyMap{
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open record"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "open file"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete record"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// DetailModel shows one subject's record with its derived artifacts.
type DetailModel struct {
	ViewState
	root  string
	store ports.MetadataStore

	path  string
	isDir bool

	loaded  bool
	record  map[string]any
	summary string
	toc     string
	readme  string
}

// NewDetailModel creates a new detail view model
func NewDetailModel(root string, store ports.MetadataStore) *DetailModel {
	return &DetailModel{
		root:  root,
		store: store,
	}
}

// SetTarget points the view at a subject path relative to the documents
// root. Load must run afterwards to fill the view.
func (m *DetailModel) SetTarget(path string, isDir bool) {
	m.path = path
	m.isDir = isDir
	m.loaded = false
	m.record = nil
	m.summary = ""
	m.toc = ""
	m.readme = ""
	m.ClearMessage()
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return m.Load
}

// Load reads the record and artifact texts from disk.
func (m *DetailModel) Load() tea.Msg {
	abs := filepath.Join(m.root, filepath.FromSlash(m.path))

	loaded := detailLoadedMsg{}
	record, err := commands.NewReadRecordCommand(m.store, abs).Execute(context.Background())
	if err != nil {
		loaded.err = err
	} else {
		loaded.record = record
	}

	if m.isDir {
		loaded.readme = readText(domain.FolderReadmePath(abs))
	} else {
		loaded.summary = readText(domain.FileSummaryPath(abs))
		loaded.toc = readText(domain.FileTOCPath(abs))
	}

	return loaded
}

func readText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

type detailLoadedMsg struct {
	record  map[string]any
	summary string
	toc     string
	readme  string
	err     error
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case detailLoadedMsg:
		m.loaded = true
		m.record = msg.record
		m.summary = msg.summary
		m.toc = msg.toc
		m.readme = msg.readme
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case statusMsg:
		m.SetMessage(msg.text, false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DetailKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, DetailKeys.Edit):
			path, isDir := m.path, m.isDir
			return m, func() tea.Msg {
				return SwitchToFormMsg{Path: path, IsDir: isDir, Edit: true}
			}

		case key.Matches(msg, DetailKeys.Open):
			sidecar := m.sidecarPath()
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: sidecar}
			}

		case key.Matches(msg, DetailKeys.OpenFile):
			if m.isDir {
				return m, nil
			}
			abs := filepath.Join(m.root, filepath.FromSlash(m.path))
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: abs}
			}

		case key.Matches(msg, DetailKeys.Delete):
			path, isDir := m.path, m.isDir
			return m, func() tea.Msg {
				return SwitchToDeleteMsg{Path: path, IsDir: isDir}
			}

		case key.Matches(msg, DetailKeys.Copy):
			return m, copyPath(m.path)
		}
	}

	return m, nil
}

func (m *DetailModel) sidecarPath() string {
	abs := filepath.Join(m.root, filepath.FromSlash(m.path))
	if m.isDir {
		return domain.FolderMetaPath(abs)
	}
	return domain.FileMetaPath(abs)
}

// View renders the detail view
func (m *DetailModel) View() string {
	var b strings.Builder

	name := path.Base(m.path)
	if name == "." {
		name = filepath.Base(m.root)
	}
	b.WriteString(styles.Title.Render(name))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.path))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(styles.MutedText.Render("Loading..."))
		b.WriteString("\n")
	case m.record == nil:
		b.WriteString(styles.MutedText.Render("No record."))
		b.WriteString("\n")
	default:
		for _, line := range formatRecordLines(m.record) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.summary != "" {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(firstLines(m.summary, 12))
		b.WriteString("\n")
	}
	if m.toc != "" {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Contents"))
		b.WriteString("\n")
		b.WriteString(firstLines(m.toc, 12))
		b.WriteString("\n")
	}
	if m.readme != "" {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("README"))
		b.WriteString("\n")
		b.WriteString(firstLines(m.readme, 12))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.isDir {
		b.WriteString(RenderHelpLine(
			DetailKeys.Edit, DetailKeys.Open, DetailKeys.Delete, DetailKeys.Copy, DetailKeys.Back,
		))
	} else {
		b.WriteString(RenderHelpLine(
			DetailKeys.Edit, DetailKeys.Open, DetailKeys.OpenFile, DetailKeys.Delete, DetailKeys.Copy, DetailKeys.Back,
		))
	}

	return styles.App.Render(b.String())
}

// formatRecordLines renders a raw record as sorted label: value lines.
// Nested objects compact to JSON so unknown fields still display.
func formatRecordLines(record map[string]any) []string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, RenderLabelValue(k, formatRecordValue(record[k])))
	}
	return lines
}

func formatRecordValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatRecordValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
