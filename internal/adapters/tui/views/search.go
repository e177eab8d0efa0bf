package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/domain"
	"folio/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Select   key.Binding
	Copy     key.Binding
	Cancel   key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "left"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "right"),
		key.WithHelp("→", "next page"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view record"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// searchHit is one row in the result list.
type searchHit struct {
	path   string
	label  string
	detail string
	isDir  bool
}

// SearchModel is the model for the live search view
type SearchModel struct {
	ViewState
	root    string
	indexer ports.Indexer
	input   textinput.Model
	index   *domain.Index
	hits    []searchHit
	pager   *Paginator
}

// NewSearchModel creates a new search view model
func NewSearchModel(root string, indexer ports.Indexer) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search records..."
	input.Focus()

	return &SearchModel{
		root:    root,
		indexer: indexer,
		input:   input,
		pager:   NewPaginator(10),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and reloads the index so results reflect the
// tree as it is now.
func (m *SearchModel) Reset() tea.Cmd {
	m.input.SetValue("")
	m.hits = nil
	m.index = nil
	m.pager.Reset()
	m.input.Focus()
	return m.loadIndex
}

func (m *SearchModel) loadIndex() tea.Msg {
	idx, err := m.indexer.Build(context.Background(), m.root)
	if err != nil {
		return errMsg{err}
	}
	return indexLoadedMsg{idx}
}

type indexLoadedMsg struct {
	index *domain.Index
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case indexLoadedMsg:
		m.index = msg.index
		m.filter()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case statusMsg:
		m.SetMessage(msg.text, false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, SearchKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, SearchKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if hit := m.selectedHit(); hit != nil {
				path, isDir := hit.path, hit.isDir
				return m, func() tea.Msg {
					return SwitchToDetailMsg{Path: path, IsDir: isDir}
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if hit := m.selectedHit(); hit != nil {
				return m, copyPath(hit.path)
			}
			return m, nil
		}
	}

	// Update input and refilter on change
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.filter()
	}

	return m, cmd
}

// filter runs the query against the loaded index. Matching is substring
// over names, titles, descriptions, keywords and tags.
func (m *SearchModel) filter() {
	m.hits = nil
	query := strings.TrimSpace(m.input.Value())
	if m.index == nil || len(query) < 2 {
		m.pager.Reset()
		return
	}

	crit := domain.NewCriteria()
	crit.Query = query
	results := domain.Search(m.index, crit)

	for _, f := range results.Folders {
		m.hits = append(m.hits, searchHit{
			path:   f.Path,
			label:  f.Name,
			detail: f.Category,
			isDir:  true,
		})
	}
	for _, f := range results.Files {
		m.hits = append(m.hits, searchHit{
			path:   f.DisplayPath(),
			label:  f.Title,
			detail: string(f.FileType),
		})
	}

	m.pager.Reset()
	m.pager.SetTotal(len(m.hits))
}

func (m *SearchModel) selectedHit() *searchHit {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.hits) {
		return &m.hits[i]
	}
	return nil
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.index == nil:
		b.WriteString(styles.MutedText.Render("Building index..."))
	case len(m.hits) == 0:
		if len(strings.TrimSpace(m.input.Value())) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	default:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.hits))))
		b.WriteString("\n\n")

		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderHit(m.hits[i], i == m.pager.Cursor()))
			b.WriteString("\n")
		}

		if m.pager.TotalPages() > 1 {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render(
				fmt.Sprintf("Page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages())))
		}
	}

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(
		SearchKeys.Select, SearchKeys.Copy, SearchKeys.NextPage, SearchKeys.Cancel,
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderHit(hit searchHit, selected bool) string {
	kind := "[file]"
	if hit.isDir {
		kind = "[folder]"
	}

	text := fmt.Sprintf("%s %s", kind, hit.label)
	if hit.detail != "" {
		text += fmt.Sprintf(" (%s)", hit.detail)
	}
	text += "  " + hit.path

	if selected {
		return styles.NodeSelected.Render(text)
	}
	return text
}
