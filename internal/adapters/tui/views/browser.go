package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/adapters/tui/styles"
	"folio/internal/domain"
	"folio/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Detail key.Binding
	New    key.Binding
	Edit   key.Binding
	Open   key.Binding
	Delete key.Binding
	Copy   key.Binding
	Search key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/open"),
	),
	Detail: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "view record"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new record"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in editor"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete record"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the tree browser view
type BrowserModel struct {
	ViewState
	root    string
	indexer ports.Indexer
	tree    *domain.TreeNode
	flat    []*domain.TreeNode
	cursor  int
	offset  int
}

// NewBrowserModel creates a new browser model over the documents root
func NewBrowserModel(root string, indexer ports.Indexer) *BrowserModel {
	return &BrowserModel{
		root:    root,
		indexer: indexer,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	idx, err := m.indexer.Build(context.Background(), m.root)
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{domain.BuildTree(idx)}
}

type treeLoadedMsg struct {
	root *domain.TreeNode
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.tree = msg.root
		m.refreshFlat()
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
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flat)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsDir && node.IsExpanded {
					node.Collapse()
					m.refreshFlat()
				} else if node.Parent != nil {
					for i, n := range m.flat {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil {
				if !node.IsDir {
					if key.Matches(msg, BrowserKeys.Enter) {
						return m, switchToDetail(node)
					}
					return m, nil
				}
				if !node.IsExpanded {
					node.Expand()
					m.refreshFlat()
				} else if key.Matches(msg, BrowserKeys.Enter) {
					node.Collapse()
					m.refreshFlat()
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Detail):
			if node := m.selectedNode(); node != nil {
				return m, switchToDetail(node)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			if node := m.selectedNode(); node != nil {
				return m, func() tea.Msg {
					return SwitchToFormMsg{Path: node.Path, IsDir: node.IsDir}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if node := m.selectedNode(); node != nil && nodeHasRecord(node) {
				return m, func() tea.Msg {
					return SwitchToFormMsg{Path: node.Path, IsDir: node.IsDir, Edit: true}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			if node := m.selectedNode(); node != nil && nodeHasRecord(node) {
				sidecar := m.sidecarPath(node)
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: sidecar}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Delete):
			if node := m.selectedNode(); node != nil && nodeHasRecord(node) {
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{Path: node.Path, IsDir: node.IsDir}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if node := m.selectedNode(); node != nil {
				return m, copyPath(node.Path)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func switchToDetail(node *domain.TreeNode) tea.Cmd {
	path, isDir := node.Path, node.IsDir
	return func() tea.Msg {
		return SwitchToDetailMsg{Path: path, IsDir: isDir}
	}
}

func copyPath(path string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(path); err != nil {
			return errMsg{err}
		}
		return statusMsg{fmt.Sprintf("Copied %s", path)}
	}
}

// nodeHasRecord reports whether a sidecar record backs the node. File
// nodes always come from a record; folder nodes may be bare ancestors.
func nodeHasRecord(node *domain.TreeNode) bool {
	if node.IsDir {
		return node.Folder != nil
	}
	return true
}

func (m *BrowserModel) sidecarPath(node *domain.TreeNode) string {
	abs := filepath.Join(m.root, filepath.FromSlash(node.Path))
	if node.IsDir {
		return domain.FolderMetaPath(abs)
	}
	return domain.FileMetaPath(abs)
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flat) {
		return m.flat[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlat() {
	if m.tree == nil {
		return
	}
	m.flat = m.tree.Flatten()
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.tree == nil {
		return styles.App.Render("Building index...")
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Folio"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.root))
	b.WriteString("\n\n")

	start, end := m.visibleWindow()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.flat[i], i == m.cursor))
		b.WriteString("\n")
	}
	if end < len(m.flat) {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("… %d more", len(m.flat)-end)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderPreview())

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.New, BrowserKeys.Edit, BrowserKeys.Delete,
		BrowserKeys.Copy, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// visibleWindow slides a fixed-height window over the flattened tree so
// the cursor stays on screen.
func (m *BrowserModel) visibleWindow() (int, int) {
	rows := m.treeRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	end := min(m.offset+rows, len(m.flat))
	return m.offset, end
}

func (m *BrowserModel) treeRows() int {
	if m.Height == 0 {
		return len(m.flat)
	}
	// Title, preview panel, message and help line take the rest.
	rows := m.Height - 14
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix string
	switch {
	case !node.IsDir:
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	var text string
	var style lipgloss.Style
	if node.IsDir {
		text = node.Label()
		if node.Folder != nil {
			style = styles.NodeFolder.Foreground(styles.CategoryColor(node.Folder.Category))
		} else {
			style = styles.NodeBare
		}
	} else {
		text = node.Name
		style = styles.NodeFile
	}

	styled := style.Render(text)
	if selected {
		styled = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styled)
}

func (m *BrowserModel) renderPreview() string {
	node := m.selectedNode()
	if node == nil {
		return ""
	}

	var lines []string
	switch {
	case node.IsDir && node.Folder != nil:
		f := node.Folder
		lines = append(lines, RenderLabelValue("Folder", f.Name))
		lines = append(lines, RenderLabelValue("Category", f.Category))
		if len(f.Tags) > 0 {
			lines = append(lines, RenderLabelValue("Tags", strings.Join(f.Tags, ", ")))
		}
		lines = append(lines, RenderLabelValue("Updated", f.Updated))
		if f.Description != "" {
			lines = append(lines, truncateText(f.Description, 100))
		}
	case node.IsDir:
		lines = append(lines, styles.MutedText.Render("No folder record. Press n to create one."))
	default:
		f := node.File
		lines = append(lines, RenderLabelValue("Title", f.Title))
		lines = append(lines, RenderLabelValue("Type", fmt.Sprintf("%s, %s", f.FileType, domain.FormatSize(f.Size))))
		if len(f.Tags) > 0 {
			lines = append(lines, RenderLabelValue("Tags", strings.Join(f.Tags, ", ")))
		}
		lines = append(lines, RenderLabelValue("Author", f.Author))
		if f.Description != "" {
			lines = append(lines, truncateText(f.Description, 100))
		}
	}

	return styles.Preview.Render(strings.Join(lines, "\n"))
}

// Reload reloads the tree from disk
func (m *BrowserModel) Reload() tea.Cmd {
	m.tree = nil
	m.flat = nil
	m.cursor = 0
	m.offset = 0
	return m.loadTree
}
