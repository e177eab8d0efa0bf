package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/application/commands"
	"folio/internal/ports"
)

// DeleteModel is the model for the delete record confirmation view
type DeleteModel struct {
	ConfirmationModel
	root  string
	store ports.MetadataStore
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(root string, store ports.MetadataStore) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		root:              root,
		store:             store,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return SwitchToBrowserMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if m.TargetPath == "" {
		return DeleteErrMsg{Err: fmt.Errorf("no target selected")}
	}

	abs := filepath.Join(m.root, filepath.FromSlash(m.TargetPath))
	cmd := commands.NewDeleteRecordCommand(m.store, abs)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return DeleteErrMsg{Err: err}
	}

	return DeleteSuccessMsg{Message: result.Message}
}

// DeleteSuccessMsg indicates successful record deletion
type DeleteSuccessMsg struct {
	Message string
}

// DeleteErrMsg indicates an error during deletion
type DeleteErrMsg struct {
	Err error
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Record"))
	b.WriteString("\n\n")

	b.WriteString(RenderTargetInfo(m.TargetPath, m.TargetIsDir, "Delete"))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("  Only the sidecar record is removed. The file or folder stays."))
	b.WriteString("\n\n")

	b.WriteString(RenderConfirmPrompt("Are you sure?"))

	return styles.App.Render(b.String())
}
