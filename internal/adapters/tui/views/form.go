package views

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/application/commands"
	"folio/internal/domain"
	"folio/internal/ports"
)

// Form field indices, in display order.
const (
	fieldPath = iota
	fieldName
	fieldDescription
	fieldCategory
	fieldTags
	fieldAuthor
	fieldCount
)

// FormModel creates or edits a subject's metadata record.
type FormModel struct {
	ViewState
	root         string
	store        ports.MetadataStore
	openInEditor bool

	path  string
	isDir bool
	edit  bool
	form  *InputForm
}

// NewFormModel creates a new record form model
func NewFormModel(root string, store ports.MetadataStore, openInEditor bool) *FormModel {
	return &FormModel{
		root:         root,
		store:        store,
		openInEditor: openInEditor,
	}
}

// SetTarget points the form at a subject. Edit prefills the fields from
// the stored record; when none exists the form falls back to creating.
func (m *FormModel) SetTarget(path string, isDir bool, edit bool) {
	m.path = path
	m.isDir = isDir
	m.edit = edit
	m.ClearMessage()

	nameLabel := "Title:"
	if isDir {
		nameLabel = "Name:"
	}

	m.form = NewInputForm(
		NewInputField("Path:", "relative to the documents root", 200),
		NewInputField(nameLabel, "", 100),
		NewInputField("Description:", "", 200),
		NewInputField("Category:", domain.DefaultFolderCategory, 50),
		NewInputField("Tags:", "comma separated", 200),
		NewInputField("Author:", "", 50),
	)
	m.form.SetValue(fieldPath, path)
	m.form.SetFocus(fieldName)

	if edit {
		m.prefill()
	}
}

func (m *FormModel) prefill() {
	abs := filepath.Join(m.root, filepath.FromSlash(m.path))
	if m.isDir {
		rec, ok := m.store.ReadFolderRecord(abs)
		if !ok {
			m.edit = false
			m.SetMessage("No existing record, a new one will be created", false)
			return
		}
		m.form.SetValue(fieldName, rec.Name)
		m.form.SetValue(fieldDescription, rec.Description)
		m.form.SetValue(fieldCategory, rec.Category)
		m.form.SetValue(fieldTags, strings.Join(rec.Tags, ", "))
		m.form.SetValue(fieldAuthor, rec.Author)
		return
	}

	rec, ok := m.store.ReadFileRecord(abs)
	if !ok {
		m.edit = false
		m.SetMessage("No existing record, a new one will be created", false)
		return
	}
	m.form.SetValue(fieldName, rec.Title)
	m.form.SetValue(fieldDescription, rec.Description)
	m.form.SetValue(fieldCategory, rec.Category)
	m.form.SetValue(fieldTags, strings.Join(rec.Tags, ", "))
	m.form.SetValue(fieldAuthor, rec.Author)
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FormModel) submit() tea.Cmd {
	return func() tea.Msg {
		rel := m.form.Value(fieldPath)
		if rel == "" {
			return FormErrMsg{Err: fmt.Errorf("path is required")}
		}
		abs := filepath.Join(m.root, filepath.FromSlash(rel))

		if m.edit {
			return m.doUpdate(abs)
		}
		return m.doInit(abs)
	}
}

func (m *FormModel) doInit(abs string) tea.Msg {
	info, err := os.Stat(abs)
	if err != nil {
		return FormErrMsg{Err: err}
	}

	ctx := context.Background()
	if info.IsDir() {
		cmd := commands.NewInitFolderCommand(m.store, abs, ports.FolderInit{
			Name:        m.form.Value(fieldName),
			Description: m.form.Value(fieldDescription),
			Category:    m.form.Value(fieldCategory),
			Tags:        parseTags(m.form.Value(fieldTags)),
			Author:      m.form.Value(fieldAuthor),
		})
		result, err := cmd.Execute(ctx)
		if err != nil {
			return FormErrMsg{Err: err}
		}
		return FormSavedMsg{Message: result.Message, SidecarPath: domain.FolderMetaPath(abs)}
	}

	cmd := commands.NewInitFileCommand(m.store, abs, ports.FileInit{
		Title:       m.form.Value(fieldName),
		Description: m.form.Value(fieldDescription),
		Category:    m.form.Value(fieldCategory),
		Tags:        parseTags(m.form.Value(fieldTags)),
		Author:      m.form.Value(fieldAuthor),
	})
	result, err := cmd.Execute(ctx)
	if err != nil {
		return FormErrMsg{Err: err}
	}
	return FormSavedMsg{Message: result.Message, SidecarPath: domain.FileMetaPath(abs)}
}

func (m *FormModel) doUpdate(abs string) tea.Msg {
	updates := map[string]any{}
	nameKey := "title"
	if m.isDir {
		nameKey = "name"
	}
	if v := m.form.Value(fieldName); v != "" {
		updates[nameKey] = v
	}
	if v := m.form.Value(fieldDescription); v != "" {
		updates["description"] = v
	}
	if v := m.form.Value(fieldCategory); v != "" {
		updates["category"] = v
	}
	if v := m.form.Value(fieldTags); v != "" {
		updates["tags"] = parseTags(v)
	}
	if v := m.form.Value(fieldAuthor); v != "" {
		updates["author"] = v
	}
	if len(updates) == 0 {
		return FormErrMsg{Err: fmt.Errorf("nothing to update")}
	}

	cmd := commands.NewUpdateRecordCommand(m.store, abs, updates)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return FormErrMsg{Err: err}
	}
	return FormSavedMsg{Message: result.Message}
}

// parseTags splits a comma separated tag list, dropping empties.
func parseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FormSavedMsg indicates the record was written. SidecarPath is set on
// creation so the app can hand the new sidecar to the editor.
type FormSavedMsg struct {
	Message     string
	SidecarPath string
}

// FormErrMsg indicates an error while saving
type FormErrMsg struct {
	Err error
}

// View renders the form view
func (m *FormModel) View() string {
	if m.form == nil {
		return ""
	}

	var b strings.Builder

	title := "New Record"
	subtitle := "Derived fields (statistics, type, checksum) are filled automatically."
	if m.edit {
		title = "Edit Record"
		subtitle = "Changes merge into the existing record. Empty fields keep their value."
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render(subtitle))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("save"))

	return styles.App.Render(b.String())
}
