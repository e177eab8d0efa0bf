package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/views"
	"folio/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewDetail
	ViewForm
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	search  *views.SearchModel
	detail  *views.DetailModel
	form    *views.FormModel
	confirm *views.DeleteModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over the documents root
func NewApp(root string, store ports.MetadataStore, indexer ports.Indexer, ed ports.EditorOpener) *App {
	return &App{
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(root, indexer),
		search:  views.NewSearchModel(root, indexer),
		detail:  views.NewDetailModel(root, store),
		form:    views.NewFormModel(root, store, ed != nil),
		confirm: views.NewDeleteModel(root, store),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, tea.Batch(a.search.Init(), a.search.Reset())

	case views.SwitchToDetailMsg:
		a.state = ViewDetail
		a.detail.SetTarget(msg.Path, msg.IsDir)
		return a, a.detail.Init()

	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.SetTarget(msg.Path, msg.IsDir, msg.Edit)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.confirm.SetTarget(msg.Path, msg.IsDir)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	// Form messages
	case views.FormSavedMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, false)
		cmds := []tea.Cmd{a.browser.Reload()}
		if msg.SidecarPath != "" && a.editor != nil {
			cmds = append(cmds, a.openEditor(msg.SidecarPath))
		}
		return a, tea.Batch(cmds...)

	case views.FormErrMsg:
		a.form.SetMessage(msg.Err.Error(), true)
		return a, nil

	// Delete messages
	case views.DeleteSuccessMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, false)
		return a, a.browser.Reload()

	case views.DeleteErrMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Err.Error(), true)
		return a, a.browser.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.state = ViewBrowser
			a.browser.SetMessage(msg.err.Error(), true)
			return a, nil
		}
		// Records may have changed under the editor.
		switch a.state {
		case ViewDetail:
			return a, a.detail.Init()
		default:
			return a, a.browser.Reload()
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewDetail:
		return a.detail.View()
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
