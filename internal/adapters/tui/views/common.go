package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching. The app model routes on these; views emit
// them instead of mutating each other.

// SwitchToBrowserMsg returns to the tree browser.
type SwitchToBrowserMsg struct{}

// SwitchToSearchMsg opens the live search view.
type SwitchToSearchMsg struct{}

// SwitchToDetailMsg opens the record detail view for a subject path,
// relative to the documents root.
type SwitchToDetailMsg struct {
	Path  string
	IsDir bool
}

// SwitchToFormMsg opens the record form. Edit prefills from the existing
// record and merges on submit; otherwise the form initializes a new one.
type SwitchToFormMsg struct {
	Path  string
	IsDir bool
	Edit  bool
}

// SwitchToDeleteMsg opens the delete confirmation for a subject's record.
type SwitchToDeleteMsg struct {
	Path  string
	IsDir bool
}

// SwitchToHelpMsg opens the help view.
type SwitchToHelpMsg struct{}

// OpenEditorMsg requests opening a path in the external editor.
type OpenEditorMsg struct {
	Path string
}

// Shared result messages.

type errMsg struct {
	err error
}

type statusMsg struct {
	text string
}
