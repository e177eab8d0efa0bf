package ports

import "os/exec"

// EditorOpener opens sidecar files in an external editor.
type EditorOpener interface {
	// OpenFile opens the given path in the user's preferred editor,
	// resolved from $EDITOR with fallbacks to common editors.
	OpenFile(path string) error

	// Command returns the exec.Cmd that would open the path. Useful for
	// handing the terminal over via bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
