// Package editor launches the user's editor on sidecar files.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors are tried in order when neither $EDITOR nor $VISUAL
// is set.
var fallbackEditors = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener implements ports.EditorOpener
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a path in the user's preferred editor and waits for it
// to exit.
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the exec.Cmd that would open the path, wired to the
// current terminal. Useful for handing over via bubbletea's ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := resolveEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func resolveEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range fallbackEditors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
