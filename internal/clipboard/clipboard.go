// Package clipboard sends converted references to the system clipboard
// through the platform's copy command.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrClipboardUnavailable is returned when no copy command is installed.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// command returns the copy command and its arguments for goos.
func command(goos string) ([]string, error) {
	switch goos {
	case "darwin":
		if _, err := lookPath("pbcopy"); err == nil {
			return []string{"pbcopy"}, nil
		}
	case "linux":
		if _, err := lookPath("xclip"); err == nil {
			return []string{"xclip", "-selection", "clipboard"}, nil
		}
		if _, err := lookPath("xsel"); err == nil {
			return []string{"xsel", "--clipboard", "--input"}, nil
		}
	}
	return nil, ErrClipboardUnavailable
}

// IsAvailable reports whether a copy command exists on this system.
func IsAvailable() bool {
	_, err := command(runtime.GOOS)
	return err == nil
}

// Writer buffers output and hands it to the clipboard on Close.
type Writer struct {
	buf  bytes.Buffer
	argv []string
}

// NewWriter returns a Writer, or ErrClipboardUnavailable when there is no
// copy command.
func NewWriter() (*Writer, error) {
	argv, err := command(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	return &Writer{argv: argv}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (w *Writer) Len() int { return w.buf.Len() }

// Close copies the buffered text to the clipboard.
func (w *Writer) Close() error {
	cmd := exec.Command(w.argv[0], w.argv[1:]...)
	cmd.Stdin = &w.buf
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %w: %s", w.argv[0], err, bytes.TrimSpace(out))
	}
	return nil
}
