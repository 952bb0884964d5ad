package clipboard

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func withPaths(t *testing.T, installed ...string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if slices.Contains(installed, name) {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		installed []string
		want      []string
	}{
		{"macOS", "darwin", []string{"pbcopy"}, []string{"pbcopy"}},
		{"linux xclip", "linux", []string{"xclip", "xsel"}, []string{"xclip", "-selection", "clipboard"}},
		{"linux xsel", "linux", []string{"xsel"}, []string{"xsel", "--clipboard", "--input"}},
		{"linux nothing", "linux", nil, nil},
		{"windows", "windows", []string{"pbcopy", "xclip"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withPaths(t, tt.installed...)
			got, err := command(tt.goos)
			if tt.want == nil {
				if !errors.Is(err, ErrClipboardUnavailable) {
					t.Errorf("command(%q) error = %v, want ErrClipboardUnavailable", tt.goos, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("command(%q) error = %v", tt.goos, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("command(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestWriterBuffers(t *testing.T) {
	w := &Writer{argv: []string{"true"}}
	if _, err := w.Write([]byte("@misc{k,\n}\n")); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 11 {
		t.Errorf("Len() = %d, want 11", w.Len())
	}
}

func TestNewWriterUnavailable(t *testing.T) {
	withPaths(t)
	if _, err := NewWriter(); !errors.Is(err, ErrClipboardUnavailable) {
		t.Errorf("NewWriter() error = %v, want ErrClipboardUnavailable", err)
	}
}
