package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadList reads a name list file: one name per line, blank lines and lines
// starting with '#' ignored, surrounding blanks trimmed.
func ReadList(path string) ([]string, error) {
	file, err := os.Open(ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("opening name list: %w", err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading name list %s: %w", path, err)
	}
	return names, nil
}

// AddListFiles reads each file and passes its names to add.
func AddListFiles(paths []string, add func(string)) error {
	for _, path := range paths {
		names, err := ReadList(path)
		if err != nil {
			return err
		}
		for _, name := range names {
			add(name)
		}
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
