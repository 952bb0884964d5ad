package export

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/pipeline"
)

var formats = map[string]func() pipeline.OutputFormat{
	"bibtex": func() pipeline.OutputFormat { return NewBibTeX() },
	"ris":    func() pipeline.OutputFormat { return NewRIS() },
	"jsonl":  func() pipeline.OutputFormat { return NewJSONL() },
}

// Lookup returns a new writer for the named output format.
func Lookup(name string) (pipeline.OutputFormat, error) {
	newFormat, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (known: %s): %w",
			name, strings.Join(Names(), ", "), diag.ErrBadInput)
	}
	return newFormat(), nil
}

// Names lists the output formats in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
