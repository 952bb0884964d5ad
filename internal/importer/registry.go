// Package importer holds the input format adapters: record framing, parsing
// and the reference type tables of each source format.
package importer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/pipeline"
)

var formats = map[string]func() pipeline.InputFormat{
	"bibtex":   func() pipeline.InputFormat { return NewBibTeX() },
	"biblatex": func() pipeline.InputFormat { return NewBibLaTeX() },
	"ris":      func() pipeline.InputFormat { return NewRIS() },
	"copac":    func() pipeline.InputFormat { return NewCOPAC() },
	"mods":     func() pipeline.InputFormat { return NewMODS() },
	"jsonl":    func() pipeline.InputFormat { return NewJSONL() },
}

// Lookup returns a new adapter for the named input format.
func Lookup(name string) (pipeline.InputFormat, error) {
	newFormat, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown input format %q (known: %s): %w",
			name, strings.Join(Names(), ", "), diag.ErrBadInput)
	}
	return newFormat(), nil
}

// Names lists the input formats in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
