// Package export provides the output writers that serialize converted
// references.
package export

import (
	"io"
	"strings"

	"github.com/matsen/bibconv/internal/fieldproc"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
)

// person is one name field of a record.
type person struct {
	value string
	// verbatim is set for ":ASIS" and ":CORP" names, which are not split.
	verbatim bool
}

// persons returns the names stored under tag at level in record order,
// including the verbatim and corporate variants.
func persons(ref *fields.Fields, tag string, level int) []person {
	var out []person
	for _, f := range ref.All() {
		if f.Level != level {
			continue
		}
		switch {
		case strings.EqualFold(f.Tag, tag):
			out = append(out, person{value: f.Value})
		case strings.EqualFold(f.Tag, tag+":ASIS"), strings.EqualFold(f.Tag, tag+":CORP"):
			out = append(out, person{value: f.Value, verbatim: true})
		}
	}
	return out
}

func (p person) etAl() bool {
	return p.verbatim && p.value == fieldproc.EtAl
}

// formatName turns "Family|Given|Given" into "Family, Given Given".
func formatName(value string) string {
	parts := strings.Split(value, "|")
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + ", " + strings.Join(parts[1:], " ")
}

// first returns the first value of any of tags, trying levels in order.
func first(ref *fields.Fields, levels []int, tags ...string) string {
	for _, level := range levels {
		for _, tag := range tags {
			if v := ref.Lookup(tag, level); v != "" {
				return v
			}
		}
	}
	return ""
}

// title joins a title and its subtitle at level.
func title(ref *fields.Fields, level int) string {
	t := ref.Lookup("TITLE", level)
	if sub := ref.Lookup("SUBTITLE", level); sub != "" {
		if t == "" {
			return sub
		}
		t += ": " + sub
	}
	return t
}

var (
	mainOnly  = []int{fields.LevelMain}
	mainFirst = []int{fields.LevelMain, fields.LevelHost, fields.LevelSeries}
)

const utf8BOM = "\xef\xbb\xbf"

// writeBOM writes a byte order mark when UTF-8 output asks for one.
func writeBOM(w io.Writer, p *pipeline.Params) error {
	if !p.UTF8BOM || !p.Out.IsUnicode() {
		return nil
	}
	_, err := io.WriteString(w, utf8BOM)
	return err
}
