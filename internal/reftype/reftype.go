// Package reftype maps a source format's reference types and tags onto the
// canonical field schema.
package reftype

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Directive selects the transform applied to a field during translation.
type Directive int

const (
	Copy Directive = iota
	Person
	Title
	Pages
	Date
	Keyword
	SerialNo
	URL
	Note
	Eprint
	Genre
	HowPublished
	Organization
	LinkedFile
	Sente
	Skip
	// Always marks entries that are synthesized once per record rather than
	// looked up by tag.
	Always
	// Default is handled by the conversion pipeline itself.
	Default
)

var directiveNames = [...]string{
	Copy:         "COPY",
	Person:       "PERSON",
	Title:        "TITLE",
	Pages:        "PAGES",
	Date:         "DATE",
	Keyword:      "KEYWORD",
	SerialNo:     "SERIALNO",
	URL:          "URL",
	Note:         "NOTE",
	Eprint:       "EPRINT",
	Genre:        "GENRE",
	HowPublished: "HOWPUBLISHED",
	Organization: "ORGANIZATION",
	LinkedFile:   "LINKED_FILE",
	Sente:        "SENTE",
	Skip:         "SKIP",
	Always:       "ALWAYS",
	Default:      "DEFAULT",
}

func (d Directive) String() string {
	if d >= 0 && int(d) < len(directiveNames) {
		return directiveNames[d]
	}
	return fmt.Sprintf("Directive(%d)", int(d))
}

// Lookup is one row of a type definition.
type Lookup struct {
	Source    string
	Dest      string
	Directive Directive
	Level     int
}

// Synth builds an Always entry injecting tag=value at level.
func Synth(tag, value string, level int) Lookup {
	return Lookup{Dest: tag + "|" + value, Directive: Always, Level: level}
}

// Variant is one named reference type.
type Variant struct {
	Name    string
	Lookups []Lookup
}

// Field is a synthesized (tag, value, level) triple.
type Field struct {
	Tag   string
	Value string
	Level int
}

// Table holds every reference type known to one source format.
type Table struct {
	Format   string
	Variants []Variant
	// Default is the index used when a type string does not resolve.
	Default int
}

// Resolve matches name case-insensitively against the known type names. On
// no match it returns the table default and false.
func (t *Table) Resolve(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, v := range t.Variants {
		if strings.EqualFold(v.Name, name) {
			return i, true
		}
	}
	return t.Default, false
}

// Name returns the type name at index reftype.
func (t *Table) Name(reftype int) string {
	if reftype < 0 || reftype >= len(t.Variants) {
		return ""
	}
	return t.Variants[reftype].Name
}

// Names lists the type names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.Name
	}
	return names
}

// Translate finds sourceTag in the definition of reftype. Always entries are
// never returned.
func (t *Table) Translate(sourceTag string, reftype int) (Lookup, bool) {
	if reftype < 0 || reftype >= len(t.Variants) {
		return Lookup{}, false
	}
	for _, l := range t.Variants[reftype].Lookups {
		if l.Directive == Always {
			continue
		}
		if strings.EqualFold(l.Source, sourceTag) {
			return l, true
		}
	}
	return Lookup{}, false
}

// Synthesized returns the fields every record of reftype receives.
func (t *Table) Synthesized(reftype int) []Field {
	if reftype < 0 || reftype >= len(t.Variants) {
		return nil
	}
	var out []Field
	for _, l := range t.Variants[reftype].Lookups {
		if l.Directive != Always {
			continue
		}
		tag, value, ok := strings.Cut(l.Dest, "|")
		if !ok || tag == "" || value == "" {
			continue
		}
		out = append(out, Field{Tag: tag, Value: value, Level: l.Level})
	}
	return out
}

// Suggest returns the known type name closest to name, or "" when nothing is
// reasonably similar.
func (t *Table) Suggest(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false

	best, bestScore := "", 0.0
	for _, v := range t.Variants {
		score := strutil.Similarity(name, v.Name, lev)
		if score > bestScore {
			best, bestScore = v.Name, score
		}
	}
	if bestScore < 0.6 {
		return ""
	}
	return best
}

// Validate checks the table's internal consistency.
func (t *Table) Validate() error {
	if len(t.Variants) == 0 {
		return fmt.Errorf("%s: no reference types", t.Format)
	}
	if t.Default < 0 || t.Default >= len(t.Variants) {
		return fmt.Errorf("%s: default type %d out of range", t.Format, t.Default)
	}
	for _, v := range t.Variants {
		for _, l := range v.Lookups {
			if l.Directive == Always {
				if !strings.Contains(l.Dest, "|") {
					return fmt.Errorf("%s/%s: synthesized entry %q lacks tag|value", t.Format, v.Name, l.Dest)
				}
				continue
			}
			if l.Source == "" {
				return fmt.Errorf("%s/%s: entry with empty source tag", t.Format, v.Name)
			}
		}
	}
	return nil
}
