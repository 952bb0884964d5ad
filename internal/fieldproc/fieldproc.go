// Package fieldproc holds the semantic transforms applied to a source field
// according to its processing directive.
package fieldproc

import (
	"slices"
	"strings"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/reftype"
)

// Options are the job-level settings processors consult.
type Options struct {
	// Asis and Corps are literal names stored verbatim.
	Asis  []string
	Corps []string
	// NoSplitTitle keeps titles whole instead of splitting off subtitles.
	NoSplitTitle bool
}

// IsAsis reports whether name is on the as-is list.
func (o Options) IsAsis(name string) bool { return slices.Contains(o.Asis, name) }

// IsCorp reports whether name is on the corporate-name list.
func (o Options) IsCorp(name string) bool { return slices.Contains(o.Corps, name) }

// Context is what a processor sees while translating one record.
type Context struct {
	// In is the source record. Processors that fold several source fields
	// together mark the extra ones used.
	In      *fields.Fields
	Out     *fields.Fields
	Options Options
}

// Func processes one source value into zero or more output fields. tag is the
// destination tag from the type table.
type Func func(c *Context, tag, value string, level int)

var registry = map[reftype.Directive]Func{
	reftype.Copy:         Copy,
	reftype.Person:       Names,
	reftype.Title:        Title,
	reftype.Pages:        Pages,
	reftype.Date:         Date,
	reftype.Keyword:      Keywords,
	reftype.SerialNo:     SerialNo,
	reftype.URL:          URL,
	reftype.Note:         Note,
	reftype.Eprint:       Eprint,
	reftype.Genre:        Genre,
	reftype.HowPublished: HowPublished,
	reftype.Organization: Organization,
	reftype.LinkedFile:   LinkedFile,
	reftype.Sente:        Sente,
	reftype.Skip:         Skip,
}

// For returns the processor for d. Always and Default are handled by the
// pipeline; they map to Skip and Copy respectively.
func For(d reftype.Directive) Func {
	if fn, ok := registry[d]; ok {
		return fn
	}
	if d == reftype.Default {
		return Copy
	}
	return Skip
}

// Copy adds the value unchanged.
func Copy(c *Context, tag, value string, level int) {
	c.Out.Add(tag, value, level)
}

// Skip consumes the value without output.
func Skip(*Context, string, string, int) {}

// Keywords splits a semicolon-delimited list into repeated fields. Commas are
// left alone since they often belong to a single keyword.
func Keywords(c *Context, tag, value string, level int) {
	if tag == "" {
		tag = "KEYWORD"
	}
	for _, kw := range strings.Split(value, ";") {
		c.Out.Add(tag, strings.TrimSpace(kw), level)
	}
}

// Date splits "year/month/day/other". A destination tag starting with PART
// produces the PARTYEAR family of tags.
func Date(c *Context, tag, value string, level int) {
	names := []string{"YEAR", "MONTH", "DAY", "DATEOTHER"}
	prefix := ""
	if strings.HasPrefix(strings.ToUpper(tag), "PART") {
		prefix = "PART"
	}
	parts := strings.SplitN(value, "/", 4)
	for i, p := range parts {
		c.Out.Add(prefix+names[i], strings.TrimSpace(p), level)
	}
}

// SerialNo classifies an ISSN/ISBN style identifier by its digit count.
func SerialNo(c *Context, tag, value string, level int) {
	value = strings.TrimSpace(value)
	upper := strings.ToUpper(value)
	switch {
	case strings.HasPrefix(upper, "ISSN"):
		c.Out.Add("ISSN", trimLabel(value), level)
		return
	case strings.HasPrefix(upper, "ISBN"):
		isbnTag := "ISBN"
		if countDigits(value) == 13 {
			isbnTag = "ISBN13"
		}
		c.Out.Add(isbnTag, trimLabel(value), level)
		return
	}
	switch countDigits(value) {
	case 8:
		c.Out.Add("ISSN", value, level)
	case 10:
		c.Out.Add("ISBN", value, level)
	case 13:
		c.Out.Add("ISBN13", value, level)
	default:
		c.Out.Add("SERIALNUMBER", value, level)
	}
}

func trimLabel(s string) string {
	s = strings.TrimSpace(s[4:])
	return strings.TrimSpace(strings.TrimLeft(s, ":"))
}

// countDigits counts digits plus a check character X.
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == 'X' || r == 'x' {
			n++
		}
	}
	return n
}

// thesisGenre maps a free-text description onto a fixed thesis genre.
func thesisGenre(value string) (string, bool) {
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "diplom"):
		return "Diploma thesis", true
	case strings.HasPrefix(lower, "habilitation"):
		return "Habilitation thesis", true
	}
	return "", false
}

// Genre adds the value as a genre, normalizing thesis descriptions.
func Genre(c *Context, tag, value string, level int) {
	if g, ok := thesisGenre(value); ok {
		c.Out.ReplaceOrAdd("GENRE", g, level)
		return
	}
	if tag == "" {
		tag = "GENRE"
	}
	c.Out.Add(tag, value, level)
}

// HowPublished recognizes thesis descriptions and links; anything else is a
// description.
func HowPublished(c *Context, tag, value string, level int) {
	if g, ok := thesisGenre(value); ok {
		c.Out.ReplaceOrAdd("GENRE", g, level)
		return
	}
	if tag == "" {
		tag = "DESCRIPTION"
	}
	urlCore(c, tag, value, level)
}

// Organization becomes the organizer when the source record already names a
// publisher, and the publisher otherwise.
func Organization(c *Context, _ string, value string, level int) {
	if c.In != nil && c.In.Find("publisher", fields.LevelAny) != fields.NotFound {
		c.Out.Add("ORGANIZER:CORP", value, level)
		return
	}
	c.Out.Add("PUBLISHER:CORP", value, level)
}

// Sente extracts the path from "file://path,Sente,PDF".
func Sente(c *Context, _ string, value string, level int) {
	link, _, _ := strings.Cut(value, ",")
	c.Out.Add("FILEATTACH", strings.TrimSpace(link), level)
}
