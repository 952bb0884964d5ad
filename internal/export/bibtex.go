package export

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
)

// BibTeX writes @type{key, tag = {value}, ...} entries.
type BibTeX struct{}

// NewBibTeX returns the BibTeX output format.
func NewBibTeX() *BibTeX { return &BibTeX{} }

func (BibTeX) Name() string { return "bibtex" }

func (BibTeX) Suffix() string { return "bib" }

// Configure asks for LaTeX-encoded output.
func (BibTeX) Configure(p *pipeline.Params) {
	p.WriteFormat = "bibtex"
	p.Out.Latex = true
}

func (BibTeX) Header(w io.Writer, p *pipeline.Params) error {
	return writeBOM(w, p)
}

// Write writes one entry. Entries after the first are preceded by a blank
// line.
func (BibTeX) Write(w io.Writer, ref *fields.Fields, _ *pipeline.Params, n int) error {
	var b strings.Builder
	if n > 0 {
		b.WriteString("\n")
	}
	entryType := determineEntryType(ref)
	fmt.Fprintf(&b, "@%s{%s,\n", entryType, ref.Lookup("REFNUM", fields.LevelMain))

	field := func(tag, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %s = {%s},\n", tag, value)
		}
	}

	field("author", formatAuthors(persons(ref, "AUTHOR", fields.LevelMain)))
	field("editor", formatAuthors(persons(ref, "EDITOR", fields.LevelMain)))
	if entryType != "article" {
		field("editor", formatAuthors(persons(ref, "EDITOR", fields.LevelHost)))
	}
	field("title", title(ref, fields.LevelMain))

	// Venue
	if venue := title(ref, fields.LevelHost); venue != "" {
		fieldName := "booktitle"
		switch entryType {
		case "article":
			fieldName = "journal"
		case "book", "misc", "techreport", "phdthesis", "mastersthesis":
			fieldName = "series"
		}
		field(fieldName, venue)
	}
	if entryType != "book" {
		field("series", title(ref, fields.LevelSeries))
	}

	field("year", first(ref, mainFirst, "PARTYEAR", "YEAR"))
	field("month", first(ref, mainFirst, "PARTMONTH", "MONTH"))
	field("day", first(ref, mainFirst, "PARTDAY", "DAY"))
	field("volume", first(ref, mainFirst, "VOLUME"))
	field("number", first(ref, mainFirst, "NUMBER", "ISSUE"))
	field("pages", formatPages(ref))
	field("pagetotal", ref.Lookup("TOTALPAGES", fields.LevelMain))
	field("edition", first(ref, mainFirst, "EDITION"))

	publisher := first(ref, mainFirst, "PUBLISHER")
	switch entryType {
	case "phdthesis", "mastersthesis":
		field("school", publisher)
	case "techreport":
		field("institution", publisher)
	default:
		field("publisher", publisher)
	}
	field("address", first(ref, mainFirst, "ADDRESS"))
	field("isbn", first(ref, mainFirst, "ISBN", "ISBN13"))
	field("issn", first(ref, mainFirst, "ISSN"))
	field("doi", ref.Lookup("DOI", fields.LevelAny))
	field("url", ref.Lookup("URL", fields.LevelAny))
	if arxiv := ref.Lookup("ARXIV", fields.LevelAny); arxiv != "" {
		field("eprint", arxiv)
		field("archiveprefix", "arXiv")
	}
	field("pmid", ref.Lookup("PMID", fields.LevelAny))
	field("language", ref.Lookup("LANGUAGE", fields.LevelMain))
	field("keywords", strings.Join(ref.Values("KEYWORD", fields.LevelAny), ", "))

	// Abstract (optional, if present)
	field("abstract", ref.Lookup("ABSTRACT", fields.LevelMain))
	field("note", strings.Join(ref.Values("NOTES", fields.LevelAny), "; "))

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

var genreEntryTypes = map[string]string{
	"journal article":        "article",
	"magazine article":       "article",
	"newspaper article":      "article",
	"abstract or summary":    "article",
	"book":                   "book",
	"book chapter":           "incollection",
	"conference publication": "inproceedings",
	"report":                 "techreport",
	"unpublished":            "unpublished",
	"web page":               "misc",
	"electronic":             "misc",
}

var mastersGenres = []string{"masters thesis", "diploma thesis"}

// determineEntryType returns the BibTeX entry type for a reference: the
// type it was read with, else one implied by its genre, else one guessed
// from the venue.
func determineEntryType(ref *fields.Fields) string {
	if t := ref.Lookup("INTERNAL_TYPE", fields.LevelMain); t != "" {
		return strings.ToLower(t)
	}

	genres := ref.Values("GENRE", fields.LevelMain)
	for i, g := range genres {
		genres[i] = strings.ToLower(g)
	}
	if slices.Contains(genres, "thesis") {
		for _, g := range mastersGenres {
			if slices.Contains(genres, g) {
				return "mastersthesis"
			}
		}
		return "phdthesis"
	}
	for _, g := range genres {
		if t, ok := genreEntryTypes[g]; ok {
			return t
		}
	}

	venue := strings.ToLower(ref.Lookup("TITLE", fields.LevelHost))
	if venue == "" {
		return "misc"
	}

	// Conference proceedings
	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") ||
		strings.Contains(venue, "symposium") {
		return "inproceedings"
	}

	// Default to article
	return "article"
}

// formatAuthors formats names in BibTeX style: "Last, First and Last, First".
// Verbatim names are braced; a trailing "et al." becomes "others".
func formatAuthors(names []person) string {
	var formatted []string
	for _, p := range names {
		switch {
		case p.etAl():
			formatted = append(formatted, "others")
		case p.verbatim:
			formatted = append(formatted, "{"+p.value+"}")
		default:
			formatted = append(formatted, formatName(p.value))
		}
	}
	return strings.Join(formatted, " and ")
}

func formatPages(ref *fields.Fields) string {
	start := ref.Lookup("PAGESTART", fields.LevelMain)
	end := ref.Lookup("PAGEEND", fields.LevelMain)
	switch {
	case start != "" && end != "":
		return start + "--" + end
	case start != "":
		return start
	default:
		return ref.Lookup("ARTICLENUMBER", fields.LevelMain)
	}
}

var (
	_ pipeline.OutputFormat = BibTeX{}
	_ pipeline.Headerer     = BibTeX{}
)
