package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
)

// RIS writes tagged "XX  - value" records closed by an ER line.
type RIS struct{}

// NewRIS returns the RIS output format.
func NewRIS() *RIS { return &RIS{} }

func (RIS) Name() string { return "ris" }

func (RIS) Suffix() string { return "ris" }

func (RIS) Configure(p *pipeline.Params) {
	p.WriteFormat = "ris"
	p.Out.Latex = false
}

func (RIS) Header(w io.Writer, p *pipeline.Params) error {
	return writeBOM(w, p)
}

func (RIS) Write(w io.Writer, ref *fields.Fields, _ *pipeline.Params, _ int) error {
	var b strings.Builder
	line := func(tag, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s  - %s\n", tag, value)
		}
	}
	names := func(tag string, list []person) {
		for _, p := range list {
			switch {
			case p.etAl():
			case p.verbatim:
				line(tag, p.value)
			default:
				line(tag, formatName(p.value))
			}
		}
	}

	line("TY", risType(ref))
	line("ID", ref.Lookup("REFNUM", fields.LevelMain))
	names("AU", persons(ref, "AUTHOR", fields.LevelMain))
	names("ED", persons(ref, "EDITOR", fields.LevelMain))
	names("ED", persons(ref, "EDITOR", fields.LevelHost))
	line("TI", title(ref, fields.LevelMain))
	line("T2", title(ref, fields.LevelHost))
	line("T3", title(ref, fields.LevelSeries))
	line("PY", risDate(ref))
	line("VL", first(ref, mainFirst, "VOLUME"))
	line("IS", first(ref, mainFirst, "ISSUE", "NUMBER"))
	line("SP", ref.Lookup("PAGESTART", fields.LevelMain))
	line("EP", ref.Lookup("PAGEEND", fields.LevelMain))
	line("ET", first(ref, mainFirst, "EDITION"))
	line("PB", first(ref, mainFirst, "PUBLISHER"))
	line("CY", first(ref, mainFirst, "ADDRESS"))
	line("SN", first(ref, mainFirst, "ISBN", "ISBN13", "ISSN", "SERIALNUMBER"))
	line("DO", ref.Lookup("DOI", fields.LevelAny))
	for _, u := range ref.Values("URL", fields.LevelAny) {
		line("UR", u)
	}
	for _, f := range ref.Values("FILEATTACH", fields.LevelAny) {
		line("L1", f)
	}
	for _, kw := range ref.Values("KEYWORD", fields.LevelAny) {
		line("KW", kw)
	}
	line("AB", ref.Lookup("ABSTRACT", fields.LevelMain))
	for _, note := range ref.Values("NOTES", fields.LevelAny) {
		line("N1", note)
	}
	line("LA", ref.Lookup("LANGUAGE", fields.LevelMain))
	b.WriteString("ER  - \n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// risDate writes "YYYY/MM/DD/" when a month is known, else the year alone.
func risDate(ref *fields.Fields) string {
	year := first(ref, mainFirst, "PARTYEAR", "YEAR")
	month := first(ref, mainFirst, "PARTMONTH", "MONTH")
	if year == "" || month == "" {
		return year
	}
	day := first(ref, mainFirst, "PARTDAY", "DAY")
	return year + "/" + month + "/" + day + "/"
}

var genreRISTypes = map[string]string{
	"journal article":        "JOUR",
	"magazine article":       "MGZN",
	"newspaper article":      "NEWS",
	"abstract or summary":    "ABST",
	"book":                   "BOOK",
	"book chapter":           "CHAP",
	"conference publication": "CONF",
	"thesis":                 "THES",
	"report":                 "RPRT",
	"patent":                 "PAT",
	"electronic":             "ELEC",
	"web page":               "ELEC",
	"unpublished":            "UNPB",
}

var entryRISTypes = map[string]string{
	"article":       "JOUR",
	"book":          "BOOK",
	"booklet":       "BOOK",
	"inbook":        "CHAP",
	"incollection":  "CHAP",
	"inproceedings": "CONF",
	"conference":    "CONF",
	"proceedings":   "CONF",
	"phdthesis":     "THES",
	"mastersthesis": "THES",
	"thesis":        "THES",
	"techreport":    "RPRT",
	"report":        "RPRT",
	"patent":        "PAT",
	"online":        "ELEC",
	"electronic":    "ELEC",
	"www":           "ELEC",
	"unpublished":   "UNPB",
}

// risType picks the TY value from the genre, then the BibTeX entry type,
// falling back to GEN.
func risType(ref *fields.Fields) string {
	for _, g := range ref.Values("GENRE", fields.LevelMain) {
		if t, ok := genreRISTypes[strings.ToLower(g)]; ok {
			return t
		}
	}
	if t, ok := entryRISTypes[strings.ToLower(ref.Lookup("INTERNAL_TYPE", fields.LevelMain))]; ok {
		return t
	}
	return "GEN"
}

var (
	_ pipeline.OutputFormat = RIS{}
	_ pipeline.Headerer     = RIS{}
)
