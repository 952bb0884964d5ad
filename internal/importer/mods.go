package importer

import (
	"bufio"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/reftype"
)

// modsRoot selects the record element whether or not it carries a prefix.
var modsRoot = xpath.MustCompile("//*[local-name()='mods']")

// MODS reads MODS XML records. MODS describes a reference in the common
// schema already, so parsing produces final fields and conversion copies
// them.
type MODS struct{}

// NewMODS returns the MODS input format.
func NewMODS() *MODS { return &MODS{} }

func (MODS) Name() string { return "mods" }

func (MODS) Table() *reftype.Table { return nil }

func (MODS) Configure(p *pipeline.Params) {
	p.ReadFormat = "mods"
}

// Next frames one <mods> element. Text sharing a line with the closing tag
// after it is dropped.
func (MODS) Next(r *bufio.Reader) (pipeline.Chunk, error) {
	var chunk pipeline.Chunk
	var b strings.Builder
	inRecord := false
	for {
		line, err := r.ReadString('\n')
		if rest, ok := strings.CutPrefix(line, utf8BOM); ok {
			line = rest
			chunk.Charset = charset.Unicode
		}
		if !inRecord {
			if start := modsStart(line); start >= 0 {
				inRecord = true
				line = line[start:]
			}
		}
		if inRecord {
			if end := modsEnd(line); end >= 0 {
				b.WriteString(line[:end])
				chunk.Text = b.String()
				return chunk, err
			}
			b.WriteString(line)
		}
		if err != nil {
			chunk.Text = b.String()
			return chunk, err
		}
	}
}

// modsStart returns the offset of a <mods> or <prefix:mods> start tag.
func modsStart(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == '<' && localName(line[i+1:]) == "mods" {
			return i
		}
	}
	return -1
}

// modsEnd returns the offset just past a </mods> or </prefix:mods> end tag.
func modsEnd(line string) int {
	for i := 0; i+1 < len(line); i++ {
		if line[i] != '<' || line[i+1] != '/' {
			continue
		}
		if localName(line[i+2:]) != "mods" {
			continue
		}
		if j := strings.IndexByte(line[i:], '>'); j >= 0 {
			return i + j + 1
		}
	}
	return -1
}

// localName returns the element name at the start of s without its prefix.
func localName(s string) string {
	if j := strings.IndexAny(s, " \t\r\n>/"); j >= 0 {
		s = s[:j]
	}
	if j := strings.LastIndexByte(s, ':'); j >= 0 {
		s = s[j+1:]
	}
	return s
}

func (MODS) Parse(job *pipeline.Job, text string, n int) (*fields.Fields, bool) {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		job.Report(n, "", diag.New(diag.StrayLine, "parsing MODS: %v", err))
		return nil, false
	}
	root := xmlquery.QuerySelector(doc, modsRoot)
	if root == nil {
		return nil, false
	}
	ref := fields.New()
	ref.Add("REFNUM", strings.TrimSpace(root.SelectAttr("ID")), fields.LevelMain)
	addMODS(ref, root, fields.LevelMain)
	return ref, true
}

// addMODS adds the description held by n at level. Related items describe
// enclosing works one level up, or the original work.
func addMODS(ref *fields.Fields, n *xmlquery.Node, level int) {
	for _, c := range elements(n) {
		switch c.Data {
		case "titleInfo":
			addTitleInfo(ref, c, level)
		case "name":
			addModsName(ref, c, level)
		case "originInfo":
			addOriginInfo(ref, c, level)
		case "part":
			addPart(ref, c, level)
		case "genre":
			ref.Add("GENRE", nodeText(c), level)
		case "typeOfResource":
			ref.Add("RESOURCE", nodeText(c), level)
		case "language":
			for _, t := range elements(c) {
				if t.Data == "languageTerm" {
					ref.Add("LANGUAGE", nodeText(t), level)
				}
			}
		case "abstract":
			ref.Add("ABSTRACT", nodeText(c), level)
		case "note":
			ref.Add("NOTES", nodeText(c), level)
		case "subject":
			for _, t := range elements(c) {
				if t.Data == "topic" {
					ref.Add("KEYWORD", nodeText(t), level)
				}
			}
		case "classification":
			ref.Add("CLASSIFICATION", nodeText(c), level)
		case "identifier":
			addIdentifier(ref, c, level)
		case "location":
			for _, u := range elements(c) {
				if u.Data == "url" {
					ref.Add("URL", nodeText(u), level)
				}
			}
		case "relatedItem":
			switch c.SelectAttr("type") {
			case "host", "series":
				addMODS(ref, c, level+1)
			case "original":
				addMODS(ref, c, fields.LevelOrig)
			}
		}
	}
}

func addTitleInfo(ref *fields.Fields, n *xmlquery.Node, level int) {
	prefix := ""
	if t := n.SelectAttr("type"); t == "abbreviated" || t == "alternative" {
		prefix = "SHORT"
	}
	for _, c := range elements(n) {
		switch c.Data {
		case "title":
			ref.Add(prefix+"TITLE", nodeText(c), level)
		case "subTitle":
			ref.Add(prefix+"SUBTITLE", nodeText(c), level)
		case "partNumber", "partName":
			ref.Add("TITLEADDON", nodeText(c), level)
		}
	}
}

// addModsName stores a name as "Family|Given|Given", tagged by its role.
func addModsName(ref *fields.Fields, n *xmlquery.Node, level int) {
	tag := "AUTHOR"
	var family, whole string
	var given []string
	for _, c := range elements(n) {
		switch c.Data {
		case "namePart":
			switch c.SelectAttr("type") {
			case "family":
				family = nodeText(c)
			case "given":
				given = append(given, nodeText(c))
			case "date", "termsOfAddress":
			default:
				whole = nodeText(c)
			}
		case "role":
			for _, t := range elements(c) {
				if t.Data == "roleTerm" {
					tag = strings.ToUpper(nodeText(t))
				}
			}
		}
	}
	switch {
	case n.SelectAttr("type") == "corporate":
		ref.Add(tag+":CORP", strings.TrimSpace(whole+" "+family), level)
	case family != "":
		ref.Add(tag, strings.Join(append([]string{family}, given...), "|"), level)
	default:
		ref.Add(tag+":ASIS", whole, level)
	}
}

func addOriginInfo(ref *fields.Fields, n *xmlquery.Node, level int) {
	for _, c := range elements(n) {
		switch c.Data {
		case "dateIssued", "copyrightDate":
			addDate(ref, "", nodeText(c), level)
		case "publisher":
			ref.Add("PUBLISHER", nodeText(c), level)
		case "place":
			for _, t := range elements(c) {
				if t.Data == "placeTerm" {
					ref.Add("ADDRESS", nodeText(t), level)
				}
			}
		case "edition":
			ref.Add("EDITION", nodeText(c), level)
		case "issuance":
			ref.Add("ISSUANCE", nodeText(c), level)
		}
	}
}

// addDate splits an ISO "YYYY-MM-DD" date.
func addDate(ref *fields.Fields, prefix, value string, level int) {
	parts := strings.SplitN(value, "-", 3)
	for i, tag := range []string{"YEAR", "MONTH", "DAY"} {
		if i < len(parts) {
			ref.Add(prefix+tag, strings.TrimSpace(parts[i]), level)
		}
	}
}

func addPart(ref *fields.Fields, n *xmlquery.Node, level int) {
	for _, c := range elements(n) {
		switch c.Data {
		case "date":
			addDate(ref, "PART", nodeText(c), level)
		case "detail":
			tag := strings.ToUpper(c.SelectAttr("type"))
			if tag == "" {
				continue
			}
			for _, d := range elements(c) {
				if d.Data == "number" {
					ref.Add(tag, nodeText(d), level)
				}
			}
		case "extent":
			if u := c.SelectAttr("unit"); u != "page" && u != "pages" {
				continue
			}
			for _, d := range elements(c) {
				switch d.Data {
				case "start":
					ref.Add("PAGESTART", nodeText(d), level)
				case "end":
					ref.Add("PAGEEND", nodeText(d), level)
				case "total":
					ref.Add("TOTALPAGES", nodeText(d), level)
				}
			}
		}
	}
}

var identifierTags = map[string]string{
	"doi":     "DOI",
	"isbn":    "ISBN",
	"issn":    "ISSN",
	"uri":     "URL",
	"url":     "URL",
	"pubmed":  "PMID",
	"pmid":    "PMID",
	"pmc":     "PMC",
	"arxiv":   "ARXIV",
	"citekey": "REFNUM",
}

func addIdentifier(ref *fields.Fields, n *xmlquery.Node, level int) {
	kind := strings.ToLower(n.SelectAttr("type"))
	tag, ok := identifierTags[kind]
	if !ok {
		tag = "SERIALNUMBER"
	}
	if tag == "REFNUM" {
		ref.ReplaceOrAdd(tag, nodeText(n), fields.LevelMain)
		return
	}
	ref.Add(tag, nodeText(n), level)
}

// elements returns the element children of n.
func elements(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// nodeText returns the trimmed text of n with runs of blanks collapsed.
func nodeText(n *xmlquery.Node) string {
	return strings.Join(strings.Fields(n.InnerText()), " ")
}

func (MODS) Type(*pipeline.Job, *fields.Fields, int) int { return 0 }

// Convert copies every field with its level.
func (MODS) Convert(_ *pipeline.Job, raw, out *fields.Fields, _, _ int) {
	for _, f := range raw.All() {
		out.Add(f.Tag, f.Value, f.Level)
	}
}

var _ pipeline.InputFormat = MODS{}
