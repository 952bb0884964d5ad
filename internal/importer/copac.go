package importer

import (
	"bufio"
	"strings"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/fieldproc"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/reftype"
)

// copacTypes has a single type: COPAC records carry no type tag.
var copacTypes = &reftype.Table{
	Format: "copac",
	Variants: []reftype.Variant{{
		Name: "book",
		Lookups: []reftype.Lookup{
			lookup("TI-", "TITLE", reftype.Title, lvMain),
			lookup("AU-", "AUTHOR", reftype.Person, lvMain),
			lookup("MA-", "TITLE", reftype.Title, lvOrig),
			lookup("ED-", "EDITION", reftype.Copy, lvMain),
			lookup("PU-", "PUBLISHER", reftype.Copy, lvMain),
			lookup("PY-", "YEAR", reftype.Copy, lvMain),
			lookup("PL-", "ADDRESS", reftype.Copy, lvMain),
			lookup("PD-", "DESCRIPTION", reftype.Copy, lvMain),
			lookup("IS-", "SERIALNUMBER", reftype.SerialNo, lvMain),
			lookup("SE-", "TITLE", reftype.Title, lvHost),
			lookup("NT-", "NOTES", reftype.Copy, lvMain),
			lookup("KW-", "KEYWORD", reftype.Copy, lvMain),
			lookup("LA-", "LANGUAGE", reftype.Copy, lvMain),
			lookup("HL-", "HOLDINGS", reftype.Copy, lvMain),
			lookup("UR-", "URL", reftype.URL, lvMain),
			always("RESOURCE", "text", lvMain),
			always("ISSUANCE", "monographic", lvMain),
			always("GENRE", "book", lvMain),
		},
	}},
}

// COPAC reads "XX- value" records separated by blank lines. Only the first
// line of a value carries the tag.
type COPAC struct{}

// NewCOPAC returns the COPAC input format.
func NewCOPAC() *COPAC { return &COPAC{} }

func (COPAC) Name() string { return "copac" }

func (COPAC) Table() *reftype.Table { return copacTypes }

func (COPAC) Configure(p *pipeline.Params) {
	p.ReadFormat = "copac"
}

// isCopacTag reports whether line starts with two letters, a dash and a
// space.
func isCopacTag(line string) bool {
	if len(line) < 4 {
		return false
	}
	return isASCIILetter(line[0]) && isASCIILetter(line[1]) && line[2] == '-' && line[3] == ' '
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Next frames one record. Continuation lines are folded onto the tagged
// line they follow, dropping their three-column indent.
func (COPAC) Next(r *bufio.Reader) (pipeline.Chunk, error) {
	var chunk pipeline.Chunk
	var b strings.Builder
	inRecord := false
	for {
		line, err := r.ReadString('\n')
		if rest, ok := strings.CutPrefix(line, utf8BOM); ok {
			line = rest
			chunk.Charset = charset.Unicode
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case inRecord && strings.TrimSpace(line) == "":
			chunk.Text = b.String()
			return chunk, err
		case isCopacTag(line):
			if inRecord {
				b.WriteByte('\n')
			}
			b.WriteString(line)
			inRecord = true
		case inRecord:
			b.WriteByte(' ')
			b.WriteString(line[min(3, len(line)):])
		}
		if err != nil {
			chunk.Text = b.String()
			return chunk, err
		}
	}
}

func (COPAC) Parse(_ *pipeline.Job, text string, _ int) (*fields.Fields, bool) {
	ref := fields.New()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, " \t")
		if !isCopacTag(line) {
			continue
		}
		ref.Add(line[:3], strings.TrimSpace(line[3:]), fields.LevelMain)
	}
	return ref, true
}

func (COPAC) Type(*pipeline.Job, *fields.Fields, int) int { return 0 }

func (COPAC) Convert(job *pipeline.Job, raw, out *fields.Fields, typ, n int) {
	t := job.Translator(copacTypes, raw, n)
	t.Override = map[reftype.Directive]fieldproc.Func{reftype.Person: copacName}
	t.Translate(raw, out, typ)
}

// copacName stores one name. COPAC names are family-first but the comma
// after the family name is often missing, and editors are marked with an
// "[Editor]" token.
func copacName(c *fieldproc.Context, tag, value string, level int) {
	if c.Options.IsAsis(value) || c.Options.IsCorp(value) {
		fieldproc.Names(c, tag, value, level)
		return
	}
	var tokens []string
	comma := false
	for _, t := range strings.Fields(value) {
		if t == "[Editor]" {
			tag = "EDITOR"
			continue
		}
		if strings.HasSuffix(t, ",") {
			comma = true
		}
		tokens = append(tokens, t)
	}
	if len(tokens) == 0 {
		return
	}
	if !comma {
		tokens[0] += ","
	}
	fieldproc.AddName(c, tag, tokens, level)
}

var _ pipeline.InputFormat = COPAC{}
