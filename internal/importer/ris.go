package importer

import (
	"bufio"
	"strings"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/reftype"
)

// RIS reads tagged "XX  - value" records running from TY to ER.
type RIS struct{}

// NewRIS returns the RIS input format.
func NewRIS() *RIS { return &RIS{} }

func (RIS) Name() string { return "ris" }

func (RIS) Table() *reftype.Table { return risTypes }

func (RIS) Configure(p *pipeline.Params) {
	p.ReadFormat = "ris"
}

// isRISTag reports whether line starts with a tag: an uppercase letter, an
// uppercase letter or digit, two spaces, a dash and a space.
func isRISTag(line string) bool {
	if len(line) < 6 {
		return false
	}
	c0, c1 := line[0], line[1]
	if c0 < 'A' || c0 > 'Z' {
		return false
	}
	if (c1 < 'A' || c1 > 'Z') && (c1 < '0' || c1 > '9') {
		return false
	}
	return line[2:6] == "  - "
}

// Next frames one record. A TY line inside an open record starts the next
// one; tagged lines outside any record are dropped.
func (RIS) Next(r *bufio.Reader) (pipeline.Chunk, error) {
	var chunk pipeline.Chunk
	var b strings.Builder
	inRecord := false
	for {
		if inRecord && peekPrefix(r, "TY  - ") {
			chunk.Text = b.String()
			return chunk, nil
		}
		line, err := r.ReadString('\n')
		if rest, ok := strings.CutPrefix(line, utf8BOM); ok {
			line = rest
			chunk.Charset = charset.Unicode
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(line, "ER  -"):
			if inRecord {
				chunk.Text = b.String()
				return chunk, err
			}
		case strings.HasPrefix(line, "TY  - "):
			inRecord = true
			b.WriteString(line)
			b.WriteByte('\n')
		case inRecord:
			b.WriteString(line)
			b.WriteByte('\n')
		}
		if err != nil {
			chunk.Text = b.String()
			return chunk, err
		}
	}
}

func peekPrefix(r *bufio.Reader, prefix string) bool {
	buf, err := r.Peek(len(prefix))
	return err == nil && string(buf) == prefix
}

// Parse splits tagged lines into fields. Untagged lines continue the value
// of the previous field.
func (RIS) Parse(_ *pipeline.Job, text string, _ int) (*fields.Fields, bool) {
	ref := fields.New()
	for _, line := range strings.Split(text, "\n") {
		if isRISTag(line) {
			ref.Add(line[:2], strings.TrimSpace(line[6:]), fields.LevelMain)
			continue
		}
		data := strings.TrimSpace(line)
		if data == "" || ref.Len() == 0 {
			continue
		}
		last := ref.Len() - 1
		ref.SetValue(last, ref.Value(last)+" "+data)
	}
	return ref, true
}

func (RIS) Type(job *pipeline.Job, raw *fields.Fields, n int) int {
	return job.ResolveType(risTypes, raw, raw.Lookup("TY", fields.LevelMain), n)
}

// thesisHints are U1 values that name the kind of thesis.
var thesisHints = []string{
	"Ph.D. Thesis",
	"Masters Thesis",
	"Diploma Thesis",
	"Doctoral Thesis",
	"Habilitation Thesis",
}

// Convert translates the tags and, for theses, copies a U1 thesis hint into
// the genre.
func (RIS) Convert(job *pipeline.Job, raw, out *fields.Fields, typ, n int) {
	job.Translator(risTypes, raw, n).Translate(raw, out, typ)

	if !strings.EqualFold(risTypes.Name(typ), "THES") {
		return
	}
	for _, value := range raw.Values("U1", fields.LevelAny) {
		for _, hint := range thesisHints {
			if strings.EqualFold(value, hint) {
				out.Add("GENRE", value, fields.LevelMain)
			}
		}
	}
}

var _ pipeline.InputFormat = RIS{}
