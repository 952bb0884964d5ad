package importer

import (
	"bufio"
	"strings"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/reftype"
	"github.com/matsen/bibconv/internal/storage"
)

// JSONL reads the field dump written by the jsonl output format. Records are
// already in the common schema, so conversion copies them unchanged.
type JSONL struct{}

// NewJSONL returns the field dump input format.
func NewJSONL() *JSONL { return &JSONL{} }

func (JSONL) Name() string { return "jsonl" }

func (JSONL) Table() *reftype.Table { return nil }

func (JSONL) Configure(p *pipeline.Params) {
	p.ReadFormat = "jsonl"
}

// Next returns one non-blank line.
func (JSONL) Next(r *bufio.Reader) (pipeline.Chunk, error) {
	var chunk pipeline.Chunk
	for {
		line, err := r.ReadString('\n')
		if rest, ok := strings.CutPrefix(line, utf8BOM); ok {
			line = rest
			chunk.Charset = charset.Unicode
		}
		if strings.TrimSpace(line) != "" || err != nil {
			chunk.Text = line
			return chunk, err
		}
	}
}

func (JSONL) Parse(job *pipeline.Job, text string, n int) (*fields.Fields, bool) {
	ref, err := storage.DecodeRecord([]byte(text))
	if err != nil {
		job.Report(n, "", diag.New(diag.StrayLine, "cannot decode record: %v", err))
		return nil, false
	}
	return ref, true
}

func (JSONL) Type(*pipeline.Job, *fields.Fields, int) int { return 0 }

// Convert copies every field with its level.
func (JSONL) Convert(_ *pipeline.Job, raw, out *fields.Fields, _, _ int) {
	for _, f := range raw.All() {
		out.Add(f.Tag, f.Value, f.Level)
	}
}

var _ pipeline.InputFormat = JSONL{}
