package export

import (
	"io"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/storage"
)

// JSONL dumps every field of a record, with its level, as one JSON line.
// The dump reads back through the jsonl input format.
type JSONL struct{}

// NewJSONL returns the JSONL output format.
func NewJSONL() *JSONL { return &JSONL{} }

func (JSONL) Name() string { return "jsonl" }

func (JSONL) Suffix() string { return "jsonl" }

func (JSONL) Configure(p *pipeline.Params) {
	p.WriteFormat = "jsonl"
	p.Out.Latex = false
	p.Out.XML = false
}

func (JSONL) Write(w io.Writer, ref *fields.Fields, _ *pipeline.Params, _ int) error {
	return storage.WriteRecord(w, ref)
}

var _ pipeline.OutputFormat = JSONL{}
