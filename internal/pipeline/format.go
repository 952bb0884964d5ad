package pipeline

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/fieldproc"
	"github.com/matsen/bibconv/internal/reftype"
	"github.com/matsen/bibconv/internal/tokenizer"
)

// Chunk is the text of one framed input record.
type Chunk struct {
	Text string
	// Charset is set when framing detected the input encoding, e.g. from a
	// byte order mark.
	Charset string
}

// InputFormat is implemented once per source format.
type InputFormat interface {
	Name() string
	// Configure applies the format's default parameters.
	Configure(p *Params)
	// Next frames the next record. It returns io.EOF when input is exhausted.
	Next(r *bufio.Reader) (Chunk, error)
	// Parse turns record text into raw fields. It returns false for chunks
	// that are not references, such as macro definitions and comments.
	Parse(job *Job, text string, n int) (*fields.Fields, bool)
	// Type resolves the reference type of a parsed record.
	Type(job *Job, raw *fields.Fields, n int) int
	// Convert translates a parsed record into the common schema.
	Convert(job *Job, raw, out *fields.Fields, typ, n int)
	// Table returns the format's reference types, or nil for formats that
	// convert without one.
	Table() *reftype.Table
}

// Cleaner is implemented by input formats with whole-bibliography fixups
// that run on parsed records before conversion.
type Cleaner interface {
	Clean(job *Job, b *fields.Bibliography)
}

// OutputFormat is implemented once per target format.
type OutputFormat interface {
	Name() string
	// Suffix is the file extension used for single-reference output.
	Suffix() string
	Configure(p *Params)
	Write(w io.Writer, ref *fields.Fields, p *Params, n int) error
}

// Headerer writes text before the first record.
type Headerer interface {
	Header(w io.Writer, p *Params) error
}

// Footerer writes text after the last record.
type Footerer interface {
	Footer(w io.Writer) error
}

// Job carries the state shared by one conversion.
type Job struct {
	Params *Params
	// Macros holds @STRING-style definitions; it lives for the whole job.
	Macros   *tokenizer.Macros
	Reporter diag.Reporter
	Logger   *slog.Logger
	// Trace receives record dumps when Params.Verbose > 1.
	Trace io.Writer
	// Filename names the input in diagnostics.
	Filename string
}

// NewJob returns a job with a fresh macro table. A nil logger discards
// output and a nil reporter logs diagnostics through the logger.
func NewJob(p *Params, logger *slog.Logger, r diag.Reporter) *Job {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r == nil {
		r = diag.NewLogReporter(logger)
	}
	return &Job{
		Params:   p,
		Macros:   tokenizer.NewMacros(),
		Reporter: r,
		Logger:   logger,
	}
}

// Report forwards a diagnostic, filling in the record number.
func (j *Job) Report(n int, key string, d diag.Diagnostic) {
	if d.Ref == 0 {
		d.Ref = n
	}
	if d.Key == "" {
		d.Key = key
	}
	j.Reporter.Report(d)
}

// Translator returns a table-driven translator that reports unknown tags.
func (j *Job) Translator(t *reftype.Table, raw *fields.Fields, n int) *fieldproc.Translator {
	key := raw.Lookup("REFNUM", fields.LevelAny)
	return &fieldproc.Translator{
		Table:   t,
		Options: j.Params.FieldOptions(),
		Unknown: func(tag string) {
			if j.Params.Verbose > 0 && !strings.EqualFold(tag, "INTERNAL_TYPE") {
				j.Report(n, key, diag.New(diag.UnknownTag, "cannot find tag '%s'", tag))
			}
		},
	}
}

// ResolveType resolves name against t, reporting names that fall back to
// the default type.
func (j *Job) ResolveType(t *reftype.Table, raw *fields.Fields, name string, n int) int {
	typ, ok := t.Resolve(name)
	if ok {
		return typ
	}
	detail := "cannot identify type '" + name + "'"
	if s := t.Suggest(name); s != "" {
		detail += ", did you mean '" + s + "'?"
	}
	detail += "; using default '" + t.Name(typ) + "'"
	j.Report(n, raw.Lookup("REFNUM", fields.LevelAny), diag.New(diag.UnknownType, "%s", detail))
	return typ
}
