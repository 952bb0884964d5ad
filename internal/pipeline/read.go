package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fieldproc"
	"github.com/matsen/bibconv/internal/fields"
)

// Read parses every record of r with in and appends the converted records
// to b.
func Read(b *fields.Bibliography, r io.Reader, in InputFormat, job *Job) error {
	if b == nil || r == nil || in == nil || job == nil || job.Params == nil {
		return fmt.Errorf("read: missing bibliography, stream, format or parameters: %w", diag.ErrBadInput)
	}
	lp, err := job.Params.readParams()
	if err != nil {
		return err
	}
	lj := *job
	lj.Params = lp
	job = &lj

	raw := fields.NewBibliography()
	if err := readRecords(raw, bufio.NewReader(r), in, job); err != nil {
		return err
	}
	job.Logger.Debug("read records", "format", in.Name(), "file", job.Filename, "records", raw.Len())

	if lp.Raw == 0 || lp.Raw&RawWithCharConvert != 0 {
		if err := fixCharsets(raw, lp.In, lp.Out); err != nil {
			return err
		}
	}

	if lp.Raw == 0 {
		convertRecords(raw, b, in, job)
	} else {
		if lp.Verbose > 1 {
			for i, ref := range raw.All() {
				dump(job.Trace, job.Filename, "raw", i+1, ref)
			}
		}
		b.Copy(raw)
	}

	if lp.Raw == 0 || lp.Raw&RawWithMakeRefID != 0 {
		checkRefIDs(b, lp.AddCount)
	}
	return nil
}

func readRecords(b *fields.Bibliography, r *bufio.Reader, in InputFormat, job *Job) error {
	n := 0
	for {
		chunk, err := in.Next(r)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading %s input: %w", in.Name(), err)
		}
		if chunk.Charset != "" {
			job.Params.SetInputCharset(chunk.Charset, SourceFile)
		}
		if strings.TrimSpace(chunk.Text) != "" {
			if ref, ok := in.Parse(job, chunk.Text, n+1); ok {
				b.Add(ref)
				n++
			}
		}
		if err != nil {
			return nil
		}
	}
}

func convertRecords(raw, out *fields.Bibliography, in InputFormat, job *Job) {
	if c, ok := in.(Cleaner); ok {
		c.Clean(job, raw)
	}
	table := in.Table()
	for i, rin := range raw.All() {
		typ := in.Type(job, rin, i+1)
		rout := fields.New()
		if table != nil {
			for _, f := range table.Synthesized(typ) {
				rout.Add(f.Tag, f.Value, f.Level)
			}
		}
		in.Convert(job, rin, rout, typ, i+1)
		if job.Params.NoSplitTitle {
			fieldproc.MergeTitles(rout)
		}
		if job.Params.Verbose > 1 {
			dump(job.Trace, job.Filename, "processed", i+1, rin)
			dump(job.Trace, job.Filename, "converted", i+1, rout)
		}
		out.Add(rout)
	}
	UniqueCitekeys(out)
}

// fixCharsets converts every field value of b. Identifiers and links skip
// LaTeX conversion on both sides.
func fixCharsets(b *fields.Bibliography, from, to charset.Spec) error {
	conv, err := charset.NewConverter(from, to)
	if err != nil {
		return err
	}
	for _, ref := range b.All() {
		for i, fld := range ref.All() {
			ref.SetValue(i, conv.Convert(fld.Value, isIdentifier(fld.Tag)))
		}
	}
	return nil
}

func isIdentifier(tag string) bool {
	return strings.EqualFold(tag, "DOI") ||
		strings.EqualFold(tag, "URL") ||
		strings.EqualFold(tag, "REFNUM")
}

func dump(w io.Writer, filename, stage string, n int, ref *fields.Fields) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "======== %s %d : %s\n", filename, n, stage)
	for _, fld := range ref.All() {
		fmt.Fprintf(w, "'%s'='%s' level=%d\n", fld.Tag, fld.Value, fld.Level)
	}
	fmt.Fprintln(w)
}
