package importer

import (
	"bufio"
	"strings"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/reftype"
	"github.com/matsen/bibconv/internal/tokenizer"
)

const utf8BOM = "\xef\xbb\xbf"

// BibTeX reads @type{key, tag = value, ...} records. BibLaTeX shares the
// syntax and differs only in its type table.
type BibTeX struct {
	name  string
	table *reftype.Table
}

// NewBibTeX returns the BibTeX input format.
func NewBibTeX() *BibTeX {
	return &BibTeX{name: "bibtex", table: bibtexTypes}
}

// NewBibLaTeX returns the BibLaTeX input format.
func NewBibLaTeX() *BibTeX {
	return &BibTeX{name: "biblatex", table: biblatexTypes}
}

func (f *BibTeX) Name() string { return f.name }

func (f *BibTeX) Table() *reftype.Table { return f.table }

// Configure marks the input as LaTeX-encoded.
func (f *BibTeX) Configure(p *pipeline.Params) {
	p.ReadFormat = f.name
	p.In.Latex = true
}

// Next frames one record: everything from a line starting with '@' up to
// the next such line. Lines starting with '%' are comments.
func (f *BibTeX) Next(r *bufio.Reader) (pipeline.Chunk, error) {
	var chunk pipeline.Chunk
	var b strings.Builder
	inRecord := false
	for {
		if inRecord && startsRecord(r) {
			chunk.Text = b.String()
			return chunk, nil
		}
		line, err := r.ReadString('\n')
		if rest, ok := strings.CutPrefix(line, utf8BOM); ok {
			line = rest
			chunk.Charset = charset.Unicode
		}
		trimmed := strings.TrimLeft(line, " \t\r")
		switch {
		case strings.HasPrefix(trimmed, "%"):
		case strings.HasPrefix(trimmed, "@"):
			inRecord = true
			b.WriteString(trimmed)
		case inRecord:
			b.WriteString(line)
		}
		if err != nil {
			chunk.Text = b.String()
			return chunk, err
		}
	}
}

// startsRecord reports whether the next line begins with '@' after blanks.
func startsRecord(r *bufio.Reader) bool {
	for n := 1; ; n++ {
		buf, err := r.Peek(n)
		if err != nil || len(buf) < n {
			return false
		}
		switch buf[n-1] {
		case ' ', '\t', '\r':
			continue
		case '@':
			return true
		default:
			return false
		}
	}
}

// Parse scans one record. @STRING records define macros for the rest of
// the job; @COMMENT and @PREAMBLE records are dropped.
func (f *BibTeX) Parse(job *pipeline.Job, text string, n int) (*fields.Fields, bool) {
	switch strings.ToLower(tokenizer.Type(text)) {
	case "string":
		f.defineStrings(job, text, n)
		return nil, false
	case "comment":
		return nil, false
	case "preamble":
		job.Logger.Debug("skipping preamble", "file", job.Filename, "record", n)
		return nil, false
	}

	rec, diags := tokenizer.Parse(text)
	for _, d := range diags {
		job.Report(n, rec.Key, d)
	}
	ref := fields.New()
	ref.Add("INTERNAL_TYPE", rec.Type, fields.LevelMain)
	ref.Add("REFNUM", rec.Key, fields.LevelMain)
	for _, pair := range rec.Pairs {
		value, diags := tokenizer.Resolve(pair.Tokens, job.Macros, tokenizer.StripAll)
		for _, d := range diags {
			job.Report(n, rec.Key, d)
		}
		ref.Add(pair.Tag, value, fields.LevelMain)
	}
	return ref, true
}

func (f *BibTeX) defineStrings(job *pipeline.Job, text string, n int) {
	rec, diags := tokenizer.Parse(text)
	for _, d := range diags {
		job.Report(n, "", d)
	}
	for _, pair := range rec.Pairs {
		value, diags := tokenizer.Resolve(pair.Tokens, job.Macros, tokenizer.StripAll)
		for _, d := range diags {
			job.Report(n, "", d)
		}
		value = strings.ReplaceAll(value, `\ `, " ")
		job.Macros.Define(pair.Tag, cleanLatex(value))
	}
}

// Clean removes LaTeX markup left after charset conversion, pulls links out
// of \href, and resolves cross-references.
func (f *BibTeX) Clean(job *pipeline.Job, b *fields.Bibliography) {
	for _, ref := range b.All() {
		cleanRecord(ref, job.Params.In.Latex)
	}
	pipeline.ResolveCrossrefs(b, job.Reporter)
}

func cleanRecord(ref *fields.Fields, latex bool) {
	n := ref.Len()
	for i := 0; i < n; i++ {
		value := ref.Value(i)
		if url, text, ok := splitHref(value); ok {
			ref.Add("URL", url, fields.LevelMain)
			value = text
		}
		if latex {
			value = cleanLatex(value)
		}
		ref.SetValue(i, value)
	}
}

// splitHref splits "\href{url}{text}" into its link and text.
func splitHref(s string) (url, text string, ok bool) {
	const prefix = `\href{`
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", "", false
	}
	rest := s[len(prefix):]
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return "", "", false
	}
	return rest[:end], rest[end+1:], true
}

var markupRemover = strings.NewReplacer(
	`\textit`, "",
	`\textbf`, "",
	`\textsl`, "",
	`\textsc`, "",
	`\textsf`, "",
	`\texttt`, "",
	`\textsubscript`, "",
	`\textsuperscript`, "",
	`\emph`, "",
	`\url`, "",
	`\mbox`, "",
	`\it `, "",
	`\em `, "",
	`\%`, "%",
	`\$`, "$",
	`\textdollar`, "$",
	`\textunderscore`, "_",
	"{", "",
	"}", "",
)

// cleanLatex drops formatting commands and protective braces and collapses
// runs of blanks.
func cleanLatex(s string) string {
	s = markupRemover.Replace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// Type resolves the entry type, falling back to the table default.
func (f *BibTeX) Type(job *pipeline.Job, raw *fields.Fields, n int) int {
	return job.ResolveType(f.table, raw, raw.Lookup("INTERNAL_TYPE", fields.LevelMain), n)
}

// Convert translates the raw tags through the type table.
func (f *BibTeX) Convert(job *pipeline.Job, raw, out *fields.Fields, typ, n int) {
	t := job.Translator(f.table, raw, n)
	if f.table == bibtexTypes {
		t.Adjust = inbookTitle
	}
	t.Translate(raw, out, typ)
}

// inbookTitle applies the @inbook rule: title normally names the book, but
// when a booktitle is also present the title names the chapter.
func inbookTitle(in *fields.Fields, sourceTag string, l reftype.Lookup) reftype.Lookup {
	if !strings.EqualFold(sourceTag, "title") {
		return l
	}
	if !strings.EqualFold(in.Lookup("INTERNAL_TYPE", fields.LevelAny), "inbook") {
		return l
	}
	if in.Find("booktitle", fields.LevelAny) != fields.NotFound {
		l.Level = fields.LevelMain
	}
	return l
}

var (
	_ pipeline.InputFormat = (*BibTeX)(nil)
	_ pipeline.Cleaner     = (*BibTeX)(nil)
)
