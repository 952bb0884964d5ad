package pipeline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/reftype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linesFormat is a minimal input format: "tag: value" lines, records
// separated by blank lines, and a "type" line naming the reference type.
type linesFormat struct{}

var linesTable = &reftype.Table{
	Format: "lines",
	Variants: []reftype.Variant{
		{Name: "article", Lookups: []reftype.Lookup{
			{Source: "refnum", Dest: "REFNUM", Directive: reftype.Copy, Level: fields.LevelMain},
			{Source: "author", Dest: "AUTHOR", Directive: reftype.Person, Level: fields.LevelMain},
			{Source: "title", Dest: "TITLE", Directive: reftype.Title, Level: fields.LevelMain},
			{Source: "journal", Dest: "TITLE", Directive: reftype.Title, Level: fields.LevelHost},
			{Source: "year", Dest: "YEAR", Directive: reftype.Copy, Level: fields.LevelMain},
			{Source: "url", Dest: "URL", Directive: reftype.URL, Level: fields.LevelMain},
			reftype.Synth("GENRE", "journal article", fields.LevelMain),
		}},
		{Name: "misc", Lookups: []reftype.Lookup{
			{Source: "refnum", Dest: "REFNUM", Directive: reftype.Copy, Level: fields.LevelMain},
			{Source: "author", Dest: "AUTHOR", Directive: reftype.Person, Level: fields.LevelMain},
			{Source: "title", Dest: "TITLE", Directive: reftype.Title, Level: fields.LevelMain},
			{Source: "year", Dest: "YEAR", Directive: reftype.Copy, Level: fields.LevelMain},
			reftype.Synth("GENRE", "miscellaneous", fields.LevelMain),
		}},
	},
	Default: 1,
}

func (linesFormat) Name() string { return "lines" }

func (linesFormat) Configure(*Params) {}

func (linesFormat) Table() *reftype.Table { return linesTable }

func (linesFormat) Next(r *bufio.Reader) (Chunk, error) {
	var b strings.Builder
	for {
		line, err := r.ReadString('\n')
		if strings.TrimSpace(line) == "" {
			if b.Len() > 0 || err != nil {
				return Chunk{Text: b.String()}, err
			}
			continue
		}
		b.WriteString(line)
		if err != nil {
			return Chunk{Text: b.String()}, err
		}
	}
}

func (linesFormat) Parse(_ *Job, text string, _ int) (*fields.Fields, bool) {
	ref := fields.New()
	for _, line := range strings.Split(text, "\n") {
		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		tag, value = strings.TrimSpace(tag), strings.TrimSpace(value)
		if tag == "type" {
			tag = "INTERNAL_TYPE"
		}
		ref.Add(tag, value, fields.LevelMain)
	}
	return ref, true
}

func (linesFormat) Type(job *Job, raw *fields.Fields, n int) int {
	return job.ResolveType(linesTable, raw, raw.Lookup("INTERNAL_TYPE", fields.LevelMain), n)
}

func (linesFormat) Convert(job *Job, raw, out *fields.Fields, typ, n int) {
	job.Translator(linesTable, raw, n).Translate(raw, out, typ)
}

// linesOut writes "TAG=value@level" lines.
type linesOut struct{}

func (linesOut) Name() string { return "lines" }

func (linesOut) Suffix() string { return "txt" }

func (linesOut) Configure(*Params) {}

func (linesOut) Write(w io.Writer, ref *fields.Fields, _ *Params, _ int) error {
	for _, fld := range ref.All() {
		if _, err := fmt.Fprintf(w, "%s=%s@%d\n", fld.Tag, fld.Value, fld.Level); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (linesOut) Header(w io.Writer, _ *Params) error {
	_, err := io.WriteString(w, "# start\n")
	return err
}

func (linesOut) Footer(w io.Writer) error {
	_, err := io.WriteString(w, "# end\n")
	return err
}

func newTestJob(p *Params) (*Job, *diag.Collector) {
	c := &diag.Collector{}
	return NewJob(p, nil, c), c
}

const twoRecords = `type: article
author: Smith, John and Doe, Jane
title: A Study
journal: Journal of Things
year: 2020

type: bogus
author: Smith, Ann
title: Other Work
year: 2020
`

func TestReadConverts(t *testing.T) {
	job, c := newTestJob(NewParams())
	b := fields.NewBibliography()
	require.NoError(t, Read(b, strings.NewReader(twoRecords), linesFormat{}, job))
	require.Equal(t, 2, b.Len())

	first := b.At(0)
	assert.Equal(t, []string{"Smith|John", "Doe|Jane"}, first.Values("AUTHOR", fields.LevelMain))
	assert.Equal(t, "A Study", first.Lookup("TITLE", fields.LevelMain))
	assert.Equal(t, "Journal of Things", first.Lookup("TITLE", fields.LevelHost))
	assert.Equal(t, "journal article", first.Lookup("GENRE", fields.LevelMain))
	assert.Equal(t, "Smith2020a", first.Lookup("REFNUM", fields.LevelMain))

	// An unknown type falls back to the default mapping.
	second := b.At(1)
	assert.Equal(t, "miscellaneous", second.Lookup("GENRE", fields.LevelMain))
	assert.Equal(t, []string{"Smith|Ann"}, second.Values("AUTHOR", fields.LevelMain))
	assert.Equal(t, "Other Work", second.Lookup("TITLE", fields.LevelMain))
	assert.Equal(t, "Smith2020b", second.Lookup("REFNUM", fields.LevelMain))
	assert.Equal(t, 1, c.Count(diag.UnknownType))
}

func TestReadUnknownTypeSuggestion(t *testing.T) {
	job, c := newTestJob(NewParams())
	b := fields.NewBibliography()
	require.NoError(t, Read(b, strings.NewReader("type: articel\ntitle: X\n"), linesFormat{}, job))
	require.Len(t, c.Items, 1)
	assert.Contains(t, c.Items[0].Detail, "did you mean 'article'")
	assert.Equal(t, "miscellaneous", b.At(0).Lookup("GENRE", fields.LevelMain))
}

func TestReadMissingArguments(t *testing.T) {
	job, _ := newTestJob(NewParams())
	err := Read(nil, strings.NewReader(""), linesFormat{}, job)
	assert.ErrorIs(t, err, diag.ErrBadInput)
	err = Read(fields.NewBibliography(), nil, linesFormat{}, job)
	assert.ErrorIs(t, err, diag.ErrBadInput)
	err = Read(fields.NewBibliography(), strings.NewReader(""), nil, job)
	assert.ErrorIs(t, err, diag.ErrBadInput)
}

func TestReadKeepsExistingRefnum(t *testing.T) {
	job, _ := newTestJob(NewParams())
	b := fields.NewBibliography()
	in := "type: article\nrefnum: key1\nauthor: Smith, John\nyear: 2020\n"
	require.NoError(t, Read(b, strings.NewReader(in), linesFormat{}, job))
	assert.Equal(t, "key1", b.At(0).Lookup("REFNUM", fields.LevelMain))
}

func TestReadAddCount(t *testing.T) {
	p := NewParams()
	p.AddCount = true
	job, _ := newTestJob(p)
	b := fields.NewBibliography()
	in := "type: article\nrefnum: a\n\ntype: article\nrefnum: b\n"
	require.NoError(t, Read(b, strings.NewReader(in), linesFormat{}, job))
	assert.Equal(t, "a_1", b.At(0).Lookup("REFNUM", fields.LevelMain))
	assert.Equal(t, "b_2", b.At(1).Lookup("REFNUM", fields.LevelMain))
}

func TestReadRaw(t *testing.T) {
	p := NewParams()
	p.Raw = Raw
	job, _ := newTestJob(p)
	b := fields.NewBibliography()
	require.NoError(t, Read(b, strings.NewReader(twoRecords), linesFormat{}, job))
	require.Equal(t, 2, b.Len())
	assert.Equal(t, "article", b.At(0).Lookup("INTERNAL_TYPE", fields.LevelMain))
	assert.Equal(t, "Smith, John and Doe, Jane", b.At(0).Lookup("author", fields.LevelMain))
	assert.Equal(t, fields.NotFound, b.At(0).Find("REFNUM", fields.LevelAny))

	p.Raw = Raw | RawWithMakeRefID
	b = fields.NewBibliography()
	require.NoError(t, Read(b, strings.NewReader("title: no author\n"), linesFormat{}, job))
	assert.Equal(t, "ref1", b.At(0).Lookup("REFNUM", fields.LevelMain))
}

func TestReadLatexInput(t *testing.T) {
	p := NewParams()
	p.In.Latex = true
	job, _ := newTestJob(p)
	b := fields.NewBibliography()
	in := "type: article\ntitle: Caf{\\'e}\nurl: http://example.org/a\\_b\n"
	require.NoError(t, Read(b, strings.NewReader(in), linesFormat{}, job))
	assert.Equal(t, "Café", b.At(0).Lookup("TITLE", fields.LevelMain))
	assert.Equal(t, `http://example.org/a\_b`, b.At(0).Lookup("URL", fields.LevelMain))
}

func TestReadVerboseDump(t *testing.T) {
	p := NewParams()
	p.Verbose = 2
	job, _ := newTestJob(p)
	var trace bytes.Buffer
	job.Trace = &trace
	job.Filename = "in.txt"
	b := fields.NewBibliography()
	require.NoError(t, Read(b, strings.NewReader("type: article\nauthor: Smith, John\n"), linesFormat{}, job))
	out := trace.String()
	assert.Contains(t, out, "======== in.txt 1 : processed")
	assert.Contains(t, out, "======== in.txt 1 : converted")
	assert.Contains(t, out, "'AUTHOR'='Smith|John' level=0")
}

func TestReadDoesNotMutateParams(t *testing.T) {
	p := NewParams()
	p.Out.Latex = true
	job, _ := newTestJob(p)
	require.NoError(t, Read(fields.NewBibliography(), strings.NewReader(twoRecords), linesFormat{}, job))
	assert.True(t, job.Params.Out.Latex)
	assert.Same(t, p, job.Params)
}

func TestUniqueCitekeys(t *testing.T) {
	b := fields.NewBibliography()
	for range 3 {
		ref := fields.New()
		ref.Add("AUTHOR", "Smith|John", fields.LevelMain)
		ref.Add("YEAR", "2020", fields.LevelMain)
		b.Add(ref)
	}
	other := fields.New()
	other.Add("REFNUM", "Doe2019", fields.LevelMain)
	b.Add(other)

	UniqueCitekeys(b)
	var got []string
	for _, ref := range b.All() {
		got = append(got, ref.Lookup("REFNUM", fields.LevelAny))
	}
	assert.Equal(t, []string{"Smith2020a", "Smith2020b", "Smith2020c", "Doe2019"}, got)
}

func TestUniqueCitekeysPastZ(t *testing.T) {
	b := fields.NewBibliography()
	for range 28 {
		ref := fields.New()
		ref.Add("REFNUM", "Smith2020", fields.LevelMain)
		b.Add(ref)
	}
	UniqueCitekeys(b)
	assert.Equal(t, "Smith2020z", b.At(25).Lookup("REFNUM", fields.LevelMain))
	assert.Equal(t, "Smith2020aa", b.At(26).Lookup("REFNUM", fields.LevelMain))
	assert.Equal(t, "Smith2020ab", b.At(27).Lookup("REFNUM", fields.LevelMain))

	seen := map[string]bool{}
	for _, ref := range b.All() {
		key := ref.Lookup("REFNUM", fields.LevelMain)
		assert.False(t, seen[key], "duplicate %s", key)
		seen[key] = true
	}
}

func TestUniqueCitekeysFallback(t *testing.T) {
	b := fields.NewBibliography()
	b.Add(fields.New())
	ref := fields.New()
	ref.Add("TITLE", "No author", fields.LevelMain)
	b.Add(ref)
	UniqueCitekeys(b)
	assert.Equal(t, "ref1", b.At(0).Lookup("REFNUM", fields.LevelMain))
	assert.Equal(t, "ref2", b.At(1).Lookup("REFNUM", fields.LevelMain))
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{51, "az"},
		{52, "aaa"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Suffix(tt.n), "n=%d", tt.n)
	}
}

func TestBuildRefID(t *testing.T) {
	ref := fields.New()
	ref.Add("AUTHOR:CORP", "World Health Organization", fields.LevelMain)
	ref.Add("PARTYEAR", "2001 spring", fields.LevelHost)
	assert.Equal(t, "World Health Organization2001", buildRefID(ref, 4))
	assert.Equal(t, "WorldHealthOrganization2001spring", generateCitekey(ref, 4))
	assert.Equal(t, "ref4", buildRefID(fields.New(), 4))
}

func crossrefBibliography() *fields.Bibliography {
	b := fields.NewBibliography()

	paper := fields.New()
	paper.Add("INTERNAL_TYPE", "InProceedings", fields.LevelMain)
	paper.Add("REFNUM", "paper", fields.LevelMain)
	paper.Add("TITLE", "A Talk", fields.LevelMain)
	paper.Add("CROSSREF", "conf", fields.LevelMain)
	b.Add(paper)

	conf := fields.New()
	conf.Add("INTERNAL_TYPE", "Proceedings", fields.LevelMain)
	conf.Add("REFNUM", "conf", fields.LevelMain)
	conf.Add("TITLE", "Proceedings of Things", fields.LevelMain)
	conf.Add("YEAR", "2021", fields.LevelMain)
	conf.Add("PUBLISHER", "ACM", fields.LevelHost)
	b.Add(conf)

	dangling := fields.New()
	dangling.Add("INTERNAL_TYPE", "Article", fields.LevelMain)
	dangling.Add("REFNUM", "lost", fields.LevelMain)
	dangling.Add("CROSSREF", "nowhere", fields.LevelMain)
	b.Add(dangling)
	return b
}

func TestResolveCrossrefs(t *testing.T) {
	b := crossrefBibliography()
	c := &diag.Collector{}
	ResolveCrossrefs(b, c)

	paper := b.At(0)
	assert.Equal(t, "Proceedings of Things", paper.Lookup("booktitle", fields.LevelHost))
	assert.Equal(t, "2021", paper.Lookup("YEAR", fields.LevelHost))
	assert.Equal(t, "ACM", paper.Lookup("PUBLISHER", 2))
	assert.Equal(t, []string{"paper"}, paper.Values("REFNUM", fields.LevelAny))
	assert.Equal(t, []string{"InProceedings"}, paper.Values("INTERNAL_TYPE", fields.LevelAny))
	assert.True(t, paper.Used(paper.Find("CROSSREF", fields.LevelAny)))

	dangling := b.At(2)
	n := dangling.Find("CROSSREF", fields.LevelAny)
	require.NotEqual(t, fields.NotFound, n)
	assert.False(t, dangling.Used(n))
	assert.Equal(t, 3, dangling.Len())
	require.Equal(t, 1, c.Count(diag.MissingCrossref))
	assert.Equal(t, "lost", c.Items[0].Key)
	assert.Equal(t, 3, c.Items[0].Ref)
}

func TestResolveCrossrefsKeepsTitleForOtherTypes(t *testing.T) {
	b := fields.NewBibliography()
	chapter := fields.New()
	chapter.Add("INTERNAL_TYPE", "Article", fields.LevelMain)
	chapter.Add("CROSSREF", "vol", fields.LevelMain)
	b.Add(chapter)
	vol := fields.New()
	vol.Add("REFNUM", "vol", fields.LevelMain)
	vol.Add("TITLE", "Volume", fields.LevelMain)
	b.Add(vol)

	ResolveCrossrefs(b, diag.Discard)
	assert.Equal(t, "Volume", chapter.Lookup("TITLE", fields.LevelHost))
	assert.Equal(t, fields.NotFound, chapter.Find("booktitle", fields.LevelAny))
}

func convertedBibliography(t *testing.T, p *Params) *fields.Bibliography {
	t.Helper()
	job, _ := newTestJob(p)
	b := fields.NewBibliography()
	require.NoError(t, Read(b, strings.NewReader(twoRecords), linesFormat{}, job))
	return b
}

func TestWrite(t *testing.T) {
	p := NewParams()
	b := convertedBibliography(t, p)
	job, _ := newTestJob(p)
	var out bytes.Buffer
	require.NoError(t, Write(b, &out, linesOut{}, job))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "# start\n"))
	assert.True(t, strings.HasSuffix(text, "# end\n"))
	assert.Contains(t, text, "AUTHOR=Smith|John@0\n")
	assert.Contains(t, text, "TITLE=Journal of Things@1\n")
}

func TestWriteLatexOutput(t *testing.T) {
	b := fields.NewBibliography()
	ref := fields.New()
	ref.Add("TITLE", "Café & Bar", fields.LevelMain)
	ref.Add("URL", "http://example.org/a_b", fields.LevelMain)
	b.Add(ref)

	p := NewParams()
	p.Out.Latex = true
	job, _ := newTestJob(p)
	var out bytes.Buffer
	require.NoError(t, Write(b, &out, linesOut{}, job))
	assert.Contains(t, out.String(), `TITLE=Caf{\'e} \& Bar@0`)
	assert.Contains(t, out.String(), "URL=http://example.org/a_b@0")
}

func TestWriteMissingStream(t *testing.T) {
	job, _ := newTestJob(NewParams())
	err := Write(fields.NewBibliography(), nil, linesOut{}, job)
	assert.ErrorIs(t, err, diag.ErrBadInput)
	err = Write(nil, io.Discard, linesOut{}, job)
	assert.ErrorIs(t, err, diag.ErrBadInput)
}

func TestWriteSingleRefPerFile(t *testing.T) {
	dir := t.TempDir()
	p := NewParams()
	p.SingleRefPerFile = true
	p.Dir = dir

	b := fields.NewBibliography()
	for range 2 {
		ref := fields.New()
		ref.Add("REFNUM", "Smith2020", fields.LevelMain)
		b.Add(ref)
	}
	job, _ := newTestJob(p)
	require.NoError(t, Write(b, nil, linesOut{}, job))

	first, err := os.ReadFile(filepath.Join(dir, "Smith2020.txt"))
	require.NoError(t, err)
	assert.Equal(t, "# start\nREFNUM=Smith2020@0\n\n# end\n", string(first))
	_, err = os.Stat(filepath.Join(dir, "Smith2020_1.txt"))
	assert.NoError(t, err)
}

func TestWriteSingleRefCannotOpen(t *testing.T) {
	p := NewParams()
	p.SingleRefPerFile = true
	p.Dir = filepath.Join(t.TempDir(), "missing")

	b := fields.NewBibliography()
	b.Add(fields.New())
	job, _ := newTestJob(p)
	err := Write(b, nil, linesOut{}, job)
	assert.ErrorIs(t, err, diag.ErrCannotOpen)
}

func TestParamsClone(t *testing.T) {
	p := NewParams()
	p.AddAsis("NASA")
	p.AddCorps("World Health Organization")
	p.AddAsis("NASA")
	require.Equal(t, []string{"NASA"}, p.Asis)

	np, err := p.Clone()
	require.NoError(t, err)
	np.AddAsis("ESA")
	np.Corps[0] = "changed"
	assert.Equal(t, []string{"NASA"}, p.Asis)
	assert.Equal(t, []string{"World Health Organization"}, p.Corps)
	assert.Equal(t, []string{"NASA", "ESA"}, np.Asis)
}

func TestSetInputCharset(t *testing.T) {
	p := NewParams()
	p.SetInputCharset("ISO-8859-1", SourceFile)
	assert.Equal(t, "ISO-8859-1", p.In.Charset)
	assert.False(t, p.In.UTF8)

	p.SetInputCharset("windows-1252", SourceUser)
	p.SetInputCharset("UTF-8", SourceFile)
	assert.Equal(t, "windows-1252", p.In.Charset)
	assert.Equal(t, SourceUser, p.InSource)
}
