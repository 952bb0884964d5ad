package fieldproc

import (
	"strconv"
	"testing"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/reftype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(opts Options) *Context {
	return &Context{In: fields.New(), Out: fields.New(), Options: opts}
}

// dump renders a record as "TAG=value@level" lines for compact assertions.
func dump(f *fields.Fields) []string {
	var out []string
	for _, fld := range f.All() {
		out = append(out, fld.Tag+"="+fld.Value+"@"+strconv.Itoa(fld.Level))
	}
	return out
}

func TestNames_EtAl(t *testing.T) {
	c := newContext(Options{})
	Names(c, "AUTHOR", "Smith, John and Doe, Jane and others", fields.LevelMain)
	assert.Equal(t, []string{
		"AUTHOR=Smith|John@0",
		"AUTHOR=Doe|Jane@0",
		"AUTHOR:ASIS=et al.@0",
	}, dump(c.Out))
}

func TestNames(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opts  Options
		want  []string
	}{
		{"given family", "John Smith", Options{}, []string{"AUTHOR=Smith|John@0"}},
		{"middle names", "John Ronald Reuel Tolkien", Options{}, []string{"AUTHOR=Tolkien|John|Ronald|Reuel@0"}},
		{"family particle with comma", "van der Berg, Jan", Options{}, []string{"AUTHOR=van der Berg|Jan@0"}},
		{"initials", "Knuth, D. E.", Options{}, []string{"AUTHOR=Knuth|D.|E.@0"}},
		{"repeated and", "A. Smith and and B. Jones", Options{}, []string{"AUTHOR=Smith|A.@0", "AUTHOR=Jones|B.@0"}},
		{"uppercase AND", "A. Smith AND B. Jones", Options{}, []string{"AUTHOR=Smith|A.@0", "AUTHOR=Jones|B.@0"}},
		{"single token", "Aristotle", Options{}, []string{"AUTHOR:ASIS=Aristotle@0"}},
		{"et al. spelled out", "Smith, J. et al.", Options{}, []string{"AUTHOR=Smith|J.@0", "AUTHOR:ASIS=et al.@0"}},
		{"et al without period", "Smith, J., et al", Options{}, []string{"AUTHOR=Smith|J.@0", "AUTHOR:ASIS=et al.@0"}},
		{"asis whole value", "Prince Rogers Nelson", Options{Asis: []string{"Prince Rogers Nelson"}}, []string{"AUTHOR:ASIS=Prince Rogers Nelson@0"}},
		{"corp in list", "Jane Doe and World Health Organization", Options{Corps: []string{"World Health Organization"}},
			[]string{"AUTHOR=Doe|Jane@0", "AUTHOR:CORP=World Health Organization@0"}},
		{"empty", "   ", Options{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(tt.opts)
			Names(c, "AUTHOR", tt.value, fields.LevelMain)
			assert.Equal(t, tt.want, dump(c.Out))
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		in    string
		start string
		end   string
	}{
		{"A---B", "A", "B"},
		{"123", "123", ""},
		{"12--15", "12", "15"},
		{"12 – 15", "12", "15"},
		{"e1001—e1010", "e1001", "e1010"},
		{"pp. 5-9", "5", "9"},
		{"-7", "", "7"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := newContext(Options{})
			Pages(c, "PAGES", tt.in, fields.LevelMain)
			assert.Equal(t, tt.start, c.Out.Lookup("PAGESTART", fields.LevelMain))
			assert.Equal(t, tt.end, c.Out.Lookup("PAGEEND", fields.LevelMain))
			if tt.end == "" {
				assert.Equal(t, fields.NotFound, c.Out.Find("PAGEEND", fields.LevelAny))
			}
		})
	}
}

func TestTitle(t *testing.T) {
	c := newContext(Options{})
	Title(c, "TITLE", "Gödel, Escher, Bach: An Eternal Golden Braid", fields.LevelMain)
	assert.Equal(t, []string{"TITLE=Gödel, Escher, Bach@0", "SUBTITLE=An Eternal Golden Braid@0"}, dump(c.Out))

	c = newContext(Options{})
	Title(c, "TITLE", "Why Sleep? The Science of Dreams", fields.LevelHost)
	assert.Equal(t, []string{"TITLE=Why Sleep?@1", "SUBTITLE=The Science of Dreams@1"}, dump(c.Out))

	c = newContext(Options{NoSplitTitle: true})
	Title(c, "TITLE", "Main: Sub", fields.LevelMain)
	assert.Equal(t, []string{"TITLE=Main: Sub@0"}, dump(c.Out))

	c = newContext(Options{})
	Title(c, "SHORTTITLE", "Short: Form", fields.LevelHost)
	assert.Equal(t, []string{"SHORTTITLE=Short: Form@1"}, dump(c.Out))
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		in, main, sub string
	}{
		{"Plain title", "Plain title", ""},
		{"Trailing colon:", "Trailing colon:", ""},
		{"See http://example.com", "See http://example.com", ""},
		{"A: B: C", "A", "B: C"},
	}
	for _, tt := range tests {
		main, sub := SplitTitle(tt.in)
		assert.Equal(t, tt.main, main, tt.in)
		assert.Equal(t, tt.sub, sub, tt.in)
	}
}

func TestMergeTitles(t *testing.T) {
	f := fields.New()
	f.Add("TITLE", "Main", fields.LevelMain)
	f.Add("SUBTITLE", "Sub", fields.LevelMain)
	f.Add("TITLEADDON", "Addon", fields.LevelMain)
	f.Add("TITLE", "Journal?", fields.LevelHost)
	f.Add("SUBTITLE", "Yes", fields.LevelHost)
	f.Add("TITLE", "Original.", fields.LevelOrig)
	f.Add("TITLEADDON", "Reprint", fields.LevelOrig)

	MergeTitles(f)
	assert.Equal(t, []string{
		"TITLE=Main: Sub. Addon@0",
		"TITLE=Journal? Yes@1",
		"TITLE=Original. Reprint@-2",
	}, dump(f))
}

func TestDate(t *testing.T) {
	c := newContext(Options{})
	Date(c, "DATE", "2004/05/06/Spring", fields.LevelMain)
	assert.Equal(t, []string{"YEAR=2004@0", "MONTH=05@0", "DAY=06@0", "DATEOTHER=Spring@0"}, dump(c.Out))

	c = newContext(Options{})
	Date(c, "PARTDATE", "1999//", fields.LevelMain)
	assert.Equal(t, []string{"PARTYEAR=1999@0"}, dump(c.Out))
}

func TestKeywords(t *testing.T) {
	c := newContext(Options{})
	Keywords(c, "KEYWORD", "Microscopy, Confocal; Cells ;; Imaging", fields.LevelMain)
	assert.Equal(t, []string{"KEYWORD=Microscopy, Confocal@0", "KEYWORD=Cells@0", "KEYWORD=Imaging@0"}, dump(c.Out))
}

func TestSerialNo(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0028-0836", "ISSN=0028-0836@0"},
		{"ISSN: 1234-567X", "ISSN=1234-567X@0"},
		{"0-306-40615-2", "ISBN=0-306-40615-2@0"},
		{"978-0-306-40615-7", "ISBN13=978-0-306-40615-7@0"},
		{"ISBN 978-0-306-40615-7", "ISBN13=978-0-306-40615-7@0"},
		{"ABC-1", "SERIALNUMBER=ABC-1@0"},
	}
	for _, tt := range tests {
		c := newContext(Options{})
		SerialNo(c, "SERIALNUMBER", tt.in, fields.LevelMain)
		assert.Equal(t, []string{tt.want}, dump(c.Out), tt.in)
	}
}

func TestURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{`\url{x}`, "URL={x}@0"},
		{"arXiv:1234.5678", "ARXIV=1234.5678@0"},
		{"http://arxiv.org/abs/1234.5678", "ARXIV=1234.5678@0"},
		{"https://doi.org/10.1000/xyz123", "DOI=10.1000/xyz123@0"},
		{"https://example.com/paper", "URL=https://example.com/paper@0"},
		{"example.com", "URL=example.com@0"},
	}
	for _, tt := range tests {
		c := newContext(Options{})
		URL(c, "", tt.in, fields.LevelMain)
		assert.Equal(t, []string{tt.want}, dump(c.Out), tt.in)
	}
}

func TestNote(t *testing.T) {
	c := newContext(Options{})
	Note(c, "NOTES", "doi:10.1093/nar/gkh123", fields.LevelMain)
	Note(c, "NOTES", "http://example.org/x", fields.LevelMain)
	Note(c, "NOTES", "Reprinted in 1990 with corrections", fields.LevelMain)
	assert.Equal(t, []string{
		"DOI=10.1093/nar/gkh123@0",
		"URL=http://example.org/x@0",
		"NOTES=Reprinted in 1990 with corrections@0",
	}, dump(c.Out))
}

func TestEprint(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		want []string
	}{
		{"arxiv", map[string]string{"eprint": "2101.00001", "eprinttype": "arXiv"}, []string{"ARXIV=2101.00001@0"}},
		{"jstor", map[string]string{"eprint": "123", "eprinttype": "jstor"}, []string{"JSTOR=123@0"}},
		{"pubmed", map[string]string{"eprint": "456", "eprinttype": "pubmed"}, []string{"PMID=456@0"}},
		{"medline", map[string]string{"eprint": "789", "eprinttype": "medline"}, []string{"MEDLINE=789@0"}},
		{"generic", map[string]string{"eprint": "x1", "eprinttype": "hdl"}, []string{"EPRINT=x1@0", "EPRINTTYPE=hdl@0"}},
		{"id only", map[string]string{"eprint": "x2"}, []string{"EPRINT=x2@0"}},
		{"type only", map[string]string{"eprinttype": "arxiv"}, []string{"EPRINTTYPE=arxiv@0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(Options{})
			for _, tag := range []string{"eprint", "eprinttype"} {
				if v, ok := tt.in[tag]; ok {
					c.In.Add(tag, v, fields.LevelMain)
				}
			}
			Eprint(c, "", c.In.Value(0), fields.LevelMain)
			assert.Equal(t, tt.want, dump(c.Out))
			for i := 0; i < c.In.Len(); i++ {
				assert.True(t, c.In.Used(i))
			}
		})
	}
}

func TestGenreAndHowPublished(t *testing.T) {
	c := newContext(Options{})
	Genre(c, "GENRE", "Diplomarbeit", fields.LevelMain)
	Genre(c, "GENRE", "Habilitationsschrift", fields.LevelMain)
	assert.Equal(t, []string{"GENRE=Habilitation thesis@0"}, dump(c.Out))

	c = newContext(Options{})
	Genre(c, "GENRE", "Technical note", fields.LevelMain)
	HowPublished(c, "", "http://example.com", fields.LevelMain)
	HowPublished(c, "", "Self-published", fields.LevelMain)
	assert.Equal(t, []string{
		"GENRE=Technical note@0",
		"URL=http://example.com@0",
		"DESCRIPTION=Self-published@0",
	}, dump(c.Out))
}

func TestOrganization(t *testing.T) {
	c := newContext(Options{})
	Organization(c, "", "IEEE", fields.LevelMain)
	c.In.Add("publisher", "Springer", fields.LevelMain)
	Organization(c, "", "ACM", fields.LevelHost)
	assert.Equal(t, []string{"PUBLISHER:CORP=IEEE@0", "ORGANIZER:CORP=ACM@1"}, dump(c.Out))
}

func TestLinkedFile(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Full Text:/home/me/paper.pdf:PDF", "FILEATTACH=/home/me/paper.pdf@0"},
		{":C:/Users/me/paper.pdf:PDF", "FILEATTACH=C:/Users/me/paper.pdf@0"},
		{"file:///tmp/x.pdf", "FILEATTACH=///tmp/x.pdf@0"},
		{"http://example.com/x.pdf", "URL=http://example.com/x.pdf@0"},
		{"paper.pdf", "FILEATTACH=paper.pdf@0"},
	}
	for _, tt := range tests {
		c := newContext(Options{})
		LinkedFile(c, "", tt.in, fields.LevelMain)
		assert.Equal(t, []string{tt.want}, dump(c.Out), tt.in)
	}
}

func TestSente(t *testing.T) {
	c := newContext(Options{})
	Sente(c, "", "file://localhost/p/paper.pdf,Sente,PDF", fields.LevelMain)
	assert.Equal(t, []string{"FILEATTACH=file://localhost/p/paper.pdf@0"}, dump(c.Out))
}

func TestDOIStart(t *testing.T) {
	assert.Equal(t, 0, DOIStart("10.1000/abc"))
	assert.Equal(t, 4, DOIStart("doi:10.1000/abc"))
	assert.Equal(t, -1, DOIStart("10.1000"))
	assert.Equal(t, -1, DOIStart("110.1000/abc"))
	assert.Equal(t, -1, DOIStart("no doi here"))
}

func TestTranslator(t *testing.T) {
	tbl := &reftype.Table{
		Format: "test",
		Variants: []reftype.Variant{{Name: "article", Lookups: []reftype.Lookup{
			{Source: "author", Dest: "AUTHOR", Directive: reftype.Person, Level: fields.LevelMain},
			{Source: "journal", Dest: "TITLE", Directive: reftype.Title, Level: fields.LevelHost},
			{Source: "pages", Dest: "PAGES", Directive: reftype.Pages, Level: fields.LevelMain},
			{Source: "crossref", Directive: reftype.Skip, Level: fields.LevelMain},
			reftype.Synth("GENRE", "journal article", fields.LevelMain),
		}}},
	}

	in := fields.New()
	in.Add("author", "Jane Doe", fields.LevelMain)
	in.Add("journal", "Nature", fields.LevelMain)
	in.Add("pages", "1-2", fields.LevelMain)
	in.Add("crossref", "parent", fields.LevelMain)
	in.Add("mystery", "value", fields.LevelMain)
	in.Add("pages", "99", fields.LevelMain)
	in.SetUsed(5)

	var unknown []string
	tr := &Translator{
		Table:   tbl,
		Unknown: func(tag string) { unknown = append(unknown, tag) },
	}
	out := fields.New()
	tr.Translate(in, out, 0)

	require.Equal(t, []string{"mystery"}, unknown)
	assert.Equal(t, []string{
		"AUTHOR=Doe|Jane@0",
		"TITLE=Nature@1",
		"PAGESTART=1@0",
		"PAGEEND=2@0",
	}, dump(out))
}

func TestTranslator_OverrideAndAdjust(t *testing.T) {
	tbl := &reftype.Table{
		Format: "test",
		Variants: []reftype.Variant{{Name: "x", Lookups: []reftype.Lookup{
			{Source: "title", Dest: "TITLE", Directive: reftype.Title, Level: fields.LevelHost},
			{Source: "author", Dest: "AUTHOR", Directive: reftype.Person, Level: fields.LevelMain},
		}}},
	}
	in := fields.New()
	in.Add("title", "T", fields.LevelMain)
	in.Add("author", "whoever", fields.LevelMain)

	tr := &Translator{
		Table: tbl,
		Override: map[reftype.Directive]Func{
			reftype.Person: func(c *Context, tag, value string, level int) {
				c.Out.Add(tag+":CUSTOM", value, level)
			},
		},
		Adjust: func(_ *fields.Fields, tag string, l reftype.Lookup) reftype.Lookup {
			if tag == "title" {
				l.Level = fields.LevelMain
			}
			return l
		},
	}
	out := fields.New()
	tr.Translate(in, out, 0)
	assert.Equal(t, []string{"TITLE=T@0", "AUTHOR:CUSTOM=whoever@0"}, dump(out))
}

func TestFor(t *testing.T) {
	// Every directive resolves to something callable.
	for d := reftype.Copy; d <= reftype.Default; d++ {
		assert.NotNil(t, For(d), d.String())
	}
}
