package export

import (
	"strings"
	"testing"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
)

func risRecord() *fields.Fields {
	ref := fields.New()
	ref.Add("REFNUM", "k1", fields.LevelMain)
	ref.Add("GENRE", "journal article", fields.LevelMain)
	ref.Add("AUTHOR", "Smith|John", fields.LevelMain)
	ref.Add("AUTHOR:ASIS", "et al.", fields.LevelMain)
	ref.Add("TITLE", "A study", fields.LevelMain)
	ref.Add("SUBTITLE", "of things", fields.LevelMain)
	ref.Add("TITLE", "Nature", fields.LevelHost)
	ref.Add("PARTYEAR", "2020", fields.LevelMain)
	ref.Add("PARTMONTH", "05", fields.LevelMain)
	ref.Add("PARTDAY", "01", fields.LevelMain)
	ref.Add("PAGESTART", "10", fields.LevelMain)
	ref.Add("PAGEEND", "20", fields.LevelMain)
	ref.Add("DOI", "10.1000/xyz", fields.LevelMain)
	ref.Add("KEYWORD", "alpha", fields.LevelMain)
	ref.Add("KEYWORD", "beta", fields.LevelMain)
	ref.Add("NOTES", "a note", fields.LevelMain)
	return ref
}

func TestRISWrite(t *testing.T) {
	var b strings.Builder
	if err := NewRIS().Write(&b, risRecord(), pipeline.NewParams(), 0); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := `TY  - JOUR
ID  - k1
AU  - Smith, John
TI  - A study: of things
T2  - Nature
PY  - 2020/05/01/
SP  - 10
EP  - 20
DO  - 10.1000/xyz
KW  - alpha
KW  - beta
N1  - a note
` + "ER  - \n\n"
	if got := b.String(); got != want {
		t.Errorf("Write() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRISType(t *testing.T) {
	tests := []struct {
		tag, value string
		want       string
	}{
		{"GENRE", "book chapter", "CHAP"},
		{"GENRE", "Thesis", "THES"},
		{"GENRE", "web page", "ELEC"},
		{"INTERNAL_TYPE", "INPROCEEDINGS", "CONF"},
		{"INTERNAL_TYPE", "TECHREPORT", "RPRT"},
		{"INTERNAL_TYPE", "MISC", "GEN"},
		{"", "", "GEN"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			ref := fields.New()
			ref.Add(tt.tag, tt.value, fields.LevelMain)
			if got := risType(ref); got != tt.want {
				t.Errorf("risType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRISDate(t *testing.T) {
	ref := fields.New()
	ref.Add("YEAR", "1999", fields.LevelMain)
	if got := risDate(ref); got != "1999" {
		t.Errorf("risDate() = %q, want 1999", got)
	}
	ref.Add("MONTH", "12", fields.LevelMain)
	if got := risDate(ref); got != "1999/12//" {
		t.Errorf("risDate() = %q, want 1999/12//", got)
	}
}
