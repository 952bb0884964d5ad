package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matsen/bibconv/internal/fields"
)

func testRecord() *fields.Fields {
	ref := fields.New()
	ref.Add("REFNUM", "Smith2020", fields.LevelMain)
	ref.Add("TITLE", "Machine Learning in Biology", fields.LevelMain)
	ref.Add("AUTHOR", "Smith|John", fields.LevelMain)
	ref.Add("AUTHOR", "Doe|Jane", fields.LevelMain)
	ref.Add("TITLE", "Nature", fields.LevelHost)
	ref.Add("YEAR", "2020", fields.LevelHost)
	return ref
}

func TestReadAll_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.jsonl")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	b, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("ReadAll() returned %d records, want 0", b.Len())
	}
}

func TestReadAll_NonExistentFile(t *testing.T) {
	b, err := ReadAll("/nonexistent/path/refs.jsonl")
	if err != nil {
		t.Fatalf("ReadAll() error = %v (should return empty bibliography for nonexistent file)", err)
	}
	if b.Len() != 0 {
		t.Errorf("ReadAll() returned %d records, want 0", b.Len())
	}
}

func TestReadAll_SingleRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.jsonl")
	content := `{"fields":[{"tag":"REFNUM","value":"Smith2020","level":0},{"tag":"YEAR","value":2020,"level":1},{"tag":"NOTE","value":null,"level":0}]}`
	if err := os.WriteFile(path, []byte(content+"\n\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	b, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("ReadAll() returned %d records, want 1", b.Len())
	}

	ref := b.At(0)
	if got := ref.Lookup("REFNUM", fields.LevelMain); got != "Smith2020" {
		t.Errorf("REFNUM = %q, want Smith2020", got)
	}
	if got := ref.Lookup("YEAR", fields.LevelHost); got != "2020" {
		t.Errorf("YEAR = %q, want 2020 (numbers decode as text)", got)
	}
	if ref.Len() != 2 {
		t.Errorf("record has %d fields, want 2 (null values dropped)", ref.Len())
	}
}

func TestReadAll_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.jsonl")
	if err := os.WriteFile(path, []byte("{\"fields\":[]}\nnot json\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := ReadAll(path); err == nil {
		t.Error("ReadAll() expected error for invalid line")
	}
}

func TestWriteAll_ReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.jsonl")

	b := fields.NewBibliography()
	b.Add(testRecord())
	other := fields.New()
	other.Add("REFNUM", "Jones2021", fields.LevelMain)
	b.Add(other)

	if err := WriteAll(path, b); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("ReadAll() returned %d records, want 2", got.Len())
	}

	want := testRecord()
	ref := got.At(0)
	if ref.Len() != want.Len() {
		t.Fatalf("record has %d fields, want %d", ref.Len(), want.Len())
	}
	for i, f := range want.All() {
		g := ref.At(i)
		if g.Tag != f.Tag || g.Value != f.Value || g.Level != f.Level {
			t.Errorf("field %d = %+v, want %+v", i, g, f)
		}
	}
}

func TestWriteRecord(t *testing.T) {
	var buf bytes.Buffer
	ref := fields.New()
	ref.Add("TITLE", "A", fields.LevelMain)
	ref.Add("TITLE", "B", fields.LevelHost)

	if err := WriteRecord(&buf, ref); err != nil {
		t.Fatalf("WriteRecord() error = %v", err)
	}

	want := `{"fields":[{"tag":"TITLE","value":"A","level":0},{"tag":"TITLE","value":"B","level":1}]}` + "\n"
	if buf.String() != want {
		t.Errorf("WriteRecord() = %q, want %q", buf.String(), want)
	}
}

func TestFlexibleString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"text"`, "text"},
		{`2020`, "2020"},
		{`12.5`, "12.5"},
		{`true`, "true"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexibleString
			if err := f.UnmarshalJSON([]byte(tt.input)); err != nil {
				t.Fatalf("UnmarshalJSON(%s) error = %v", tt.input, err)
			}
			if f.String() != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %q, want %q", tt.input, f.String(), tt.want)
			}
		})
	}
}

func TestFlexibleString_InvalidInput(t *testing.T) {
	var f FlexibleString
	if err := f.UnmarshalJSON([]byte(`{"a":1}`)); err == nil {
		t.Error("UnmarshalJSON() expected error for object")
	}
}
