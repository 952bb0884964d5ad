// Package storage handles field dumps in JSONL and SQLite formats.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matsen/bibconv/internal/fields"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// FlexibleString can unmarshal from either string or number JSON values.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexibleString(strconv.FormatBool(b))
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// Field is the JSON form of one field.
type Field struct {
	Tag   string         `json:"tag"`
	Value FlexibleString `json:"value"`
	Level int            `json:"level"`
}

// Record is the JSON form of one reference: its fields in order.
type Record struct {
	Fields []Field `json:"fields"`
}

// NewRecord captures the fields of ref.
func NewRecord(ref *fields.Fields) Record {
	rec := Record{Fields: make([]Field, 0, ref.Len())}
	for _, f := range ref.All() {
		rec.Fields = append(rec.Fields, Field{Tag: f.Tag, Value: FlexibleString(f.Value), Level: f.Level})
	}
	return rec
}

// ToFields rebuilds the reference. Empty values are dropped.
func (r Record) ToFields() *fields.Fields {
	ref := fields.New()
	for _, f := range r.Fields {
		ref.Add(f.Tag, f.Value.String(), f.Level)
	}
	return ref
}

// DecodeRecord parses one JSONL line.
func DecodeRecord(line []byte) (*fields.Fields, error) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, err
	}
	return rec.ToFields(), nil
}

// WriteRecord writes ref as one JSON line.
func WriteRecord(w io.Writer, ref *fields.Fields) error {
	data, err := json.Marshal(NewRecord(ref))
	if err != nil {
		return fmt.Errorf("encoding reference: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing reference: %w", err)
	}
	return nil
}

// ReadAll reads all references from a JSONL file.
func ReadAll(path string) (*fields.Bibliography, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fields.NewBibliography(), nil // Missing file is an empty bibliography
		}
		return nil, fmt.Errorf("opening field dump: %w", err)
	}
	defer f.Close()

	b := fields.NewBibliography()
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ref, err := DecodeRecord(line)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		b.Add(ref)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading field dump: %w", err)
	}

	return b, nil
}

// WriteAll writes all references to a JSONL file, replacing existing content.
func WriteAll(path string, b *fields.Bibliography) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating field dump: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, ref := range b.All() {
		if err := WriteRecord(w, ref); err != nil {
			return fmt.Errorf("reference %d: %w", i+1, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing field dump: %w", err)
	}
	return f.Close()
}
