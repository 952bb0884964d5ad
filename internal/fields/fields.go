// Package fields defines the record model shared by every bibliographic format:
// an ordered, multi-level tag/value store and the bibliography that holds them.
package fields

import (
	"iter"
	"strings"
)

// Containment levels. LevelHost and the integers above it describe successive
// enclosing containers; LevelOrig describes the original-language version of the work.
const (
	LevelMain   = 0
	LevelHost   = 1
	LevelSeries = 2
	LevelOrig   = -2
	LevelAny    = -1
)

// NotFound is returned by Find when no field matches.
const NotFound = -1

// Field is one (tag, value, level) triple inside a record.
//
// Used is part of the store's contract: it is set when a field has been consumed
// by crossref inheritance or by a processor that folds it into another field, and
// translation skips used fields. Crossref and diagnostics still see them.
type Field struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
	Level int    `json:"level"`
	Used  bool   `json:"used,omitempty"`
}

// Fields is one bibliographic record. Order is insertion order and duplicate tags
// at the same level are allowed; repeated AUTHOR fields form an author list.
type Fields struct {
	items []Field
}

// New returns an empty record.
func New() *Fields {
	return &Fields{}
}

// Add appends a field. Empty values carry no information and are dropped.
func (f *Fields) Add(tag, value string, level int) {
	if tag == "" || value == "" {
		return
	}
	f.items = append(f.items, Field{Tag: tag, Value: value, Level: level})
}

// ReplaceOrAdd overwrites the value of the first field with a matching tag at any
// level, or appends a new field when there is none.
func (f *Fields) ReplaceOrAdd(tag, value string, level int) {
	if n := f.Find(tag, LevelAny); n != NotFound {
		if value == "" {
			return
		}
		f.items[n].Value = value
		return
	}
	f.Add(tag, value, level)
}

// Find returns the index of the first field matching tag (case-insensitive) at
// level, or NotFound. LevelAny matches every level.
func (f *Fields) Find(tag string, level int) int {
	for i, fld := range f.items {
		if matches(fld, tag, level) {
			return i
		}
	}
	return NotFound
}

// FindAll returns the indexes of every field matching tag at level.
func (f *Fields) FindAll(tag string, level int) []int {
	var out []int
	for i, fld := range f.items {
		if matches(fld, tag, level) {
			out = append(out, i)
		}
	}
	return out
}

// Lookup returns the value of the first field matching tag at level, or "".
func (f *Fields) Lookup(tag string, level int) string {
	if n := f.Find(tag, level); n != NotFound {
		return f.items[n].Value
	}
	return ""
}

// Values returns the values of every field matching tag at level, in order.
func (f *Fields) Values(tag string, level int) []string {
	var out []string
	for _, fld := range f.items {
		if matches(fld, tag, level) {
			out = append(out, fld.Value)
		}
	}
	return out
}

func matches(fld Field, tag string, level int) bool {
	if level != LevelAny && fld.Level != level {
		return false
	}
	return strings.EqualFold(fld.Tag, tag)
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	return len(f.items)
}

// At returns a copy of the field at index i.
func (f *Fields) At(i int) Field {
	return f.items[i]
}

// Tag returns the tag at index i.
func (f *Fields) Tag(i int) string { return f.items[i].Tag }

// Value returns the value at index i.
func (f *Fields) Value(i int) string { return f.items[i].Value }

// Level returns the level at index i.
func (f *Fields) Level(i int) int { return f.items[i].Level }

// SetValue overwrites the value at index i. Charset conversion uses it to
// rewrite fields in place.
func (f *Fields) SetValue(i int, value string) {
	f.items[i].Value = value
}

// SetUsed marks the field at index i as consumed.
func (f *Fields) SetUsed(i int) {
	if i >= 0 && i < len(f.items) {
		f.items[i].Used = true
	}
}

// Used reports whether the field at index i has been consumed.
func (f *Fields) Used(i int) bool {
	return f.items[i].Used
}

// Remove deletes the field at index i, preserving the order of the rest.
func (f *Fields) Remove(i int) {
	f.items = append(f.items[:i], f.items[i+1:]...)
}

// All iterates over the fields in insertion order.
func (f *Fields) All() iter.Seq2[int, Field] {
	return func(yield func(int, Field) bool) {
		for i, fld := range f.items {
			if !yield(i, fld) {
				return
			}
		}
	}
}

// MaxLevel returns the deepest containment level present, or LevelMain.
func (f *Fields) MaxLevel() int {
	deepest := LevelMain
	for _, fld := range f.items {
		if fld.Level > deepest {
			deepest = fld.Level
		}
	}
	return deepest
}

// Clone returns a deep copy of the record.
func (f *Fields) Clone() *Fields {
	out := &Fields{items: make([]Field, len(f.items))}
	copy(out.items, f.items)
	return out
}
