package fields

import (
	"iter"
	"strings"
)

// Bibliography is the ordered working set of one conversion job.
// Records never share fields; crossref inheritance copies values.
type Bibliography struct {
	refs []*Fields
}

// NewBibliography returns an empty bibliography.
func NewBibliography() *Bibliography {
	return &Bibliography{}
}

// Add appends a record.
func (b *Bibliography) Add(ref *Fields) {
	b.refs = append(b.refs, ref)
}

// Len returns the number of records.
func (b *Bibliography) Len() int {
	return len(b.refs)
}

// At returns the record at index i.
func (b *Bibliography) At(i int) *Fields {
	return b.refs[i]
}

// All iterates over records in input order.
func (b *Bibliography) All() iter.Seq2[int, *Fields] {
	return func(yield func(int, *Fields) bool) {
		for i, ref := range b.refs {
			if !yield(i, ref) {
				return
			}
		}
	}
}

// FindByTag returns the index of the first record holding a field tag whose
// value equals value exactly, or NotFound. A linear scan is fine at the sizes
// bibliographies reach.
func (b *Bibliography) FindByTag(tag, value string) int {
	for i, ref := range b.refs {
		for _, fld := range ref.items {
			if strings.EqualFold(fld.Tag, tag) && fld.Value == value {
				return i
			}
		}
	}
	return NotFound
}

// Copy appends deep copies of every record in src.
func (b *Bibliography) Copy(src *Bibliography) {
	for _, ref := range src.refs {
		b.Add(ref.Clone())
	}
}
