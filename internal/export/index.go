package export

import (
	"strings"

	"github.com/matsen/bibconv/internal/fields"
)

// Index records the references already present in an output file, so
// appending conversions can skip them.
type Index struct {
	// Keys maps citation keys to true for existence check
	Keys map[string]bool
	// DOIs maps DOI values to citation keys
	DOIs map[string]string
}

// NewIndex indexes the REFNUM and DOI of every record of b. A nil b gives
// an empty index.
func NewIndex(b *fields.Bibliography) *Index {
	idx := &Index{
		Keys: make(map[string]bool),
		DOIs: make(map[string]string),
	}
	if b == nil {
		return idx
	}
	for _, ref := range b.All() {
		key := ref.Lookup("REFNUM", fields.LevelMain)
		if key != "" {
			idx.Keys[key] = true
		}
		if doi := normalizeDOI(ref.Lookup("DOI", fields.LevelAny)); doi != "" {
			idx.DOIs[doi] = key
		}
	}
	return idx
}

// HasEntry returns true if the entry already exists (by DOI or key).
// DOI is the primary match; citation key is the fallback if no DOI.
func (idx *Index) HasEntry(key, doi string) bool {
	// Primary: match by DOI if available
	if doi != "" {
		if _, exists := idx.DOIs[normalizeDOI(doi)]; exists {
			return true
		}
	}

	// Fallback: match by citation key
	return idx.Keys[key]
}

// Missing returns the records of b that the index does not hold, in order.
func (idx *Index) Missing(b *fields.Bibliography) *fields.Bibliography {
	out := fields.NewBibliography()
	for _, ref := range b.All() {
		key := ref.Lookup("REFNUM", fields.LevelMain)
		doi := ref.Lookup("DOI", fields.LevelAny)
		if !idx.HasEntry(key, doi) {
			out.Add(ref)
		}
	}
	return out
}

// normalizeDOI normalizes a DOI for comparison.
// Removes common prefixes like "https://doi.org/" and lowercases.
func normalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}
