package pipeline

import (
	"strings"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
)

// ResolveCrossrefs copies the fields of each CROSSREF target into the record
// that cites it, one level deeper. The target's type and key are never
// inherited, and its TITLE becomes "booktitle" for in-proceedings and
// in-collection records. A missing target is reported and the CROSSREF field
// is left in place.
func ResolveCrossrefs(b *fields.Bibliography, r diag.Reporter) {
	for i, ref := range b.All() {
		n := ref.Find("CROSSREF", fields.LevelAny)
		if n == fields.NotFound {
			continue
		}
		target := ref.Value(n)
		key := ref.Lookup("REFNUM", fields.LevelAny)
		j := b.FindByTag("REFNUM", target)
		if j == fields.NotFound {
			r.Report(diag.Diagnostic{
				Kind:   diag.MissingCrossref,
				Ref:    i + 1,
				Key:    key,
				Detail: "cannot find cross-reference '" + target + "'",
			})
			continue
		}
		typ := ref.Lookup("INTERNAL_TYPE", fields.LevelAny)
		container := strings.EqualFold(typ, "inproceedings") || strings.EqualFold(typ, "incollection")
		ref.SetUsed(n)

		parent := b.At(j)
		inherited := make([]fields.Field, 0, parent.Len())
		for _, fld := range parent.All() {
			if strings.EqualFold(fld.Tag, "INTERNAL_TYPE") || strings.EqualFold(fld.Tag, "REFNUM") {
				continue
			}
			if container && strings.EqualFold(fld.Tag, "TITLE") {
				fld.Tag = "booktitle"
			}
			inherited = append(inherited, fld)
		}
		for _, fld := range inherited {
			ref.Add(fld.Tag, fld.Value, fld.Level+1)
		}
	}
}
