package fieldproc

import (
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/reftype"
)

// Translator runs the table-driven translation of one source record.
type Translator struct {
	Table   *reftype.Table
	Options Options
	// Override replaces the default processor for a directive.
	Override map[reftype.Directive]Func
	// Adjust may rewrite a lookup using the rest of the source record.
	Adjust func(in *fields.Fields, sourceTag string, l reftype.Lookup) reftype.Lookup
	// Unknown is called for source tags the type does not define.
	Unknown func(tag string)
}

// Translate converts every unused, non-empty field of in and appends the
// results to out.
func (t *Translator) Translate(in, out *fields.Fields, typ int) {
	c := &Context{In: in, Out: out, Options: t.Options}
	for i, fld := range in.All() {
		if in.Used(i) || fld.Value == "" {
			continue
		}
		l, ok := t.Table.Translate(fld.Tag, typ)
		if !ok {
			if t.Unknown != nil {
				t.Unknown(fld.Tag)
			}
			continue
		}
		if t.Adjust != nil {
			l = t.Adjust(in, fld.Tag, l)
		}
		fn, ok := t.Override[l.Directive]
		if !ok {
			fn = For(l.Directive)
		}
		fn(c, l.Dest, fld.Value, l.Level)
	}
}
