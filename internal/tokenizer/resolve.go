package tokenizer

import (
	"strings"

	"github.com/matsen/bibconv/internal/diag"
)

// Strip selects which outer delimiters Resolve removes from a value made of
// a single token.
type Strip int

const (
	StripNone Strip = iota
	StripBraces
	StripAll
)

var months = [...][2]string{
	{"jan", "January"}, {"feb", "February"}, {"mar", "March"},
	{"apr", "April"}, {"may", "May"}, {"jun", "June"},
	{"jul", "July"}, {"aug", "August"}, {"sep", "September"},
	{"oct", "October"}, {"nov", "November"}, {"dec", "December"},
}

// Macros is the string-variable table of one conversion job. Names are
// case-insensitive and the last definition wins.
type Macros struct {
	defs map[string]string
}

// NewMacros returns a table holding the standard month abbreviations.
func NewMacros() *Macros {
	m := &Macros{defs: make(map[string]string)}
	for _, mon := range months {
		m.Define(mon[0], mon[1])
	}
	return m
}

// Define sets name to value.
func (m *Macros) Define(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.defs[strings.ToLower(name)] = value
}

// Lookup returns the value of name.
func (m *Macros) Lookup(name string) (string, bool) {
	v, ok := m.defs[strings.ToLower(name)]
	return v, ok
}

// Len returns the number of defined variables.
func (m *Macros) Len() int {
	return len(m.defs)
}

// Resolve turns value tokens into the final string: bare words are
// substituted from macros, '#' joins operands with one layer of each
// operand's delimiters removed, and a lone quoted or braced token is
// stripped according to strip.
func Resolve(tokens []Token, macros *Macros, strip Strip) (string, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	tokens = trimConcat(tokens, &diags)
	operands := 0
	concat := false
	for _, t := range tokens {
		if t.Kind == Concat {
			concat = true
			continue
		}
		operands++
	}

	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case Concat:
			continue
		case Bare:
			b.WriteString(substitute(t.Text, macros, &diags))
		case Quoted, Braced:
			if concat || operands > 1 {
				b.WriteString(StripLayer(t.Text, true))
			} else {
				b.WriteString(stripWhole(t, strip))
			}
		}
	}
	return strings.TrimSpace(b.String()), diags
}

// trimConcat drops '#' operators with a missing operand on either side.
func trimConcat(tokens []Token, diags *[]diag.Diagnostic) []Token {
	out := make([]Token, 0, len(tokens))
	for i, t := range tokens {
		if t.Kind != Concat {
			out = append(out, t)
			continue
		}
		leading := len(out) == 0 || out[len(out)-1].Kind == Concat
		trailing := true
		for _, next := range tokens[i+1:] {
			if next.Kind != Concat {
				trailing = false
				break
			}
		}
		if leading || trailing {
			*diags = append(*diags, diag.New(diag.StrayConcat, "dropped '#' with no operand"))
			continue
		}
		out = append(out, t)
	}
	return out
}

func substitute(word string, macros *Macros, diags *[]diag.Diagnostic) string {
	if word == "" || isNumeric(word) {
		return word
	}
	if macros != nil {
		if v, ok := macros.Lookup(word); ok {
			return v
		}
	}
	*diags = append(*diags, diag.New(diag.UnresolvedMacro, "cannot resolve string variable '%s'", word))
	return word
}

func stripWhole(t Token, strip Strip) string {
	switch strip {
	case StripBraces:
		if t.Kind == Braced {
			return StripLayer(t.Text, false)
		}
	case StripAll:
		return StripLayer(t.Text, true)
	}
	return t.Text
}

// StripLayer removes one layer of surrounding braces, and of surrounding
// quotes when quotes is set. Anything else is returned unchanged.
func StripLayer(s string, quotes bool) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == '{' && last == '}' {
		return s[1 : len(s)-1]
	}
	if quotes && first == '"' && last == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
