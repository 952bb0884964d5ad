// Package tokenizer scans brace/quote-delimited "tag = value" records, the
// syntax shared by BibTeX and BibLaTeX, into tag/token pairs.
package tokenizer

import (
	"strings"

	"github.com/matsen/bibconv/internal/diag"
)

// Kind classifies a value token.
type Kind int

const (
	Bare Kind = iota
	Quoted
	Braced
	Concat
)

func (k Kind) String() string {
	switch k {
	case Bare:
		return "bare"
	case Quoted:
		return "quoted"
	case Braced:
		return "braced"
	case Concat:
		return "concat"
	}
	return "unknown"
}

// Token is one chunk of a value. Quoted and Braced tokens keep their
// delimiters so callers decide how many layers to strip.
type Token struct {
	Text string
	Kind Kind
}

// Pair is one tag with its unresolved value tokens.
type Pair struct {
	Tag    string
	Tokens []Token
}

// Record is the scanned form of one framed record.
type Record struct {
	Type  string
	Key   string
	Pairs []Pair
}

type scanner struct {
	text   string
	pos    int
	closer byte
	diags  []diag.Diagnostic
}

// Parse scans the text of one record, from its leading '@' (optional) to its
// closing delimiter. Problems are returned as diagnostics alongside a
// best-effort record.
func Parse(text string) (*Record, []diag.Diagnostic) {
	s := &scanner{text: text}
	rec := &Record{}

	rec.Type = s.recordType()
	if s.closer == 0 {
		return rec, s.diags
	}
	rec.Key = s.recordKey()

	for {
		s.skipSpaceAndCommas()
		if s.eof() {
			s.report(diag.UnbalancedBraces, "record '%s' is not closed", rec.Type)
			break
		}
		if s.peek() == s.closer {
			s.pos++
			break
		}
		start := s.pos
		pair, ok := s.clause()
		if ok {
			rec.Pairs = append(rec.Pairs, pair)
		}
		if s.pos == start {
			// Unexpected character; step over it.
			s.pos++
		}
	}
	return rec, s.diags
}

// Type returns the type token of a record without scanning the rest.
func Type(text string) string {
	s := &scanner{text: text}
	return s.recordType()
}

func (s *scanner) eof() bool { return s.pos >= len(s.text) }

func (s *scanner) peek() byte { return s.text[s.pos] }

func (s *scanner) report(kind diag.Kind, format string, args ...any) {
	s.diags = append(s.diags, diag.New(kind, format, args...))
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
}

func (s *scanner) skipSpaceAndCommas() {
	for !s.eof() && (isSpace(s.peek()) || s.peek() == ',') {
		s.pos++
	}
}

// recordType reads "@type" up to the opening delimiter and consumes it.
func (s *scanner) recordType() string {
	s.skipSpace()
	if !s.eof() && s.peek() == '@' {
		s.pos++
	}
	start := s.pos
	for !s.eof() && s.peek() != '{' && s.peek() != '(' && !isSpace(s.peek()) {
		s.pos++
	}
	typ := s.text[start:s.pos]
	s.skipSpace()
	if !s.eof() {
		switch s.peek() {
		case '{':
			s.closer = '}'
			s.pos++
		case '(':
			s.closer = ')'
			s.pos++
		}
	}
	return typ
}

// recordKey reads the citation key. A candidate holding '=' is really the
// first tag of a keyless record, so the cursor rolls back.
func (s *scanner) recordKey() string {
	s.skipSpace()
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if c == '\\' && s.pos+1 < len(s.text) {
			s.pos += 2
			continue
		}
		if c == ',' || c == s.closer {
			break
		}
		s.pos++
	}
	key := strings.TrimSpace(s.text[start:s.pos])
	if strings.Contains(key, "=") {
		s.pos = start
		return ""
	}
	if !s.eof() && s.peek() == ',' {
		s.pos++
	}
	return key
}

// clause reads one "tag = value" pair. A tag with no '=' yields no pair.
func (s *scanner) clause() (Pair, bool) {
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if isSpace(c) || c == '=' || c == ',' || c == s.closer {
			break
		}
		s.pos++
	}
	tag := s.text[start:s.pos]
	s.skipSpace()
	if s.eof() || s.peek() != '=' {
		return Pair{}, false
	}
	s.pos++
	tokens := s.value(tag)
	if tag == "" {
		return Pair{}, false
	}
	return Pair{Tag: tag, Tokens: tokens}, true
}

// value collects tokens until a comma or the record closer at depth zero.
func (s *scanner) value(tag string) []Token {
	var tokens []Token
	for {
		s.skipSpace()
		if s.eof() {
			return tokens
		}
		switch c := s.peek(); {
		case c == ',' || c == s.closer:
			return tokens
		case c == '#':
			s.pos++
			tokens = append(tokens, Token{Text: "#", Kind: Concat})
		case c == '"':
			tokens = append(tokens, s.quoted(tag))
		case c == '{':
			tokens = append(tokens, s.braced(tag))
		case c == '}' || c == ')':
			// A closer that does not match the record opener.
			s.report(diag.UnbalancedBraces, "unexpected '%c' in field '%s'", c, tag)
			s.pos++
		default:
			tokens = append(tokens, s.bare())
		}
	}
}

func (s *scanner) bare() Token {
	var b strings.Builder
	for !s.eof() {
		c := s.peek()
		if c == '\\' && s.pos+1 < len(s.text) {
			b.WriteByte(c)
			b.WriteByte(s.text[s.pos+1])
			s.pos += 2
			continue
		}
		if isSpace(c) || c == ',' || c == '#' || c == '"' || c == '{' || c == '}' || c == ')' {
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return Token{Text: b.String(), Kind: Bare}
}

// braced reads a {...} token. Quotes inside braces are literal.
func (s *scanner) braced(tag string) Token {
	var b strings.Builder
	depth := 0
	for !s.eof() {
		c := s.peek()
		switch {
		case c == '\\' && s.pos+1 < len(s.text):
			b.WriteByte(c)
			b.WriteByte(s.text[s.pos+1])
			s.pos += 2
			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
		case c == '\n' || c == '\r':
			s.newline(&b)
			continue
		}
		b.WriteByte(c)
		s.pos++
		if depth == 0 {
			return Token{Text: b.String(), Kind: Braced}
		}
	}
	s.report(diag.UnbalancedBraces, "unbalanced braces in field '%s'", tag)
	return Token{Text: b.String(), Kind: Braced}
}

// quoted reads a "..." token. The quote state only toggles at brace depth zero.
func (s *scanner) quoted(tag string) Token {
	var b strings.Builder
	b.WriteByte('"')
	s.pos++
	depth := 0
	for !s.eof() {
		c := s.peek()
		switch {
		case c == '\\' && s.pos+1 < len(s.text):
			b.WriteByte(c)
			b.WriteByte(s.text[s.pos+1])
			s.pos += 2
			continue
		case c == '{':
			depth++
		case c == '}':
			if depth > 0 {
				depth--
			}
		case c == '\n' || c == '\r':
			s.newline(&b)
			continue
		case c == '"' && depth == 0:
			b.WriteByte(c)
			s.pos++
			return Token{Text: b.String(), Kind: Quoted}
		}
		b.WriteByte(c)
		s.pos++
	}
	if depth != 0 {
		s.report(diag.UnbalancedBraces, "unbalanced braces in field '%s'", tag)
	}
	s.report(diag.UnbalancedQuotes, "unterminated quote in field '%s'", tag)
	return Token{Text: b.String(), Kind: Quoted}
}

// newline folds a line break and the indentation after it into one space.
func (s *scanner) newline(b *strings.Builder) {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
	if str := b.String(); len(str) > 0 && str[len(str)-1] != ' ' {
		b.WriteByte(' ')
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
