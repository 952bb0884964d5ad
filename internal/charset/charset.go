// Package charset converts field text between character sets and the LaTeX
// and XML markup conventions used by bibliographic formats.
package charset

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/matsen/bibconv/internal/diag"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/unicode/norm"
)

// Unicode is the canonical name of the UTF-8 character set.
const Unicode = "UTF-8"

// Spec describes one side of a conversion.
type Spec struct {
	// Charset is an IANA name; empty means UTF-8.
	Charset string `yaml:"charset" json:"charset"`
	Latex   bool   `yaml:"latex" json:"latex"`
	UTF8    bool   `yaml:"utf8" json:"utf8"`
	XML     bool   `yaml:"xml" json:"xml"`
}

// IsUnicode reports whether the side carries UTF-8 text.
func (s Spec) IsUnicode() bool {
	return s.UTF8 || isUTF8Name(s.Charset)
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "unicode":
		return true
	}
	return false
}

// Lookup resolves an IANA charset name.
func Lookup(name string) (encoding.Encoding, error) {
	if isUTF8Name(name) {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, diag.ErrBadInput)
	}
	return enc, nil
}

// Converter applies one from/to conversion to many values.
type Converter struct {
	from, to Spec
	decoder  *encoding.Decoder
	encoder  *encoding.Encoder
}

// NewConverter resolves the charsets of both sides.
func NewConverter(from, to Spec) (*Converter, error) {
	c := &Converter{from: from, to: to}
	if !from.IsUnicode() {
		enc, err := Lookup(from.Charset)
		if err != nil {
			return nil, fmt.Errorf("input charset: %w", err)
		}
		c.decoder = enc.NewDecoder()
	}
	if !to.IsUnicode() {
		enc, err := Lookup(to.Charset)
		if err != nil {
			return nil, fmt.Errorf("output charset: %w", err)
		}
		c.encoder = encoding.ReplaceUnsupported(enc.NewEncoder())
	}
	return c, nil
}

// Convert converts s. With noLatex set, LaTeX decoding and encoding are
// skipped on both sides; identifiers and links use it.
func (c *Converter) Convert(s string, noLatex bool) string {
	if s == "" {
		return s
	}
	if c.decoder != nil {
		if out, err := c.decoder.String(s); err == nil {
			s = out
		}
	} else if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	if c.from.XML {
		s = html.UnescapeString(s)
	}
	if c.from.Latex && !noLatex {
		s = FromLatex(s)
	}
	s = norm.NFC.String(s)

	if c.to.Latex && !noLatex {
		s = ToLatex(s)
	}
	if c.to.XML {
		s = xmlEscaper.Replace(s)
	}
	if c.encoder != nil {
		if out, err := c.encoder.String(s); err == nil {
			s = out
		}
	}
	return s
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Normalize converts one value from one side to the other.
func Normalize(s string, from, to Spec) (string, error) {
	c, err := NewConverter(from, to)
	if err != nil {
		return "", err
	}
	return c.Convert(s, false), nil
}
