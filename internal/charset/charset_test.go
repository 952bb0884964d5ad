package charset

import (
	"testing"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLatex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`Caf{\'e}`, "Café"},
		{`M\"uller`, "Müller"},
		{`M\"{u}ller`, "Müller"},
		{`Fran\c{c}ois`, "François"},
		{`Fran\c cois`, "François"},
		{`Stra\ss{}e`, "Straße"},
		{`{\ss}`, "ß"},
		{`Sm\o rgrav`, "Smørgrav"},
		{`\'{\i}`, "í"},
		{`Tom \& Jerry`, "Tom & Jerry"},
		{`50\%`, "50%"},
		{"pages 1--2", "pages 1–2"},
		{"yes---no", "yes—no"},
		{"``quoted''", "“quoted”"},
		{"Dr.~Who", "Dr. Who"},
		{`\textit{x}`, `\textit{x}`},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FromLatex(tt.in))
		})
	}
}

func TestToLatex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café", `Caf{\'e}`},
		{"ç", `{\c c}`},
		{"ß", `{\ss}`},
		{"ø", `{\o}`},
		{"a_b & c", `a\_b \& c`},
		{"100%", `100\%`},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLatex(tt.in))
		})
	}
}

func TestLatexRoundTrip(t *testing.T) {
	for _, s := range []string{"Café crème", "François Smørgrav", "Straße", "Tom & Jerry"} {
		assert.Equal(t, s, FromLatex(ToLatex(s)), s)
	}
}

func TestLookup(t *testing.T) {
	enc, err := Lookup("UTF-8")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = Lookup("ISO-8859-1")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = Lookup("no-such-charset")
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.ErrBadInput)
}

func TestNewConverterUnknownCharset(t *testing.T) {
	_, err := NewConverter(Spec{Charset: "bogus"}, Spec{})
	assert.ErrorIs(t, err, diag.ErrBadInput)

	_, err = NewConverter(Spec{}, Spec{Charset: "bogus"})
	assert.ErrorIs(t, err, diag.ErrBadInput)
}

func TestNormalizeLatin1(t *testing.T) {
	got, err := Normalize("Caf\xe9", Spec{Charset: "ISO-8859-1"}, Spec{})
	require.NoError(t, err)
	assert.Equal(t, "Café", got)

	got, err = Normalize("Café", Spec{}, Spec{Charset: "ISO-8859-1"})
	require.NoError(t, err)
	assert.Equal(t, "Caf\xe9", got)
}

func TestConvertInvalidUTF8(t *testing.T) {
	c, err := NewConverter(Spec{}, Spec{})
	require.NoError(t, err)
	assert.Equal(t, "a�b", c.Convert("a\xffb", false))
}

func TestConvertLatexAndXML(t *testing.T) {
	c, err := NewConverter(Spec{Latex: true}, Spec{XML: true})
	require.NoError(t, err)
	assert.Equal(t, "Müller &amp; Sons", c.Convert(`M\"uller \& Sons`, false))

	c, err = NewConverter(Spec{XML: true}, Spec{Latex: true})
	require.NoError(t, err)
	assert.Equal(t, `Caf{\'e} \& Bar`, c.Convert("Caf&#233; &amp; Bar", false))
}

func TestConvertNoLatex(t *testing.T) {
	c, err := NewConverter(Spec{Latex: true}, Spec{Latex: true})
	require.NoError(t, err)
	assert.Equal(t, `10.1000/a_b`, c.Convert(`10.1000/a_b`, true))
	assert.Equal(t, `a\_b`, c.Convert(`a\_b`, false))
}

func TestSpecIsUnicode(t *testing.T) {
	assert.True(t, Spec{}.IsUnicode())
	assert.True(t, Spec{Charset: "utf8"}.IsUnicode())
	assert.True(t, Spec{Charset: "latin1", UTF8: true}.IsUnicode())
	assert.False(t, Spec{Charset: "ISO-8859-1"}.IsUnicode())
}
