package charset

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// accents maps LaTeX accent commands to Unicode combining marks.
var accents = map[string]rune{
	"'": '\u0301',
	"`": '\u0300',
	"^": '\u0302',
	`"`: '\u0308',
	"~": '\u0303',
	"=": '\u0304',
	".": '\u0307',
	"u": '\u0306',
	"v": '\u030C',
	"H": '\u030B',
	"c": '\u0327',
	"k": '\u0328',
	"r": '\u030A',
	"d": '\u0323',
	"b": '\u0331',
}

var markToAccent = func() map[rune]string {
	m := make(map[rune]string, len(accents))
	for cmd, mark := range accents {
		m[mark] = cmd
	}
	return m
}()

// symbols maps argument-less LaTeX commands to their characters.
var symbols = map[string]string{
	"ss": "ß",
	"ae": "æ",
	"AE": "Æ",
	"oe": "œ",
	"OE": "Œ",
	"o":  "ø",
	"O":  "Ø",
	"aa": "å",
	"AA": "Å",
	"l":  "ł",
	"L":  "Ł",
	"i":  "ı",
	"j":  "ȷ",
	"dh": "ð",
	"DH": "Ð",
	"th": "þ",
	"TH": "Þ",
	"S":  "§",
	"P":  "¶",

	"dag":       "†",
	"ddag":      "‡",
	"ldots":     "…",
	"dots":      "…",
	"euro":      "€",
	"pounds":    "£",
	"copyright": "©",

	"textendash":        "–",
	"textemdash":        "—",
	"textquoteleft":     "‘",
	"textquoteright":    "’",
	"textquotedblleft":  "“",
	"textquotedblright": "”",
	"textdollar":        "$",
	"textunderscore":    "_",
	"textasciitilde":    "~",
	"textasciicircum":   "^",
	"textbackslash":     `\`,
	"textregistered":    "®",
	"texttrademark":     "™",
	"textdegree":        "°",

	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"lambda":  "λ",
	"mu":      "μ",
	"pi":      "π",
	"sigma":   "σ",
	"omega":   "ω",
}

var charToSymbol = func() map[rune]string {
	m := make(map[rune]string)
	for cmd, s := range symbols {
		r := []rune(s)
		if len(r) != 1 || r[0] < 0x80 {
			continue
		}
		if prev, ok := m[r[0]]; ok && len(prev) <= len(cmd) {
			continue
		}
		m[r[0]] = cmd
	}
	return m
}()

// escapes are single characters protected by a backslash.
const escapes = `&%$#_{}`

// FromLatex replaces LaTeX accent, symbol and escape sequences with Unicode.
// Unknown commands are left in place.
func FromLatex(s string) string {
	if !strings.ContainsAny(s, "\\-`'~") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		// A group holding only an accented letter: {\'e}
		if s[i] == '{' && i+1 < len(s) && s[i+1] == '\\' {
			if r, n := command(s[i+1:]); n > 0 && i+1+n < len(s) && s[i+1+n] == '}' {
				b.WriteString(r)
				i += n + 2
				continue
			}
		}
		switch {
		case s[i] == '\\':
			if r, n := command(s[i:]); n > 0 {
				b.WriteString(r)
				i += n
				continue
			}
		case strings.HasPrefix(s[i:], "---"):
			b.WriteString("—")
			i += 3
			continue
		case strings.HasPrefix(s[i:], "--"):
			b.WriteString("–")
			i += 2
			continue
		case strings.HasPrefix(s[i:], "``"):
			b.WriteString("“")
			i += 2
			continue
		case strings.HasPrefix(s[i:], "''"):
			b.WriteString("”")
			i += 2
			continue
		case s[i] == '~':
			b.WriteByte(' ')
			i++
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return norm.NFC.String(b.String())
}

// command decodes the LaTeX command at the start of s, which begins with a
// backslash. It returns the replacement and the bytes consumed, or 0 when the
// command is not recognized.
func command(s string) (string, int) {
	if len(s) < 2 {
		return "", 0
	}
	c := s[1]
	if strings.IndexByte(escapes, c) >= 0 {
		return string(c), 2
	}

	name, n := "", 1
	if isLetter(c) {
		for n < len(s) && isLetter(s[n]) {
			n++
		}
		name = s[1:n]
	} else {
		name, n = string(c), 2
	}

	if mark, ok := accents[name]; ok {
		base, used := accentArgument(s[n:], isLetter(c))
		if used > 0 {
			return norm.NFC.String(base + string(mark)), n + used
		}
	}
	if sym, ok := symbols[name]; ok {
		return sym, n + symbolTerminator(s[n:])
	}
	return "", 0
}

// accentArgument reads the letter an accent applies to: "e", "{e}", "{\i}"
// or, after a command word, " e".
func accentArgument(s string, word bool) (string, int) {
	skip := 0
	if word {
		if len(s) > 0 && s[0] == ' ' {
			skip = 1
		} else if len(s) == 0 || s[0] != '{' {
			return "", 0
		}
	}
	s = s[skip:]
	if len(s) == 0 {
		return "", 0
	}
	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0
		}
		arg := s[1:end]
		switch arg {
		case `\i`:
			arg = "i"
		case `\j`:
			arg = "j"
		}
		if len([]rune(arg)) != 1 {
			return "", 0
		}
		return arg, skip + end + 1
	}
	if strings.HasPrefix(s, `\i`) && (len(s) == 2 || !isLetter(s[2])) {
		return "i", skip + 2
	}
	r := []rune(s)[0]
	if !unicode.IsLetter(r) {
		return "", 0
	}
	return string(r), skip + len(string(r))
}

// symbolTerminator counts the "{}" or single space ending a command word.
func symbolTerminator(s string) int {
	if strings.HasPrefix(s, "{}") {
		return 2
	}
	if strings.HasPrefix(s, " ") {
		return 1
	}
	return 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// ToLatex escapes LaTeX special characters and writes non-ASCII letters as
// accent or symbol commands. Characters with no LaTeX form pass through.
func ToLatex(s string) string {
	s = latexEscaper.Replace(s)
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if cmd, ok := charToSymbol[r]; ok {
			b.WriteString(`{\` + cmd + `}`)
			continue
		}
		if enc, ok := accented(r); ok {
			b.WriteString(enc)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// accented writes a precomposed letter such as 'é' as {\'e}.
func accented(r rune) (string, bool) {
	d := []rune(norm.NFD.String(string(r)))
	if len(d) != 2 || d[0] >= 0x80 {
		return "", false
	}
	cmd, ok := markToAccent[d[1]]
	if !ok {
		return "", false
	}
	sep := ""
	if isLetter(cmd[0]) {
		sep = " "
	}
	return `{\` + cmd + sep + string(d[0]) + `}`, true
}
