package fieldproc

import (
	"strings"
	"unicode"
)

// Pages splits a page range into PAGESTART and PAGEEND. Either may be missing.
func Pages(c *Context, _ string, value string, level int) {
	start, end := SplitPages(value)
	c.Out.Add("PAGESTART", start, level)
	c.Out.Add("PAGEEND", end, level)
}

// SplitPages strips whitespace and a "pp." label, then reads the run before
// the first dash-like separator as the start and the following run as the end.
func SplitPages(value string) (start, end string) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	lower := strings.ToLower(s)
	for _, label := range []string{"pp.", "p."} {
		if strings.HasPrefix(lower, label) {
			s = s[len(label):]
			break
		}
	}

	runes := []rune(s)
	i := 0
	for i < len(runes) && !isDash(runes[i]) {
		i++
	}
	start = string(runes[:i])
	for i < len(runes) && isDash(runes[i]) {
		i++
	}
	j := i
	for j < len(runes) && !isDash(runes[j]) {
		j++
	}
	end = string(runes[i:j])
	return start, end
}

func isDash(r rune) bool {
	switch r {
	case '-', '‐', '‑', '‒', '–', '—', '―', '−':
		return true
	}
	return false
}
