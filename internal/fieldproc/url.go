package fieldproc

import (
	"strings"

	"github.com/matsen/bibconv/internal/fields"
)

// URL classifies a link into URL, ARXIV or DOI, falling back to tag.
func URL(c *Context, tag, value string, level int) {
	if tag == "" {
		tag = "URL"
	}
	urlCore(c, tag, value, level)
}

func urlCore(c *Context, fallback, value string, level int) {
	value = strings.TrimSpace(value)
	if rest, ok := cutPrefixFold(value, `\urllink`); ok {
		c.Out.Add("URL", strings.TrimSpace(rest), level)
		return
	}
	if rest, ok := cutPrefixFold(value, `\url`); ok {
		c.Out.Add("URL", strings.TrimSpace(rest), level)
		return
	}
	for _, prefix := range []string{"arxiv:", "http://arxiv.org/abs/", "https://arxiv.org/abs/"} {
		if rest, ok := cutPrefixFold(value, prefix); ok {
			c.Out.Add("ARXIV", rest, level)
			return
		}
	}
	if n := DOIStart(value); n >= 0 && (n == 0 || hasDOIPrefix(value[:n])) {
		c.Out.Add("DOI", value[n:], level)
		return
	}
	if hasScheme(value) {
		c.Out.Add("URL", value, level)
		return
	}
	c.Out.Add(fallback, value, level)
}

// Note stores a note, pulling out DOIs and bare links that some producers
// hide there.
func Note(c *Context, tag, value string, level int) {
	if tag == "" {
		tag = "NOTES"
	}
	value = strings.TrimSpace(value)
	if n := DOIStart(value); n >= 0 && (n == 0 || hasDOIPrefix(value[:n])) {
		c.Out.Add("DOI", value[n:], level)
		return
	}
	if hasScheme(value) && !strings.ContainsAny(value, " \t") {
		c.Out.Add("URL", value, level)
		return
	}
	c.Out.Add(tag, value, level)
}

// Eprint pairs the source record's eprint and eprinttype fields. Both are
// marked used so the second one is not processed again.
func Eprint(c *Context, _ string, value string, level int) {
	if c.In == nil {
		c.Out.Add("EPRINT", value, level)
		return
	}
	ne := c.In.Find("eprint", fields.LevelAny)
	nt := c.In.Find("eprinttype", fields.LevelAny)
	var eprint, etype string
	if ne != fields.NotFound {
		eprint = c.In.Value(ne)
		c.In.SetUsed(ne)
	}
	if nt != fields.NotFound {
		etype = c.In.Value(nt)
		c.In.SetUsed(nt)
	}

	if eprint == "" {
		c.Out.Add("EPRINTTYPE", etype, level)
		return
	}
	lower := strings.ToLower(etype)
	switch {
	case etype == "":
		c.Out.Add("EPRINT", eprint, level)
	case strings.HasPrefix(lower, "arxiv"):
		c.Out.Add("ARXIV", eprint, level)
	case strings.HasPrefix(lower, "jstor"):
		c.Out.Add("JSTOR", eprint, level)
	case strings.HasPrefix(lower, "pubmed"):
		c.Out.Add("PMID", eprint, level)
	case strings.HasPrefix(lower, "medline"):
		c.Out.Add("MEDLINE", eprint, level)
	default:
		c.Out.Add("EPRINT", eprint, level)
		c.Out.Add("EPRINTTYPE", etype, level)
	}
}

// LinkedFile handles file links: "Description:path:type" triples keep only
// the path, which may itself contain colons; file: URIs keep their path and
// remote URIs become URLs.
func LinkedFile(c *Context, tag, value string, level int) {
	if tag == "" {
		tag = "FILEATTACH"
	}
	value = strings.TrimSpace(value)
	if rest, ok := strings.CutPrefix(value, "file:"); ok {
		c.Out.Add(tag, rest, level)
		return
	}
	if hasScheme(value) {
		c.Out.Add("URL", value, level)
		return
	}
	if strings.Count(value, ":") > 1 {
		first := strings.Index(value, ":")
		last := strings.LastIndex(value, ":")
		c.Out.Add(tag, strings.TrimSpace(value[first+1:last]), level)
		return
	}
	c.Out.Add(tag, value, level)
}

// DOIStart returns the offset of a "10.<digits>/" DOI inside s, or -1.
func DOIStart(s string) int {
	for i := 0; i+3 < len(s); i++ {
		if !strings.HasPrefix(s[i:], "10.") {
			continue
		}
		if i > 0 && isDigit(s[i-1]) {
			continue
		}
		j := i + 3
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+3 && j+1 < len(s) && s[j] == '/' {
			return i
		}
	}
	return -1
}

func hasDOIPrefix(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, p := range []string{"doi:", "doi", "https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/"} {
		if lower == p {
			return true
		}
	}
	return false
}

func hasScheme(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range []string{"http:", "https:", "ftp:", "git:", "gopher:"} {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
