package fieldproc

import (
	"strings"

	"github.com/matsen/bibconv/internal/fields"
)

// Title splits "Title: Subtitle" and "Question? Subtitle" into TITLE and
// SUBTITLE unless titles are kept whole. Only TITLE destinations split.
func Title(c *Context, tag, value string, level int) {
	value = strings.TrimSpace(value)
	if c.Options.NoSplitTitle || !strings.EqualFold(tag, "TITLE") {
		c.Out.Add(tag, value, level)
		return
	}
	main, sub := SplitTitle(value)
	c.Out.Add(tag, main, level)
	c.Out.Add("SUBTITLE", sub, level)
}

// SplitTitle separates a title at its first ':' or '?'. A question mark stays
// with the main title. URLs are never split.
func SplitTitle(value string) (main, sub string) {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ':':
			if strings.HasPrefix(value[i:], "://") {
				return value, ""
			}
			main, sub = value[:i], value[i+1:]
		case '?':
			main, sub = value[:i+1], value[i+1:]
		default:
			continue
		}
		main, sub = strings.TrimSpace(main), strings.TrimSpace(sub)
		if main == "" || sub == "" {
			return value, ""
		}
		return main, sub
	}
	return value, ""
}

// MergeTitles folds SUBTITLE and TITLEADDON back into TITLE at every level,
// removing the merged fields.
func MergeTitles(f *fields.Fields) {
	for level := fields.LevelOrig; level <= f.MaxLevel(); level++ {
		if level == fields.LevelAny {
			continue
		}
		n := f.Find("TITLE", level)
		if n == fields.NotFound {
			continue
		}
		title := f.Value(n)
		if s := f.Find("SUBTITLE", level); s != fields.NotFound {
			title = joinSubtitle(title, f.Value(s))
		}
		if a := f.Find("TITLEADDON", level); a != fields.NotFound {
			title = joinAddon(title, f.Value(a))
		}
		f.SetValue(n, title)
		removeAll(f, "SUBTITLE", level)
		removeAll(f, "TITLEADDON", level)
	}
}

func joinSubtitle(title, sub string) string {
	title = strings.TrimSpace(title)
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return title
	}
	if strings.HasSuffix(title, ":") || strings.HasSuffix(title, "?") {
		return title + " " + sub
	}
	return title + ": " + sub
}

func joinAddon(title, addon string) string {
	title = strings.TrimRight(strings.TrimSpace(title), ".")
	addon = strings.TrimSpace(addon)
	if addon == "" {
		return title
	}
	return title + ". " + addon
}

func removeAll(f *fields.Fields, tag string, level int) {
	for n := f.Find(tag, level); n != fields.NotFound; n = f.Find(tag, level) {
		f.Remove(n)
	}
}
