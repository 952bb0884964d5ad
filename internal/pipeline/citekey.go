package pipeline

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/matsen/bibconv/internal/fields"
)

// UniqueCitekeys gives every record a REFNUM and makes the keys unique.
// Records sharing a key get suffixes a, b, c... in input order; past z the
// suffix gains a leading 'a' per 26 duplicates.
func UniqueCitekeys(b *fields.Bibliography) {
	keys := make([]string, b.Len())
	for i, ref := range b.All() {
		n := ref.Find("REFNUM", fields.LevelAny)
		if n == fields.NotFound {
			ref.Add("REFNUM", generateCitekey(ref, i+1), fields.LevelMain)
			n = ref.Find("REFNUM", fields.LevelAny)
		}
		if n != fields.NotFound {
			keys[i] = ref.Value(n)
		}
	}

	groups := make(map[string][]int)
	var order []string
	for i, key := range keys {
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}
	for _, key := range order {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		for nsame, i := range members {
			ref := b.At(i)
			if n := ref.Find("REFNUM", fields.LevelAny); n != fields.NotFound {
				ref.SetValue(n, key+Suffix(nsame))
			}
		}
	}
}

// Suffix returns the disambiguating suffix of the nth duplicate.
func Suffix(n int) string {
	const abc = "abcdefghijklmnopqrstuvwxyz"
	return strings.Repeat("a", n/26) + string(abc[n%26])
}

// generateCitekey builds a key from the first author's family name and the
// year, without whitespace, or "ref<n>" when either is missing.
func generateCitekey(ref *fields.Fields, n int) string {
	family, year := firstAuthor(ref), firstYear(ref)
	if family == "" || year == "" {
		return "ref" + strconv.Itoa(n)
	}
	return stripSpace(family) + stripSpace(year)
}

// buildRefID builds the REFNUM of a record that has none: the family name
// and the year up to its first blank, or "ref<n>".
func buildRefID(ref *fields.Fields, n int) string {
	family, year := firstAuthor(ref), firstYear(ref)
	if family == "" || year == "" {
		return "ref" + strconv.Itoa(n)
	}
	if i := strings.IndexAny(year, " \t"); i >= 0 {
		year = year[:i]
	}
	return family + year
}

func firstAuthor(ref *fields.Fields) string {
	for _, tag := range []string{"AUTHOR", "AUTHOR:CORP", "AUTHOR:ASIS"} {
		n := ref.Find(tag, fields.LevelMain)
		if n == fields.NotFound {
			n = ref.Find(tag, fields.LevelAny)
		}
		if n != fields.NotFound {
			family, _, _ := strings.Cut(ref.Value(n), "|")
			return family
		}
	}
	return ""
}

func firstYear(ref *fields.Fields) string {
	for _, tag := range []string{"YEAR", "PARTYEAR"} {
		n := ref.Find(tag, fields.LevelMain)
		if n == fields.NotFound {
			n = ref.Find(tag, fields.LevelAny)
		}
		if n != fields.NotFound {
			return ref.Value(n)
		}
	}
	return ""
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// checkRefIDs makes sure every record has a MAIN-level REFNUM, optionally
// appending the record's position.
func checkRefIDs(b *fields.Bibliography, addCount bool) {
	for i, ref := range b.All() {
		n := ref.Find("REFNUM", fields.LevelMain)
		if n == fields.NotFound {
			ref.Add("REFNUM", buildRefID(ref, i+1), fields.LevelMain)
			n = ref.Find("REFNUM", fields.LevelMain)
		}
		if addCount && n != fields.NotFound {
			ref.SetValue(n, ref.Value(n)+"_"+strconv.Itoa(i+1))
		}
	}
}
