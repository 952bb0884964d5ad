// Package author parses author search queries and matches them against the
// names stored in a reference.
package author

import (
	"strings"

	"github.com/matsen/bibconv/internal/fields"
)

// Name is a stored person name split for matching. Verbatim and corporate
// names keep their whole value in Family.
type Name struct {
	Family string
	Given  string
}

// ParseName splits a stored "Family|Given|Given" value. Verbatim names
// are not split.
func ParseName(value string, verbatim bool) Name {
	if verbatim {
		return Name{Family: value}
	}
	family, given, _ := strings.Cut(value, "|")
	return Name{Family: family, Given: strings.ReplaceAll(given, "|", " ")}
}

// Names returns the main-level authors of ref, including verbatim and
// corporate ones, in record order.
func Names(ref *fields.Fields) []Name {
	var names []Name
	for _, f := range ref.All() {
		if f.Level != fields.LevelMain {
			continue
		}
		switch f.Tag {
		case "AUTHOR":
			names = append(names, ParseName(f.Value, false))
		case "AUTHOR:ASIS", "AUTHOR:CORP":
			names = append(names, ParseName(f.Value, true))
		}
	}
	return names
}

// Query represents a parsed author search query.
type Query struct {
	First string // Given names (may be empty for family-name-only queries)
	Last  string // Family name (required)
}

// ParseQuery parses an author search string into a structured Query.
//
// Supported formats:
//   - "Yu"           → last="Yu" (single word = last name only)
//   - "Timothy Yu"   → first="Timothy", last="Yu" (space-separated = First Last)
//   - "Yu, Timothy"  → first="Timothy", last="Yu" (comma = Last, First)
//
// Names are trimmed but case is preserved (matching is case-insensitive).
func ParseQuery(input string) Query {
	input = strings.TrimSpace(input)
	if input == "" {
		return Query{}
	}

	if idx := strings.Index(input, ","); idx > 0 {
		last := strings.TrimSpace(input[:idx])
		first := strings.TrimSpace(input[idx+1:])
		return Query{First: first, Last: last}
	}

	parts := strings.Fields(input)
	if len(parts) == 1 {
		return Query{Last: parts[0]}
	}

	// "Timothy C Yu" → first="Timothy C", last="Yu"
	last := parts[len(parts)-1]
	first := strings.Join(parts[:len(parts)-1], " ")
	return Query{First: first, Last: last}
}

// Matches checks if the query matches a name.
//
// The family name must match exactly, ignoring case. Given names match by
// case-insensitive prefix, so "Tim Yu" matches "Yu|Timothy|C" while "Yu"
// never matches "Chan|Yujia".
func (q Query) Matches(n Name) bool {
	if !strings.EqualFold(q.Last, n.Family) {
		return false
	}
	if q.First == "" {
		return true
	}
	return strings.HasPrefix(
		strings.ToLower(n.Given),
		strings.ToLower(q.First),
	)
}

// MatchesAny checks if the query matches any name in the list.
func (q Query) MatchesAny(names []Name) bool {
	for _, n := range names {
		if q.Matches(n) {
			return true
		}
	}
	return false
}

// AllMatch checks if all queries match at least one name each.
func AllMatch(queries []Query, names []Name) bool {
	for _, q := range queries {
		if !q.MatchesAny(names) {
			return false
		}
	}
	return true
}

// ParseQueries splits a query on ";" into one Query per author.
func ParseQueries(input string) []Query {
	var queries []Query
	for _, part := range strings.Split(input, ";") {
		if q := ParseQuery(part); q.Last != "" {
			queries = append(queries, q)
		}
	}
	return queries
}
