package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
)

// Constants for output formatting.
const (
	DefaultSearchLimit = 50 // Default limit for search
	SummaryTitleLen    = 70 // Title truncation in search summaries
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		writeJSON(os.Stderr, ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is the JSON form of a failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// exitCodeFor maps a conversion error to an exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, diag.ErrCannotOpen):
		return ExitCannotOpen
	case errors.Is(err, diag.ErrBadInput), errors.Is(err, diag.ErrMalformed):
		return ExitDataError
	default:
		return ExitError
	}
}

// newLogger returns the stderr logger for the given verbosity.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	if verbose > 0 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// truncateString shortens s to at most n runes, marking the cut with "...".
func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// RefSummary is the JSON form of a search hit.
type RefSummary struct {
	Refnum  string   `json:"refnum"`
	Title   string   `json:"title"`
	Authors []string `json:"authors,omitempty"`
	Venue   string   `json:"venue,omitempty"`
	Year    string   `json:"year,omitempty"`
}

func summarize(ref *fields.Fields) RefSummary {
	s := RefSummary{
		Refnum: ref.Lookup("REFNUM", fields.LevelMain),
		Title:  ref.Lookup("TITLE", fields.LevelMain),
		Venue:  ref.Lookup("TITLE", fields.LevelHost),
		Year:   ref.Lookup("YEAR", fields.LevelAny),
	}
	if s.Year == "" {
		s.Year = ref.Lookup("PARTYEAR", fields.LevelAny)
	}
	for _, f := range ref.All() {
		if f.Level != fields.LevelMain || !strings.HasPrefix(f.Tag, "AUTHOR") {
			continue
		}
		family, given, _ := strings.Cut(f.Value, "|")
		if given != "" {
			family += " " + string([]rune(given)[0])
		}
		s.Authors = append(s.Authors, family)
	}
	return s
}

func printRefSummary(w io.Writer, num int, s RefSummary) {
	fmt.Fprintf(w, "[%d] %s\n", num, s.Refnum)
	fmt.Fprintf(w, "    %s\n", truncateString(s.Title, SummaryTitleLen))

	// Format authors
	if len(s.Authors) > 0 {
		authors := s.Authors
		if len(authors) > 3 {
			authors = append(authors[:3:3], "et al.")
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(authors, ", "))
	}

	// Format venue and year
	if s.Venue != "" {
		fmt.Fprintf(w, "    %s (%s)\n", s.Venue, s.Year)
	} else {
		fmt.Fprintf(w, "    (%s)\n", s.Year)
	}
	fmt.Fprintln(w)
}
