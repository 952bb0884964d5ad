// Package diag holds the conversion error taxonomy and the reporting of
// recoverable problems found while parsing and translating records.
package diag

import (
	"errors"
	"fmt"
	"log/slog"
)

// Hard failures. Only these propagate to the caller.
var (
	ErrBadInput   = errors.New("bad input")
	ErrMemory     = errors.New("memory error")
	ErrCannotOpen = errors.New("cannot open")
)

// ErrMalformed is the parent of every Diagnostic; problems it covers are
// recovered locally and never abort a conversion.
var ErrMalformed = errors.New("malformed input")

// Kind classifies a diagnostic.
type Kind int

const (
	UnbalancedBraces Kind = iota + 1
	UnbalancedQuotes
	UnresolvedMacro
	StrayConcat
	UnknownTag
	UnknownType
	MissingCrossref
	StrayLine
)

var kindNames = map[Kind]string{
	UnbalancedBraces: "unbalanced_braces",
	UnbalancedQuotes: "unbalanced_quotes",
	UnresolvedMacro:  "unresolved_macro",
	StrayConcat:      "stray_concat",
	UnknownTag:       "unknown_tag",
	UnknownType:      "unknown_type",
	MissingCrossref:  "missing_crossref",
	StrayLine:        "stray_line",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText lets diagnostics serialize with readable kinds.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is one recoverable problem.
type Diagnostic struct {
	Kind   Kind   `json:"kind"`
	Ref    int    `json:"ref,omitempty"` // 1-based record number, 0 when unknown
	Key    string `json:"key,omitempty"` // citekey of the record, when known
	Detail string `json:"detail"`
}

func (d Diagnostic) Error() string {
	msg := d.Kind.String() + ": " + d.Detail
	if d.Key != "" {
		msg += fmt.Sprintf(" (reference '%s')", d.Key)
	} else if d.Ref > 0 {
		msg += fmt.Sprintf(" (reference %d)", d.Ref)
	}
	return msg
}

func (d Diagnostic) Unwrap() error {
	return ErrMalformed
}

// New builds a diagnostic with a formatted detail.
func New(kind Kind, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Reporter receives diagnostics as conversion proceeds.
type Reporter interface {
	Report(d Diagnostic)
}

// Discard drops every diagnostic.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Collector keeps every diagnostic it receives, in order.
type Collector struct {
	Items []Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.Items = append(c.Items, d)
}

// Count returns how many diagnostics of kind were collected.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, d := range c.Items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// LogReporter writes diagnostics to a structured logger at warn level.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter wraps logger. A nil logger uses slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(d Diagnostic) {
	attrs := []any{"kind", d.Kind.String()}
	if d.Ref > 0 {
		attrs = append(attrs, "ref", d.Ref)
	}
	if d.Key != "" {
		attrs = append(attrs, "key", d.Key)
	}
	r.logger.Warn(d.Detail, attrs...)
}

// Tee fans diagnostics out to several reporters.
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Report(d Diagnostic) {
	for _, r := range t {
		r.Report(d)
	}
}
