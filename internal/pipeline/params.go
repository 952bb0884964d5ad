// Package pipeline runs a conversion job: it frames and parses input records,
// resolves their reference types, translates their fields, and runs the
// whole-bibliography passes before handing records to an output format.
package pipeline

import (
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/fieldproc"
)

// Source records who chose the input charset.
type Source int

const (
	SourceDefault Source = iota
	SourceFile
	SourceUser
)

// RawMode selects raw output: records are emitted as parsed, without type
// resolution or field translation.
type RawMode int

const (
	// Raw skips conversion.
	Raw RawMode = 1 << iota
	// RawWithCharConvert also runs the charset pass on raw records.
	RawWithCharConvert
	// RawWithMakeRefID also gives every raw record a REFNUM.
	RawWithMakeRefID
)

// Params is the configuration of one conversion job.
type Params struct {
	ReadFormat  string `yaml:"read_format" json:"read_format"`
	WriteFormat string `yaml:"write_format" json:"write_format"`

	In       charset.Spec `yaml:"in" json:"in"`
	InSource Source       `yaml:"-" json:"-"`
	Out      charset.Spec `yaml:"out" json:"out"`
	UTF8BOM  bool         `yaml:"utf8_bom" json:"utf8_bom"`

	// Asis and Corps list names stored verbatim instead of being parsed.
	Asis  []string `yaml:"asis" json:"asis"`
	Corps []string `yaml:"corps" json:"corps"`

	NoSplitTitle     bool    `yaml:"nosplit_title" json:"nosplit_title"`
	Verbose          int     `yaml:"verbose" json:"verbose"`
	AddCount         bool    `yaml:"addcount" json:"addcount"`
	Raw              RawMode `yaml:"raw" json:"raw"`
	SingleRefPerFile bool    `yaml:"single_ref_per_file" json:"single_ref_per_file"`
	// Dir is where single-reference files are created.
	Dir string `yaml:"dir" json:"dir"`
}

// NewParams returns parameters with UTF-8 on both sides.
func NewParams() *Params {
	return &Params{
		In:  charset.Spec{Charset: charset.Unicode, UTF8: true},
		Out: charset.Spec{Charset: charset.Unicode, UTF8: true},
	}
}

// Clone returns a deep copy; the name lists are not shared.
func (p *Params) Clone() (*Params, error) {
	var np Params
	if err := copier.CopyWithOption(&np, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copying parameters: %w", err)
	}
	return &np, nil
}

// AddAsis appends a name to the as-is list, ignoring duplicates.
func (p *Params) AddAsis(name string) {
	if name != "" && !slices.Contains(p.Asis, name) {
		p.Asis = append(p.Asis, name)
	}
}

// AddCorps appends a name to the corporate-name list, ignoring duplicates.
func (p *Params) AddCorps(name string) {
	if name != "" && !slices.Contains(p.Corps, name) {
		p.Corps = append(p.Corps, name)
	}
}

// FieldOptions returns the options handed to field processors.
func (p *Params) FieldOptions() fieldproc.Options {
	return fieldproc.Options{
		Asis:         p.Asis,
		Corps:        p.Corps,
		NoSplitTitle: p.NoSplitTitle,
	}
}

// SetInputCharset sets the input charset chosen by src. A charset chosen by
// the user is never replaced by one detected in the file.
func (p *Params) SetInputCharset(name string, src Source) {
	if src < p.InSource {
		return
	}
	p.In.Charset = name
	p.In.UTF8 = charset.Spec{Charset: name}.IsUnicode()
	p.InSource = src
}

// readParams forces the internal representation on the output side.
func (p *Params) readParams() (*Params, error) {
	lp, err := p.Clone()
	if err != nil {
		return nil, err
	}
	lp.Out = charset.Spec{Charset: charset.Unicode, UTF8: true}
	return lp, nil
}

// writeParams forces the internal representation on the input side.
func (p *Params) writeParams() (*Params, error) {
	lp, err := p.Clone()
	if err != nil {
		return nil, err
	}
	lp.In = charset.Spec{Charset: charset.Unicode, UTF8: true}
	return lp, nil
}
