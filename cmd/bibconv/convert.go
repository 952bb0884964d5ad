package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/clipboard"
	"github.com/matsen/bibconv/internal/config"
	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/export"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/importer"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/storage"
	"github.com/spf13/cobra"
)

// convertOptions holds the convert command's flags.
type convertOptions struct {
	from, to   string
	output     string
	appendOut  bool
	clipboard  bool
	sqlitePath string

	charsetIn, charsetOut string
	// latexOut is nil unless given on the command line.
	latexOut     *bool
	xmlOut       bool
	utf8BOM      bool
	noSplitTitle bool

	asisFiles, corpsFiles []string
	addAsis, addCorps     []string

	raw, rawCharset, rawRefnum bool
	addCount                   bool
	singleRef                  bool
	dir                        string

	verbose int
}

var convertOpts convertOptions

// latexOutFlag backs --latex-out; it is copied into convertOpts only when
// the flag was given.
var latexOutFlag bool

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertOpts.from, "from", "f", "bibtex", "Input format")
	f.StringVarP(&convertOpts.to, "to", "t", "bibtex", "Output format")
	f.StringVarP(&convertOpts.output, "output", "o", "", "Output file (default stdout)")
	f.BoolVar(&convertOpts.appendOut, "append", false, "Append to the output file, skipping references it already holds")
	f.BoolVar(&convertOpts.clipboard, "clipboard", false, "Copy the output to the system clipboard instead of stdout")
	f.StringVar(&convertOpts.sqlitePath, "sqlite", "", "Also store the converted references in this SQLite database")
	f.StringVar(&convertOpts.charsetIn, "charset-in", "", "Input character set (default UTF-8 or as detected)")
	f.StringVar(&convertOpts.charsetOut, "charset-out", "", "Output character set (default UTF-8)")
	f.BoolVar(&latexOutFlag, "latex-out", false, "Write non-ASCII characters as LaTeX commands")
	f.BoolVar(&convertOpts.xmlOut, "xml-out", false, "Escape XML special characters in output")
	f.BoolVar(&convertOpts.utf8BOM, "utf8-bom", false, "Start UTF-8 output with a byte order mark")
	f.BoolVar(&convertOpts.noSplitTitle, "nosplit-title", false, "Keep titles and subtitles together")
	f.StringSliceVar(&convertOpts.asisFiles, "asis", nil, "File of names to keep verbatim (repeatable)")
	f.StringSliceVar(&convertOpts.corpsFiles, "corps", nil, "File of corporate names to keep verbatim (repeatable)")
	f.StringArrayVar(&convertOpts.addAsis, "add-asis", nil, "Name to keep verbatim (repeatable)")
	f.StringArrayVar(&convertOpts.addCorps, "add-corps", nil, "Corporate name to keep verbatim (repeatable)")
	f.BoolVar(&convertOpts.raw, "raw", false, "Write parsed fields without conversion")
	f.BoolVar(&convertOpts.rawCharset, "raw-charset", false, "With --raw, still convert character sets")
	f.BoolVar(&convertOpts.rawRefnum, "raw-refnum", false, "With --raw, still give every reference a REFNUM")
	f.BoolVar(&convertOpts.addCount, "addcount", false, "Append _<n> to every REFNUM")
	f.BoolVar(&convertOpts.singleRef, "single-ref-per-file", false, "Write each reference to its own file")
	f.StringVar(&convertOpts.dir, "dir", ".", "Directory for --single-ref-per-file output")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert references from one format to another",
	Long: `Convert references from one format to another.

Reads the named files in order, or stdin when none are given. A summary of
the conversion is printed to stderr.

Examples:
  bibconv convert --from ris --to bibtex refs.ris > refs.bib
  bibconv convert -f bibtex -t ris -o refs.ris a.bib b.bib
  bibconv convert -f bibtex -t jsonl --sqlite refs.db refs.bib
  bibconv convert -f ris --append -o library.bib new.ris
  bibconv convert -f ris --clipboard paper.ris`,
	RunE: runConvert,
}

// ConvertSummary is the JSON summary of one conversion.
type ConvertSummary struct {
	Records     int            `json:"records"`
	Written     int            `json:"written"`
	Skipped     int            `json:"skipped,omitempty"`
	Stored      int            `json:"stored,omitempty"`
	Output      string         `json:"output,omitempty"`
	Diagnostics map[string]int `json:"diagnostics"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := convertOpts
	if cmd.Flags().Changed("latex-out") {
		opts.latexOut = &latexOutFlag
	}
	opts.verbose = verbosity

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	logger := newLogger(os.Stderr, max(opts.verbose, cfg.Verbose))
	summary, err := convert(opts, cfg, args, os.Stdin, os.Stdout, logger)
	if err != nil {
		var cfgErr *configError
		if errors.As(err, &cfgErr) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput {
		fmt.Fprintf(os.Stderr, "Converted %d references (%d written", summary.Records, summary.Written)
		if summary.Skipped > 0 {
			fmt.Fprintf(os.Stderr, ", %d already present", summary.Skipped)
		}
		fmt.Fprintln(os.Stderr, ")")
		for kind, n := range summary.Diagnostics {
			fmt.Fprintf(os.Stderr, "  %s: %d\n", kind, n)
		}
	} else {
		writeJSON(os.Stderr, summary)
	}
	return nil
}

// configError marks failures in the configuration or name lists.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

// convert runs one conversion: it reads files (or stdin) with the input
// format, stores the result in SQLite when asked, and writes it with the
// output format.
func convert(opts convertOptions, cfg *config.GlobalConfig, files []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) (*ConvertSummary, error) {
	in, err := importer.Lookup(opts.from)
	if err != nil {
		return nil, err
	}
	out, err := export.Lookup(opts.to)
	if err != nil {
		return nil, err
	}
	p, err := buildParams(opts, cfg, in, out)
	if err != nil {
		return nil, err
	}

	collector := &diag.Collector{}
	job := pipeline.NewJob(p, logger, diag.Tee(diag.NewLogReporter(logger), collector))
	if p.Verbose > 1 {
		job.Trace = os.Stderr
	}

	b := fields.NewBibliography()
	if err := readInputs(b, files, stdin, in, job); err != nil {
		return nil, err
	}
	summary := &ConvertSummary{Records: b.Len(), Output: opts.output}

	// Output charset conversion rewrites values in place, so the database
	// gets its copy first.
	if opts.sqlitePath != "" {
		n, err := storeSQLite(opts.sqlitePath, b)
		if err != nil {
			return nil, err
		}
		summary.Stored = n
	}

	written, err := writeOutput(b, opts, stdout, out, job, logger)
	summary.Written = written
	summary.Skipped = b.Len() - written
	summary.Diagnostics = countDiagnostics(collector)
	return summary, err
}

// buildParams layers the parameters: format defaults, then the global
// configuration, then command-line flags.
func buildParams(opts convertOptions, cfg *config.GlobalConfig, in pipeline.InputFormat, out pipeline.OutputFormat) (*pipeline.Params, error) {
	p := pipeline.NewParams()
	in.Configure(p)
	out.Configure(p)
	if err := cfg.Apply(p); err != nil {
		return nil, &configError{err}
	}

	if opts.charsetIn != "" {
		if _, err := charset.Lookup(opts.charsetIn); err != nil {
			return nil, fmt.Errorf("--charset-in: %w", err)
		}
		p.SetInputCharset(opts.charsetIn, pipeline.SourceUser)
	}
	if opts.charsetOut != "" {
		if _, err := charset.Lookup(opts.charsetOut); err != nil {
			return nil, fmt.Errorf("--charset-out: %w", err)
		}
		p.Out.Charset = opts.charsetOut
		p.Out.UTF8 = charset.Spec{Charset: opts.charsetOut}.IsUnicode()
	}
	if opts.latexOut != nil {
		p.Out.Latex = *opts.latexOut
	}
	if opts.xmlOut {
		p.Out.XML = true
	}
	if opts.utf8BOM {
		p.UTF8BOM = true
	}
	if opts.noSplitTitle {
		p.NoSplitTitle = true
	}
	p.Verbose = max(p.Verbose, opts.verbose)
	p.AddCount = opts.addCount
	p.SingleRefPerFile = opts.singleRef
	p.Dir = opts.dir

	if opts.raw {
		p.Raw = pipeline.Raw
		if opts.rawCharset {
			p.Raw |= pipeline.RawWithCharConvert
		}
		if opts.rawRefnum {
			p.Raw |= pipeline.RawWithMakeRefID
		}
	}

	for _, name := range opts.addAsis {
		p.AddAsis(name)
	}
	for _, name := range opts.addCorps {
		p.AddCorps(name)
	}
	if err := config.AddListFiles(opts.asisFiles, p.AddAsis); err != nil {
		return nil, &configError{err}
	}
	if err := config.AddListFiles(opts.corpsFiles, p.AddCorps); err != nil {
		return nil, &configError{err}
	}
	return p, nil
}

func readInputs(b *fields.Bibliography, files []string, stdin io.Reader, in pipeline.InputFormat, job *pipeline.Job) error {
	if len(files) == 0 {
		job.Filename = "<stdin>"
		return pipeline.Read(b, stdin, in, job)
	}
	for _, name := range files {
		if err := readFile(b, name, in, job); err != nil {
			return err
		}
	}
	return nil
}

func readFile(b *fields.Bibliography, name string, in pipeline.InputFormat, job *pipeline.Job) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w: %w", name, diag.ErrCannotOpen, err)
	}
	defer f.Close()

	job.Filename = name
	if err := pipeline.Read(b, f, in, job); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func storeSQLite(path string, b *fields.Bibliography) (int, error) {
	db, err := storage.OpenDB(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", diag.ErrCannotOpen, err)
	}
	defer db.Close()
	return db.WriteBibliography(b)
}

// writeOutput writes b and returns how many references were written.
func writeOutput(b *fields.Bibliography, opts convertOptions, stdout io.Writer, out pipeline.OutputFormat, job *pipeline.Job, logger *slog.Logger) (int, error) {
	if job.Params.SingleRefPerFile {
		return b.Len(), pipeline.Write(b, nil, out, job)
	}
	if opts.clipboard {
		if opts.output != "" {
			return 0, fmt.Errorf("--clipboard and --output are exclusive: %w", diag.ErrBadInput)
		}
		cw, err := clipboard.NewWriter()
		if err != nil {
			return 0, fmt.Errorf("--clipboard: %w", err)
		}
		if err := pipeline.Write(b, cw, out, job); err != nil {
			return 0, err
		}
		return b.Len(), cw.Close()
	}
	if opts.output == "" {
		return b.Len(), pipeline.Write(b, stdout, out, job)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if opts.appendOut {
		idx, err := indexExisting(opts.output, opts.to, logger)
		if err != nil {
			return 0, err
		}
		b = idx.Missing(b)
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	f, err := os.OpenFile(opts.output, flag, 0644)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w: %w", opts.output, diag.ErrCannotOpen, err)
	}
	if err := pipeline.Write(b, f, out, job); err != nil {
		f.Close()
		return 0, err
	}
	return b.Len(), f.Close()
}

// indexExisting reads an existing output file, when the output format can
// also be read, and indexes its references.
func indexExisting(path, format string, logger *slog.Logger) (*export.Index, error) {
	if !slices.Contains(importer.Names(), format) {
		return nil, fmt.Errorf("--append needs an output format that can be read back, not %q: %w", format, diag.ErrBadInput)
	}
	in, err := importer.Lookup(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return export.NewIndex(nil), nil
		}
		return nil, fmt.Errorf("opening %s: %w: %w", path, diag.ErrCannotOpen, err)
	}
	defer f.Close()

	p := pipeline.NewParams()
	in.Configure(p)
	existing := fields.NewBibliography()
	if err := pipeline.Read(existing, f, in, pipeline.NewJob(p, logger, diag.Discard)); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return export.NewIndex(existing), nil
}

func countDiagnostics(c *diag.Collector) map[string]int {
	counts := make(map[string]int)
	for _, d := range c.Items {
		counts[d.Kind.String()]++
	}
	return counts
}
