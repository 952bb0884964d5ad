package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/matsen/bibconv/internal/author"
	"github.com/matsen/bibconv/internal/export"
	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/pipeline"
	"github.com/matsen/bibconv/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	searchLimit int
	searchTo    string
)

func init() {
	searchCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database written by convert --sqlite (default $BIBCONV_DB)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "Write matching references in this format instead of a summary")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a converted bibliography by keyword",
	Long: `Search a bibliography stored with convert --sqlite.

Query Syntax:
  Plain text     - Searches titles, authors and years
  author:name    - Search author names ("Yu", "Timothy Yu", "Yu, T"; join several with ";")
  title:text     - Search title only
  year:YYYY      - Search publication year only
  refnum:key     - Fetch one reference by its citation key

Examples:
  bibconv search --db refs.db "phylogenetics"
  bibconv search --db refs.db "author:Matsen"
  bibconv search --db refs.db --to bibtex "title:influenza"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// resolveDBPath returns the --db flag or BIBCONV_DB.
func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return os.Getenv("BIBCONV_DB")
}

func mustOpenDatabase() *storage.DB {
	path := resolveDBPath()
	if path == "" {
		exitWithError(ExitConfigError, "no database: pass --db or set BIBCONV_DB")
	}
	if _, err := os.Stat(path); err != nil {
		exitWithError(ExitCannotOpen, "opening database: %v", err)
	}
	return openOrCreateDatabase(path)
}

func openOrCreateDatabase(path string) *storage.DB {
	db, err := storage.OpenDB(path)
	if err != nil {
		exitWithError(ExitCannotOpen, "opening database: %v", err)
	}
	return db
}

func runSearch(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	refs, err := search(db, args[0], searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if searchTo != "" {
		out, err := export.Lookup(searchTo)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		p := pipeline.NewParams()
		out.Configure(p)
		if err := pipeline.Write(refs, os.Stdout, out, pipeline.NewJob(p, nil, nil)); err != nil {
			exitWithError(exitCodeFor(err), "%v", err)
		}
		return nil
	}

	// Empty result is not an error
	summaries := []RefSummary{}
	for _, ref := range refs.All() {
		summaries = append(summaries, summarize(ref))
	}

	if humanOutput {
		if len(summaries) == 0 {
			fmt.Println("No references found")
		} else {
			fmt.Printf("Found %d references:\n\n", len(summaries))
			for i, s := range summaries {
				printRefSummary(os.Stdout, i+1, s)
			}
		}
	} else {
		outputJSON(summaries)
	}

	return nil
}

// search runs a query, dispatching field-specific forms.
func search(db *storage.DB, query string, limit int) (*fields.Bibliography, error) {
	if value, ok := strings.CutPrefix(query, "refnum:"); ok {
		b := fields.NewBibliography()
		ref, err := db.GetByRefnum(value)
		if err != nil {
			return nil, err
		}
		if ref != nil {
			b.Add(ref)
		}
		return b, nil
	}
	if value, ok := strings.CutPrefix(query, "author:"); ok {
		return searchAuthors(db, value, limit)
	}
	for _, field := range []string{"title", "year"} {
		if value, ok := strings.CutPrefix(query, field+":"); ok {
			return db.SearchField(field, value, limit)
		}
	}
	return db.Search(query, limit)
}

// searchAuthors finds candidates by the first author's family name and keeps
// the references every author query matches. Queries are separated by ";".
func searchAuthors(db *storage.DB, value string, limit int) (*fields.Bibliography, error) {
	queries := author.ParseQueries(value)
	if len(queries) == 0 {
		return fields.NewBibliography(), nil
	}
	candidates, err := db.SearchField("author", queries[0].Last, -1)
	if err != nil {
		return nil, err
	}
	b := fields.NewBibliography()
	for _, ref := range candidates.All() {
		if b.Len() == limit {
			break
		}
		if author.AllMatch(queries, author.Names(ref)) {
			b.Add(ref)
		}
	}
	return b, nil
}
