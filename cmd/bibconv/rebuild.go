package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rebuildCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to rebuild (default $BIBCONV_DB)")
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild <dump.jsonl>",
	Short: "Rebuild a search database from a JSONL field dump",
	Long: `Rebuild a search database from a JSONL field dump.

The dump is what convert --to jsonl writes; the database replaces any
previous content.

Example:
  bibconv convert -f bibtex -t jsonl -o refs.jsonl refs.bib
  bibconv rebuild --db refs.db refs.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runRebuild,
}

// RebuildResponse reports a rebuilt database.
type RebuildResponse struct {
	Status     string `json:"status"`
	References int    `json:"references"`
	Path       string `json:"path"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	path := resolveDBPath()
	if path == "" {
		exitWithError(ExitConfigError, "no database: pass --db or set BIBCONV_DB")
	}
	db := openOrCreateDatabase(path)
	defer db.Close()

	n, err := db.RebuildFromJSONL(args[0])
	if err != nil {
		exitWithError(ExitDataError, "rebuilding database: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt %s with %d references\n", path, n)
		return nil
	}
	return outputJSON(RebuildResponse{Status: "rebuilt", References: n, Path: path})
}
