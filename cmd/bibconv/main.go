// Package main provides the bibconv CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	// verbosity counts -v flags: 1 logs at debug level, 2 also dumps records.
	verbosity int
)

func main() {
	// .env is optional; it may set BIBCONV_CONFIG or BIBCONV_DB
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibconv",
	Short: "Convert bibliographic references between formats",
	Long: `bibconv converts bibliographic references between BibTeX, BibLaTeX,
RIS, COPAC, MODS and a JSONL field dump.

Every input is parsed into a common set of tagged fields, so any input
format can be written in any output format. Summaries and errors are JSON
by default for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Log more detail (-vv dumps every record)")
	rootCmd.Version = Version
}
