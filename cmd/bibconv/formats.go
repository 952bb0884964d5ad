package main

import (
	"fmt"
	"strings"

	"github.com/matsen/bibconv/internal/export"
	"github.com/matsen/bibconv/internal/importer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the input and output formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

// FormatsResponse lists the known formats.
type FormatsResponse struct {
	Input  []string `json:"input"`
	Output []string `json:"output"`
}

func runFormats(cmd *cobra.Command, args []string) error {
	resp := FormatsResponse{Input: importer.Names(), Output: export.Names()}
	if humanOutput {
		fmt.Printf("input:  %s\n", strings.Join(resp.Input, ", "))
		fmt.Printf("output: %s\n", strings.Join(resp.Output, ", "))
		return nil
	}
	return outputJSON(resp)
}
