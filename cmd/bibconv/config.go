package main

import (
	"fmt"

	"github.com/matsen/bibconv/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the global configuration",
	Long: `Show the global configuration and where it was loaded from.

The file is ~/.config/bibconv/config.yml (respecting XDG_CONFIG_HOME), or
the path in BIBCONV_CONFIG. Example:

  charset_in: latin1
  latex_out: false
  nosplit_title: true
  asis:
    - World Health Organization
  corps_files:
    - ~/bib/corps.txt`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path   string               `json:"path"`
	Config *config.GlobalConfig `json:"config"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	path := config.GlobalConfigPath()

	if humanOutput {
		fmt.Printf("# %s\n", path)
		data, err := yaml.Marshal(cfg)
		if err != nil {
			exitWithError(ExitError, "encoding config: %v", err)
		}
		fmt.Print(string(data))
		return nil
	}
	return outputJSON(ConfigResponse{Path: path, Config: cfg})
}
