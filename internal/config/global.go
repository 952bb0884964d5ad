// Package config handles the global bibconv configuration and the name list
// files it points to.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/bibconv/internal/charset"
	"github.com/matsen/bibconv/internal/pipeline"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/bibconv/config.yml.
type GlobalConfig struct {
	CharsetIn  string `yaml:"charset_in,omitempty" json:"charset_in,omitempty"`
	CharsetOut string `yaml:"charset_out,omitempty" json:"charset_out,omitempty"`
	// LatexOut overrides the output format's LaTeX default when set.
	LatexOut     *bool `yaml:"latex_out,omitempty" json:"latex_out,omitempty"`
	UTF8BOM      bool  `yaml:"utf8_bom,omitempty" json:"utf8_bom,omitempty"`
	XMLOut       bool  `yaml:"xml_out,omitempty" json:"xml_out,omitempty"`
	NoSplitTitle bool  `yaml:"nosplit_title,omitempty" json:"nosplit_title,omitempty"`

	// Asis and Corps are names stored verbatim; the *Files fields name
	// files holding one such name per line.
	Asis       []string `yaml:"asis,omitempty" json:"asis,omitempty"`
	Corps      []string `yaml:"corps,omitempty" json:"corps,omitempty"`
	AsisFiles  []string `yaml:"asis_files,omitempty" json:"asis_files,omitempty"`
	CorpsFiles []string `yaml:"corps_files,omitempty" json:"corps_files,omitempty"`

	Verbose int `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "bibconv"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// ConfigEnv names the environment variable that overrides the path.
	ConfigEnv = "BIBCONV_CONFIG"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// BIBCONV_CONFIG wins; otherwise XDG_CONFIG_HOME is respected, defaulting to
// ~/.config/bibconv/config.yml.
func GlobalConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return ExpandPath(path)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	// Expand tilde in list file paths
	for i, p := range cfg.AsisFiles {
		cfg.AsisFiles[i] = ExpandPath(p)
	}
	for i, p := range cfg.CorpsFiles {
		cfg.CorpsFiles[i] = ExpandPath(p)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Apply overlays the configuration on p. It runs after the formats'
// Configure and before command-line flags.
func (c *GlobalConfig) Apply(p *pipeline.Params) error {
	if c.CharsetIn != "" {
		p.SetInputCharset(c.CharsetIn, pipeline.SourceUser)
	}
	if c.CharsetOut != "" {
		p.Out.Charset = c.CharsetOut
		p.Out.UTF8 = charset.Spec{Charset: c.CharsetOut}.IsUnicode()
	}
	if c.LatexOut != nil {
		p.Out.Latex = *c.LatexOut
	}
	if c.UTF8BOM {
		p.UTF8BOM = true
	}
	if c.XMLOut {
		p.Out.XML = true
	}
	if c.NoSplitTitle {
		p.NoSplitTitle = true
	}
	p.Verbose = max(p.Verbose, c.Verbose)

	for _, name := range c.Asis {
		p.AddAsis(name)
	}
	for _, name := range c.Corps {
		p.AddCorps(name)
	}
	if err := AddListFiles(c.AsisFiles, p.AddAsis); err != nil {
		return err
	}
	return AddListFiles(c.CorpsFiles, p.AddCorps)
}
