package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matsen/bibconv/internal/pipeline"
)

// setConfigHome points the global config at dir for the rest of the test.
func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)
	t.Setenv(ConfigEnv, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, GlobalConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	// Test with custom XDG_CONFIG_HOME
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := "/custom/config/bibconv/config.yml"
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}

	// BIBCONV_CONFIG takes priority
	t.Setenv(ConfigEnv, "/etc/bibconv.yml")
	if path := GlobalConfigPath(); path != "/etc/bibconv.yml" {
		t.Errorf("GlobalConfigPath() = %q, want /etc/bibconv.yml", path)
	}

	// Test with empty XDG_CONFIG_HOME (should use ~/.config)
	t.Setenv(ConfigEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	path = GlobalConfigPath()
	want = filepath.Join(home, ".config", "bibconv", "config.yml")
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig_NotFound(t *testing.T) {
	setConfigHome(t, t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadGlobalConfig() returned nil")
	}

	// Should return empty config
	if cfg.CharsetIn != "" || cfg.LatexOut != nil || len(cfg.Asis) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadGlobalConfig_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigHome(t, tmpDir)
	writeConfig(t, tmpDir, `charset_in: latin1
charset_out: utf-8
latex_out: false
utf8_bom: true
nosplit_title: true
asis:
  - Plato
corps:
  - World Health Organization
asis_files:
  - ~/lists/asis.txt
verbose: 1
`)

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}

	if cfg.CharsetIn != "latin1" {
		t.Errorf("CharsetIn = %q, want latin1", cfg.CharsetIn)
	}
	if cfg.LatexOut == nil || *cfg.LatexOut {
		t.Errorf("LatexOut = %v, want explicit false", cfg.LatexOut)
	}
	if !cfg.UTF8BOM || !cfg.NoSplitTitle {
		t.Errorf("UTF8BOM = %v, NoSplitTitle = %v, want both true", cfg.UTF8BOM, cfg.NoSplitTitle)
	}
	if !slices.Equal(cfg.Asis, []string{"Plato"}) {
		t.Errorf("Asis = %v, want [Plato]", cfg.Asis)
	}
	if !slices.Equal(cfg.Corps, []string{"World Health Organization"}) {
		t.Errorf("Corps = %v", cfg.Corps)
	}
	if cfg.Verbose != 1 {
		t.Errorf("Verbose = %d, want 1", cfg.Verbose)
	}

	// Check tilde expansion
	home, _ := os.UserHomeDir()
	wantPath := filepath.Join(home, "lists/asis.txt")
	if len(cfg.AsisFiles) != 1 || cfg.AsisFiles[0] != wantPath {
		t.Errorf("AsisFiles = %v, want [%s]", cfg.AsisFiles, wantPath)
	}
}

func TestLoadGlobalConfig_Cached(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigHome(t, tmpDir)
	writeConfig(t, tmpDir, "charset_in: latin1\n")

	first, err := LoadGlobalConfig()
	if err != nil {
		t.Fatal(err)
	}
	writeConfig(t, tmpDir, "charset_in: cp1252\n")
	second, err := LoadGlobalConfig()
	if err != nil {
		t.Fatal(err)
	}
	if first != second || second.CharsetIn != "latin1" {
		t.Errorf("expected cached config, got %q", second.CharsetIn)
	}
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigHome(t, tmpDir)
	writeConfig(t, tmpDir, "asis: [unclosed\n")

	_, err := LoadGlobalConfig()
	if err == nil {
		t.Error("LoadGlobalConfig() should return error for invalid YAML")
	}
}

func TestApply(t *testing.T) {
	listFile := filepath.Join(t.TempDir(), "corps.txt")
	if err := os.WriteFile(listFile, []byte("# corporate authors\nACME Labs\n\n  CERN  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	off := false
	cfg := &GlobalConfig{
		CharsetIn:    "latin1",
		LatexOut:     &off,
		XMLOut:       true,
		NoSplitTitle: true,
		Asis:         []string{"Plato"},
		CorpsFiles:   []string{listFile},
		Verbose:      2,
	}

	p := pipeline.NewParams()
	p.Out.Latex = true
	p.AddAsis("Plato")
	if err := cfg.Apply(p); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if p.In.Charset != "latin1" || p.In.UTF8 {
		t.Errorf("In = %+v, want latin1", p.In)
	}
	if p.InSource != pipeline.SourceUser {
		t.Errorf("InSource = %v, want SourceUser", p.InSource)
	}
	if p.Out.Latex {
		t.Error("Out.Latex should be turned off")
	}
	if !p.Out.XML || !p.NoSplitTitle {
		t.Errorf("Out.XML = %v, NoSplitTitle = %v", p.Out.XML, p.NoSplitTitle)
	}
	if p.Verbose != 2 {
		t.Errorf("Verbose = %d, want 2", p.Verbose)
	}
	if !slices.Equal(p.Asis, []string{"Plato"}) {
		t.Errorf("Asis = %v, duplicates should be ignored", p.Asis)
	}
	if !slices.Equal(p.Corps, []string{"ACME Labs", "CERN"}) {
		t.Errorf("Corps = %v, want [ACME Labs CERN]", p.Corps)
	}
}

func TestApply_KeepsFormatDefaults(t *testing.T) {
	p := pipeline.NewParams()
	p.Out.Latex = true
	if err := (&GlobalConfig{}).Apply(p); err != nil {
		t.Fatal(err)
	}
	if !p.Out.Latex {
		t.Error("an unset latex_out should keep the format default")
	}
}

func TestApply_MissingListFile(t *testing.T) {
	cfg := &GlobalConfig{AsisFiles: []string{filepath.Join(t.TempDir(), "missing.txt")}}
	if err := cfg.Apply(pipeline.NewParams()); err == nil {
		t.Error("Apply() should fail for a missing list file")
	}
}
