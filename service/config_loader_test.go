package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
)

// isolateConfigSearch points every discovery location at empty temp dirs
func isolateConfigSearch(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("JREADER_CONFIG", "")
	t.Chdir(t.TempDir())
}

func TestNewConfigurationLoader(t *testing.T) {
	loader := NewConfigurationLoader()

	if loader == nil {
		t.Fatal("NewConfigurationLoader should not return nil")
	}
}

func TestConfigurationLoader_LoadConfig_NonExistent(t *testing.T) {
	loader := NewConfigurationLoader()

	_, err := loader.LoadConfig("/nonexistent/jreader.yaml", "")
	if !domain.HasCode(err, domain.ErrCodeConfigError) {
		t.Errorf("LoadConfig should return a config error for a nonexistent file, got %v", err)
	}
}

func TestConfigurationLoader_LoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "jreader.yaml")
	if err := os.WriteFile(configFile, []byte("output: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	loader := NewConfigurationLoader()

	if _, err := loader.LoadConfig(configFile, ""); err == nil {
		t.Error("LoadConfig should return error for invalid YAML")
	}
}

func TestConfigurationLoader_LoadConfig_Valid(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "jreader.yaml")
	content := `complexity:
  low_threshold: 5
  medium_threshold: 10
output:
  format: json
  top: 5
analysis:
  recursive: true
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	loader := NewConfigurationLoader()

	cfg, err := loader.LoadConfig(configFile, "")
	if err != nil {
		t.Fatalf("LoadConfig should not return error: %v", err)
	}

	if cfg.Complexity.LowThreshold != 5 {
		t.Errorf("LowThreshold should be 5, got %d", cfg.Complexity.LowThreshold)
	}
	if cfg.Complexity.MediumThreshold != 10 {
		t.Errorf("MediumThreshold should be 10, got %d", cfg.Complexity.MediumThreshold)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format should be 'json', got '%s'", cfg.Output.Format)
	}
	if cfg.Output.Top != 5 {
		t.Errorf("Top should be 5, got %d", cfg.Output.Top)
	}
	if !cfg.Analysis.Recursive {
		t.Error("Recursive should be true")
	}
	if len(cfg.Analysis.Extensions) != 1 || cfg.Analysis.Extensions[0] != ".java" {
		t.Errorf("Extensions should keep the default, got %v", cfg.Analysis.Extensions)
	}
}

func TestConfigurationLoader_LoadDefaultConfig(t *testing.T) {
	isolateConfigSearch(t)
	loader := NewConfigurationLoader()

	cfg := loader.LoadDefaultConfig("")

	if cfg == nil {
		t.Fatal("LoadDefaultConfig should not return nil")
	}
	if cfg.Complexity.LowThreshold != 9 || cfg.Complexity.MediumThreshold != 19 {
		t.Errorf("expected default thresholds 9/19, got %d/%d",
			cfg.Complexity.LowThreshold, cfg.Complexity.MediumThreshold)
	}
}

func TestConfigurationLoader_LoadDefaultConfig_InvalidFallsBack(t *testing.T) {
	isolateConfigSearch(t)
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "jreader.yaml"), []byte("output:\n  top: -1\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cfg := NewConfigurationLoader().LoadDefaultConfig(target)

	if cfg.Output.Top != 3 {
		t.Errorf("invalid discovered config should fall back to defaults, got top %d", cfg.Output.Top)
	}
}

func TestConfigurationLoader_FindDefaultConfigFile_NotFound(t *testing.T) {
	isolateConfigSearch(t)
	loader := NewConfigurationLoader()

	if configFile := loader.FindDefaultConfigFile(t.TempDir()); configFile != "" {
		t.Errorf("Should not find config file in empty directory, got '%s'", configFile)
	}
}

func TestConfigurationLoader_FindDefaultConfigFile_Found(t *testing.T) {
	isolateConfigSearch(t)
	root := t.TempDir()
	nested := filepath.Join(root, "src", "main")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create directories: %v", err)
	}
	want := filepath.Join(root, ".jreader.yaml")
	if err := os.WriteFile(want, []byte("output:\n  top: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	got := NewConfigurationLoader().FindDefaultConfigFile(nested)

	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestConfigurationLoader_MergeConfig(t *testing.T) {
	loader := NewConfigurationLoader()
	base := config.DefaultConfig()

	format := "csv"
	top := 7
	recursive := true
	maxComplexity := 12
	maxNaming := 25.0

	merged := loader.MergeConfig(base, ConfigOverrides{
		Format:              &format,
		Top:                 &top,
		Recursive:           &recursive,
		Extensions:          []string{".java", ".jav"},
		NoColor:             true,
		MaxComplexity:       &maxComplexity,
		MaxNamingViolations: &maxNaming,
	})

	if merged.Output.Format != "csv" {
		t.Errorf("Format should be csv, got %s", merged.Output.Format)
	}
	if merged.Output.Top != 7 {
		t.Errorf("Top should be 7, got %d", merged.Output.Top)
	}
	if !merged.Analysis.Recursive {
		t.Error("Recursive should be true")
	}
	if len(merged.Analysis.Extensions) != 2 {
		t.Errorf("expected 2 extensions, got %v", merged.Analysis.Extensions)
	}
	if merged.Output.Color {
		t.Error("Color should be disabled")
	}
	if merged.Check.MaxComplexity != 12 || merged.Check.MaxNamingViolations != 25.0 {
		t.Errorf("unexpected check limits: %+v", merged.Check)
	}
}

func TestConfigurationLoader_MergeConfig_PreserveBase(t *testing.T) {
	loader := NewConfigurationLoader()
	base := config.DefaultConfig()

	merged := loader.MergeConfig(base, ConfigOverrides{})
	merged.Analysis.Extensions[0] = ".changed"

	if merged.Output.Format != base.Output.Format || merged.Output.Top != base.Output.Top {
		t.Error("empty overrides should keep base values")
	}
	if base.Analysis.Extensions[0] != ".java" {
		t.Error("MergeConfig should not share the extension slice with base")
	}
}

func TestConfigurationLoader_ValidateConfig(t *testing.T) {
	loader := NewConfigurationLoader()

	if err := loader.ValidateConfig(config.DefaultConfig()); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Complexity.MediumThreshold = cfg.Complexity.LowThreshold
	if err := loader.ValidateConfig(cfg); !domain.HasCode(err, domain.ErrCodeConfigError) {
		t.Errorf("expected config error, got %v", err)
	}

	if err := loader.ValidateConfig(nil); err == nil {
		t.Error("nil config should be invalid")
	}
}
