package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/jreader/internal/constants"
)

// Default complexity thresholds based on McCabe complexity standards
const (
	// DefaultLowComplexityThreshold defines the upper bound for low complexity methods
	DefaultLowComplexityThreshold = 9

	// DefaultMediumComplexityThreshold defines the upper bound for medium complexity methods
	DefaultMediumComplexityThreshold = 19
)

// Default run settings
const (
	DefaultMaxGoroutines  = 4
	DefaultTimeoutSeconds = 300
)

// Config represents the main configuration structure
type Config struct {
	// Analysis holds file discovery configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Heuristics holds the token sets of the line classifier
	Heuristics HeuristicsConfig `json:"heuristics" mapstructure:"heuristics" yaml:"heuristics"`

	// Complexity holds risk grading thresholds
	Complexity ComplexityConfig `json:"complexity" mapstructure:"complexity" yaml:"complexity"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Check holds the limits enforced by the check command
	Check CheckConfig `json:"check" mapstructure:"check" yaml:"check"`

	// Performance holds concurrency settings
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`
}

// AnalysisConfig holds file discovery configuration
type AnalysisConfig struct {
	// Extensions lists the file suffixes analyzed
	Extensions []string `json:"extensions" mapstructure:"extensions" yaml:"extensions"`

	// Recursive controls whether subdirectories are walked
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// ExcludePatterns are gitignore-style patterns of paths to skip
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// RespectGitignore honors the .gitignore of the analyzed directory
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// HeuristicsConfig holds the token sets used to classify lines
type HeuristicsConfig struct {
	// ConditionalKeywords mark control-flow lines and add complexity
	ConditionalKeywords []string `json:"conditional_keywords" mapstructure:"conditional_keywords" yaml:"conditional_keywords"`

	// OperatorSymbols mark expression lines that are not signatures
	OperatorSymbols []string `json:"operator_symbols" mapstructure:"operator_symbols" yaml:"operator_symbols"`
}

// ComplexityConfig holds thresholds for grading method complexity
type ComplexityConfig struct {
	// LowThreshold is the upper bound for low complexity (inclusive)
	LowThreshold int `json:"low_threshold" mapstructure:"low_threshold" yaml:"low_threshold"`

	// MediumThreshold is the upper bound for medium complexity (inclusive)
	// Values above this are considered high complexity
	MediumThreshold int `json:"medium_threshold" mapstructure:"medium_threshold" yaml:"medium_threshold"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// Top is the number of methods listed per file in text output
	Top int `json:"top" mapstructure:"top" yaml:"top"`

	// Color enables colored text output
	Color bool `json:"color" mapstructure:"color" yaml:"color"`
}

// CheckConfig holds the limits of the check command. 0 disables a limit.
type CheckConfig struct {
	MaxComplexity       int     `json:"max_complexity" mapstructure:"max_complexity" yaml:"max_complexity"`
	MaxNamingViolations float64 `json:"max_naming_violations" mapstructure:"max_naming_violations" yaml:"max_naming_violations"`
}

// PerformanceConfig holds concurrency settings
type PerformanceConfig struct {
	// MaxGoroutines bounds the files analyzed at once
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds a whole run
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Extensions:       []string{constants.DefaultExtension},
			Recursive:        false,
			ExcludePatterns:  []string{},
			RespectGitignore: true,
		},
		Heuristics: HeuristicsConfig{
			ConditionalKeywords: []string{"if", "else", "for", "while", "switch", "case"},
			OperatorSymbols:     []string{"&", "|", "=", "!", "+", "-", "/", "*", "%", ">", "<"},
		},
		Complexity: ComplexityConfig{
			LowThreshold:    DefaultLowComplexityThreshold,
			MediumThreshold: DefaultMediumComplexityThreshold,
		},
		Output: OutputConfig{
			Format: constants.OutputFormatText,
			Top:    constants.DefaultTopMethods,
			Color:  true,
		},
		Check: CheckConfig{},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context.
// An empty configPath triggers discovery from targetPath upward.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// newViper returns a fresh instance seeded with the defaults, so every key
// is known to AutomaticEnv
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("analysis.extensions", c.Analysis.Extensions)
	v.SetDefault("analysis.recursive", c.Analysis.Recursive)
	v.SetDefault("analysis.exclude_patterns", c.Analysis.ExcludePatterns)
	v.SetDefault("analysis.respect_gitignore", c.Analysis.RespectGitignore)
	v.SetDefault("heuristics.conditional_keywords", c.Heuristics.ConditionalKeywords)
	v.SetDefault("heuristics.operator_symbols", c.Heuristics.OperatorSymbols)
	v.SetDefault("complexity.low_threshold", c.Complexity.LowThreshold)
	v.SetDefault("complexity.medium_threshold", c.Complexity.MediumThreshold)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.top", c.Output.Top)
	v.SetDefault("output.color", c.Output.Color)
	v.SetDefault("check.max_complexity", c.Check.MaxComplexity)
	v.SetDefault("check.max_naming_violations", c.Check.MaxNamingViolations)
	v.SetDefault("performance.max_goroutines", c.Performance.MaxGoroutines)
	v.SetDefault("performance.timeout_seconds", c.Performance.TimeoutSeconds)
}

// loadConfigFromFile reads and parses a configuration file. Environment
// overrides apply with or without a file.
func loadConfigFromFile(configPath string) (*Config, error) {
	// Create a new viper instance to avoid race conditions
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// FindConfigFile returns the configuration file that LoadConfigWithTarget
// would use for targetPath, or "" when none exists
func FindConfigFile(targetPath string) string {
	return findDefaultConfig(targetPath)
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// configCandidates lists the file names looked up, in priority order
func configCandidates() []string {
	return []string{
		constants.ConfigFileName,
		"." + constants.ConfigFileName,
		constants.ToolName + ".yml",
		constants.ToolName + ".json",
	}
}

// findDefaultConfig looks for default configuration files in common locations.
// targetPath is the directory being analyzed.
func findDefaultConfig(targetPath string) string {
	candidates := configCandidates()

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			// If it's a file, start from its directory
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", constants.ToolName)
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
		if config := searchConfigInDirectory(home, candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvConfigPath); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if len(c.Analysis.Extensions) == 0 {
		return fmt.Errorf("analysis.extensions cannot be empty")
	}
	for _, ext := range c.Analysis.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("analysis.extensions cannot contain an empty suffix")
		}
	}

	if len(c.Heuristics.ConditionalKeywords) == 0 {
		return fmt.Errorf("heuristics.conditional_keywords cannot be empty")
	}
	for _, k := range c.Heuristics.ConditionalKeywords {
		if k == "" {
			return fmt.Errorf("heuristics.conditional_keywords cannot contain an empty keyword")
		}
	}
	for _, s := range c.Heuristics.OperatorSymbols {
		if s == "" {
			return fmt.Errorf("heuristics.operator_symbols cannot contain an empty symbol")
		}
	}

	if c.Complexity.LowThreshold < 1 {
		return fmt.Errorf("complexity.low_threshold must be >= 1, got %d", c.Complexity.LowThreshold)
	}
	if c.Complexity.MediumThreshold <= c.Complexity.LowThreshold {
		return fmt.Errorf("complexity.medium_threshold (%d) must be > low_threshold (%d)",
			c.Complexity.MediumThreshold, c.Complexity.LowThreshold)
	}

	validFormats := map[string]bool{
		constants.OutputFormatText: true,
		constants.OutputFormatJSON: true,
		constants.OutputFormatYAML: true,
		constants.OutputFormatCSV:  true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml, csv", c.Output.Format)
	}
	if c.Output.Top < 1 {
		return fmt.Errorf("output.top must be >= 1, got %d", c.Output.Top)
	}

	if c.Check.MaxComplexity < 0 {
		return fmt.Errorf("check.max_complexity must be >= 0, got %d", c.Check.MaxComplexity)
	}
	if c.Check.MaxNamingViolations < 0 || c.Check.MaxNamingViolations > 100 {
		return fmt.Errorf("check.max_naming_violations must be within 0-100, got %.1f", c.Check.MaxNamingViolations)
	}

	if c.Performance.MaxGoroutines < 1 {
		return fmt.Errorf("performance.max_goroutines must be >= 1, got %d", c.Performance.MaxGoroutines)
	}
	if c.Performance.TimeoutSeconds < 0 {
		return fmt.Errorf("performance.timeout_seconds must be >= 0, got %d", c.Performance.TimeoutSeconds)
	}

	return nil
}

// AssessRiskLevel determines risk level based on complexity and thresholds
func (c *ComplexityConfig) AssessRiskLevel(complexity int) string {
	if complexity <= c.LowThreshold {
		return "low"
	} else if complexity <= c.MediumThreshold {
		return "medium"
	}
	return "high"
}

// ExceedsMaxComplexity checks if complexity exceeds the check limit
func (c *CheckConfig) ExceedsMaxComplexity(complexity int) bool {
	return c.MaxComplexity > 0 && complexity > c.MaxComplexity
}

// ExceedsNamingViolations checks if a naming percentage exceeds the check limit
func (c *CheckConfig) ExceedsNamingViolations(percentage float64) bool {
	return c.MaxNamingViolations > 0 && percentage > c.MaxNamingViolations
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	// Create a new viper instance to avoid race conditions
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("analysis", config.Analysis)
	v.Set("heuristics", config.Heuristics)
	v.Set("complexity", config.Complexity)
	v.Set("output", config.Output)
	v.Set("check", config.Check)
	v.Set("performance", config.Performance)

	return v.WriteConfig()
}
