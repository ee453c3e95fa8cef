package service

import (
	"fmt"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
)

// ConfigOverrides holds command-line values that take precedence over the
// loaded configuration. Nil fields keep the loaded value.
type ConfigOverrides struct {
	Format     *string
	Top        *int
	Recursive  *bool
	Extensions []string
	NoColor    bool

	MaxComplexity       *int
	MaxNamingViolations *float64
}

// ConfigurationLoaderImpl loads and merges configuration for the commands
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from path, or discovers it from targetPath
// when path is empty
func (c *ConfigurationLoaderImpl) LoadConfig(path, targetPath string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithTarget(path, targetPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the discovered configuration, falling back to
// the built-in defaults when it cannot be loaded
func (c *ConfigurationLoaderImpl) LoadDefaultConfig(targetPath string) *config.Config {
	cfg, err := config.LoadConfigWithTarget("", targetPath)
	if err == nil {
		return cfg
	}
	return config.DefaultConfig()
}

// FindDefaultConfigFile searches for a configuration file from targetPath upward
func (c *ConfigurationLoaderImpl) FindDefaultConfigFile(targetPath string) string {
	return config.FindConfigFile(targetPath)
}

// MergeConfig returns a copy of base with the overrides applied
func (c *ConfigurationLoaderImpl) MergeConfig(base *config.Config, override ConfigOverrides) *config.Config {
	merged := *base
	merged.Analysis.Extensions = append([]string(nil), base.Analysis.Extensions...)

	if override.Format != nil {
		merged.Output.Format = *override.Format
	}
	if override.Top != nil {
		merged.Output.Top = *override.Top
	}
	if override.Recursive != nil {
		merged.Analysis.Recursive = *override.Recursive
	}
	if len(override.Extensions) > 0 {
		merged.Analysis.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.NoColor {
		merged.Output.Color = false
	}
	if override.MaxComplexity != nil {
		merged.Check.MaxComplexity = *override.MaxComplexity
	}
	if override.MaxNamingViolations != nil {
		merged.Check.MaxNamingViolations = *override.MaxNamingViolations
	}

	return &merged
}

// ValidateConfig validates the merged configuration
func (c *ConfigurationLoaderImpl) ValidateConfig(cfg *config.Config) error {
	if cfg == nil {
		return domain.NewConfigError("configuration cannot be nil", nil)
	}
	if err := cfg.Validate(); err != nil {
		return domain.NewConfigError(fmt.Sprintf("invalid configuration: %v", err), nil)
	}
	return nil
}
