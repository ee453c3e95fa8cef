package config

import (
	"strconv"
	"strings"
)

// Strictness represents the analysis strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// StrictnessPreset holds threshold values for different strictness levels
type StrictnessPreset struct {
	LowThreshold        int
	MediumThreshold     int
	MaxComplexity       int
	MaxNamingViolations float64
}

// GetStrictnessPresets returns presets for different strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			LowThreshold:    15,
			MediumThreshold: 30,
		},
		StrictnessStandard: {
			LowThreshold:        DefaultLowComplexityThreshold,
			MediumThreshold:     DefaultMediumComplexityThreshold,
			MaxNamingViolations: 50,
		},
		StrictnessStrict: {
			LowThreshold:        5,
			MediumThreshold:     10,
			MaxComplexity:       15,
			MaxNamingViolations: 10,
		},
	}
}

// TemplateOptions are the choices offered by init
type TemplateOptions struct {
	Strictness Strictness
	Recursive  bool
	Extensions []string
}

// DefaultTemplateOptions returns the options used by a non-interactive init
func DefaultTemplateOptions() TemplateOptions {
	return TemplateOptions{
		Strictness: StrictnessStandard,
		Recursive:  false,
		Extensions: DefaultConfig().Analysis.Extensions,
	}
}

// GetFullConfigTemplate returns the documented config template as YAML
func GetFullConfigTemplate(opts TemplateOptions) string {
	strict, ok := GetStrictnessPresets()[opts.Strictness]
	if !ok {
		strict = GetStrictnessPresets()[StrictnessStandard]
	}
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultConfig().Analysis.Extensions
	}
	defaults := DefaultConfig()

	return `# jreader configuration
# Every key can be overridden with an environment variable, for example
# JREADER_OUTPUT_FORMAT=json or JREADER_CHECK_MAX_COMPLEXITY=10.

# ============================================================================
# ANALYSIS SCOPE
# ============================================================================
analysis:
  # File suffixes to analyze
  extensions: ` + formatYAMLList(extensions) + `

  # Walk subdirectories (false lists the top-level directory only)
  recursive: ` + strconv.FormatBool(opts.Recursive) + `

  # Gitignore-style patterns of paths to skip
  exclude_patterns: []

  # Skip paths matched by the .gitignore of the analyzed directory
  respect_gitignore: true

# ============================================================================
# LINE HEURISTICS
# ============================================================================
# Tokens are matched as plain substrings of a line, so "if" also matches
# "modifier".
heuristics:
  # Lines holding one of these are control flow and add one to complexity
  conditional_keywords: ` + formatYAMLList(defaults.Heuristics.ConditionalKeywords) + `

  # Lines holding one of these are expressions, never signatures
  operator_symbols: ` + formatYAMLList(defaults.Heuristics.OperatorSymbols) + `

# ============================================================================
# COMPLEXITY GRADING
# ============================================================================
complexity:
  # Methods with complexity <= this value are low risk
  low_threshold: ` + strconv.Itoa(strict.LowThreshold) + `

  # Methods above low_threshold and <= this value are medium risk
  medium_threshold: ` + strconv.Itoa(strict.MediumThreshold) + `

# ============================================================================
# OUTPUT SETTINGS
# ============================================================================
output:
  # Output format: text, json, yaml, csv
  format: text

  # Methods listed per file, highest complexity first
  top: ` + strconv.Itoa(defaults.Output.Top) + `

  # Use colors in terminal output (disable for CI logs)
  color: true

# ============================================================================
# CHECK LIMITS (0 disables a limit)
# ============================================================================
check:
  # Fail when any method exceeds this complexity
  max_complexity: ` + strconv.Itoa(strict.MaxComplexity) + `

  # Fail when a file's non camel case percentage exceeds this value
  max_naming_violations: ` + strconv.FormatFloat(strict.MaxNamingViolations, 'f', 1, 64) + `

# ============================================================================
# PERFORMANCE
# ============================================================================
performance:
  # Files analyzed at once
  max_goroutines: ` + strconv.Itoa(defaults.Performance.MaxGoroutines) + `

  # Upper bound in seconds for a whole run (0 uses the 5 minute default)
  timeout_seconds: ` + strconv.Itoa(defaults.Performance.TimeoutSeconds) + `
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# jreader configuration (minimal)

analysis:
  extensions: [".java"]
  recursive: false

output:
  format: text
  top: 3
`
}

// formatYAMLList formats a string slice as a quoted YAML flow sequence
func formatYAMLList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
