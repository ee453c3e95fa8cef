package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/jreader/app"
	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMaxComplexity       int
	checkMaxNamingViolations float64
	checkRecursive           bool
	checkJSON                bool
	checkConfigPath          string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Fast quality check for CI/CD pipelines",
		Long: `Run quality checks against configurable thresholds for CI/CD integration.

Exit codes:
  0 - All checks pass
  1 - Quality threshold(s) violated
  2 - Analysis error (directory not found, unreadable files only, etc.)

Limits default to the check section of the configuration; 0 disables one.

Examples:
  # Fail when any method is more complex than 10
  jreader check --max-complexity 10 src/

  # Fail when more than a quarter of a file's methods are not camelCase
  jreader check --max-naming-violations 25 src/

  # JSON output for machine parsing
  jreader check --json src/`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().IntVar(&checkMaxComplexity, "max-complexity", 0,
		"Maximum allowed complexity per method (0 = config value)")
	cmd.Flags().Float64Var(&checkMaxNamingViolations, "max-naming-violations", 0,
		"Maximum allowed percentage of non-camelCase methods per file (0 = config value)")
	cmd.Flags().BoolVarP(&checkRecursive, "recursive", "r", false,
		"Walk subdirectories")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	dir := targetDirectory(args)

	cfg, err := loadCommandConfig(checkConfigPath, dir)
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	var overrides service.ConfigOverrides
	if cmd.Flags().Changed("max-complexity") {
		overrides.MaxComplexity = &checkMaxComplexity
	}
	if cmd.Flags().Changed("max-naming-violations") {
		overrides.MaxNamingViolations = &checkMaxNamingViolations
	}
	if cmd.Flags().Changed("recursive") {
		overrides.Recursive = &checkRecursive
	}
	loader := service.NewConfigurationLoader()
	cfg = loader.MergeConfig(cfg, overrides)
	if err := loader.ValidateConfig(cfg); err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	// Progress is auto-disabled for JSON output or non-TTY/CI
	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	uc, err := newAnalyzeUseCase(cfg, pm)
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	resp, err := uc.Analyze(commandContext(cmd), newAnalyzeRequest(cfg, dir, nil))
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	result := app.EvaluateCheck(resp, cfg.Check, startTime)
	if checkJSON {
		return outputCheckJSON(cmd.OutOrStdout(), result)
	}
	return outputCheckText(cmd.OutOrStdout(), result, cfg.Check.MaxComplexity, cfg.Check.MaxNamingViolations)
}

func outputCheckText(w io.Writer, result *domain.CheckResult, maxComplexity int, maxNaming float64) error {
	if result.Passed {
		fmt.Fprintln(w, "PASS: All quality checks passed")
		if verbose {
			fmt.Fprintf(w, "  Files analyzed: %d\n", result.Summary.FilesAnalyzed)
			fmt.Fprintf(w, "  Duration: %dms\n", result.Duration)
			if result.Summary.ComplexityChecked {
				fmt.Fprintf(w, "  Complexity: checked (max: %d)\n", maxComplexity)
			}
			if result.Summary.NamingChecked {
				fmt.Fprintf(w, "  Naming: checked (max: %.1f%%)\n", maxNaming)
			}
		}
		printWarnings(w, result)
		return nil
	}

	fmt.Fprintln(w, "FAIL: Quality check failed")
	fmt.Fprintf(w, "  Violations: %d\n", result.Summary.TotalViolations)

	for _, v := range result.Violations {
		severity := "ERROR"
		if v.Severity == "warning" {
			severity = "WARN"
		}
		fmt.Fprintf(w, "  [%s] %s: %s\n", severity, v.Category, v.Message)
		if verbose && v.Location != "" {
			fmt.Fprintf(w, "         at %s\n", v.Location)
		}
	}

	if verbose {
		fmt.Fprintf(w, "\nSummary:\n")
		fmt.Fprintf(w, "  Files: %d\n", result.Summary.FilesAnalyzed)
		if result.Summary.ComplexityChecked {
			fmt.Fprintf(w, "  High complexity methods: %d\n", result.Summary.HighComplexityMethods)
		}
		if result.Summary.NamingChecked {
			fmt.Fprintf(w, "  Files over naming limit: %d\n", result.Summary.NamingViolationFiles)
		}
		fmt.Fprintf(w, "  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: 1, Message: ""}
}

// printWarnings lists unreadable files of a passing check
func printWarnings(w io.Writer, result *domain.CheckResult) {
	for _, v := range result.Violations {
		if v.Severity == "warning" {
			fmt.Fprintf(w, "  [WARN] %s: %s\n", v.Category, v.Message)
		}
	}
}

func outputCheckJSON(w io.Writer, result *domain.CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}
