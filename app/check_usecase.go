package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/version"
)

// Check categories and rules
const (
	CategoryComplexity = "complexity"
	CategoryNaming     = "naming"
	CategoryAnalysis   = "analysis"

	RuleMaxComplexity       = "max-complexity"
	RuleMaxNamingViolations = "max-naming-violations"
	RuleReadable            = "readable"
)

// EvaluateCheck compares an analysis response against the check limits.
// Files that failed to analyze are reported as warnings and do not fail
// the check by themselves.
func EvaluateCheck(response *domain.AnalyzeResponse, limits config.CheckConfig, startTime time.Time) *domain.CheckResult {
	result := &domain.CheckResult{
		Passed:     true,
		Violations: []domain.CheckViolation{},
		Summary: domain.CheckSummary{
			FilesAnalyzed:     response.Summary.FilesAnalyzed,
			FilesFailed:       response.Summary.FilesFailed,
			ComplexityChecked: limits.MaxComplexity > 0,
			NamingChecked:     limits.MaxNamingViolations > 0,
		},
	}

	for _, file := range response.Files {
		for _, m := range file.Methods {
			if !limits.ExceedsMaxComplexity(m.Complexity) {
				continue
			}
			result.Passed = false
			result.Summary.HighComplexityMethods++
			result.Violations = append(result.Violations, domain.CheckViolation{
				Category:  CategoryComplexity,
				Rule:      RuleMaxComplexity,
				Severity:  "error",
				Message:   fmt.Sprintf("Method '%s' has complexity %d", m.Name, m.Complexity),
				Location:  fmt.Sprintf("%s:%d", file.FilePath, m.Line),
				Actual:    strconv.Itoa(m.Complexity),
				Threshold: strconv.Itoa(limits.MaxComplexity),
			})
		}

		if file.HasMethods() && limits.ExceedsNamingViolations(file.NamingViolationPercentage) {
			result.Passed = false
			result.Summary.NamingViolationFiles++
			result.Violations = append(result.Violations, domain.CheckViolation{
				Category:  CategoryNaming,
				Rule:      RuleMaxNamingViolations,
				Severity:  "error",
				Message:   fmt.Sprintf("%d of %d methods do not follow CamelCase", file.NonCamelCaseMethods, file.TotalMethods),
				Location:  file.FilePath,
				Actual:    strconv.FormatFloat(file.NamingViolationPercentage, 'f', 1, 64) + "%",
				Threshold: strconv.FormatFloat(limits.MaxNamingViolations, 'f', 1, 64) + "%",
			})
		}
	}

	for _, e := range response.Errors {
		result.Violations = append(result.Violations, domain.CheckViolation{
			Category: CategoryAnalysis,
			Rule:     RuleReadable,
			Severity: "warning",
			Message:  e,
		})
	}

	result.Summary.TotalViolations = len(result.Violations)
	result.ExitCode = 0
	if !result.Passed {
		result.ExitCode = 1
	}
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.GetVersion()

	return result
}
