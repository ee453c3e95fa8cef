package domain

// CheckResult represents the result of a quality check
type CheckResult struct {
	Passed      bool             `json:"passed"`
	ExitCode    int              `json:"exit_code"`
	Violations  []CheckViolation `json:"violations"`
	Summary     CheckSummary     `json:"summary"`
	Duration    int64            `json:"duration_ms"`
	GeneratedAt string           `json:"generated_at"`
	Version     string           `json:"version"`
}

// CheckViolation represents a single threshold violation
type CheckViolation struct {
	Category  string `json:"category"`            // complexity, naming
	Rule      string `json:"rule"`                // max-complexity, max-naming-violations
	Severity  string `json:"severity"`            // error, warning
	Message   string `json:"message"`             // Human-readable description
	Location  string `json:"location,omitempty"`  // File:line if applicable
	Actual    string `json:"actual"`              // Actual value
	Threshold string `json:"threshold,omitempty"` // Configured threshold
}

// CheckSummary provides aggregate statistics
type CheckSummary struct {
	FilesAnalyzed         int  `json:"files_analyzed"`
	FilesFailed           int  `json:"files_failed"`
	TotalViolations       int  `json:"total_violations"`
	ComplexityChecked     bool `json:"complexity_checked"`
	NamingChecked         bool `json:"naming_checked"`
	HighComplexityMethods int  `json:"high_complexity_methods"`
	NamingViolationFiles  int  `json:"naming_violation_files"`
}
