package domain

import (
	"context"
	"io"
	"sort"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// ParseOutputFormat converts a string to an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatCSV:
		return OutputFormat(s), nil
	case "":
		return OutputFormatText, nil
	default:
		return "", NewUnsupportedFormatError(s)
	}
}

// DefaultTopMethods is the number of methods listed per file in reports
const DefaultTopMethods = 3

// MethodComplexity is the complexity record of one detected method
type MethodComplexity struct {
	Name       string `json:"name" yaml:"name"`
	Complexity int    `json:"complexity" yaml:"complexity"`
	Line       int    `json:"line" yaml:"line"`
	CamelCase  bool   `json:"camel_case" yaml:"camel_case"`
	RiskLevel  string `json:"risk_level" yaml:"risk_level"`
}

// FileAnalysis is the analysis result of a single source file.
// Methods are kept in detection order; a later method with an already
// seen name replaces the earlier complexity but keeps its position.
type FileAnalysis struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	FileName string `json:"file_name" yaml:"file_name"`
	Lines    int    `json:"lines" yaml:"lines"`

	TotalMethods              int     `json:"total_methods" yaml:"total_methods"`
	NonCamelCaseMethods       int     `json:"non_camel_case_methods" yaml:"non_camel_case_methods"`
	NamingViolationPercentage float64 `json:"naming_violation_percentage" yaml:"naming_violation_percentage"`

	Methods []MethodComplexity `json:"methods" yaml:"methods"`
}

// HasMethods reports whether any method was detected. Without methods the
// naming violation percentage is undefined and reported as zero.
func (f *FileAnalysis) HasMethods() bool {
	return f.TotalMethods > 0
}

// Complexities returns the method name to complexity mapping
func (f *FileAnalysis) Complexities() map[string]int {
	m := make(map[string]int, len(f.Methods))
	for _, method := range f.Methods {
		m[method.Name] = method.Complexity
	}
	return m
}

// TopMethods returns up to n methods by descending complexity.
// Ties keep detection order.
func (f *FileAnalysis) TopMethods(n int) []MethodComplexity {
	sorted := make([]MethodComplexity, len(f.Methods))
	copy(sorted, f.Methods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Complexity > sorted[j].Complexity
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// AnalyzeRequest represents a request to analyze a directory
type AnalyzeRequest struct {
	// Directory is the directory to analyze
	Directory string

	// Paths are the resolved source files; filled by the use case when empty
	Paths []string

	// File collection
	Extensions       []string
	Recursive        bool
	ExcludePatterns  []string
	RespectGitignore bool

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	Top          int
	Color        bool

	// Configuration
	ConfigPath string
}

// AnalyzeSummary represents aggregate statistics of a run
type AnalyzeSummary struct {
	FilesAnalyzed       int `json:"files_analyzed" yaml:"files_analyzed"`
	FilesFailed         int `json:"files_failed" yaml:"files_failed"`
	TotalLines          int `json:"total_lines" yaml:"total_lines"`
	TotalMethods        int `json:"total_methods" yaml:"total_methods"`
	NonCamelCaseMethods int `json:"non_camel_case_methods" yaml:"non_camel_case_methods"`

	// NamingViolationPercentage is computed over all methods of the run
	NamingViolationPercentage float64 `json:"naming_violation_percentage" yaml:"naming_violation_percentage"`

	AverageComplexity   float64 `json:"average_complexity" yaml:"average_complexity"`
	MaxComplexity       int     `json:"max_complexity" yaml:"max_complexity"`
	MaxComplexityMethod string  `json:"max_complexity_method,omitempty" yaml:"max_complexity_method,omitempty"`
}

// AnalyzeResponse represents the complete analysis result of a run
type AnalyzeResponse struct {
	Directory string         `json:"directory" yaml:"directory"`
	Files     []FileAnalysis `json:"files" yaml:"files"`
	Summary   AnalyzeSummary `json:"summary" yaml:"summary"`

	// Errors holds per-file failures; the run continues past them
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// AnalysisService defines the per-file orchestration of the analyzer
type AnalysisService interface {
	// Analyze analyzes every file in req.Paths
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// AnalyzeFile analyzes a single source file
	AnalyzeFile(ctx context.Context, filePath string) (*FileAnalysis, error)
}

// SourceFileReader lists and reads source files
type SourceFileReader interface {
	// CollectSourceFiles lists the files of dir whose name ends with one of extensions
	CollectSourceFiles(dir string, recursive bool, extensions, excludePatterns []string) ([]string, error)

	// ReadContent reads a file, terminating every line with a newline
	ReadContent(path string) (string, error)

	// IsSourceFile checks the file name against the configured extensions
	IsSourceFile(path string, extensions []string) bool

	// FileExists checks if a regular file exists
	FileExists(path string) (bool, error)
}

// ReportWriter renders analysis responses
type ReportWriter interface {
	Write(response *AnalyzeResponse, format OutputFormat, writer io.Writer) error
}
