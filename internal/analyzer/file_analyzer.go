package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// MethodRecord is one detected method
type MethodRecord struct {
	Name       string
	Complexity int
	Line       int // 1-based line of the declaration
	CamelCase  bool
}

// FileResult is the analysis of one file's content
type FileResult struct {
	Lines                     int
	TotalMethods              int
	NonCamelCaseMethods       int
	NamingViolationPercentage float64
	// Methods holds one record per distinct name in first-seen order
	Methods []MethodRecord
}

// HasMethods reports whether any method declaration was detected
func (r *FileResult) HasMethods() bool {
	return r.TotalMethods > 0
}

// Complexities returns the method name to complexity mapping
func (r *FileResult) Complexities() map[string]int {
	m := make(map[string]int, len(r.Methods))
	for _, rec := range r.Methods {
		m[rec.Name] = rec.Complexity
	}
	return m
}

// FileAnalyzer runs the naming and complexity sweeps over a file.
// It holds no mutable state and may be shared between goroutines.
type FileAnalyzer struct {
	classifier *MethodClassifier
	counter    *ComplexityCounter
}

// NewFileAnalyzer creates an analyzer for the given keyword and operator sets
func NewFileAnalyzer(conditionals, operators KeywordSet) *FileAnalyzer {
	return &FileAnalyzer{
		classifier: NewMethodClassifier(conditionals, operators),
		counter:    NewComplexityCounter(conditionals),
	}
}

// NewDefaultFileAnalyzer creates an analyzer with the default sets
func NewDefaultFileAnalyzer() *FileAnalyzer {
	return NewFileAnalyzer(ConditionalKeywords(), OperatorSymbols())
}

// Classifier returns the method classifier shared by both sweeps
func (a *FileAnalyzer) Classifier() *MethodClassifier {
	return a.classifier
}

// Analyze splits content into lines and aggregates both sweeps.
// A classified line whose name cannot be extracted fails the whole file.
func (a *FileAnalyzer) Analyze(content string) (*FileResult, error) {
	lines := SplitLines(content)

	total, nonCamel, err := a.NamingStats(lines)
	if err != nil {
		return nil, err
	}

	methods, err := a.MethodComplexities(lines)
	if err != nil {
		return nil, err
	}

	percentage, _ := NamingViolationPercentage(nonCamel, total)

	return &FileResult{
		Lines:                     len(lines),
		TotalMethods:              total,
		NonCamelCaseMethods:       nonCamel,
		NamingViolationPercentage: percentage,
		Methods:                   methods,
	}, nil
}

// NamingStats counts the detected methods and those failing IsCamelCase
func (a *FileAnalyzer) NamingStats(lines []string) (total, nonCamel int, err error) {
	for i, line := range lines {
		if !a.classifier.IsMethodDeclaration(line) {
			continue
		}
		name, err := ExtractMethodName(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total++
		if !IsCamelCase(name) {
			nonCamel++
		}
	}
	return total, nonCamel, nil
}

// MethodComplexities computes the complexity of every detected method.
// A repeated name overwrites the earlier complexity in place.
func (a *FileAnalyzer) MethodComplexities(lines []string) ([]MethodRecord, error) {
	var records []MethodRecord
	index := make(map[string]int)

	for i, line := range lines {
		if !a.classifier.IsMethodDeclaration(line) {
			continue
		}
		name, err := ExtractMethodName(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		rec := MethodRecord{
			Name:       name,
			Complexity: a.counter.Count(lines, i),
			Line:       i + 1,
			CamelCase:  IsCamelCase(name),
		}
		if pos, ok := index[name]; ok {
			records[pos] = rec
			continue
		}
		index[name] = len(records)
		records = append(records, rec)
	}
	return records, nil
}

// NamingViolationPercentage returns nonCamel/total*100 rounded half-even to
// one decimal place. The second result is false when total is zero, in
// which case the percentage is undefined and reported as 0.
func NamingViolationPercentage(nonCamel, total int) (float64, bool) {
	if total <= 0 {
		return 0, false
	}
	pct := float64(nonCamel) / float64(total) * 100
	return math.RoundToEven(pct*10) / 10, true
}

// SplitLines splits content on newlines, dropping trailing empty lines
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
