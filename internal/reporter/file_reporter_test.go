package reporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
)

func newTestReporter(t *testing.T, format string) (*FileReporter, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Output.Format = format
	cfg.Output.Color = false
	var buf bytes.Buffer
	r, err := NewFileReporter(cfg, &buf)
	require.NoError(t, err)
	return r, &buf
}

func sampleResponse() *domain.AnalyzeResponse {
	return &domain.AnalyzeResponse{
		Directory: "/src",
		Files: []domain.FileAnalysis{
			{
				FilePath:                  "/src/FileOneTest.java",
				FileName:                  "FileOneTest.java",
				Lines:                     52,
				TotalMethods:              5,
				NonCamelCaseMethods:       2,
				NamingViolationPercentage: 40.0,
				Methods: []domain.MethodComplexity{
					{Name: "one", Complexity: 0, Line: 3, CamelCase: true, RiskLevel: "low"},
					{Name: "two", Complexity: 1, Line: 7, CamelCase: true, RiskLevel: "low"},
					{Name: "three", Complexity: 3, Line: 13, CamelCase: true, RiskLevel: "low"},
					{Name: "Four", Complexity: 3, Line: 23, CamelCase: false, RiskLevel: "low"},
					{Name: "Five", Complexity: 4, Line: 34, CamelCase: false, RiskLevel: "low"},
				},
			},
			{
				FilePath: "/src/NoMethods.java",
				FileName: "NoMethods.java",
				Lines:    4,
			},
		},
		Summary: domain.AnalyzeSummary{
			FilesAnalyzed:             2,
			TotalLines:                56,
			TotalMethods:              5,
			NonCamelCaseMethods:       2,
			NamingViolationPercentage: 40.0,
			AverageComplexity:         2.2,
			MaxComplexity:             4,
			MaxComplexityMethod:       "Five",
		},
	}
}

func TestNewFileReporter_Errors(t *testing.T) {
	var buf bytes.Buffer

	_, err := NewFileReporter(nil, &buf)
	assert.ErrorContains(t, err, "configuration cannot be nil")

	_, err = NewFileReporter(config.DefaultConfig(), nil)
	assert.ErrorContains(t, err, "writer cannot be nil")

	cfg := config.DefaultConfig()
	cfg.Output.Top = 0
	_, err = NewFileReporter(cfg, &buf)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestFileReporter_Report(t *testing.T) {
	r, buf := newTestReporter(t, "text")

	file := &domain.FileAnalysis{
		FileName:                  "Sample.java",
		TotalMethods:              2,
		NamingViolationPercentage: 23.0,
		Methods: []domain.MethodComplexity{
			{Name: "One", Complexity: 1},
			{Name: "Two", Complexity: 2},
		},
	}
	require.NoError(t, r.Report(file))

	out := buf.String()
	assert.Contains(t, out, "File: Sample.java")
	assert.Contains(t, out, "method name")
	assert.Contains(t, out, "complexity")
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
	assert.Contains(t, out, "(%) Methods not following CamelCase: 23.0%")
	assert.Less(t, strings.Index(out, "Two"), strings.Index(out, "One"), "higher complexity is listed first")
}

func TestFileReporter_Report_TopLimit(t *testing.T) {
	r, buf := newTestReporter(t, "text")

	file := sampleResponse().Files[0]
	require.NoError(t, r.Report(&file))

	out := buf.String()
	assert.Contains(t, out, "Five")
	assert.Contains(t, out, "three")
	assert.Contains(t, out, "Four")
	assert.NotContains(t, out, "one ")
	assert.NotContains(t, out, "two")
	assert.Contains(t, out, "(%) Methods not following CamelCase: 40.0%")
}

func TestFileReporter_Report_NoMethods(t *testing.T) {
	r, buf := newTestReporter(t, "text")

	require.NoError(t, r.Report(&domain.FileAnalysis{FilePath: "/src/Empty.java"}))

	out := buf.String()
	assert.Contains(t, out, "File: Empty.java")
	assert.Contains(t, out, "(%) Methods not following CamelCase: n/a (no methods detected)")
}

func TestFileReporter_Report_Nil(t *testing.T) {
	r, _ := newTestReporter(t, "text")
	assert.Error(t, r.Report(nil))
}

func TestFileReporter_ReportAll_Text(t *testing.T) {
	r, buf := newTestReporter(t, "text")

	resp := sampleResponse()
	resp.Errors = []string{"/src/Broken.java: line 2: method name cannot be empty"}
	require.NoError(t, r.ReportAll(resp))

	out := buf.String()
	assert.Contains(t, out, "DIRECTORY: /src")
	assert.Contains(t, out, "File: FileOneTest.java")
	assert.Contains(t, out, "File: NoMethods.java")
	assert.Less(t, strings.Index(out, "FileOneTest.java"), strings.Index(out, "NoMethods.java"))
	assert.Contains(t, out, "Broken.java")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files analyzed: 2")
	assert.Contains(t, out, "Max complexity: 4 (Five)")
}

func TestFileReporter_ReportAll_JSON(t *testing.T) {
	r, buf := newTestReporter(t, "json")
	require.NoError(t, r.ReportAll(sampleResponse()))

	var decoded domain.AnalyzeResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, 40.0, decoded.Files[0].NamingViolationPercentage)
	assert.Equal(t, "Five", decoded.Files[0].Methods[4].Name)
}

func TestFileReporter_ReportAll_YAML(t *testing.T) {
	r, buf := newTestReporter(t, "yaml")
	require.NoError(t, r.ReportAll(sampleResponse()))

	var decoded domain.AnalyzeResponse
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 5, decoded.Summary.TotalMethods)
	assert.Equal(t, "/src", decoded.Directory)
}

func TestFileReporter_ReportAll_CSV(t *testing.T) {
	r, buf := newTestReporter(t, "csv")
	require.NoError(t, r.ReportAll(sampleResponse()))

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6, "header plus one row per method")
	assert.Equal(t, []string{"File", "Method", "Line", "Complexity", "Risk", "CamelCase"}, records[0])
	assert.Equal(t, []string{"/src/FileOneTest.java", "Four", "23", "3", "low", "false"}, records[4])
}

func TestFileReporter_ReportAll_Nil(t *testing.T) {
	r, _ := newTestReporter(t, "text")
	assert.Error(t, r.ReportAll(nil))
}

func TestFormatNamingLine(t *testing.T) {
	assert.Equal(t, "(%) Methods not following CamelCase: 33.3%",
		FormatNamingLine(&domain.FileAnalysis{TotalMethods: 3, NamingViolationPercentage: 33.3}))
	assert.Equal(t, "(%) Methods not following CamelCase: 0.0%",
		FormatNamingLine(&domain.FileAnalysis{TotalMethods: 3}))
}

func TestFormatBrief(t *testing.T) {
	assert.Equal(t, "No files analyzed", FormatBrief(nil))
	assert.Equal(t, "No files analyzed", FormatBrief(&domain.AnalyzeResponse{}))

	brief := FormatBrief(sampleResponse())
	assert.Contains(t, brief, "2 files analyzed")
	assert.Contains(t, brief, "5 methods")
	assert.Contains(t, brief, "Max: 4")
	assert.Contains(t, brief, "Not CamelCase: 40.0%")
}

func TestFileReporter_Colorize(t *testing.T) {
	r, _ := newTestReporter(t, "text")
	assert.Equal(t, "7", r.colorize("high", "7"), "colors are disabled by configuration")
	assert.Equal(t, "7", r.colorize("unknown", "7"))
}
