package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestFileAnalyzer_FileOneTest(t *testing.T) {
	result, err := NewDefaultFileAnalyzer().Analyze(readFixture(t, "FileOneTest.java"))
	require.NoError(t, err)

	assert.True(t, result.HasMethods())
	assert.Equal(t, 5, result.TotalMethods)
	assert.Equal(t, 2, result.NonCamelCaseMethods)
	assert.Equal(t, 40.0, result.NamingViolationPercentage)
	assert.Equal(t, map[string]int{
		"one":   0,
		"two":   1,
		"three": 3,
		"Four":  3,
		"Five":  4,
	}, result.Complexities())

	names := make([]string, 0, len(result.Methods))
	for _, m := range result.Methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"one", "two", "three", "Four", "Five"}, names)
	assert.Equal(t, 3, result.Methods[0].Line)
	assert.False(t, result.Methods[3].CamelCase)
}

func TestFileAnalyzer_NoMethods(t *testing.T) {
	result, err := NewDefaultFileAnalyzer().Analyze(readFixture(t, "NoMethods.java"))
	require.NoError(t, err)

	assert.False(t, result.HasMethods())
	assert.Zero(t, result.NamingViolationPercentage)
	assert.Empty(t, result.Methods)
	assert.Equal(t, 4, result.Lines)
}

func TestFileAnalyzer_DuplicateNames(t *testing.T) {
	result, err := NewDefaultFileAnalyzer().Analyze(readFixture(t, "Duplicates.java"))
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalMethods)
	assert.Zero(t, result.NonCamelCaseMethods)
	require.Len(t, result.Methods, 2)
	assert.Equal(t, MethodRecord{Name: "run", Complexity: 2, Line: 13, CamelCase: true}, result.Methods[0])
	assert.Equal(t, MethodRecord{Name: "stop", Complexity: 1, Line: 7, CamelCase: true}, result.Methods[1])
}

func TestFileAnalyzer_Idempotent(t *testing.T) {
	content := readFixture(t, "FileOneTest.java")
	a := NewDefaultFileAnalyzer()

	first, err := a.Analyze(content)
	require.NoError(t, err)
	second, err := a.Analyze(content)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestFileAnalyzer_EmptyContent(t *testing.T) {
	result, err := NewDefaultFileAnalyzer().Analyze("")
	require.NoError(t, err)

	assert.Zero(t, result.Lines)
	assert.False(t, result.HasMethods())
}

func TestFileAnalyzer_UnextractableDeclaration(t *testing.T) {
	content := strings.Join([]string{
		"class A {",
		"    public void (int x) {",
		"    }",
		"}",
	}, "\n")

	_, err := NewDefaultFileAnalyzer().Analyze(content)
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
	assert.Contains(t, err.Error(), "line 2")
}

func TestFileAnalyzer_CustomKeywords(t *testing.T) {
	content := strings.Join([]string{
		"class A {",
		"    public void run() {",
		"        unless (x) {",
		"        }",
		"        if(y) {",
		"        }",
		"    }",
		"}",
	}, "\n")

	a := NewFileAnalyzer(NewKeywordSet("unless"), OperatorSymbols())
	result, err := a.Analyze(content)
	require.NoError(t, err)

	// "if" is no longer a keyword, so its header reads as a signature
	assert.Equal(t, map[string]int{"run": 1, "if": 0}, result.Complexities())
}

func TestFileAnalyzer_CustomKeywordsSpacedHeader(t *testing.T) {
	content := strings.Join([]string{
		"class A {",
		"    public void run() {",
		"        if (y) {",
		"        }",
		"    }",
		"}",
	}, "\n")

	a := NewFileAnalyzer(NewKeywordSet("unless"), OperatorSymbols())
	_, err := a.Analyze(content)
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
	assert.Contains(t, err.Error(), "line 3")
}

func TestNamingViolationPercentage(t *testing.T) {
	tests := []struct {
		nonCamel, total int
		want            float64
		defined         bool
	}{
		{0, 0, 0, false},
		{0, 5, 0, true},
		{2, 5, 40.0, true},
		{1, 3, 33.3, true},
		{2, 3, 66.7, true},
		{1, 16, 6.2, true},
		{3, 16, 18.8, true},
		{7, 7, 100, true},
	}

	for _, tt := range tests {
		got, ok := NamingViolationPercentage(tt.nonCamel, tt.total)
		assert.Equal(t, tt.defined, ok, "%d/%d", tt.nonCamel, tt.total)
		assert.InDelta(t, tt.want, got, 1e-9, "%d/%d", tt.nonCamel, tt.total)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n\n"))
	assert.Empty(t, SplitLines(""))
	assert.Equal(t, []string{"a"}, SplitLines("a"))
}
