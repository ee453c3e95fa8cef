package analyzer

import "strings"

// ComplexityCounter approximates the cyclomatic complexity of a method body
// by counting the lines that hold a conditional keyword.
type ComplexityCounter struct {
	conditionals KeywordSet
}

// NewComplexityCounter creates a counter using the given conditional keywords
func NewComplexityCounter(conditionals KeywordSet) *ComplexityCounter {
	return &ComplexityCounter{conditionals: conditionals}
}

// Count scans the lines after start until the brace closing the method body.
//
// Per line: a "}" at depth 0 ends the scan and is not counted; otherwise a
// line with any conditional keyword adds one; then "{" opens and "}" closes
// a nesting level. A body that never closes is scanned to the end.
func (c *ComplexityCounter) Count(lines []string, start int) int {
	if start < 0 {
		return 0
	}

	complexity := 0
	depth := 0
	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		closes := strings.Contains(line, "}")
		if closes && depth == 0 {
			break
		}
		if c.conditionals.AnyIn(line) {
			complexity++
		}
		if strings.Contains(line, "{") {
			depth++
		}
		if closes {
			depth--
		}
	}
	return complexity
}
