package analyzer

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/jreader/domain"
)

// ExtractMethodName returns the identifier of a method-declaration line:
// the text before the first "(" of the first whitespace-delimited token
// holding one.
func ExtractMethodName(line string) (string, error) {
	for _, token := range strings.Fields(line) {
		idx := strings.Index(token, "(")
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(token[:idx])
		if name == "" {
			return "", domain.NewInvalidInputError(
				fmt.Sprintf("method name cannot be empty: %q", line), nil)
		}
		return name, nil
	}
	return "", domain.NewInvalidInputError(
		fmt.Sprintf("no method name found in line: %q", line), nil)
}
