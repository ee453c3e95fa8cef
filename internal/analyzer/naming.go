package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var camelCasePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// IsCamelCase reports whether name is lower camel case and ends with a
// lowercase letter, so "parseURL" and "toV2" are rejected.
func IsCamelCase(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(name)
	if !unicode.IsLower(last) {
		return false
	}
	return camelCasePattern.MatchString(name)
}
