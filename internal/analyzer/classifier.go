package analyzer

import "strings"

// Names of the line rules recognising a method declaration
const (
	RuleVoidMethod = "void-method"
	RuleSignature  = "signature"
)

// LineRule is a named predicate over one raw source line
type LineRule struct {
	Name  string
	Match func(line string) bool
}

// MethodClassifier decides whether a line declares a method.
//
// It is a line heuristic, not a parser: multi-line signatures, comments and
// string literals holding braces or keywords are not recognised, and a
// statement such as "foo(bar) {" on its own line is taken for a signature.
type MethodClassifier struct {
	conditionals KeywordSet
	operators    KeywordSet
	rules        []LineRule
}

// NewMethodClassifier creates a classifier using the given keyword and
// operator sets
func NewMethodClassifier(conditionals, operators KeywordSet) *MethodClassifier {
	c := &MethodClassifier{
		conditionals: conditionals,
		operators:    operators,
	}
	c.rules = []LineRule{
		{Name: RuleVoidMethod, Match: c.isVoidMethod},
		{Name: RuleSignature, Match: c.isSignature},
	}
	return c
}

// NewDefaultMethodClassifier creates a classifier with the default sets
func NewDefaultMethodClassifier() *MethodClassifier {
	return NewMethodClassifier(ConditionalKeywords(), OperatorSymbols())
}

// IsMethodDeclaration reports whether line is judged to declare a method
func (c *MethodClassifier) IsMethodDeclaration(line string) bool {
	_, ok := c.Classify(line)
	return ok
}

// Classify returns the name of the first rule matching line
func (c *MethodClassifier) Classify(line string) (string, bool) {
	for _, rule := range c.rules {
		if rule.Match(line) {
			return rule.Name, true
		}
	}
	return "", false
}

// Rules returns the classifier's rules in evaluation order
func (c *MethodClassifier) Rules() []LineRule {
	out := make([]LineRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// isVoidMethod matches "void" lines that are not control flow. No brace is
// required on the line.
func (c *MethodClassifier) isVoidMethod(line string) bool {
	return strings.Contains(line, "void") && !c.conditionals.AnyIn(line)
}

// isSignature matches other signatures, constructors included, by
// exclusion: a brace and a parenthesis, but no class or catch header, no
// control flow and no operator that would make it an expression.
func (c *MethodClassifier) isSignature(line string) bool {
	if !strings.Contains(line, "{") || !strings.Contains(line, "(") {
		return false
	}
	if strings.Contains(line, "class") || strings.Contains(line, "catch") {
		return false
	}
	return !c.conditionals.AnyIn(line) && !c.operators.AnyIn(line)
}
