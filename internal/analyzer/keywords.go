package analyzer

import "strings"

var (
	defaultConditionalKeywords = []string{"if", "else", "for", "while", "switch", "case"}
	defaultOperatorSymbols     = []string{"&", "|", "=", "!", "+", "-", "/", "*", "%", ">", "<"}
)

// KeywordSet is an immutable set of tokens matched against raw lines by
// substring containment. "if" therefore also matches "modifier".
type KeywordSet struct {
	tokens []string
}

// NewKeywordSet builds a set from tokens. Empty tokens are dropped since
// they would match every line; duplicates are collapsed.
func NewKeywordSet(tokens ...string) KeywordSet {
	seen := make(map[string]struct{}, len(tokens))
	set := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		set = append(set, t)
	}
	return KeywordSet{tokens: set}
}

// ConditionalKeywords returns the default control-flow keywords
func ConditionalKeywords() KeywordSet {
	return NewKeywordSet(defaultConditionalKeywords...)
}

// OperatorSymbols returns the default single-character operators
func OperatorSymbols() KeywordSet {
	return NewKeywordSet(defaultOperatorSymbols...)
}

// AnyIn reports whether line contains at least one token of the set
func (k KeywordSet) AnyIn(line string) bool {
	for _, t := range k.tokens {
		if strings.Contains(line, t) {
			return true
		}
	}
	return false
}

// Tokens returns a copy of the tokens in insertion order
func (k KeywordSet) Tokens() []string {
	out := make([]string, len(k.tokens))
	copy(out, k.tokens)
	return out
}

// Len returns the number of tokens
func (k KeywordSet) Len() int {
	return len(k.tokens)
}
