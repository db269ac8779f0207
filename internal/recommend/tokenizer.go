package recommend

import (
	"strings"
	"unicode"
)

// DefaultDelimiters splits skill lists on commas only, so multi-word skills
// like "machine learning" stay one token. Add a space to the set to split on
// whitespace runs as well.
const DefaultDelimiters = ","

const tokenCutset = "\"'`()[]{}.,;:!?"

// Tokenizer turns free-text skill lists into normalized token sets. The same
// tokenizer must be used for corpus postings and for user queries so both end
// up in the same vocabulary space.
type Tokenizer struct {
	delimiters string
}

func NewTokenizer(delimiters string) Tokenizer {
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}
	return Tokenizer{delimiters: delimiters}
}

// Tokens splits s on the configured delimiters, lower-cases each piece,
// strips surrounding punctuation, collapses inner whitespace and drops empty
// and duplicate tokens. Order is first occurrence, which keeps vocabulary
// building deterministic.
func (t Tokenizer) Tokens(s string) []string {
	splitWhitespace := strings.ContainsRune(t.delimiters, ' ')

	pieces := strings.FieldsFunc(s, func(r rune) bool {
		if splitWhitespace && unicode.IsSpace(r) {
			return true
		}
		return strings.ContainsRune(t.delimiters, r)
	})

	seen := make(map[string]struct{}, len(pieces))
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		tok := normalizeToken(p)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// TokenSet is Tokens as a membership set.
func (t Tokenizer) TokenSet(s string) map[string]struct{} {
	tokens := t.Tokens(s)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, tokenCutset)
	// collapse inner whitespace runs so "machine  learning" == "machine learning"
	return strings.Join(strings.Fields(s), " ")
}
