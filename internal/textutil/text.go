package textutil

import (
	"regexp"
	"strings"
)

var (
	spacePattern = regexp.MustCompile(`\s+`)
	wordPattern  = regexp.MustCompile(`[\p{L}\p{N}]+`)
	// tokenSplitPattern matches non-alphanumeric sequences for tokenization.
	tokenSplitPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeSpace collapses runs of whitespace (non-breaking spaces
// included) into single spaces and trims the result. Invisible whitespace
// differences are a common source of duplicate natural keys.
func NormalizeSpace(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, " ", " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// WordCount returns the number of word-like runs in text.
func WordCount(text string) int {
	if text == "" {
		return 0
	}
	return len(wordPattern.FindAllString(text, -1))
}

// Tokenize splits text into lowercase tokens, filtering short tokens.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	raw := tokenSplitPattern.Split(lowered, -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.TrimSpace(token)
		if len(token) < 3 {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}
