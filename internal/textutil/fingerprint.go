package textutil

import (
	"math"
	"strings"
)

// Fingerprint represents a term-frequency vector for similarity comparison.
type Fingerprint struct {
	terms map[string]float64
	norm  float64
}

// NewFingerprint creates a token-based fingerprint from the provided text.
// Returns nil if the text produces no valid tokens.
func NewFingerprint(text string) *Fingerprint {
	return fromTerms(Tokenize(text))
}

// NewBigramFingerprint creates a character-bigram fingerprint of the
// provided string. The input is lowercased and whitespace-normalized; word
// boundaries contribute edge bigrams so token order still matters a
// little. Returns nil for empty input.
func NewBigramFingerprint(s string) *Fingerprint {
	s = strings.ToLower(NormalizeSpace(s))
	if s == "" {
		return nil
	}
	runes := []rune(" " + s + " ")
	terms := make([]string, 0, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		terms = append(terms, string(runes[i:i+2]))
	}
	return fromTerms(terms)
}

func fromTerms(terms []string) *Fingerprint {
	if len(terms) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		terms: counts,
		norm:  math.Sqrt(norm),
	}
}

// TermCount returns the number of unique terms in the fingerprint.
func (f *Fingerprint) TermCount() int {
	if f == nil {
		return 0
	}
	return len(f.terms)
}

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 when either fingerprint is nil or has zero magnitude.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	smaller, larger := a, b
	if len(b.terms) < len(a.terms) {
		smaller, larger = b, a
	}
	var dot float64
	for term, count := range smaller.terms {
		if other, ok := larger.terms[term]; ok {
			dot += count * other
		}
	}
	return dot / (a.norm * b.norm)
}
