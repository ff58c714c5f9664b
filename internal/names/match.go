package names

import (
	"hansard/internal/textutil"
)

// Match is the outcome of resolving one raw name against the roster.
// Canonical carries the best candidate even when the match is not
// confident, so callers can surface a suggestion with the anomaly.
type Match struct {
	Canonical string
	Score     float64
	Confident bool
}

// Matcher resolves raw names against a fixed roster snapshot. Exact
// comparison-key hits win immediately; otherwise every identity is scored
// by bigram-fingerprint cosine similarity and the best candidate is
// accepted only when it clears the threshold with a sufficient lead over
// the runner-up. Candidates are scored in canonical order, so ties and
// reruns are deterministic.
type Matcher struct {
	roster    *Roster
	threshold float64
	margin    float64
	entries   []matchEntry
}

type matchEntry struct {
	canonical string
	prints    []*textutil.Fingerprint
}

// NewMatcher builds a matcher over the roster snapshot.
func NewMatcher(roster *Roster, threshold, margin float64) *Matcher {
	m := &Matcher{roster: roster, threshold: threshold, margin: margin}
	for _, identity := range roster.Identities() {
		entry := matchEntry{canonical: identity.Canonical}
		if fp := textutil.NewBigramFingerprint(MatchKey(identity.Canonical)); fp != nil {
			entry.prints = append(entry.prints, fp)
		}
		for _, alias := range identity.Aliases {
			if fp := textutil.NewBigramFingerprint(MatchKey(alias)); fp != nil {
				entry.prints = append(entry.prints, fp)
			}
		}
		if len(entry.prints) > 0 {
			m.entries = append(m.entries, entry)
		}
	}
	return m
}

// Roster returns the snapshot this matcher resolves against.
func (m *Matcher) Roster() *Roster {
	return m.roster
}

// Resolve maps a raw name to the best roster identity. Sub-threshold and
// ambiguous results come back with Confident=false and the best candidate
// retained as a suggestion; unusable input resolves to Unknown.
func (m *Matcher) Resolve(raw string) Match {
	key := MatchKey(raw)
	if key == "" {
		return Match{Canonical: Unknown}
	}
	if canonical, ok := m.roster.Lookup(key); ok {
		return Match{Canonical: canonical, Score: 1, Confident: true}
	}

	query := textutil.NewBigramFingerprint(key)
	if query == nil {
		return Match{Canonical: Unknown}
	}

	var best, second float64
	var bestName string
	for _, entry := range m.entries {
		var score float64
		for _, fp := range entry.prints {
			if s := textutil.CosineSimilarity(query, fp); s > score {
				score = s
			}
		}
		switch {
		case score > best:
			second = best
			best = score
			bestName = entry.canonical
		case score > second:
			second = score
		}
	}

	if bestName == "" {
		return Match{Canonical: Unknown}
	}
	confident := best >= m.threshold && best > second && best-second >= m.margin
	return Match{Canonical: bestName, Score: best, Confident: confident}
}
