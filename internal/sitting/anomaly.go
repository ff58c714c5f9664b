package sitting

import "fmt"

// AnomalyKind classifies non-fatal findings reported alongside output.
type AnomalyKind string

const (
	// AnomalyMissingSection — a section boundary was not found; that
	// section's output is empty.
	AnomalyMissingSection AnomalyKind = "missing-section"
	// AnomalyUnresolvedName — a speaker name could not be matched to the
	// roster with confidence; the record carries the raw spelling.
	AnomalyUnresolvedName AnomalyKind = "unresolved-name"
	// AnomalyChairAmbiguous — no confident chair signal was found; every
	// turn defaulted to a member role.
	AnomalyChairAmbiguous AnomalyKind = "chair-ambiguous"
	// AnomalyMalformedWindow — a PTBA window descriptor did not parse;
	// the record was kept with a null window.
	AnomalyMalformedWindow AnomalyKind = "malformed-ptba-window"
	// AnomalyDuplicateKey — two rows in one batch mapped to the same
	// natural key; the later row in document order won.
	AnomalyDuplicateKey AnomalyKind = "duplicate-key"
)

// Anomaly is a structured report of degraded-but-continued processing.
type Anomaly struct {
	Kind        AnomalyKind
	SittingDate string
	// RawText is the offending input fragment.
	RawText string
	// Suggestion carries the best-guess resolution, when one exists.
	Suggestion string
}

func (a Anomaly) String() string {
	if a.Suggestion != "" {
		return fmt.Sprintf("%s [%s]: %q (suggestion: %s)", a.Kind, a.SittingDate, a.RawText, a.Suggestion)
	}
	return fmt.Sprintf("%s [%s]: %q", a.Kind, a.SittingDate, a.RawText)
}
