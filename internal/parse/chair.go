package parse

import "hansard/internal/names"

// SignalKind labels how the transcript hinted at who is presiding.
type SignalKind string

const (
	// SignalMarker — an explicit "[... in the Chair]" marker.
	SignalMarker SignalKind = "marker"
	// SignalSpeakerLabel — a turn attributed to a chair label such as
	// "Mr Deputy Speaker".
	SignalSpeakerLabel SignalKind = "speaker-label"
	// SignalAddressee — a turn closing with "Mr Speaker" as addressee.
	SignalAddressee SignalKind = "addressee"
)

// ChairSignal is one observed chair-presence hint.
type ChairSignal struct {
	Kind  SignalKind
	Label string
}

func (s ChairSignal) weight() float64 {
	switch s.Kind {
	case SignalMarker:
		return 1.0
	case SignalSpeakerLabel:
		return 0.7
	case SignalAddressee:
		return 0.4
	default:
		return 0
	}
}

// ChairInference is the sitting-level presiding-officer determination.
// Confidence aggregates the independent signals for the winning label;
// Confident reports whether it cleared the caller's threshold.
type ChairInference struct {
	Label      string
	Role       string
	Confidence float64
	Confident  bool
}

// InferChair scores the collected signals and picks the presiding
// officer for the sitting. Signals for the same presiding role combine
// as independent evidence. When nothing clears minConfidence the
// inference is unconfident and callers fall back to member roles.
func InferChair(signals []ChairSignal, minConfidence float64) ChairInference {
	type tally struct {
		label  string
		weight float64
		doubt  float64
	}
	tallies := map[string]*tally{}
	order := []string{}

	for _, signal := range signals {
		role := names.ChairRole(signal.Label)
		if role == "" {
			continue
		}
		t, ok := tallies[role]
		if !ok {
			t = &tally{doubt: 1}
			tallies[role] = t
			order = append(order, role)
		}
		t.doubt *= 1 - signal.weight()
		// The strongest signal supplies the display label.
		if w := signal.weight(); w > t.weight {
			t.weight = w
			t.label = signal.Label
		}
	}

	var best ChairInference
	for _, role := range order {
		t := tallies[role]
		confidence := 1 - t.doubt
		if confidence > best.Confidence {
			best = ChairInference{Label: t.label, Role: role, Confidence: confidence}
		}
	}
	best.Confident = best.Role != "" && best.Confidence >= minConfidence
	return best
}
