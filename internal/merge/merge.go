// Package merge reconciles newly assembled record sets against stored
// state, producing an idempotent upsert plan per sitting.
package merge

import (
	"hansard/internal/sitting"
)

// Action classifies what reconciling one record against stored state
// requires.
type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionNoop   Action = "noop"
)

// Change pairs a record with its reconciliation action.
type Change[T keyed] struct {
	Action Action
	Record T
}

type keyed interface {
	comparable
	Key() string
}

// Plan is the idempotent upsert plan for one sitting: applying it twice
// against the same stored state yields the same state, and a re-plan
// after applying consists entirely of no-ops.
type Plan struct {
	SittingDate   string
	SittingAction Action
	Sitting       sitting.Sitting
	Attendance    []Change[sitting.Attendance]
	PTBA          []Change[sitting.PTBA]
	Speeches      []Change[sitting.Speech]
	Anomalies     []sitting.Anomaly
}

// Counts aggregates a plan's actions.
type Counts struct {
	Inserts int
	Updates int
	Noops   int
}

// BuildPlan reconciles newly assembled record sets against the stored
// sets for the same sitting date. Within the new batch, rows colliding
// on a natural key resolve last-writer-wins in document order, with the
// discarded row reported.
func BuildPlan(next, prior sitting.RecordSets) Plan {
	plan := Plan{SittingDate: next.Sitting.Date, Sitting: next.Sitting}

	switch {
	case prior.Sitting.Date == "":
		plan.SittingAction = ActionInsert
	case prior.Sitting == next.Sitting:
		plan.SittingAction = ActionNoop
	default:
		plan.SittingAction = ActionUpdate
	}

	attendance, anomalies := deduplicate(next.Attendance, next.Sitting.Date)
	plan.Anomalies = append(plan.Anomalies, anomalies...)
	plan.Attendance = classify(attendance, prior.Attendance)

	ptba, anomalies := deduplicate(next.PTBA, next.Sitting.Date)
	plan.Anomalies = append(plan.Anomalies, anomalies...)
	plan.PTBA = classify(ptba, prior.PTBA)

	speeches, anomalies := deduplicate(next.Speeches, next.Sitting.Date)
	plan.Anomalies = append(plan.Anomalies, anomalies...)
	plan.Speeches = classify(speeches, prior.Speeches)

	return plan
}

// Counts tallies the plan's actions, the sitting row included.
func (p Plan) Counts() Counts {
	var c Counts
	c.add(p.SittingAction)
	for _, ch := range p.Attendance {
		c.add(ch.Action)
	}
	for _, ch := range p.PTBA {
		c.add(ch.Action)
	}
	for _, ch := range p.Speeches {
		c.add(ch.Action)
	}
	return c
}

// AllNoop reports whether applying the plan would change nothing.
func (p Plan) AllNoop() bool {
	c := p.Counts()
	return c.Inserts == 0 && c.Updates == 0
}

func (c *Counts) add(a Action) {
	switch a {
	case ActionInsert:
		c.Inserts++
	case ActionUpdate:
		c.Updates++
	case ActionNoop:
		c.Noops++
	}
}

// deduplicate collapses natural-key collisions within one batch. The
// later row in document order wins; discarded rows are reported, never
// silently lost.
func deduplicate[T keyed](items []T, date string) ([]T, []sitting.Anomaly) {
	var anomalies []sitting.Anomaly
	index := make(map[string]int, len(items))
	out := items[:0:0]
	for _, item := range items {
		key := item.Key()
		if at, ok := index[key]; ok {
			anomalies = append(anomalies, sitting.Anomaly{
				Kind:        sitting.AnomalyDuplicateKey,
				SittingDate: date,
				RawText:     key,
				Suggestion:  "kept the later row",
			})
			out[at] = item
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out, anomalies
}

// classify compares each new record against the stored record sharing
// its natural key.
func classify[T keyed](next, prior []T) []Change[T] {
	stored := make(map[string]T, len(prior))
	for _, item := range prior {
		stored[item.Key()] = item
	}
	changes := make([]Change[T], 0, len(next))
	for _, item := range next {
		existing, ok := stored[item.Key()]
		switch {
		case !ok:
			changes = append(changes, Change[T]{Action: ActionInsert, Record: item})
		case existing == item:
			changes = append(changes, Change[T]{Action: ActionNoop, Record: item})
		default:
			changes = append(changes, Change[T]{Action: ActionUpdate, Record: item})
		}
	}
	return changes
}
