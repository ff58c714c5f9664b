package sitting

import (
	"fmt"
	"strings"
)

// Role identifies whether a speech turn was delivered from the floor or
// from the Chair.
type Role string

const (
	RoleMember Role = "member"
	RoleChair  Role = "chair"
)

// Sitting describes one parliamentary sitting day. The sitting date (ISO
// form, YYYY-MM-DD) is the natural key for every record set below.
type Sitting struct {
	Date         string
	ParliamentNo int
	SourceURL    string
}

// Attendance records one member's presence on a sitting day.
// Natural key: (sitting date, member identity).
type Attendance struct {
	SittingDate     string
	Member          string
	RawName         string
	Resolved        bool
	Present         bool
	IsSpeaker       bool
	IsDeputySpeaker bool
}

// Key returns the record's natural key.
func (a Attendance) Key() string {
	return a.SittingDate + "|" + keyName(a.Member, a.RawName)
}

// PTBA records one approved-absence window for a member.
// Natural key: (sitting date, member identity, window descriptor) — a
// member may legitimately report multiple distinct windows.
type PTBA struct {
	SittingDate string
	Member      string
	RawName     string
	Resolved    bool
	// WindowText is the absence window as reported, e.g. "1 Jul to 15 Jul".
	WindowText string
	// From and To are the resolved ISO dates; empty when the window text
	// could not be parsed.
	From string
	To   string
}

// Key returns the record's natural key.
func (p PTBA) Key() string {
	return p.SittingDate + "|" + keyName(p.Member, p.RawName) + "|" + strings.ToLower(p.WindowText)
}

// Speech records one attributed turn in the transcript body.
// Natural key: (sitting date, sequence position). Seq strictly increases
// in document order within a sitting.
type Speech struct {
	SittingDate string
	Seq         int
	Speaker     string
	RawName     string
	Resolved    bool
	Role        Role
	// ChairName is the person presiding while this turn was delivered,
	// when the transcript made that determinable.
	ChairName string
	Topic     string
	// QuestionItem marks question-paper listings carried for metadata
	// rather than oral debate turns.
	QuestionItem bool
	Text         string
	WordCount    int
	CharCount    int
}

// Key returns the record's natural key.
func (s Speech) Key() string {
	return fmt.Sprintf("%s|%d", s.SittingDate, s.Seq)
}

// RecordSets bundles everything the pipeline emits for one sitting.
type RecordSets struct {
	Sitting    Sitting
	Attendance []Attendance
	PTBA       []PTBA
	Speeches   []Speech
}

// Empty reports whether the set carries no records at all.
func (r RecordSets) Empty() bool {
	return len(r.Attendance) == 0 && len(r.PTBA) == 0 && len(r.Speeches) == 0
}

// Identity records resolve against the canonical member name; rows that
// failed resolution keep their raw spelling so nothing is silently lost.
func keyName(member, raw string) string {
	name := member
	if name == "" {
		name = raw
	}
	return strings.ToLower(strings.TrimSpace(name))
}
