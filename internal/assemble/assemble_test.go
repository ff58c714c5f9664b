package assemble

import (
	"testing"

	"hansard/internal/names"
	"hansard/internal/parse"
	"hansard/internal/sitting"
)

const testDate = "2024-03-05"

func testMatcher() *names.Matcher {
	roster := names.NewRoster([]names.Identity{
		{Canonical: "Seah Kian Peng"},
		{Canonical: "Tan Wei Ming"},
		{Canonical: "Sylvia Lim"},
		{Canonical: "Ong Ye Kung"},
	})
	return names.NewMatcher(roster, 0.75, 0.05)
}

func testOptions() Options {
	return Options{ChairConfidence: 0.5, LearnAliases: true}
}

func countAnomalies(anomalies []sitting.Anomaly, kind sitting.AnomalyKind) int {
	n := 0
	for _, a := range anomalies {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

func TestBuildAttendance(t *testing.T) {
	in := Input{
		Date:         testDate,
		ParliamentNo: 14,
		Attendance: []parse.AttendanceRow{
			{RawName: "Mr SPEAKER (Mr Seah Kian Peng (Marine Parade))", Present: true},
			{RawName: "Mr Tan Wei-Ming (Ang Mo Kio)", Present: true},
			{RawName: "Ms Sylvia Lim (Aljunied)", Present: false},
		},
	}
	result := Build(in, testMatcher(), testOptions())
	records := result.Records.Attendance
	if len(records) != 3 {
		t.Fatalf("got %d attendance records, want 3", len(records))
	}

	speaker := records[0]
	if !speaker.IsSpeaker || speaker.Member != "Seah Kian Peng" || !speaker.Resolved {
		t.Errorf("speaker record = %+v", speaker)
	}
	if records[1].Member != "Tan Wei Ming" || !records[1].Resolved || !records[1].Present {
		t.Errorf("member record = %+v", records[1])
	}
	if records[2].Present {
		t.Errorf("absent member marked present: %+v", records[2])
	}
	if result.Records.Sitting.ParliamentNo != 14 {
		t.Errorf("sitting = %+v", result.Records.Sitting)
	}
	if got := countAnomalies(result.Anomalies, sitting.AnomalyUnresolvedName); got != 0 {
		t.Errorf("unexpected unresolved-name anomalies: %v", result.Anomalies)
	}
}

func TestBuildUnresolvedRowKept(t *testing.T) {
	in := Input{
		Date: testDate,
		Attendance: []parse.AttendanceRow{
			{RawName: "Mr Somebody Entirely New", Present: true},
		},
	}
	result := Build(in, testMatcher(), testOptions())
	if len(result.Records.Attendance) != 1 {
		t.Fatal("unresolved row was dropped")
	}
	rec := result.Records.Attendance[0]
	if rec.Resolved {
		t.Errorf("record marked resolved: %+v", rec)
	}
	if rec.Member != "Somebody Entirely New" {
		t.Errorf("member = %q, want the normalized observed spelling", rec.Member)
	}
	if got := countAnomalies(result.Anomalies, sitting.AnomalyUnresolvedName); got != 1 {
		t.Errorf("unresolved-name anomalies = %d, want 1: %v", got, result.Anomalies)
	}
}

func TestBuildPTBA(t *testing.T) {
	in := Input{
		Date: testDate,
		PTBA: []parse.PTBARow{
			{RawName: "Ms Sylvia Lim", WindowText: "1 Mar to 8 Mar"},
			{RawName: "Mr Tan Wei Ming", WindowText: "until further notice"},
		},
	}
	result := Build(in, testMatcher(), testOptions())
	records := result.Records.PTBA
	if len(records) != 2 {
		t.Fatalf("got %d ptba records, want 2", len(records))
	}
	if records[0].From != "2024-03-01" || records[0].To != "2024-03-08" {
		t.Errorf("window = %q..%q", records[0].From, records[0].To)
	}
	malformed := records[1]
	if malformed.From != "" || malformed.To != "" {
		t.Errorf("malformed window should stay null: %+v", malformed)
	}
	if malformed.WindowText != "until further notice" {
		t.Errorf("window text lost: %+v", malformed)
	}
	if got := countAnomalies(result.Anomalies, sitting.AnomalyMalformedWindow); got != 1 {
		t.Errorf("malformed-window anomalies = %d, want 1", got)
	}
}

func TestBuildSpeeches(t *testing.T) {
	in := Input{
		Date: testDate,
		Attendance: []parse.AttendanceRow{
			{RawName: "Mr SPEAKER (Mr Seah Kian Peng (Marine Parade))", Present: true},
		},
		Speeches: []parse.SpeechRow{
			{Seq: 1, Label: "Mr Tan Wei-Ming", Text: "I rise in support of the Bill.", Topic: "BUDGET DEBATE", ChairLabel: "Mr Speaker"},
			{Seq: 2, Label: "Mr Speaker", Text: "Order. The Member will take his seat.", ChairLabel: "Mr Speaker"},
			{Seq: 3, Label: "The Minister for Health (Mr Ong Ye Kung)", Text: "We agree.", ChairLabel: "Mr Speaker"},
		},
		Signals: []parse.ChairSignal{{Kind: parse.SignalMarker, Label: "Mr Speaker"}},
	}
	result := Build(in, testMatcher(), testOptions())
	records := result.Records.Speeches
	if len(records) != 3 {
		t.Fatalf("got %d speeches, want 3", len(records))
	}

	member := records[0]
	if member.Speaker != "Tan Wei Ming" || !member.Resolved || member.Role != sitting.RoleMember {
		t.Errorf("member turn = %+v", member)
	}
	if member.ChairName != "Seah Kian Peng" {
		t.Errorf("chair name = %q, want the attendance roll's speaker", member.ChairName)
	}
	if member.WordCount != 7 || member.CharCount != len("I rise in support of the Bill.") {
		t.Errorf("metrics = %d words, %d chars", member.WordCount, member.CharCount)
	}

	chairTurn := records[1]
	if chairTurn.Role != sitting.RoleChair || chairTurn.Speaker != "Seah Kian Peng" || !chairTurn.Resolved {
		t.Errorf("chair turn = %+v", chairTurn)
	}

	minister := records[2]
	if minister.Speaker != "Ong Ye Kung" || !minister.Resolved {
		t.Errorf("minister turn = %+v", minister)
	}
	if got := countAnomalies(result.Anomalies, sitting.AnomalyChairAmbiguous); got != 0 {
		t.Errorf("unexpected chair anomaly: %v", result.Anomalies)
	}
}

func TestBuildChairAmbiguity(t *testing.T) {
	in := Input{
		Date: testDate,
		Speeches: []parse.SpeechRow{
			{Seq: 1, Label: "Mr Tan Wei Ming", Text: "I beg to move."},
		},
	}
	result := Build(in, testMatcher(), testOptions())
	rec := result.Records.Speeches[0]
	if rec.Role != sitting.RoleMember {
		t.Errorf("role = %q, want member fallback", rec.Role)
	}
	if rec.ChairName != "" {
		t.Errorf("chair name = %q, want empty without a confident inference", rec.ChairName)
	}
	if got := countAnomalies(result.Anomalies, sitting.AnomalyChairAmbiguous); got != 1 {
		t.Errorf("chair-ambiguous anomalies = %d, want 1", got)
	}
}

func TestBuildLearnsAliases(t *testing.T) {
	in := Input{
		Date: testDate,
		Speeches: []parse.SpeechRow{
			{Seq: 1, Label: "Mr Tan Wei Mng", Text: "Thank you.", ChairLabel: "Mr Speaker"},
		},
		Signals: []parse.ChairSignal{{Kind: parse.SignalMarker, Label: "Mr Speaker"}},
	}
	matcher := testMatcher()
	result := Build(in, matcher, testOptions())
	if !result.Records.Speeches[0].Resolved {
		t.Fatalf("misspelling did not resolve: %+v", result.Records.Speeches[0])
	}
	if result.Roster == matcher.Roster() {
		t.Fatal("confident fuzzy match did not produce a learned roster")
	}
	if canonical, ok := result.Roster.Lookup(names.MatchKey("Tan Wei Mng")); !ok || canonical != "Tan Wei Ming" {
		t.Errorf("learned lookup = (%q, %v), want (Tan Wei Ming, true)", canonical, ok)
	}

	off := testOptions()
	off.LearnAliases = false
	result = Build(in, testMatcher(), off)
	if _, ok := result.Roster.Lookup(names.MatchKey("Tan Wei Mng")); ok {
		t.Error("alias learning ran while disabled")
	}
}

func TestBuildStructuralAnomaliesCarried(t *testing.T) {
	in := Input{
		Date: testDate,
		Anomalies: []sitting.Anomaly{
			{Kind: sitting.AnomalyMissingSection, SittingDate: testDate, RawText: "PERMISSION TO BE ABSENT"},
		},
	}
	result := Build(in, testMatcher(), testOptions())
	if got := countAnomalies(result.Anomalies, sitting.AnomalyMissingSection); got != 1 {
		t.Errorf("structural anomaly not carried through: %v", result.Anomalies)
	}
}
