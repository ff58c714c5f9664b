package assemble

import (
	"strconv"
	"unicode/utf8"

	"hansard/internal/names"
	"hansard/internal/parse"
	"hansard/internal/sitting"
	"hansard/internal/textutil"
)

// Input carries everything extracted from one sitting's document.
type Input struct {
	Date         string
	ParliamentNo int
	SourceURL    string
	Attendance   []parse.AttendanceRow
	PTBA         []parse.PTBARow
	Speeches     []parse.SpeechRow
	Signals      []parse.ChairSignal
	// Anomalies are the structural findings from sectioning, carried
	// through so callers receive one consolidated report.
	Anomalies []sitting.Anomaly
}

// Options tunes identity resolution and chair inference.
type Options struct {
	// ChairConfidence is the minimum aggregated signal confidence before
	// the inferred chair is trusted for turns lacking an explicit marker.
	ChairConfidence float64
	// LearnAliases extends the roster with confidently fuzzy-matched
	// spellings.
	LearnAliases bool
}

// Result is the assembled output for one sitting.
type Result struct {
	Records   sitting.RecordSets
	Anomalies []sitting.Anomaly
	// Roster is the matcher's roster, possibly extended with learned
	// aliases; callers swap it in for subsequent sittings.
	Roster *names.Roster
}

// Build joins extracted rows with identity resolution and the sitting
// date, producing the final record sets. Rows are never dropped for
// resolution failure: unresolved identities keep their observed spelling
// and are reported.
func Build(in Input, matcher *names.Matcher, opts Options) Result {
	b := builder{
		date:    in.Date,
		matcher: matcher,
		roster:  matcher.Roster(),
		opts:    opts,
	}
	b.anomalies = append(b.anomalies, in.Anomalies...)

	b.out.Sitting = sitting.Sitting{
		Date:         in.Date,
		ParliamentNo: in.ParliamentNo,
		SourceURL:    in.SourceURL,
	}
	b.buildAttendance(in.Attendance)
	b.buildPTBA(in.PTBA)
	b.buildSpeeches(in.Speeches, in.Signals)

	return Result{Records: b.out, Anomalies: b.anomalies, Roster: b.roster}
}

type builder struct {
	date      string
	matcher   *names.Matcher
	roster    *names.Roster
	opts      Options
	out       sitting.RecordSets
	anomalies []sitting.Anomaly

	// chairPeople maps presiding roles to the person names the
	// attendance roll announced for them.
	chairPeople map[string]string
}

// resolve runs one raw spelling through the matcher, applying alias
// learning and anomaly reporting. The returned display name is the
// canonical identity on a confident match and the normalized observed
// spelling otherwise.
func (b *builder) resolve(raw string) (member string, resolved bool) {
	match := b.matcher.Resolve(raw)
	if match.Confident {
		if b.opts.LearnAliases && match.Score < 1 {
			b.roster = b.roster.Learn(match.Canonical, raw)
		}
		return match.Canonical, true
	}

	suggestion := ""
	if match.Canonical != names.Unknown {
		suggestion = match.Canonical
	}
	b.anomalies = append(b.anomalies, sitting.Anomaly{
		Kind:        sitting.AnomalyUnresolvedName,
		SittingDate: b.date,
		RawText:     raw,
		Suggestion:  suggestion,
	})
	return names.Normalize(raw), false
}

func (b *builder) buildAttendance(rows []parse.AttendanceRow) {
	b.chairPeople = map[string]string{}
	for _, row := range rows {
		role := names.ChairRole(row.RawName)
		clean := names.CleanAttendanceName(row.RawName)
		member, resolved := b.resolve(clean)
		if role != "" && member != names.Unknown {
			b.chairPeople[role] = member
		}
		b.out.Attendance = append(b.out.Attendance, sitting.Attendance{
			SittingDate:     b.date,
			Member:          member,
			RawName:         row.RawName,
			Resolved:        resolved,
			Present:         row.Present,
			IsSpeaker:       role == names.ChairSpeaker,
			IsDeputySpeaker: role == names.ChairDeputySpeaker,
		})
	}
}

func (b *builder) buildPTBA(rows []parse.PTBARow) {
	year := sittingYear(b.date)
	for _, row := range rows {
		member, resolved := b.resolve(row.RawName)
		from, to, ok := parse.ParseWindow(row.WindowText, year)
		if !ok {
			b.anomalies = append(b.anomalies, sitting.Anomaly{
				Kind:        sitting.AnomalyMalformedWindow,
				SittingDate: b.date,
				RawText:     row.WindowText,
				Suggestion:  member,
			})
		}
		b.out.PTBA = append(b.out.PTBA, sitting.PTBA{
			SittingDate: b.date,
			Member:      member,
			RawName:     row.RawName,
			Resolved:    resolved,
			WindowText:  row.WindowText,
			From:        from,
			To:          to,
		})
	}
}

func (b *builder) buildSpeeches(rows []parse.SpeechRow, signals []parse.ChairSignal) {
	inferred := parse.InferChair(signals, b.opts.ChairConfidence)
	if len(rows) > 0 && !inferred.Confident {
		b.anomalies = append(b.anomalies, sitting.Anomaly{
			Kind:        sitting.AnomalyChairAmbiguous,
			SittingDate: b.date,
			RawText:     inferred.Label,
			Suggestion:  b.chairPeople[inferred.Role],
		})
	}

	for _, row := range rows {
		rec := sitting.Speech{
			SittingDate:  b.date,
			Seq:          row.Seq,
			RawName:      row.Label,
			Role:         sitting.RoleMember,
			Topic:        row.Topic,
			QuestionItem: row.QuestionItem,
			Text:         row.Text,
			WordCount:    textutil.WordCount(row.Text),
			CharCount:    utf8.RuneCountInString(row.Text),
		}
		rec.ChairName = b.chairName(row.ChairLabel, inferred)

		if chairLabel, fromChair := names.ChairFromSpeakerLabel(row.Label); fromChair {
			rec.Role = sitting.RoleChair
			if person, ok := b.chairPeople[names.ChairRole(chairLabel)]; ok {
				rec.Speaker = person
				rec.Resolved = true
			} else {
				rec.Speaker = chairLabel
			}
			if rec.ChairName == "" {
				rec.ChairName = rec.Speaker
			}
			b.out.Speeches = append(b.out.Speeches, rec)
			continue
		}

		person := names.PersonFromLabel(row.Label)
		if person == "" {
			person = names.LastParenthesized(row.Label)
		}
		if person == "" {
			person = row.Label
		}
		rec.Speaker, rec.Resolved = b.resolve(person)
		b.out.Speeches = append(b.out.Speeches, rec)
	}
}

// chairName maps a chair label to the presiding person's name, falling
// back to the sitting-level inference and then to the label itself.
func (b *builder) chairName(label string, inferred parse.ChairInference) string {
	if label == "" {
		if !inferred.Confident {
			return ""
		}
		label = inferred.Label
	}
	if person, ok := b.chairPeople[names.ChairRole(label)]; ok {
		return person
	}
	return label
}

func sittingYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
