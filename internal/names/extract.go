package names

import (
	"regexp"
	"strings"

	"hansard/internal/textutil"
)

// Role labels the transcripts use for whoever is presiding.
const (
	ChairSpeaker       = "speaker"
	ChairDeputySpeaker = "deputy_speaker"
)

var (
	chairMarkerPattern  = regexp.MustCompile(`(?i)^\[(.+?)\s+in\s+the\s+Chair\.?\]$`)
	trailingChairCall   = regexp.MustCompile(`(?i)\s+(?:Mr|Madam)\s+Speaker\.?\s*$`)
	honorificLead       = regexp.MustCompile(`(?i)^` + honorifics + `\b`)
	parenPersonPattern  = regexp.MustCompile(`(?i)\(` + honorifics + `\s+[^)]+\)`)
	trailingParenSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	innerParenChunk     = regexp.MustCompile(`\(([^()]*)\)`)
	askedPattern        = regexp.MustCompile(`(?i)\basked\s+(?:the\s+)?(?:minister|prime minister|deputy prime minister|parliamentary secretary)\b`)
	sentenceVerbs       = regexp.MustCompile(`(?i)\b(?:thank|ask|welcome|move|agree|urge|request|clarif|supplementary|question)`)
	letterRun           = regexp.MustCompile(`\p{L}+`)
	wordRun             = regexp.MustCompile(`\b\w+\b`)
	speakerParenLead    = regexp.MustCompile(`(?i)\bSPEAKER\s*\(`)
	speakerWord         = regexp.MustCompile(`(?i)\bSPEAKER\b`)
)

// ChairRole classifies a label as a presiding role. Returns
// ChairSpeaker, ChairDeputySpeaker, or "" for ordinary members.
func ChairRole(label string) string {
	if label == "" {
		return ""
	}
	u := strings.ToUpper(label)
	if strings.Contains(u, "DEPUTY SPEAKER") {
		return ChairDeputySpeaker
	}
	if strings.Contains(u, "SPEAKER") {
		return ChairSpeaker
	}
	return ""
}

// ExtractChairMarker recognizes procedural markers like
// "[Mr Speaker in the Chair]" and returns the chair label inside.
func ExtractChairMarker(text string) (string, bool) {
	t := textutil.NormalizeSpace(text)
	if !strings.HasPrefix(t, "[") || !strings.Contains(strings.ToUpper(t), "SPEAKER") {
		return "", false
	}
	m := chairMarkerPattern.FindStringSubmatch(t)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// StripTrailingChairCall removes a closing "Mr Speaker." addressee phrase.
func StripTrailingChairCall(text string) string {
	return strings.TrimRight(trailingChairCall.ReplaceAllString(text, ""), " ")
}

// HasTrailingChairCall reports whether the turn closes by addressing the
// Chair; used as a weak chair-presence signal.
func HasTrailingChairCall(text string) bool {
	return trailingChairCall.MatchString(text)
}

// ChairFromSpeakerLabel returns the label itself when it indicates the
// Chair is speaking, e.g. "Mr Deputy Speaker" or
// "Mr Speaker (Mr Seah Kian Peng)".
func ChairFromSpeakerLabel(label string) (string, bool) {
	s := textutil.NormalizeSpace(label)
	if s == "" {
		return "", false
	}
	if ChairRole(s) != "" {
		return s, true
	}
	return "", false
}

// IsChairCall detects procedural call-outs by the Chair, such as
// "Mr Patrick Tay." — a short honorific-led name with no sentence verbs.
func IsChairCall(text string) bool {
	t := textutil.NormalizeSpace(text)
	if t == "" || !strings.HasSuffix(t, ".") {
		return false
	}
	if len(wordRun.FindAllString(t, -1)) > 7 {
		return false
	}
	if !honorificLead.MatchString(t) {
		return false
	}
	return !sentenceVerbs.MatchString(t)
}

// IsQuestionItem detects non-spoken question-paper listings like
// "13 Mr Tan asked the Minister ...". These rows are kept but flagged as
// non-oral.
func IsQuestionItem(label, text string) bool {
	label = textutil.NormalizeSpace(label)
	text = textutil.NormalizeSpace(text)
	if label == "" || text == "" {
		return false
	}
	lead := regexp.MustCompile(`(?i)^\d+\s+` + regexp.QuoteMeta(label) + `\s+asked\b`)
	if !lead.MatchString(text) {
		return false
	}
	return askedPattern.MatchString(text)
}

// PersonFromSpeakerAttendance extracts the person behind attendance lines
// like "Mr SPEAKER (Mr Seah Kian Peng (Marine Parade)).".
func PersonFromSpeakerAttendance(raw string) string {
	s := textutil.NormalizeSpace(raw)
	l := strings.Index(s, "(")
	r := strings.LastIndex(s, ")")
	if l == -1 || r == -1 || r <= l {
		return ""
	}
	inner := strings.Trim(s[l+1:r], " .")
	inner = trailingParenSuffix.ReplaceAllString(inner, "")
	inner = honorificPrefix.ReplaceAllString(strings.Trim(inner, " ."), "")
	return textutil.NormalizeSpace(strings.Trim(inner, " ."))
}

// PersonFromLabel extracts a person's name from a speaker label. Role
// titles with the person in parentheses — "The Minister for Health
// (Mr Ong Ye Kung)" — yield the parenthesized name; pure chair labels
// yield "" (resolved through the attendance roll instead); anything else
// is treated as already being a person name.
func PersonFromLabel(raw string) string {
	s := textutil.NormalizeSpace(raw)
	if s == "" {
		return ""
	}
	if m := parenPersonPattern.FindString(s); m != "" {
		inner := strings.Trim(m, "() ")
		inner = trailingParenSuffix.ReplaceAllString(inner, "")
		inner = honorificPrefix.ReplaceAllString(strings.Trim(inner, " ."), "")
		if inner = textutil.NormalizeSpace(strings.Trim(inner, " .")); inner != "" {
			return inner
		}
	}
	if ChairRole(s) != "" {
		return ""
	}
	s = honorificPrefix.ReplaceAllString(s, "")
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	s = parenPattern.ReplaceAllString(s, " ")
	return textutil.NormalizeSpace(strings.Trim(s, " ."))
}

// LastParenthesized returns the final parenthesized chunk when it looks
// name-like (at least two alphabetic tokens); a fallback for role titles
// whose parentheses escape the stricter pattern.
func LastParenthesized(s string) string {
	parts := innerParenChunk.FindAllStringSubmatch(s, -1)
	if len(parts) == 0 {
		return ""
	}
	last := strings.Trim(parts[len(parts)-1][1], " .")
	if len(letterRun.FindAllString(last, -1)) < 2 {
		return ""
	}
	last = honorificPrefix.ReplaceAllString(last, "")
	return textutil.NormalizeSpace(strings.Trim(last, " ."))
}

// CleanAttendanceName returns the bare person name from an attendance
// line: honorifics, constituencies, and portfolio suffixes removed.
func CleanAttendanceName(raw string) string {
	s := textutil.NormalizeSpace(raw)
	s = strings.TrimRight(s, ".")
	if s == "" {
		return ""
	}

	u := strings.ToUpper(s)
	if !strings.Contains(u, "DEPUTY SPEAKER") && speakerParenLead.MatchString(s) {
		if person := PersonFromSpeakerAttendance(s); person != "" {
			return person
		}
	}
	if parenPersonPattern.MatchString(s) {
		if person := PersonFromLabel(s); person != "" {
			return person
		}
	}

	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	s = trailingParenSuffix.ReplaceAllString(s, "")
	s = honorificPrefix.ReplaceAllString(strings.Trim(s, " ."), "")
	s = speakerWord.ReplaceAllString(s, "")
	return textutil.NormalizeSpace(strings.Trim(s, " ."))
}
