package names

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hansard/internal/textutil"
)

// Unknown is the sentinel identity used when a raw name normalizes to
// nothing usable. Rows are never dropped for lacking a name.
const Unknown = "Unknown"

// honorifics covers the title tokens that precede person names in the
// transcripts, including stacked forms like "Assoc Prof Dr".
const honorifics = `(?:Mr|Ms|Mrs|Mdm|Madam|Miss|Dr|Prof\.?|Professor|Er|Assoc\s*Prof\.?)`

var (
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	footnotePattern  = regexp.MustCompile(`\[\d+\]`)
	parenPattern     = regexp.MustCompile(`\([^)]*\)`)
	honorificPrefix  = regexp.MustCompile(`(?i)^(?:` + honorifics + `\s+)+`)
	rolewordPattern  = regexp.MustCompile(`(?i)\b(?:minister|prime|deputy|parliamentary|secretary|speaker)\b`)
	nonLetterPattern = regexp.MustCompile(`[^\p{L}\s]`)

	titleCaser = cases.Title(language.English)
)

// Normalize converts a raw name string into its canonical display form:
// markup and footnote artifacts removed, whitespace collapsed, leading
// honorifics stripped, shouting-case words re-cased. Empty or
// punctuation-only input yields the Unknown sentinel.
func Normalize(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = html.UnescapeString(s)
	s = footnotePattern.ReplaceAllString(s, " ")
	s = textutil.NormalizeSpace(s)
	s = strings.Trim(s, " .,:;")
	s = honorificPrefix.ReplaceAllString(s, "")
	s = textutil.NormalizeSpace(strings.Trim(s, " ."))
	if MatchKey(s) == "" {
		return Unknown
	}
	return displayCase(s)
}

// MatchKey returns the lowercase comparison form of a name: honorifics,
// role words, parenthesized qualifiers, and non-letter characters all
// removed. Two spellings of one person should collide here.
func MatchKey(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = html.UnescapeString(s)
	s = parenPattern.ReplaceAllString(s, " ")
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	s = textutil.NormalizeSpace(s)
	s = honorificPrefix.ReplaceAllString(s, "")
	s = rolewordPattern.ReplaceAllString(s, " ")
	s = nonLetterPattern.ReplaceAllString(s, " ")
	return strings.ToLower(textutil.NormalizeSpace(s))
}

// displayCase re-cases fully uppercase words; mixed-case words pass
// through untouched so spellings like "Md Noor" survive.
func displayCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if len(word) > 1 && word == strings.ToUpper(word) && word != strings.ToLower(word) {
			words[i] = titleCaser.String(strings.ToLower(word))
		}
	}
	return strings.Join(words, " ")
}
