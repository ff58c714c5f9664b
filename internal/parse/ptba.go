package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"hansard/internal/textutil"
)

// PTBARow is one permission-to-be-absent announcement before identity
// resolution and window parsing.
type PTBARow struct {
	RawName    string
	WindowText string
}

// ExtractPTBA turns the PTBA section into (member, window text) rows.
// "Name: window" lines start a member's entry; a line carrying only a
// window continues the previous member with a further window.
func ExtractPTBA(blocks []Block) []PTBARow {
	var rows []PTBARow
	lastName := ""
	for _, block := range blocks {
		if block.Kind != BlockParagraph {
			continue
		}
		name, window := block.Label, block.Text
		if name == "" {
			if i := strings.Index(window, ":"); i >= 0 {
				name = textutil.NormalizeSpace(window[:i])
				window = window[i+1:]
			}
		}
		window = strings.Trim(textutil.NormalizeSpace(window), " .")
		if name == "" {
			// Continuation window for the previous member.
			if lastName == "" || !windowLead.MatchString(window) {
				continue
			}
			rows = append(rows, PTBARow{RawName: lastName, WindowText: window})
			continue
		}
		lastName = name
		rows = append(rows, PTBARow{RawName: name, WindowText: window})
	}
	return rows
}

var (
	windowLead  = regexp.MustCompile(`^\d{1,2}\s`)
	windowRange = regexp.MustCompile(`(?i)^(\d{1,2})\s+([A-Za-z]+)(?:\s+(\d{4}))?\s*(?:to|through|–|-)\s*(\d{1,2})\s+([A-Za-z]+)(?:\s+(\d{4}))?$`)
	windowDay   = regexp.MustCompile(`(?i)^(\d{1,2})\s+([A-Za-z]+)(?:\s+(\d{4}))?$`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseWindow resolves a window descriptor like "1 Jul to 15 Jul" into
// ISO from/to dates. Years default to the sitting year; a range whose
// end precedes its start rolls the end into the following year. A
// single-day descriptor yields from == to. Unparseable text reports
// ok=false.
func ParseWindow(text string, sittingYear int) (from, to string, ok bool) {
	t := strings.Trim(textutil.NormalizeSpace(text), " .")
	if t == "" {
		return "", "", false
	}
	if m := windowRange.FindStringSubmatch(t); m != nil {
		start, okStart := buildDate(m[1], m[2], m[3], sittingYear)
		end, okEnd := buildDate(m[4], m[5], m[6], sittingYear)
		if !okStart || !okEnd {
			return "", "", false
		}
		if m[6] == "" && end.Before(start) {
			end = end.AddDate(1, 0, 0)
		}
		return isoDate(start), isoDate(end), true
	}
	if m := windowDay.FindStringSubmatch(t); m != nil {
		day, okDay := buildDate(m[1], m[2], m[3], sittingYear)
		if !okDay {
			return "", "", false
		}
		return isoDate(day), isoDate(day), true
	}
	return "", "", false
}

func buildDate(dayStr, monthStr, yearStr string, sittingYear int) (time.Time, bool) {
	prefix := strings.ToLower(monthStr)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	month, ok := monthsByPrefix[prefix]
	if !ok {
		return time.Time{}, false
	}
	day := atoi(dayStr)
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	year := sittingYear
	if yearStr != "" {
		year = atoi(yearStr)
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so 31 Feb would silently become
	// March; reject that instead.
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func isoDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}
