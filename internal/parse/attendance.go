package parse

import (
	"regexp"
	"strings"

	"hansard/internal/textutil"
)

// AttendanceRow is one roster line before identity resolution.
type AttendanceRow struct {
	RawName string
	Present bool
}

var absentMarker = regexp.MustCompile(`(?i)\(\s*absent[^)]*\)`)

// ExtractAttendance turns the attendance section into roster rows, one
// per member line. An "(Absent)" marker flips the presence flag and is
// removed from the name.
func ExtractAttendance(blocks []Block) []AttendanceRow {
	rows := make([]AttendanceRow, 0, len(blocks))
	for _, block := range blocks {
		if block.Kind != BlockParagraph {
			continue
		}
		line := block.Text
		if block.Label != "" {
			line = textutil.NormalizeSpace(block.Label + " " + line)
		}
		if line == "" {
			continue
		}
		present := true
		if absentMarker.MatchString(line) {
			present = false
			line = textutil.NormalizeSpace(absentMarker.ReplaceAllString(line, " "))
		}
		line = strings.Trim(line, " .")
		if line == "" {
			continue
		}
		rows = append(rows, AttendanceRow{RawName: line, Present: present})
	}
	return rows
}
