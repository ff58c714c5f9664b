package parse

import (
	"regexp"
	"strings"

	"hansard/internal/services"
	"hansard/internal/sitting"
)

// Sections is the partitioned transcript: the attendance roll, the
// permission-to-be-absent announcements, and the speech body. Any span
// may be empty; absences are reported as structural anomalies.
type Sections struct {
	Attendance []Block
	PTBA       []Block
	Body       []Block
	Anomalies  []sitting.Anomaly
}

// boundary is one section opener. Matchers are applied in fixed order so
// partitioning never depends on map iteration.
type boundary struct {
	name  string
	match func(text string) bool
}

var boundaries = []boundary{
	{name: "ATTENDANCE", match: func(t string) bool {
		return strings.HasPrefix(t, "ATTENDANCE")
	}},
	{name: "PERMISSION TO BE ABSENT", match: func(t string) bool {
		return strings.Contains(t, "PERMISSION TO BE ABSENT")
	}},
}

// Split partitions the document's blocks at the well-known section
// boundaries. Blocks before the first boundary form the preamble and are
// dropped apart from sitting metadata; every block from the first
// unrecognized heading after a boundary onward belongs to the speech
// body. A document with no boundaries and no attributed turns has no
// transcript structure and is rejected wholesale.
func Split(blocks []Block, date string) (Sections, error) {
	var out Sections
	spans := map[string][]Block{}
	current := ""
	sectioned := hasBoundary(blocks)

	for _, block := range blocks {
		text, isTitle := boundaryText(block)
		if isTitle {
			matched := false
			for _, b := range boundaries {
				if b.match(text) {
					current = b.name
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			// Any further title past the sectioned front matter opens
			// the speech body; the title itself is the first topic.
			if current != "" {
				current = "body"
			}
		}
		if current == "" && !sectioned {
			// No boundaries anywhere: the whole document is treated as
			// the speech body, provided it carries attributed turns.
			current = "body"
		}
		if current == "" {
			continue
		}
		spans[current] = append(spans[current], block)
	}

	out.Attendance = spans["ATTENDANCE"]
	out.PTBA = spans["PERMISSION TO BE ABSENT"]
	out.Body = spans["body"]

	if !sectioned && !hasAttributedTurn(out.Body) {
		return Sections{}, services.Wrap(services.ErrSource, "parse", "split", "no transcript structure recognized", nil)
	}
	for _, b := range boundaries {
		if len(spans[b.name]) == 0 {
			out.Anomalies = append(out.Anomalies, sitting.Anomaly{
				Kind:        sitting.AnomalyMissingSection,
				SittingDate: date,
				RawText:     b.name,
			})
		}
	}
	if len(out.Body) == 0 {
		out.Anomalies = append(out.Anomalies, sitting.Anomaly{
			Kind:        sitting.AnomalyMissingSection,
			SittingDate: date,
			RawText:     "speech body",
		})
	}
	return out, nil
}

func hasBoundary(blocks []Block) bool {
	for _, block := range blocks {
		text, isTitle := boundaryText(block)
		if !isTitle {
			continue
		}
		for _, b := range boundaries {
			if b.match(text) {
				return true
			}
		}
	}
	return false
}

func hasAttributedTurn(blocks []Block) bool {
	for _, block := range blocks {
		if block.Label != "" && block.Text != "" {
			return true
		}
	}
	return false
}

// boundaryText returns the title text of a block when it can open a
// section: headings always can, as can short unattributed upper-case
// paragraphs and bare bold-run paragraphs, which the source uses
// interchangeably with headings.
func boundaryText(block Block) (string, bool) {
	switch block.Kind {
	case BlockHeading:
		return strings.ToUpper(block.Text), true
	case BlockParagraph:
		if block.Label != "" && block.Text == "" {
			return strings.ToUpper(block.Label), true
		}
		if block.Label == "" && block.Text != "" && looksLikeTitle(block.Text) {
			return strings.ToUpper(block.Text), true
		}
	}
	return "", false
}

var titleLetters = regexp.MustCompile(`\p{Lu}`)

func looksLikeTitle(text string) bool {
	if len(text) > 60 || strings.ContainsAny(text, ".:;") {
		return false
	}
	return text == strings.ToUpper(text) && titleLetters.MatchString(text)
}

var parliamentPattern = regexp.MustCompile(`(?i)\b(\w+)\s+PARLIAMENT\b`)

var ordinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20,
}

// ParliamentNo scans the front matter for an ordinal parliament
// reference ("FOURTEENTH PARLIAMENT") and returns its number, or 0 when
// the document does not state one.
func ParliamentNo(blocks []Block) int {
	for _, block := range blocks {
		m := parliamentPattern.FindStringSubmatch(block.Text)
		if m == nil {
			continue
		}
		if n, ok := ordinals[strings.ToLower(m[1])]; ok {
			return n
		}
	}
	return 0
}
