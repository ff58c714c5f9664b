package parse

import (
	"regexp"
	"strings"

	"hansard/internal/names"
	"hansard/internal/textutil"
)

// SpeechRow is one attributed turn from the speech body, before identity
// resolution. Seq is assigned per emitted turn and strictly increases in
// document order with no gaps.
type SpeechRow struct {
	Seq   int
	Label string
	Text  string
	Topic string
	// ChairLabel is the chair presiding when this turn was delivered, as
	// last announced by an in-text marker; empty when the document has
	// not said yet.
	ChairLabel string
	// QuestionItem marks a question-paper listing rather than an oral
	// turn.
	QuestionItem bool
}

var (
	timeMarker   = regexp.MustCompile(`(?i)^\d{1,2}\.\d{2}\s*(?:am|pm)$`)
	questionLead = regexp.MustCompile(`(?i)^(\d+)\s+((?:Mr|Ms|Mrs|Mdm|Madam|Miss|Dr|Prof\.?|Professor|Er|Assoc\s*Prof\.?)\s+\S.*?)\s+asked\s`)
)

// ExtractSpeeches walks the speech body in document order and splits it
// into attributed turns. Headings set the current debate topic;
// "[... in the Chair]" markers update the presiding chair; unattributed
// paragraphs continue the open turn; procedural call-outs by the Chair
// are dropped. Chair-presence signals observed along the way are
// returned for sitting-level inference.
func ExtractSpeeches(blocks []Block) ([]SpeechRow, []ChairSignal) {
	var (
		rows    []SpeechRow
		signals []ChairSignal
		topic   string
		chair   string
	)
	open := -1

	emit := func(row SpeechRow) {
		row.Seq = len(rows) + 1
		rows = append(rows, row)
		open = len(rows) - 1
	}

	for _, block := range blocks {
		if block.Kind == BlockHeading {
			topic = block.Text
			open = -1
			continue
		}

		text := block.Text
		if block.Label == "" {
			if timeMarker.MatchString(text) {
				continue
			}
			if marker, ok := names.ExtractChairMarker(text); ok {
				chair = marker
				signals = append(signals, ChairSignal{Kind: SignalMarker, Label: marker})
				open = -1
				continue
			}
			if m := questionLead.FindStringSubmatch(text); m != nil && names.IsQuestionItem(m[2], text) {
				body := textutil.NormalizeSpace(strings.TrimPrefix(text, m[1]))
				emit(SpeechRow{
					Label:        m[2],
					Text:         body,
					Topic:        topic,
					ChairLabel:   chair,
					QuestionItem: true,
				})
				open = -1
				continue
			}
			if names.IsChairCall(text) {
				continue
			}
			if open >= 0 && text != "" {
				rows[open].Text += "\n" + text
			}
			continue
		}

		// Attributed turn.
		if block.Text == "" {
			// A bare bold-run paragraph is a debate title.
			topic = block.Label
			open = -1
			continue
		}
		if chairLabel, fromChair := names.ChairFromSpeakerLabel(block.Label); fromChair {
			signals = append(signals, ChairSignal{Kind: SignalSpeakerLabel, Label: chairLabel})
			if names.IsChairCall(block.Text) {
				// The Chair calling the next speaker is procedure, not
				// debate.
				continue
			}
		}
		if names.HasTrailingChairCall(text) {
			signals = append(signals, ChairSignal{Kind: SignalAddressee, Label: "Mr Speaker"})
			text = names.StripTrailingChairCall(text)
		}
		if text == "" {
			continue
		}
		emit(SpeechRow{
			Label:      block.Label,
			Text:       text,
			Topic:      topic,
			ChairLabel: chair,
		})
	}
	return rows, signals
}
