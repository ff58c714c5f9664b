package parse

import (
	"html"
	"regexp"
	"strings"

	"hansard/internal/services"
	"hansard/internal/textutil"
)

// BlockKind distinguishes the two structural units a transcript document
// is made of.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
)

// Block is one structural unit of the document in reading order. For
// paragraphs opening with a bold attribution ("<strong>Label</strong>:"),
// Label carries the attribution and Text the remainder; headings and
// plain paragraphs carry everything in Text.
type Block struct {
	Kind  BlockKind
	Level int
	Label string
	Text  string
}

// maxLabelLen bounds how much text before the first colon is still
// treated as a speaker attribution rather than body prose.
const maxLabelLen = 80

var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockTag     = regexp.MustCompile(`(?is)<(h[1-6]|p)\b[^>]*>(.*?)</\s*(?:h[1-6]|p)\s*>`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
	leadStrong   = regexp.MustCompile(`(?is)^\s*<strong[^>]*>`)
	strongRun    = regexp.MustCompile(`(?is)^\s*(?:<strong[^>]*>.*?</strong>\s*)+`)
)

// ScanBlocks decomposes a raw transcript document into its heading and
// paragraph blocks. A document with no recognizable block markup at all
// cannot be a transcript and is rejected.
func ScanBlocks(doc string) ([]Block, error) {
	cleaned := scriptTag.ReplaceAllString(doc, " ")
	cleaned = styleTag.ReplaceAllString(cleaned, " ")
	cleaned = htmlComments.ReplaceAllString(cleaned, " ")

	matches := blockTag.FindAllStringSubmatch(cleaned, -1)
	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		tag, inner := strings.ToLower(m[1]), m[2]
		if tag[0] == 'h' {
			text := StripTags(inner)
			if text == "" {
				continue
			}
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: int(tag[1] - '0'),
				Text:  text,
			})
			continue
		}
		label, body := splitLabel(inner)
		text := StripTags(body)
		if label == "" && text == "" {
			continue
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Label: label, Text: text})
	}
	if len(blocks) == 0 {
		return nil, services.Wrap(services.ErrSource, "parse", "scan", "document contains no transcript blocks", nil)
	}
	return blocks, nil
}

// StripTags reduces a markup fragment to its text: tags removed,
// entities decoded, whitespace collapsed.
func StripTags(s string) string {
	s = allTags.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return textutil.NormalizeSpace(s)
}

// splitLabel separates a paragraph's bold attribution from its body. The
// attribution runs up to the first colon following an opening <strong>;
// a paragraph that is a bare bold run (a centred section title) yields
// the run as its label and no body.
func splitLabel(inner string) (label, body string) {
	if !leadStrong.MatchString(inner) {
		return "", inner
	}
	if i := strings.Index(inner, ":"); i >= 0 {
		prefix := StripTags(inner[:i])
		if prefix != "" && len(prefix) <= maxLabelLen {
			return prefix, inner[i+1:]
		}
	}
	if loc := strongRun.FindStringIndex(inner); loc != nil {
		run := StripTags(inner[loc[0]:loc[1]])
		rest := StripTags(inner[loc[1]:])
		if rest == "" && run != "" {
			return run, ""
		}
	}
	return "", inner
}
