// Package textfmt reflows model output so that it stays readable on a
// terminal. Widths are measured in display columns, not bytes, so CJK
// and other wide runes count as what they occupy on screen.
package textfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap reflows text to at most width columns per line. Paragraphs,
// separated by one or more blank lines, are wrapped independently and
// come out separated by exactly one blank line. Within a paragraph
// words are packed greedily in order and never split, so a single word
// wider than width overflows on a line of its own.
//
// Wrap is pure and idempotent: Wrap(Wrap(t, w), w) == Wrap(t, w).
func Wrap(text string, width int) string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, paragraph := range splitParagraphs(text) {
		out = append(out, wrapParagraph(paragraph, width))
	}
	return strings.Join(out, "\n\n")
}

// splitParagraphs splits on runs of blank lines. A line containing only
// whitespace counts as blank. Leading and trailing blank lines vanish.
func splitParagraphs(text string) [][]string {
	var paragraphs [][]string
	var current []string
	for line := range strings.SplitSeq(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}

func wrapParagraph(lines []string, width int) string {
	words := strings.Fields(strings.Join(lines, " "))
	var b strings.Builder
	lineWidth := 0
	for i, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
			b.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= width:
			b.WriteString(" ")
			b.WriteString(word)
			lineWidth += 1 + w
		default:
			b.WriteString("\n")
			b.WriteString(word)
			lineWidth = w
		}
	}
	return b.String()
}
