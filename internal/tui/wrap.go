package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/monclitype/internal/engine"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// styleTag maps one alignment position to the character shown and its style.
func styleTag(tag engine.AlignmentTag) (rune, lipgloss.Style) {
	switch tag.Kind {
	case engine.AlignBoth:
		if tag.Left == tag.Right {
			return tag.Right, correctStyle
		}
		return tag.Right, incorrectStyle
	case engine.AlignOnlyLeft:
		return tag.Left, incorrectStyle
	case engine.AlignOnlyRight:
		return tag.Right, pendingStyle
	default:
		panic("tui: unknown alignment kind")
	}
}

func newStyledRune(r rune, style lipgloss.Style) styledRune {
	return styledRune{
		s:       style.Render(string(r)),
		width:   runewidth.RuneWidth(r),
		isSpace: r == ' ',
	}
}

// buildStyledRunes lays out completed words, the current word, and the
// untyped remainder. The cursor underlines the first untyped position.
func buildStyledRunes(status engine.GameStatus) []styledRune {
	out := []styledRune{}
	for _, word := range status.CompletedWords {
		for _, tag := range word {
			r, style := styleTag(tag)
			out = append(out, newStyledRune(r, style))
		}
		out = append(out, newStyledRune(' ', correctStyle))
	}

	cursorPlaced := false
	for _, tag := range status.CurrentWord {
		r, style := styleTag(tag)
		if !cursorPlaced && tag.Kind == engine.AlignOnlyRight {
			style = style.Underline(true)
			cursorPlaced = true
		}
		out = append(out, newStyledRune(r, style))
	}

	if !status.HasRemaining() {
		return out
	}
	for i, r := range " " + status.RemainingTarget {
		style := pendingStyle
		if i == 0 && !cursorPlaced {
			style = cursorStyle
		}
		out = append(out, newStyledRune(r, style))
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
