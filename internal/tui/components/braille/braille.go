// Package braille holds helpers for composing drawille output with lipgloss
// styling.
package braille

import (
	"strings"
	"unicode"

	drawille "github.com/exrook/drawille-go"
)

// each braille char is 2 dots wide and 4 dots tall
const (
	DotsPerCol = 2
	DotsPerRow = 4
)

const (
	Empty      rune = '⠀'
	ansiEscape rune = '\x1b'
)

// Lines extracts width x height dots of canvas as exactly height/4 lines of
// width/2 runes each.
func Lines(canvas *drawille.Canvas, width, height int) []string {
	var (
		cols  = width / DotsPerCol
		rows  = height / DotsPerRow
		raw   = canvas.Rows(0, 0, width, height)
		lines = make([]string, 0, rows)
	)

	for i := range rows {
		if i >= len(raw) {
			lines = append(lines, strings.Repeat(" ", cols))
			continue
		}
		line := []rune(raw[i])
		switch {
		case len(line) < cols:
			lines = append(lines, string(line)+strings.Repeat(" ", cols-len(line)))
		case len(line) > cols:
			lines = append(lines, string(line[:cols]))
		default:
			lines = append(lines, string(line))
		}
	}

	return lines
}

// String is Lines joined with newlines.
func String(canvas *drawille.Canvas, width, height int) string {
	return strings.Join(Lines(canvas, width, height), "\n")
}

// IsBraille reports whether r is in the braille block (U+2800 to U+28FF).
func IsBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// HasDots reports whether r is a braille char with at least one dot raised.
func HasDots(r rune) bool {
	return IsBraille(r) && r != Empty
}

// Combine ORs the dots of two braille characters together.
func Combine(a, b rune) rune {
	return Empty + ((a - Empty) | (b - Empty))
}

// Overlay places the visible span of each foreground line over background,
// keeping the background's styling on either side.
func Overlay(background, foreground string) string {
	var (
		bgLines  = strings.Split(background, "\n")
		fgLines  = strings.Split(foreground, "\n")
		maxLines = max(len(bgLines), len(fgLines))
		result   = make([]string, maxLines)
	)

	for i := range maxLines {
		var bgLine, fgLine string
		if i < len(bgLines) {
			bgLine = bgLines[i]
		}
		if i < len(fgLines) {
			fgLine = fgLines[i]
		}

		fgStart, fgEnd := -1, -1
		for idx, r := range []rune(StripAnsi(fgLine)) {
			if r != ' ' {
				if fgStart == -1 {
					fgStart = idx
				}
				fgEnd = idx + 1
			}
		}

		if fgStart == -1 {
			result[i] = bgLine
			continue
		}

		bgRunes := []rune(StripAnsi(bgLine))

		var b strings.Builder
		b.WriteString(Segment(bgLine, 0, min(fgStart, len(bgRunes))))
		for j := len(bgRunes); j < fgStart; j++ {
			b.WriteRune(' ')
		}
		b.WriteString(Segment(fgLine, fgStart, fgEnd))
		if fgEnd < len(bgRunes) {
			b.WriteString(Segment(bgLine, fgEnd, len(bgRunes)))
		}

		result[i] = b.String()
	}

	return strings.Join(result, "\n")
}

// Segment returns the visible characters [start, end) of a styled string
// together with the escape sequences that precede each of them.
func Segment(styled string, start, end int) string {
	var (
		result     strings.Builder
		pending    strings.Builder
		visibleIdx int
		inEscape   bool
	)

	for _, r := range styled {
		if r == ansiEscape {
			inEscape = true
			pending.WriteRune(r)
			continue
		}

		if inEscape {
			pending.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}

		if visibleIdx >= start && visibleIdx < end {
			result.WriteString(pending.String())
			result.WriteRune(r)
		}
		pending.Reset()
		visibleIdx++
	}

	return result.String()
}

// StripAnsi removes ANSI escape sequences from s.
func StripAnsi(s string) string {
	var (
		result   strings.Builder
		inEscape bool
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
