package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/thruflo/onboard/internal/catalog"
)

// Box drawing characters (Unicode)
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// BoxWithContent draws a box containing the given content lines.
// Each line is padded/truncated to fit within the box.
func BoxWithContent(width int, content []string) []string {
	if width < 4 {
		return nil
	}

	innerWidth := width - 4 // Account for borders and padding
	height := len(content) + 2

	lines := make([]string, height)
	lines[0] = BoxTopLeft + strings.Repeat(BoxHorizontal, width-2) + BoxTopRight
	for i, line := range content {
		lines[i+1] = BoxVertical + " " + PadOrTruncate(line, innerWidth) + " " + BoxVertical
	}
	lines[height-1] = BoxBottomLeft + strings.Repeat(BoxHorizontal, width-2) + BoxBottomRight

	return lines
}

// VisualWidth returns the printed width of s, ignoring ANSI sequences.
func VisualWidth(s string) int {
	return lipgloss.Width(s)
}

// StripAnsi removes ANSI escape sequences from s.
func StripAnsi(s string) string {
	return ansi.Strip(s)
}

// PadOrTruncate pads or truncates a string to exactly width columns.
// Styled text keeps its escape sequences.
func PadOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	w := VisualWidth(s)
	if w == width {
		return s
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}

	if width >= 3 {
		return ansi.Truncate(s, width, "...")
	}
	return ansi.Truncate(s, width, "")
}

// WrapText wraps text at word boundaries so no line is wider than width
// columns, unless a single word is.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return lines
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		if VisualWidth(currentLine)+1+VisualWidth(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	lines = append(lines, currentLine)

	return lines
}

// RightAlign right-aligns text within the given width.
func RightAlign(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return PadOrTruncate(s, width)
	}
	return strings.Repeat(" ", width-w) + s
}

// ProgressBar renders a fraction in [0,1] as a bar.
// Returns a string like "[████████░░░░░░░░]  50%"
func ProgressBar(fraction float64, width int) string {
	if width < 10 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	barWidth := width - 7 // Space for "[] XXX%"
	filled := int(fraction * float64(barWidth))
	empty := barWidth - filled

	bar := "[" +
		strings.Repeat("█", filled) +
		strings.Repeat("░", empty) +
		"]"

	return bar + " " + fmt.Sprintf("%3d", int(fraction*100)) + "%"
}

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// CategoryStyle is the header style for a category, colored with the
// category's color token.
func CategoryStyle(c catalog.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Color()))
}

// CategoryHeader renders a category's display name in its color.
func CategoryHeader(c catalog.Category) string {
	return CategoryStyle(c).Render(c.DisplayName())
}
