package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupStyle frames every screen presented over another one.
var PopupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#585b70")).
	Padding(0, 1)

// RenderPopup draws popup centered over base, keeping the base visible around it.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(base, width, height)
	card := PopupStyle.Render(popup)
	cardLines := splitToLines(card, 0)
	cardWidth := maxLineWidth(cardLines)
	cardHeight := len(cardLines)
	if cardWidth <= 0 || cardHeight <= 0 {
		return canvas
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-cardHeight)/2)
	return overlayAt(canvas, cardLines, x, y, width, height)
}

func overlayAt(base string, overlayLines []string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		card := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(card)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = ansi.Truncate(left+card+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
