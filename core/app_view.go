package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/contactlabels/core/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	bodyWidth := max(1, m.width-2)
	var body string
	if m.root != nil && bodyHeight > 0 {
		body = m.root.View(bodyWidth, bodyHeight)
	}
	if bodyHeight > 0 {
		for i, screen := range m.screens.items {
			inset := 12 + 4*i
			body = widgets.RenderPopup(body, screen.View(max(20, m.width-inset), max(8, m.height-8-2*i)), bodyWidth, bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.title)
	crumbs := make([]string, 0, m.screens.Len()+1)
	if m.root != nil {
		crumbs = append(crumbs, m.root.Title())
	}
	crumbs = append(crumbs, m.screens.Titles()...)
	right := crumbStyle.Render(strings.Join(crumbs, " › "))
	right = ansi.Truncate(right, max(1, m.width-ansi.StringWidth(left)-1), "…")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
