package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum visible width found in each column, measured with lipgloss so
// ANSI escape sequences don't skew alignment.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	gap := strings.Repeat(" ", colGap)

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		b.WriteString(pad(widths[i] - lipgloss.Width(h)))
		if i < cols-1 {
			b.WriteString(gap)
		}
	}
	b.WriteString("\n")

	total := (cols - 1) * colGap
	for _, w := range widths {
		total += w
	}
	b.WriteString(StyleDim.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			b.WriteString(pad(widths[i] - lipgloss.Width(cell)))
			if i < cols-1 {
				b.WriteString(gap)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
