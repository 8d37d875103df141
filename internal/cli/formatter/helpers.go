package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// WeeksUntil returns a human-friendly countdown string such as "13 weeks"
// or "9 days" for short timelines.
func WeeksUntil(from, to time.Time) string {
	days := int(to.Sub(from).Hours() / 24)
	if days < 14 {
		return fmt.Sprintf("%d days", days)
	}
	return fmt.Sprintf("%d weeks", days/7)
}

// PlanDate formats a calendar date the way all plan output shows dates.
func PlanDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// Hours formats an hour figure, dropping a trailing ".0".
func Hours(h float64) string {
	s := fmt.Sprintf("%.1f", h)
	s = strings.TrimSuffix(s, ".0")
	return s + "h"
}

// Minutes formats a duration in minutes as "1h 30m" style text.
func Minutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}
