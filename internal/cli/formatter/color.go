package formatter

import (
	"fmt"

	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FeasibilityIndicator returns a colored verdict string.
func FeasibilityIndicator(feasible bool) string {
	if feasible {
		return StyleGreen.Render("● ON TRACK")
	}
	return StyleRed.Render("● STRETCH GOAL")
}

// DifficultyPill returns the score-gap difficulty with urgency coloring.
func DifficultyPill(d domain.Difficulty) string {
	switch d {
	case domain.DifficultySmall:
		return StyleGreen.Render(string(d))
	case domain.DifficultyModerate:
		return StyleBlue.Render(string(d))
	case domain.DifficultySignificant:
		return StyleYellow.Render(string(d))
	case domain.DifficultyLarge:
		return StyleYellow.Render(string(d))
	case domain.DifficultyVeryLarge:
		return StyleRed.Render(string(d))
	default:
		return StyleDim.Render(string(d))
	}
}

// PriorityTag returns a colored recommendation priority marker.
func PriorityTag(p domain.RecommendationPriority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("[high]")
	case domain.PriorityMedium:
		return StyleYellow.Render("[medium]")
	case domain.PriorityLow:
		return StyleDim.Render("[low]")
	default:
		return StyleDim.Render(fmt.Sprintf("[%s]", p))
	}
}

// Header renders a section heading.
func Header(s string) string {
	return StyleHeader.Render(s)
}

// Dim renders dimmed helper text.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders emphasized foreground text.
func Bold(s string) string {
	return StyleBold.Render(s)
}
