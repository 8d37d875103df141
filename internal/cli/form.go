package cli

import (
	"github.com/ascent-prep/ascent/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// planFormValues holds the raw form state; fields arrive as strings and are
// parsed after the form completes.
type planFormValues struct {
	TestDate     string
	CurrentScore string
	TargetScore  string
	Sessions     int
}

// planForm builds the interactive input form for plan generation. Values
// already supplied by flags arrive pre-filled and stay editable.
func planForm(v *planFormValues) *huh.Form {
	if v.Sessions == 0 {
		v.Sessions = 1
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Test date (YYYY-MM-DD)").
				Placeholder("2026-06-06").
				Value(&v.TestDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Current score").
				Placeholder("1080").
				Value(&v.CurrentScore).
				Validate(validateScore),
			huh.NewInput().
				Title("Target score").
				Placeholder("1350").
				Value(&v.TargetScore).
				Validate(validateTargetAbove(&v.CurrentScore)),
			huh.NewSelect[int]().
				Title("Tutoring sessions per week").
				Options(
					huh.NewOption("1 session", 1),
					huh.NewOption("2 sessions", 2),
					huh.NewOption("3 sessions", 3),
					huh.NewOption("4 sessions", 4),
				).
				Value(&v.Sessions),
		),
	).WithTheme(ascentHuhTheme()).WithShowHelp(false)
}

// ascentHuhTheme matches the formatter palette: orange accents when focused,
// dimmed otherwise.
func ascentHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
