package cli

import (
	"github.com/ascent-prep/ascent/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerKeyMap binds quit on top of the viewport's scroll keys.
type pagerKeyMap struct {
	Quit key.Binding
}

func defaultPagerKeys() pagerKeyMap {
	return pagerKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pagerModel scrolls plan output that exceeds the terminal height.
type pagerModel struct {
	vp      viewport.Model
	keys    pagerKeyMap
	content string
	ready   bool
}

func newPagerModel(content string) pagerModel {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return pagerModel{
		vp:      vp,
		keys:    defaultPagerKeys(),
		content: content,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 1 // reserve the footer line
		if !m.ready {
			m.vp.SetContent(m.content)
			m.ready = true
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	return m.vp.View() + "\n" + formatter.Dim("↑/↓ scroll · q quit")
}

// runPager displays content in a scrollable full-screen view.
func runPager(content string) error {
	p := tea.NewProgram(newPagerModel(content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
