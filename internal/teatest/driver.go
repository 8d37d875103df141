// Package teatest drives bubbletea models synchronously in unit tests,
// without a terminal and without starting a tea.Program.
package teatest

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxDrainDepth = 100
	cmdTimeout    = 10 * time.Millisecond
)

// Driver steps a tea.Model through Update calls, resolving the commands
// each step returns so the model observes the same message flow it would
// under a running program.
type Driver struct {
	Model    tea.Model
	Quitting bool
}

// Option configures the initial message flow of a Driver.
type Option func(*Driver)

// WithSize delivers a tea.WindowSizeMsg before anything else, the way a
// real terminal would on startup.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// New wraps a model, drains its Init command, then applies options.
func New(m tea.Model, opts ...Option) *Driver {
	d := &Driver{Model: m}
	d.drainCmd(m.Init(), 0)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send delivers a message to the model and resolves any resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drainCmd(cmd, 0)
}

// PressKey sends a single rune keypress.
func (d *Driver) PressKey(r rune) {
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressUp sends the up arrow key.
func (d *Driver) PressUp() { d.Send(tea.KeyMsg{Type: tea.KeyUp}) }

// PressDown sends the down arrow key.
func (d *Driver) PressDown() { d.Send(tea.KeyMsg{Type: tea.KeyDown}) }

// PressEsc sends the escape key.
func (d *Driver) PressEsc() { d.Send(tea.KeyMsg{Type: tea.KeyEscape}) }

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

// drainCmd executes a command tree, feeding produced messages back into the
// model. Long-running commands (tick loops, blink timers) are abandoned
// after a short timeout so tests stay synchronous.
func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxDrainDepth || d.Quitting {
		return
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return
	}
	if msg == nil {
		return
	}

	switch m := msg.(type) {
	case tea.QuitMsg:
		d.Quitting = true
	case tea.BatchMsg:
		for _, c := range m {
			d.drainCmd(c, depth+1)
		}
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drainCmd(next, depth+1)
	}
}
