package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/chores/internal/model"
)

const defaultWidth = 80

// Model is the Bubble Tea model for the chore board. It holds the only
// reference to the state while the program runs; View re-partitions it on
// every redraw.
type Model struct {
	state  *model.State
	logger *slog.Logger
	theme  Theme

	keys  keyMap
	help  help.Model
	width int

	focus   int   // section index into model.Owners()
	cursors []int // per-section row cursor
}

// New builds the board over state.
func New(state *model.State, logger *slog.Logger, theme Theme) Model {
	h := help.New()
	h.Styles.ShortKey = theme.Muted
	h.Styles.ShortDesc = theme.Muted
	h.Styles.FullKey = theme.Muted
	h.Styles.FullDesc = theme.Muted
	return Model{
		state:   state,
		logger:  logger,
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    h,
		width:   defaultWidth,
		cursors: make([]int, len(model.Owners())),
	}
}

// State is the state the board renders.
func (m Model) State() *model.State { return m.state }

// Focus reports the focused section and its row cursor.
func (m Model) Focus() (section, row int) { return m.focus, m.cursors[m.focus] }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % len(m.cursors)
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus + len(m.cursors) - 1) % len(m.cursors)
		case key.Matches(msg, m.keys.Done):
			m.pressDone()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) View() string {
	inner := m.width - m.theme.Panel.GetHorizontalFrameSize()
	board := Render(*m.state, Frame{
		Width:  inner,
		Focus:  m.focus,
		Cursor: m.cursors[m.focus],
		Theme:  m.theme,
	})
	return m.theme.Panel.Render(board + "\n\n" + m.help.View(m.keys))
}

// section returns the chores of the focused owner, filtered fresh from the state.
func (m *Model) section() []model.Chore {
	return m.state.ByOwner(model.Owners()[m.focus])
}

func (m *Model) moveCursor(delta int) {
	n := len(m.section())
	c := m.cursors[m.focus] + delta
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	m.cursors[m.focus] = c
}

// pressDone handles the row's "done" button. It only logs: marking the chore
// complete or removing it is not implemented, so the state stays untouched.
func (m *Model) pressDone() {
	rows := m.section()
	i := m.cursors[m.focus]
	if i < 0 || i >= len(rows) {
		return
	}
	c := rows[i]
	m.logger.Info("done button pressed",
		slog.String("chore", c.Name),
		slog.String("due", c.Due),
		slog.String("owner", c.Owner.String()),
	)
}
