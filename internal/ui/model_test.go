package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/chores/internal/logging"
	"github.com/Makepad-fr/chores/internal/model"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newTestModel(t *testing.T) (Model, *model.State, *bytes.Buffer) {
	t.Helper()
	s := model.DefaultState()
	var buf bytes.Buffer
	return New(&s, logging.New("info", "json", &buf), ThemeByName("mono")), &s, &buf
}

func TestModel_Navigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	sec, row := m.Focus()
	assert.Equal(t, 0, sec)
	assert.Equal(t, 0, row)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("j"))
	_, row = m.Focus()
	assert.Equal(t, 1, row, "cursor stops at the last Linus row")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	sec, row = m.Focus()
	assert.Equal(t, 1, sec)
	assert.Equal(t, 0, row)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	sec, _ = m.Focus()
	assert.Equal(t, 0, sec, "tab wraps around")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	sec, _ = m.Focus()
	assert.Equal(t, 1, sec)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyUp}, runes("k"))
	sec, row = m.Focus()
	assert.Equal(t, 0, sec)
	assert.Equal(t, 0, row)
}

// Completing a chore is not implemented yet: "done" only logs. This test pins
// that gap; it has to change once the button actually completes the chore.
func TestModel_DoneLogsButLeavesStoreUntouched(t *testing.T) {
	m, s, buf := newTestModel(t)
	before := append([]model.Chore(nil), s.Chores...)

	m = send(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, before, s.Chores)
	assert.Same(t, s, m.State())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"done button pressed"`)
	assert.Contains(t, lines[0], `"chore":"Bad"`)
	assert.Contains(t, lines[0], `"owner":"Linus"`)
	assert.Contains(t, lines[1], `"chore":"Boden"`)
	assert.Contains(t, lines[1], `"due":"Tomorrow"`)
	assert.Contains(t, lines[1], `"owner":"Johannes"`)
}

func TestModel_DoneOnEmptySectionIsIgnored(t *testing.T) {
	s := model.State{Chores: []model.Chore{{Name: "Bad", Due: "Today", Owner: model.Linus}}}
	var buf bytes.Buffer
	m := New(&s, logging.New("info", "json", &buf), ThemeByName("mono"))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, buf.String())
	assert.Contains(t, m.View(), "(none)")
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _, _ := newTestModel(t)
		_, cmd := m.Update(k)
		require.NotNil(t, cmd, k.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), k.String())
	}
}

func TestModel_ViewFollowsWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	v := m.View()
	assert.Contains(t, v, "Linus")
	assert.Contains(t, v, "Johannes")
	assert.Contains(t, v, doneLabelFocused)
	assert.Contains(t, v, "quit")

	m = send(t, m, runes("?"))
	assert.Contains(t, m.View(), "prev owner")
}
