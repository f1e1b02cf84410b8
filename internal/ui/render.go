package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Makepad-fr/chores/internal/model"
)

const (
	doneLabel        = "[ done ]"
	doneLabelFocused = "> done <"

	// left + right border and two column separators
	tableChrome = 4
	// horizontal padding inside every cell
	cellPadding = 2
	// minimum share of the width for the Chore and Due columns, in percent
	minColumnShare = 30
)

var columnTitles = [3]string{"Chore", "Due", "Actions"}

// Frame is everything besides the state that a redraw depends on.
type Frame struct {
	Width  int
	Focus  int // index into model.Owners(); -1 renders without a focused row
	Cursor int // row within the focused section
	Theme  Theme
}

// Render draws one section per owner. It is pure: same input, same output.
func Render(s model.State, f Frame) string {
	var b strings.Builder
	b.WriteString(f.Theme.Title.Render("Chores"))
	b.WriteString("\n")
	for i, o := range model.Owners() {
		cursor := -1
		if i == f.Focus {
			cursor = f.Cursor
		}
		b.WriteString("\n")
		b.WriteString(renderSection(o, s.ByOwner(o), cursor, f))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSection(o model.Owner, chores []model.Chore, cursor int, f Frame) string {
	th := f.Theme
	if cursor >= len(chores) {
		cursor = len(chores) - 1
	}

	rows := make([][]string, 0, len(chores))
	for i, c := range chores {
		label := doneLabel
		if i == cursor {
			label = doneLabelFocused
		}
		rows = append(rows, []string{c.Name, c.Due, label})
	}
	widths := ColumnWidths(f.Width, chores)

	t := table.New().
		Border(th.Border).
		BorderStyle(th.BorderStyle).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		Headers(columnTitles[:]...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var st lipgloss.Style
			switch {
			case row == table.HeaderRow:
				st = th.Header
			case row == cursor && col == 2:
				st = th.ButtonFocused
			case row == cursor:
				st = th.Selected
			case col == 2:
				st = th.Button
			case row%2 == 1:
				st = th.Stripe
			default:
				st = th.Cell
			}
			return st.Padding(0, 1).Width(widths[col]).MaxHeight(1)
		})

	out := th.Heading.Render(o.String()) + "\n" + t.Render()
	if len(chores) == 0 {
		out += "\n" + th.Muted.Render("(none)")
	}
	return out
}

// ColumnWidths sizes the Chore, Due and Actions columns for a table of the
// given total width. Chore and Due get at least 30% each and grow to fit
// their content; Actions takes the rest but never less than its button.
func ColumnWidths(width int, chores []model.Chore) [3]int {
	avail := width - tableChrome
	if avail < 0 {
		avail = 0
	}
	floor := avail * minColumnShare / 100

	name := max(floor, lipgloss.Width(columnTitles[0])+cellPadding)
	due := max(floor, lipgloss.Width(columnTitles[1])+cellPadding)
	for _, c := range chores {
		name = max(name, lipgloss.Width(c.Name)+cellPadding)
		due = max(due, lipgloss.Width(c.Due)+cellPadding)
	}
	minActions := max(lipgloss.Width(doneLabel), lipgloss.Width(columnTitles[2])) + cellPadding
	actions := max(avail-name-due, minActions)
	return [3]int{name, due, actions}
}
