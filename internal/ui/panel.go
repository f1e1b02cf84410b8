package ui

import (
	"fmt"
	"io"
	"strings"
)

// Panel draws a framed box around lines.
func Panel(w io.Writer, t Theme, lines []string) {
	fmt.Fprintln(w, t.Panel.Render(strings.Join(lines, "\n")))
}

// OK prints a success line in the theme's style.
func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render("✔ "+msg))
}

// Fail prints an error line in the theme's style.
func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
