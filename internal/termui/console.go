// Package termui renders single-line transfer progress on a console.
package termui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Console draws progress lines that overwrite each other in place. On a
// non-terminal writer (piped output, CI) line clearing is a no-op and no
// styling is applied, so output stays clean in logs.
type Console struct {
	out        io.Writer
	isTerminal bool
	width      int
	lineStyle  lipgloss.Style
}

// NewConsole returns a Console writing to out. Terminal capabilities are
// probed once, at construction.
func NewConsole(out io.Writer) *Console {
	c := &Console{
		out:       out,
		lineStyle: lipgloss.NewStyle().Faint(true),
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.isTerminal = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			c.width = w
		}
	}
	return c
}

// ClearLine erases the current line and returns the cursor to column zero.
func (c *Console) ClearLine() {
	if !c.isTerminal {
		return
	}
	fmt.Fprint(c.out, "\r\x1b[2K")
}

// RenderDetail draws text. Without a trailing newline the cursor stays on
// the line so the next render overwrites it; such lines are truncated to the
// terminal width to avoid wrapping, which would break in-place overwriting.
func (c *Console) RenderDetail(text string, appendNewline bool) {
	if !appendNewline && c.isTerminal {
		if c.width > 0 {
			// Display cells, not bytes: wide runes cover two columns.
			for lipgloss.Width(text) > c.width {
				runes := []rune(text)
				text = string(runes[:len(runes)-1])
			}
		}
		fmt.Fprint(c.out, c.lineStyle.Render(text))
		return
	}
	if appendNewline {
		fmt.Fprintln(c.out, text)
		return
	}
	fmt.Fprint(c.out, text)
}
