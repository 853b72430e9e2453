package session

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// styles holds the text styles used for session output. They are bound to
// the session's writer, so output to a pipe or buffer stays plain text.
type styles struct {
	heading lipgloss.Style
	notice  lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		heading: r.NewStyle().Bold(true),
		notice:  r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// fitWidth truncates text to a display width, ending it with "...".
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0 or the text already fits, it is returned unchanged.
// Text is never padded.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	ellipsis := "..."
	ellipsisWidth := runewidth.StringWidth(ellipsis)

	if width <= ellipsisWidth {
		// Too narrow for any text, just return the ellipsis truncated to width
		return runewidth.Truncate(ellipsis, width, "")
	}

	return runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
}
