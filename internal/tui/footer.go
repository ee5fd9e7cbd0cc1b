package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/internal/core/styles"
)

// RenderFooter draws a footer as one line: the previous link on the left,
// the mode badges in the middle and the next link on the right. External
// links are marked with an arrow; empty targets keep their width as blank
// space.
func RenderFooter(f nav.Footer, mode nav.Mode, meetingDay bool, width int) string {
	prev := renderLink(f.Prev, "« ", "")
	next := renderLink(f.Next, "", " »")

	badges := []string{styles.ModeBadge.Render(string(mode))}
	if meetingDay {
		badges = append(badges, styles.MeetingBadge.Render("meeting day"))
	}
	middle := strings.Join(badges, " ")

	inner := max(width-styles.FooterStyle.GetHorizontalFrameSize(), 0)
	gap := inner - lipgloss.Width(prev) - lipgloss.Width(middle) - lipgloss.Width(next)
	if gap < 2 {
		return styles.FooterStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, prev, " ", middle, " ", next))
	}

	left := gap / 2
	line := prev + strings.Repeat(" ", left) + middle + strings.Repeat(" ", gap-left) + next
	return styles.FooterStyle.Width(width).Render(line)
}

func renderLink(t nav.Target, before, after string) string {
	switch t.Kind {
	case nav.KindInternal:
		return styles.StatusStyle(t.ColorClass).Render(before + t.Label + after)
	case nav.KindExternal:
		return styles.StatusStyle(t.ColorClass).Underline(true).Render(before + t.Label + " ↗" + after)
	case nav.KindEmpty:
		return styles.PlaceholderFg.Render(strings.Repeat(" ", len(before)+len(after)))
	default:
		return ""
	}
}
