package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/agendanav/internal/core/agenda"
)

// itemMarkdown describes an agenda item as a markdown document.
func itemMarkdown(it *agenda.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", it.Title)
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Code | `%s` |\n", orDash(it.Attach))
	fmt.Fprintf(&b, "| Class | %s |\n", it.Class())
	fmt.Fprintf(&b, "| Status | %s |\n", orDash(it.Status.Color))
	fmt.Fprintf(&b, "| Shepherd | %s |\n", orDash(it.Shepherd))
	fmt.Fprintf(&b, "| Ready for review | %t |\n", it.Status.ReadyForReview)
	fmt.Fprintf(&b, "| Skippable | %t |\n", it.Status.Skippable)
	fmt.Fprintf(&b, "\n`%s`\n", it.Href)

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// renderDetail renders the item through glamour, falling back to the raw
// markdown when rendering fails.
func renderDetail(it *agenda.Item, width int) string {
	md := itemMarkdown(it)

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}

	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}
