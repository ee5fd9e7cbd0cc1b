package styles

import "github.com/charmbracelet/lipgloss"

// StatusColor maps an agenda status color class to a palette color. Unknown
// classes, including "blank", render muted.
func StatusColor(class string) lipgloss.Color {
	p := CurrentPalette
	switch class {
	case "ready":
		return p.Warning
	case "reviewed":
		return p.Success
	case "commented":
		return p.Secondary
	case "missing":
		return p.Error
	case "available":
		return p.Primary
	default:
		return p.Muted
	}
}

// StatusStyle returns a bold foreground style for a status color class.
func StatusStyle(class string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(class)).Bold(class != "" && class != "blank")
}
