package tui

import "github.com/charmbracelet/lipgloss"

// palette maps a journal theme to the accent colors the dashboard uses.
type palette struct {
	accent    lipgloss.Color
	secondary lipgloss.Color
	muted     lipgloss.Color
}

func themePalette(theme string) palette {
	switch theme {
	case "midnight":
		return palette{accent: "63", secondary: "99", muted: "240"}
	case "celebration":
		return palette{accent: "205", secondary: "220", muted: "240"}
	default: // sunrise
		return palette{accent: "208", secondary: "214", muted: "240"}
	}
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	quoteStyle = lipgloss.NewStyle().Italic(true)
)
