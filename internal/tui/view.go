package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duolog/duolog/internal/milestone"
	"github.com/duolog/duolog/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return docStyle.Render(fmt.Sprintf("Failed to load the journal: %v\n\nPress q to quit.", m.loadErr))
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.viewDashboard())
	case StateDesigns:
		content = docStyle.Render(m.designList.View())
	case StateBoard:
		content = docStyle.Render(m.board.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Designs", "Board"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	accent := lipgloss.NewStyle().Foreground(m.theme.accent).Bold(true)
	secondary := lipgloss.NewStyle().Foreground(m.theme.secondary)
	muted := lipgloss.NewStyle().Foreground(m.theme.muted)

	var b strings.Builder

	b.WriteString(quoteStyle.Render(m.settings.ManifestationQuote))
	b.WriteString("\n\n")

	b.WriteString(accent.Render(fmt.Sprintf("🔥 %d day streak", m.streakData.CurrentStreak)))
	b.WriteString(muted.Render(fmt.Sprintf("   longest %d · %d active days total",
		m.streakData.LongestStreak, m.streakData.TotalActiveDays)))
	b.WriteString("\n\n")

	current := milestone.CurrentStage(m.ladder)
	for _, ms := range m.ladder {
		line := fmt.Sprintf("%s %s", ms.Emoji, ms.Title)
		switch {
		case ms.IsCompleted:
			b.WriteString(secondary.Render("✓ " + line))
		case ms.Stage == current:
			b.WriteString(accent.Render("▶ " + line))
		default:
			b.WriteString(muted.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("%d of %d milestones (%.0f%%)",
		m.progress.Completed, m.progress.Total, m.progress.Percentage)))
	b.WriteString("\n\n")

	b.WriteString(accent.Render("Recent wins"))
	b.WriteString("\n")
	if len(m.wins) == 0 {
		b.WriteString(muted.Render("none yet"))
		b.WriteString("\n")
	}
	for i, w := range m.wins {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("%s  %s: %s\n", w.Day, w.Person, w.Content))
	}

	if m.settings.SharedWhy != "" {
		b.WriteString("\n")
		b.WriteString(muted.Render("Why: " + m.settings.SharedWhy))
	}

	return b.String()
}

func renderBoard(notes []models.StickyNote) string {
	if len(notes) == 0 {
		return "The board is empty."
	}

	var b strings.Builder
	for _, n := range notes {
		pin := "  "
		if n.IsPinned {
			pin = "📌"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s\n", pin, n.Type, n.Content))
		b.WriteString(fmt.Sprintf("     %s, %s\n\n", n.Person, n.CreatedAt.Format("2006-01-02")))
	}
	return b.String()
}
