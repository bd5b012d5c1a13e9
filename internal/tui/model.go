package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/duolog/duolog/internal/milestone"
	"github.com/duolog/duolog/internal/models"
	"github.com/duolog/duolog/internal/storage"
	"github.com/duolog/duolog/internal/streak"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateDesigns
	StateBoard
)

const tabCount = 3

type designItem struct {
	design models.Design
}

func (i designItem) Title() string {
	title := i.design.Title
	if i.design.IsFirstDesign {
		title += " 🌱"
	}
	if i.design.IsHallOfFame {
		title += " 🏆"
	}
	return title
}

func (i designItem) Description() string {
	return fmt.Sprintf("%s · %s · 🔥 %d", i.design.Person, i.design.Tool, i.design.HypeCount)
}

func (i designItem) FilterValue() string { return i.design.Title }

// Model is the read-only journal dashboard. Edits go through the CLI
// commands; the dashboard only presents.
type Model struct {
	store      storage.Provider
	streaks    *streak.Engine
	milestones *milestone.Tracker

	state    SessionState
	keys     KeyMap
	help     help.Model
	theme    palette
	quitting bool
	width    int
	height   int

	settings   models.Settings
	streakData models.StreakData
	ladder     []models.Milestone
	progress   models.MilestoneProgress
	wins       []models.DailyWin
	loadErr    error

	designList list.Model
	board      viewport.Model
}

func NewModel(store storage.Provider, streaks *streak.Engine, milestones *milestone.Tracker) Model {
	m := Model{
		store:      store,
		streaks:    streaks,
		milestones: milestones,
		state:      StateDashboard,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      themePalette(""),
	}

	m.settings, m.loadErr = store.GetSettings()
	if m.loadErr == nil {
		m.theme = themePalette(m.settings.Theme)
	}
	if m.loadErr == nil {
		m.streakData, m.loadErr = streaks.Data()
	}
	if m.loadErr == nil {
		m.ladder, m.loadErr = milestones.All()
	}
	if m.loadErr == nil {
		m.progress, m.loadErr = milestones.Progress()
	}
	if m.loadErr == nil {
		m.wins, m.loadErr = store.GetAllWins()
	}

	designs, err := store.GetAllDesigns()
	if err != nil && m.loadErr == nil {
		m.loadErr = err
	}
	items := make([]list.Item, 0, len(designs))
	for _, d := range designs {
		items = append(items, designItem{design: d})
	}
	m.designList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.designList.Title = "Designs"
	m.designList.SetShowHelp(false)

	m.board = viewport.New(0, 0)
	if notes, err := store.GetAllNotes(); err == nil {
		m.board.SetContent(renderBoard(notes))
	} else if m.loadErr == nil {
		m.loadErr = err
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state != StateDashboard {
		keys = append(keys, m.keys.Up, m.keys.Down)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
