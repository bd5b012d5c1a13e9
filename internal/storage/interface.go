package storage

import (
	"errors"

	"github.com/duolog/duolog/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Streak record (singleton, keyed by constants.StreakKey)
	GetStreakData() (models.StreakData, error)
	// SaveStreakData replaces the whole record in one statement so a
	// partially-applied update can never be observed.
	SaveStreakData(models.StreakData) error

	// Milestones
	GetAllMilestones() ([]models.Milestone, error)
	GetMilestone(id string) (models.Milestone, error)
	UpdateMilestone(models.Milestone) error

	// Designs
	AddDesign(models.Design) error
	GetDesign(id string) (models.Design, error)
	GetAllDesigns() ([]models.Design, error)
	GetDesignsByPerson(person models.Person) ([]models.Design, error)
	GetHallOfFame() ([]models.Design, error)
	CountDesigns() (int, error)
	UpdateDesign(models.Design) error
	DeleteDesign(id string) error

	// Hype events
	AddHypeEvent(models.HypeEvent) error
	GetHypeEventsForDesign(designID string) ([]models.HypeEvent, error)
	GetAllHypeEvents() ([]models.HypeEvent, error)

	// Sticky notes
	AddNote(models.StickyNote) error
	GetNote(id string) (models.StickyNote, error)
	GetAllNotes() ([]models.StickyNote, error)
	GetNotesByType(noteType models.NoteType) ([]models.StickyNote, error)
	UpdateNote(models.StickyNote) error
	DeleteNote(id string) error

	// Daily wins
	SaveWin(models.DailyWin) error
	GetWin(person models.Person, day string) (models.DailyWin, error)
	GetWinsByDay(day string) ([]models.DailyWin, error)
	GetAllWins() ([]models.DailyWin, error)

	// Income
	AddIncome(models.Income) error
	GetAllIncome() ([]models.Income, error)
	GetIncomeByPerson(person models.Person) ([]models.Income, error)
	GetTotalIncome() (int64, error)

	// Gratitude
	AddGratitude(models.GratitudeEntry) error
	GetGratitudeByDay(day string) ([]models.GratitudeEntry, error)
	GetAllGratitude() ([]models.GratitudeEntry, error)

	// Utils
	GetConfigPath() string
}
