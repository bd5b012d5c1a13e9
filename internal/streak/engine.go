// Package streak maintains the single shared activity-streak record. Every
// creative action by either person funnels through RecordActivity, which owns
// the day-granularity transition logic for the streak counters.
package streak

import (
	"fmt"
	"sync"

	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/models"
	"github.com/duolog/duolog/internal/utils"
)

// Store is the slice of the local store the engine needs.
type Store interface {
	GetStreakData() (models.StreakData, error)
	SaveStreakData(models.StreakData) error
	GetSettings() (models.Settings, error)
}

// Engine computes and persists streak transitions. The whole record is
// rewritten in one store call, so a failed update never leaves the counters
// and the history disagreeing.
type Engine struct {
	store Store

	// mu serializes the read-modify-write so concurrent callers cannot
	// lose each other's updates.
	mu sync.Mutex
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Data returns the current streak record. Returns storage.ErrNotFound
// (wrapped) when the record has not been seeded.
func (e *Engine) Data() (models.StreakData, error) {
	return e.store.GetStreakData()
}

// RecordActivity registers that the person did creative work today, where
// "today" is determined by the configured timezone.
func (e *Engine) RecordActivity(person models.Person) error {
	settings, err := e.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	today, err := utils.TodayInTimezone(settings.Timezone)
	if err != nil {
		return err
	}
	return e.RecordActivityOn(person, today)
}

// RecordActivityOn registers activity for an explicit calendar date. The
// transition depends only on the stored lastActiveDate and the given date:
//
//	same day      -> streak unchanged
//	next day      -> streak + 1
//	gap (> 1 day) -> streak resets to 1, today still counts
//	date earlier than lastActiveDate (clock moved backward) -> counters
//	unchanged; the contributor is still recorded in the history
//
// longestStreak tracks the running maximum and never decreases.
func (e *Engine) RecordActivityOn(person models.Person, today string) error {
	if !utils.ValidateDateFormat(today) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", today)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sd, err := e.store.GetStreakData()
	if err != nil {
		return fmt.Errorf("failed to load streak record: %w", err)
	}

	// A freshly seeded record has no last active date; the first activity
	// starts the streak at 1.
	diffDays := 2
	if sd.LastActiveDate != "" {
		diffDays, err = utils.DiffDays(sd.LastActiveDate, today)
		if err != nil {
			return err
		}
	}

	switch {
	case diffDays == 1:
		sd.CurrentStreak++
	case diffDays > 1:
		sd.CurrentStreak = 1
	}
	// diffDays == 0: already active today. diffDays < 0: stale clock; the
	// counters stay put rather than guessing at a correction.

	if sd.CurrentStreak > sd.LongestStreak {
		sd.LongestStreak = sd.CurrentStreak
	}
	sd.LastActiveDate = today

	if entry := sd.HistoryEntry(today); entry != nil {
		if !entry.HasPerson(person) {
			entry.Persons = append(entry.Persons, person)
		}
	} else {
		sd.History = append(sd.History, models.StreakHistoryEntry{
			Date:    today,
			Persons: []models.Person{person},
		})
		sd.TotalActiveDays++
	}

	if len(sd.History) > constants.StreakHistoryLimit {
		sd.History = sd.History[len(sd.History)-constants.StreakHistoryLimit:]
	}

	return e.store.SaveStreakData(sd)
}
