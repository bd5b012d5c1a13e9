package models

// StreakHistoryEntry records which persons were active on one calendar date.
// Entries are kept in recording order, not necessarily date order.
type StreakHistoryEntry struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	Persons []Person `json:"persons"`
}

// HasPerson reports whether the person already contributed on this date.
func (e *StreakHistoryEntry) HasPerson(p Person) bool {
	for _, existing := range e.Persons {
		if existing == p {
			return true
		}
	}
	return false
}

// StreakData is the single shared activity-streak record. One instance
// exists for the whole app, keyed by constants.StreakKey.
type StreakData struct {
	ID              string               `json:"id"`
	CurrentStreak   int                  `json:"current_streak"`
	LongestStreak   int                  `json:"longest_streak"`
	LastActiveDate  string               `json:"last_active_date"` // YYYY-MM-DD
	TotalActiveDays int                  `json:"total_active_days"`
	History         []StreakHistoryEntry `json:"history"`
}

// HistoryEntry returns the history entry for the given date, or nil.
func (s *StreakData) HistoryEntry(date string) *StreakHistoryEntry {
	for i := range s.History {
		if s.History[i].Date == date {
			return &s.History[i]
		}
	}
	return nil
}
