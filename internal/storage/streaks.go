package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/models"
)

func (s *SQLiteStore) GetStreakData() (models.StreakData, error) {
	row := s.db.QueryRow(`
		SELECT id, current_streak, longest_streak, last_active_date, total_active_days, history
		FROM streaks WHERE id = ?`, constants.StreakKey)

	var sd models.StreakData
	var historyJSON string

	err := row.Scan(&sd.ID, &sd.CurrentStreak, &sd.LongestStreak, &sd.LastActiveDate, &sd.TotalActiveDays, &historyJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StreakData{}, ErrNotFound
		}
		return models.StreakData{}, err
	}

	if err := json.Unmarshal([]byte(historyJSON), &sd.History); err != nil {
		return models.StreakData{}, fmt.Errorf("failed to parse streak history: %w", err)
	}
	if sd.History == nil {
		sd.History = []models.StreakHistoryEntry{}
	}

	return sd, nil
}

// SaveStreakData replaces the whole streak record in a single upsert. The
// history lives in the same row as the counters, so readers always see the
// counters and history from the same write.
func (s *SQLiteStore) SaveStreakData(sd models.StreakData) error {
	if sd.ID == "" {
		sd.ID = constants.StreakKey
	}

	history := sd.History
	if history == nil {
		history = []models.StreakHistoryEntry{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode streak history: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO streaks (id, current_streak, longest_streak, last_active_date, total_active_days, history)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_active_date = excluded.last_active_date,
			total_active_days = excluded.total_active_days,
			history = excluded.history`,
		sd.ID, sd.CurrentStreak, sd.LongestStreak, sd.LastActiveDate, sd.TotalActiveDays, string(historyJSON))

	return err
}
