package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

func (s *SQLiteStore) queryWins(query string, args ...any) ([]models.DailyWin, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wins []models.DailyWin
	for rows.Next() {
		var w models.DailyWin
		var createdAt string
		if err := rows.Scan(&w.ID, &w.Person, &w.Content, &w.Day, &createdAt); err != nil {
			return nil, err
		}
		w.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for win %s: %w", w.ID, err)
		}
		wins = append(wins, w)
	}

	return wins, rows.Err()
}

// SaveWin upserts the win for the person's day. There is at most one win
// per person per day; recording twice replaces the content.
func (s *SQLiteStore) SaveWin(w models.DailyWin) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_wins (id, person, content, day, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(person, day) DO UPDATE SET
			content = excluded.content`,
		w.ID, string(w.Person), w.Content, w.Day, w.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) GetWin(person models.Person, day string) (models.DailyWin, error) {
	row := s.db.QueryRow(`
		SELECT id, person, content, day, created_at
		FROM daily_wins WHERE person = ? AND day = ?`, string(person), day)

	var w models.DailyWin
	var createdAt string
	err := row.Scan(&w.ID, &w.Person, &w.Content, &w.Day, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailyWin{}, ErrNotFound
		}
		return models.DailyWin{}, err
	}
	w.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.DailyWin{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return w, nil
}

func (s *SQLiteStore) GetWinsByDay(day string) ([]models.DailyWin, error) {
	return s.queryWins(`
		SELECT id, person, content, day, created_at
		FROM daily_wins WHERE day = ? ORDER BY person`, day)
}

func (s *SQLiteStore) GetAllWins() ([]models.DailyWin, error) {
	return s.queryWins(`
		SELECT id, person, content, day, created_at
		FROM daily_wins ORDER BY day DESC, person`)
}
