package storage

import (
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

func (s *SQLiteStore) AddGratitude(g models.GratitudeEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO gratitude_entries (id, person, content, day, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		g.ID, string(g.Person), g.Content, g.Day, g.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) queryGratitude(query string, args ...any) ([]models.GratitudeEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.GratitudeEntry
	for rows.Next() {
		var g models.GratitudeEntry
		var createdAt string
		if err := rows.Scan(&g.ID, &g.Person, &g.Content, &g.Day, &createdAt); err != nil {
			return nil, err
		}
		g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for gratitude entry %s: %w", g.ID, err)
		}
		entries = append(entries, g)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) GetGratitudeByDay(day string) ([]models.GratitudeEntry, error) {
	return s.queryGratitude(`
		SELECT id, person, content, day, created_at
		FROM gratitude_entries WHERE day = ? ORDER BY created_at`, day)
}

func (s *SQLiteStore) GetAllGratitude() ([]models.GratitudeEntry, error) {
	return s.queryGratitude(`
		SELECT id, person, content, day, created_at
		FROM gratitude_entries ORDER BY day DESC, created_at DESC`)
}
