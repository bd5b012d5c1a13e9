package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

func scanMilestone(scan func(dest ...any) error) (models.Milestone, error) {
	var m models.Milestone
	var isCompleted int
	var createdAt string
	var completedDate, completionNote sql.NullString

	err := scan(&m.ID, &m.Stage, &m.Title, &m.Description, &m.Emoji, &isCompleted, &completedDate, &completionNote, &createdAt)
	if err != nil {
		return models.Milestone{}, err
	}

	m.IsCompleted = isCompleted != 0
	if completedDate.Valid {
		t, err := time.Parse(time.RFC3339, completedDate.String)
		if err != nil {
			return models.Milestone{}, fmt.Errorf("failed to parse completed_date: %w", err)
		}
		m.CompletedDate = &t
	}
	if completionNote.Valid {
		m.CompletionNote = completionNote.String
	}
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Milestone{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return m, nil
}

func (s *SQLiteStore) GetAllMilestones() ([]models.Milestone, error) {
	rows, err := s.db.Query(`
		SELECT id, stage, title, description, emoji, is_completed, completed_date, completion_note, created_at
		FROM milestones ORDER BY stage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows.Scan)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}

	return milestones, rows.Err()
}

func (s *SQLiteStore) GetMilestone(id string) (models.Milestone, error) {
	row := s.db.QueryRow(`
		SELECT id, stage, title, description, emoji, is_completed, completed_date, completion_note, created_at
		FROM milestones WHERE id = ?`, id)

	m, err := scanMilestone(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Milestone{}, ErrNotFound
	}
	return m, err
}

func (s *SQLiteStore) UpdateMilestone(m models.Milestone) error {
	var completedDate, completionNote sql.NullString
	if m.CompletedDate != nil {
		completedDate = sql.NullString{String: m.CompletedDate.Format(time.RFC3339), Valid: true}
	}
	if m.CompletionNote != "" {
		completionNote = sql.NullString{String: m.CompletionNote, Valid: true}
	}

	isCompleted := 0
	if m.IsCompleted {
		isCompleted = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO milestones (id, stage, title, description, emoji, is_completed, completed_date, completion_note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			emoji = excluded.emoji,
			is_completed = excluded.is_completed,
			completed_date = excluded.completed_date,
			completion_note = excluded.completion_note`,
		m.ID, m.Stage, m.Title, m.Description, m.Emoji, isCompleted, completedDate, completionNote,
		m.CreatedAt.Format(time.RFC3339))

	return err
}
