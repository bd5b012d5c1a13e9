package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

func scanNote(scan func(dest ...any) error) (models.StickyNote, error) {
	var n models.StickyNote
	var isPinned int
	var createdAt string

	err := scan(&n.ID, &n.Person, &n.Content, &n.Type, &n.Color, &isPinned, &n.LinkedURL, &createdAt)
	if err != nil {
		return models.StickyNote{}, err
	}

	n.IsPinned = isPinned != 0
	n.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.StickyNote{}, fmt.Errorf("failed to parse created_at for note %s: %w", n.ID, err)
	}

	return n, nil
}

func (s *SQLiteStore) queryNotes(query string, args ...any) ([]models.StickyNote, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.StickyNote
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (s *SQLiteStore) AddNote(n models.StickyNote) error {
	return s.UpdateNote(n)
}

func (s *SQLiteStore) GetNote(id string) (models.StickyNote, error) {
	row := s.db.QueryRow(`
		SELECT id, person, content, type, color, is_pinned, linked_url, created_at
		FROM sticky_notes WHERE id = ?`, id)

	n, err := scanNote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StickyNote{}, ErrNotFound
	}
	return n, err
}

func (s *SQLiteStore) GetAllNotes() ([]models.StickyNote, error) {
	// Pinned notes first, then newest first within each group.
	return s.queryNotes(`
		SELECT id, person, content, type, color, is_pinned, linked_url, created_at
		FROM sticky_notes ORDER BY is_pinned DESC, created_at DESC`)
}

func (s *SQLiteStore) GetNotesByType(noteType models.NoteType) ([]models.StickyNote, error) {
	return s.queryNotes(`
		SELECT id, person, content, type, color, is_pinned, linked_url, created_at
		FROM sticky_notes WHERE type = ? ORDER BY created_at DESC`, string(noteType))
}

func (s *SQLiteStore) UpdateNote(n models.StickyNote) error {
	isPinned := 0
	if n.IsPinned {
		isPinned = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO sticky_notes (id, person, content, type, color, is_pinned, linked_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			type = excluded.type,
			color = excluded.color,
			is_pinned = excluded.is_pinned,
			linked_url = excluded.linked_url`,
		n.ID, string(n.Person), n.Content, string(n.Type), n.Color, isPinned, n.LinkedURL,
		n.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *SQLiteStore) DeleteNote(id string) error {
	result, err := s.db.Exec("DELETE FROM sticky_notes WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
