package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

const designColumns = `id, person, title, description, image_path, thumbnail_path, tool, tool_detail,
	tags, mood_rating, work_type, is_hall_of_fame, hall_of_fame_month, is_first_design, hype_count,
	created_at, updated_at`

func scanDesign(scan func(dest ...any) error) (models.Design, error) {
	var d models.Design
	var tagsJSON, createdAt, updatedAt string
	var isHallOfFame, isFirstDesign int

	err := scan(&d.ID, &d.Person, &d.Title, &d.Description, &d.ImagePath, &d.ThumbnailPath,
		&d.Tool, &d.ToolDetail, &tagsJSON, &d.MoodRating, &d.WorkType,
		&isHallOfFame, &d.HallOfFameMonth, &isFirstDesign, &d.HypeCount, &createdAt, &updatedAt)
	if err != nil {
		return models.Design{}, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &d.Tags); err != nil {
		return models.Design{}, fmt.Errorf("failed to parse tags for design %s: %w", d.ID, err)
	}
	d.IsHallOfFame = isHallOfFame != 0
	d.IsFirstDesign = isFirstDesign != 0
	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Design{}, fmt.Errorf("failed to parse created_at for design %s: %w", d.ID, err)
	}
	d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Design{}, fmt.Errorf("failed to parse updated_at for design %s: %w", d.ID, err)
	}

	return d, nil
}

func (s *SQLiteStore) queryDesigns(query string, args ...any) ([]models.Design, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []models.Design
	for rows.Next() {
		d, err := scanDesign(rows.Scan)
		if err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}

	return designs, rows.Err()
}

func (s *SQLiteStore) AddDesign(d models.Design) error {
	return s.UpdateDesign(d)
}

func (s *SQLiteStore) GetDesign(id string) (models.Design, error) {
	row := s.db.QueryRow("SELECT "+designColumns+" FROM designs WHERE id = ?", id)

	d, err := scanDesign(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Design{}, ErrNotFound
	}
	return d, err
}

func (s *SQLiteStore) GetAllDesigns() ([]models.Design, error) {
	return s.queryDesigns("SELECT " + designColumns + " FROM designs ORDER BY created_at DESC")
}

func (s *SQLiteStore) GetDesignsByPerson(person models.Person) ([]models.Design, error) {
	return s.queryDesigns("SELECT "+designColumns+" FROM designs WHERE person = ? ORDER BY created_at DESC", string(person))
}

func (s *SQLiteStore) GetHallOfFame() ([]models.Design, error) {
	return s.queryDesigns("SELECT " + designColumns + " FROM designs WHERE is_hall_of_fame = 1 ORDER BY hall_of_fame_month DESC")
}

func (s *SQLiteStore) CountDesigns() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT count(*) FROM designs").Scan(&count)
	return count, err
}

func (s *SQLiteStore) UpdateDesign(d models.Design) error {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	isHallOfFame, isFirstDesign := 0, 0
	if d.IsHallOfFame {
		isHallOfFame = 1
	}
	if d.IsFirstDesign {
		isFirstDesign = 1
	}

	_, err = s.db.Exec(`
		INSERT INTO designs (`+designColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			image_path = excluded.image_path,
			thumbnail_path = excluded.thumbnail_path,
			tool = excluded.tool,
			tool_detail = excluded.tool_detail,
			tags = excluded.tags,
			mood_rating = excluded.mood_rating,
			work_type = excluded.work_type,
			is_hall_of_fame = excluded.is_hall_of_fame,
			hall_of_fame_month = excluded.hall_of_fame_month,
			hype_count = excluded.hype_count,
			updated_at = excluded.updated_at`,
		d.ID, string(d.Person), d.Title, d.Description, d.ImagePath, d.ThumbnailPath,
		string(d.Tool), d.ToolDetail, string(tagsJSON), d.MoodRating, string(d.WorkType),
		isHallOfFame, d.HallOfFameMonth, isFirstDesign, d.HypeCount,
		d.CreatedAt.Format(time.RFC3339), d.UpdatedAt.Format(time.RFC3339))

	return err
}

func (s *SQLiteStore) DeleteDesign(id string) error {
	design, err := s.GetDesign(id)
	if err != nil {
		return err
	}
	if design.IsFirstDesign {
		return fmt.Errorf("cannot delete a first design, it is part of your history")
	}

	result, err := s.db.Exec("DELETE FROM designs WHERE id = ?", id)
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

// Hype events

func (s *SQLiteStore) AddHypeEvent(e models.HypeEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO hype_events (id, from_person, to_person, design_id, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.FromPerson), string(e.ToPerson), e.DesignID, string(e.Type),
		e.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) queryHypeEvents(query string, args ...any) ([]models.HypeEvent, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.HypeEvent
	for rows.Next() {
		var e models.HypeEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.FromPerson, &e.ToPerson, &e.DesignID, &e.Type, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for hype event %s: %w", e.ID, err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *SQLiteStore) GetHypeEventsForDesign(designID string) ([]models.HypeEvent, error) {
	return s.queryHypeEvents(`
		SELECT id, from_person, to_person, design_id, type, created_at
		FROM hype_events WHERE design_id = ? ORDER BY created_at`, designID)
}

func (s *SQLiteStore) GetAllHypeEvents() ([]models.HypeEvent, error) {
	return s.queryHypeEvents(`
		SELECT id, from_person, to_person, design_id, type, created_at
		FROM hype_events ORDER BY created_at`)
}
