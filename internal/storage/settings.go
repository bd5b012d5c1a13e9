package storage

import (
	"fmt"

	"github.com/duolog/duolog/internal/models"
)

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "manifestation_quote":
			settings.ManifestationQuote = value
		case "shared_why":
			settings.SharedWhy = value
		case "theme":
			settings.Theme = value
		case "sound_enabled":
			settings.SoundEnabled = value == "true"
		case "music_enabled":
			settings.MusicEnabled = value == "true"
		case "current_person":
			settings.CurrentPerson = models.Person(value)
		case "timezone":
			settings.Timezone = value
		case "last_mirror_push":
			settings.LastMirrorPush = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, ErrNotFound
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct {
		key   string
		value string
	}{
		{"manifestation_quote", settings.ManifestationQuote},
		{"shared_why", settings.SharedWhy},
		{"theme", settings.Theme},
		{"sound_enabled", fmt.Sprintf("%v", settings.SoundEnabled)},
		{"music_enabled", fmt.Sprintf("%v", settings.MusicEnabled)},
		{"current_person", string(settings.CurrentPerson)},
		{"timezone", settings.Timezone},
		{"last_mirror_push", settings.LastMirrorPush},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p.key, p.value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
