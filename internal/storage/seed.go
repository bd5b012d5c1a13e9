package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/models"
)

// defaultMilestones is the fixed five-stage ladder seeded at first launch.
func defaultMilestones(now time.Time) []models.Milestone {
	return []models.Milestone{
		{
			ID:          uuid.New().String(),
			Stage:       1,
			Title:       "The Seed",
			Description: "Upload your first design. Plant the seed of greatness.",
			Emoji:       "🌱",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Stage:       2,
			Title:       "First Sprout",
			Description: "Complete a 7-day streak. Consistency is water.",
			Emoji:       "🌿",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Stage:       3,
			Title:       "Growing Strong",
			Description: "Earn your first ₹1,000 from design. Validation.",
			Emoji:       "🌳",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Stage:       4,
			Title:       "In Bloom",
			Description: "Complete 30 days of consistent creation or reach ₹10k income.",
			Emoji:       "🌸",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Stage:       5,
			Title:       "The Harvest",
			Description: "Reach 100 days streak OR land a major client project.",
			Emoji:       "🏆",
			CreatedAt:   now,
		},
	}
}

// seed writes default settings, the milestone ladder, and the zeroed streak
// record on first launch. Re-running Init on an existing database is a no-op.
func (s *SQLiteStore) seed() error {
	now := time.Now()

	if _, err := s.GetSettings(); errors.Is(err, ErrNotFound) {
		defaults := models.Settings{
			ManifestationQuote: constants.DefaultManifestationQuote,
			SharedWhy:          constants.DefaultSharedWhy,
			Theme:              constants.DefaultTheme,
			SoundEnabled:       constants.DefaultSoundEnabled,
			MusicEnabled:       constants.DefaultMusicEnabled,
			CurrentPerson:      models.PersonShubham,
			Timezone:           constants.DefaultTimezone,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	existing, err := s.GetAllMilestones()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, m := range defaultMilestones(now) {
			if err := s.UpdateMilestone(m); err != nil {
				return err
			}
		}
	}

	// LastActiveDate stays empty until the first recorded activity so that
	// activity on the seed day still starts the streak at 1.
	if _, err := s.GetStreakData(); errors.Is(err, ErrNotFound) {
		return s.SaveStreakData(models.StreakData{
			ID:      constants.StreakKey,
			History: []models.StreakHistoryEntry{},
		})
	} else if err != nil {
		return err
	}

	return nil
}
