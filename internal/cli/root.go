package cli

import (
	"fmt"

	"github.com/duolog/duolog/internal/backup"
	"github.com/duolog/duolog/internal/logger"
	"github.com/duolog/duolog/internal/milestone"
	"github.com/duolog/duolog/internal/models"
	"github.com/duolog/duolog/internal/storage"
	"github.com/duolog/duolog/internal/streak"
	"github.com/duolog/duolog/internal/utils"
)

type Context struct {
	Store      storage.Provider
	Streaks    *streak.Engine
	Milestones *milestone.Tracker
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolvePerson returns the person a command acts for: the explicit flag
// value when given, otherwise the current person from settings.
func (c *Context) ResolvePerson(flag string) (models.Person, error) {
	if flag != "" {
		return models.ParsePerson(flag)
	}

	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.CurrentPerson, nil
}

// ResolveDay returns the day a command acts on: the explicit flag value when
// given (validated), otherwise today in the configured timezone.
func (c *Context) ResolveDay(flag string) (string, error) {
	if flag != "" {
		if !utils.ValidateDateFormat(flag) {
			return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", flag)
		}
		return flag, nil
	}

	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	return utils.TodayInTimezone(settings.Timezone)
}

// RecordActivity funnels a creative action into the streak engine. Failures
// are logged but never block the action that triggered them.
func (c *Context) RecordActivity(person models.Person) {
	if err := c.Streaks.RecordActivity(person); err != nil {
		logger.Warn("Failed to record streak activity", "person", person, "error", err)
	}
}
