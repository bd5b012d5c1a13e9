// Package mirror publishes local journal data to a shared remote Postgres
// so each partner can see the other's work. The mirror is one-way and
// best-effort: a failed push logs a warning and changes nothing locally, and
// no delivery or ordering is guaranteed.
package mirror

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/keyring"
	"github.com/duolog/duolog/internal/logger"
	"github.com/duolog/duolog/internal/models"
)

// Store is the slice of the local store the mirror reads from.
type Store interface {
	GetAllDesigns() ([]models.Design, error)
	GetAllHypeEvents() ([]models.HypeEvent, error)
}

// PushStats summarizes one push run.
type PushStats struct {
	Designs    int
	HypeEvents int
	Failed     int
}

// FeedItem is one partner design read back from the remote.
type FeedItem struct {
	ID         string
	Person     models.Person
	Title      string
	Tool       models.Tool
	MoodRating int
	HypeCount  int
	CreatedAt  time.Time
}

// Publisher pushes journal data to the remote mirror.
type Publisher struct {
	dsn string
}

func NewPublisher(dsn string) *Publisher {
	return &Publisher{dsn: dsn}
}

// ResolveDSN finds the mirror connection string: the DUOLOG_MIRROR_DSN
// environment variable first, then the OS keyring.
func ResolveDSN() (string, error) {
	if dsn := os.Getenv(constants.MirrorDSNEnv); dsn != "" {
		return dsn, nil
	}
	dsn, err := keyring.GetMirrorDSN()
	if err != nil {
		return "", fmt.Errorf("mirror is not configured, run 'duolog mirror config' first: %w", err)
	}
	return dsn, nil
}

// HasEmbeddedCredentials reports whether a postgres URL carries a password.
// Such strings must not be passed on the command line; they belong in the
// keyring or the environment.
func HasEmbeddedCredentials(dsn string) bool {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return false
	}
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (p *Publisher) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", p.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mirror connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mirror is unreachable: %w", err)
	}
	return db, nil
}

// ensureSchema creates the remote tables on first use. Image files stay on
// the device; only metadata is mirrored.
func (p *Publisher) ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS mirror_designs (
			id TEXT PRIMARY KEY,
			person TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			tool TEXT NOT NULL,
			tool_detail TEXT NOT NULL DEFAULT '',
			mood_rating INTEGER NOT NULL,
			work_type TEXT NOT NULL,
			is_hall_of_fame BOOLEAN NOT NULL DEFAULT FALSE,
			hype_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			pushed_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS mirror_hype_events (
			id TEXT PRIMARY KEY,
			from_person TEXT NOT NULL,
			to_person TEXT NOT NULL,
			design_id TEXT NOT NULL,
			type TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			pushed_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

// Push publishes all local designs and hype events. Individual row failures
// are logged and counted, never fatal; the local store is untouched.
func (p *Publisher) Push(store Store) (PushStats, error) {
	var stats PushStats

	db, err := p.open()
	if err != nil {
		return stats, err
	}
	defer db.Close()

	if err := p.ensureSchema(db); err != nil {
		return stats, fmt.Errorf("failed to prepare mirror schema: %w", err)
	}

	designs, err := store.GetAllDesigns()
	if err != nil {
		return stats, err
	}
	now := time.Now()
	for _, d := range designs {
		_, err := db.Exec(`
			INSERT INTO mirror_designs (id, person, title, description, tool, tool_detail, mood_rating, work_type, is_hall_of_fame, hype_count, created_at, pushed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				is_hall_of_fame = EXCLUDED.is_hall_of_fame,
				hype_count = EXCLUDED.hype_count,
				pushed_at = EXCLUDED.pushed_at`,
			d.ID, string(d.Person), d.Title, d.Description, string(d.Tool), d.ToolDetail,
			d.MoodRating, string(d.WorkType), d.IsHallOfFame, d.HypeCount, d.CreatedAt, now)
		if err != nil {
			logger.Warn("Failed to mirror design", "id", d.ID, "error", err)
			stats.Failed++
			continue
		}
		stats.Designs++
	}

	events, err := store.GetAllHypeEvents()
	if err != nil {
		return stats, err
	}
	for _, e := range events {
		_, err := db.Exec(`
			INSERT INTO mirror_hype_events (id, from_person, to_person, design_id, type, created_at, pushed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			e.ID, string(e.FromPerson), string(e.ToPerson), e.DesignID, string(e.Type), e.CreatedAt, now)
		if err != nil {
			logger.Warn("Failed to mirror hype event", "id", e.ID, "error", err)
			stats.Failed++
			continue
		}
		stats.HypeEvents++
	}

	return stats, nil
}

// Feed reads the partner's most recent designs from the remote.
func (p *Publisher) Feed(partner models.Person, limit int) ([]FeedItem, error) {
	if limit <= 0 {
		limit = 10
	}

	db, err := p.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, person, title, tool, mood_rating, hype_count, created_at
		FROM mirror_designs WHERE person = $1
		ORDER BY created_at DESC LIMIT $2`, string(partner), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FeedItem
	for rows.Next() {
		var item FeedItem
		if err := rows.Scan(&item.ID, &item.Person, &item.Title, &item.Tool, &item.MoodRating, &item.HypeCount, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
