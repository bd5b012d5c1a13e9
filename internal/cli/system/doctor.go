package system

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/duolog/duolog/internal/backup"
	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/keyring"
	"github.com/duolog/duolog/internal/migration"
	"github.com/duolog/duolog/internal/storage"
	"github.com/duolog/duolog/internal/utils"
	"github.com/duolog/duolog/migrations"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(ctx *cli.Context) error
	warn bool // warnings don't fail the doctor run
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	checks := []check{
		{name: "Database reachable", run: checkDBReachable},
		{name: "Schema version", run: checkSchemaVersion},
		{name: "Streak record", run: checkStreakRecord},
		{name: "Milestone ladder", run: checkMilestoneLadder},
		{name: "Clock/timezone", run: checkClockTimezone},
		{name: "Backups present", run: checkBackupsPresent, warn: true},
		{name: "Keyring available", run: checkKeyring, warn: true},
		{name: "Single instance", run: checkSingleInstance, warn: true},
	}

	hasError := false
	dbReachable := true
	for i, c := range checks {
		// The streak, ladder, and timezone checks read from the database.
		if i >= 2 && i <= 4 && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		if err := c.run(ctx); err != nil {
			if c.warn {
				fmt.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
				continue
			}
			fmt.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
			if i == 0 {
				dbReachable = false
			}
			continue
		}
		fmt.Printf("✓ %s: OK\n", c.name)
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}

	return migration.NewRunner(db, subFS).ValidateVersion()
}

func checkStreakRecord(ctx *cli.Context) error {
	sd, err := ctx.Store.GetStreakData()
	if err != nil {
		return fmt.Errorf("streak record missing, run 'duolog init': %w", err)
	}
	if sd.LongestStreak < sd.CurrentStreak {
		return fmt.Errorf("longest streak (%d) is less than current streak (%d)", sd.LongestStreak, sd.CurrentStreak)
	}
	// An empty last active date means no activity has been recorded yet.
	if sd.LastActiveDate != "" && !utils.ValidateDateFormat(sd.LastActiveDate) {
		return fmt.Errorf("last active date %q is not a valid YYYY-MM-DD date", sd.LastActiveDate)
	}
	if len(sd.History) > constants.StreakHistoryLimit {
		return fmt.Errorf("streak history has %d entries (limit %d)", len(sd.History), constants.StreakHistoryLimit)
	}
	return nil
}

func checkMilestoneLadder(ctx *cli.Context) error {
	milestones, err := ctx.Store.GetAllMilestones()
	if err != nil {
		return err
	}
	if len(milestones) == 0 {
		return fmt.Errorf("milestone ladder missing, run 'duolog init'")
	}
	for i, m := range milestones {
		if m.Stage != i+1 {
			return fmt.Errorf("milestone stages are not contiguous: expected stage %d, found %d", i+1, m.Stage)
		}
		if m.IsCompleted && m.CompletedDate == nil {
			return fmt.Errorf("milestone %q is completed but has no completion date", m.Title)
		}
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("configured timezone %q is invalid", settings.Timezone)
	}

	// A system clock before the build era means streak dates will go backward.
	if time.Now().Year() < 2024 {
		return fmt.Errorf("system clock appears to be set in the past: %v", time.Now())
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider running 'duolog backup create'")
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is unavailable; mirror credentials will need %s", constants.MirrorDSNEnv)
	}
	return nil
}

// checkSingleInstance warns when another duolog process is running, since
// two writers to the same SQLite file invite lock contention.
func checkSingleInstance(ctx *cli.Context) error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (pid %d)", constants.AppName, p.Pid())
		}
	}
	return nil
}
