package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/cli/backups"
	"github.com/duolog/duolog/internal/cli/designs"
	"github.com/duolog/duolog/internal/cli/gratitudes"
	"github.com/duolog/duolog/internal/cli/incomes"
	"github.com/duolog/duolog/internal/cli/milestones"
	"github.com/duolog/duolog/internal/cli/mirrors"
	"github.com/duolog/duolog/internal/cli/notes"
	"github.com/duolog/duolog/internal/cli/settings"
	"github.com/duolog/duolog/internal/cli/streaks"
	"github.com/duolog/duolog/internal/cli/system"
	"github.com/duolog/duolog/internal/cli/wins"
	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/errors"
	"github.com/duolog/duolog/internal/logger"
	"github.com/duolog/duolog/internal/milestone"
	"github.com/duolog/duolog/internal/storage"
	"github.com/duolog/duolog/internal/streak"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Journal database path." type:"path" default:"~/.config/duolog/duolog.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize the journal."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Open the journal dashboard." default:"1"`

	Design    designs.DesignCmd       `cmd:"" help:"Manage designs."`
	Note      notes.NoteCmd           `cmd:"" help:"Manage the sticky note board."`
	Win       wins.WinCmd             `cmd:"" help:"Record and review daily wins."`
	Streak    streaks.StreakCmd       `cmd:"" help:"Show the shared streak."`
	Milestone milestones.MilestoneCmd `cmd:"" help:"Track the milestone ladder."`
	Income    incomes.IncomeCmd       `cmd:"" help:"Track design income."`
	Gratitude gratitudes.GratitudeCmd `cmd:"" help:"Record gratitude."`
	Settings  settings.SettingsCmd    `cmd:"" help:"Manage journal settings."`
	Backup    backups.BackupCmd       `cmd:"" help:"Manage journal backups."`
	Mirror    mirrors.MirrorCmd       `cmd:"" help:"Share with your partner via the remote mirror."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Offline-first dream and design journal for two"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.NewSQLiteStore(CLI.Config)

	appCtx := &cli.Context{
		Store:      store,
		Streaks:    streak.NewEngine(store),
		Milestones: milestone.NewTracker(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
