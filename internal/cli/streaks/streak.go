package streaks

import (
	"fmt"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/models"
)

type StreakCmd struct {
	Show    StreakShowCmd    `cmd:"" default:"1" help:"Show the shared streak."`
	History StreakHistoryCmd `cmd:"" help:"Show who contributed on recent active days."`
}

type StreakShowCmd struct{}

func (c *StreakShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := ctx.Streaks.Data()
	if err != nil {
		return err
	}

	if data.CurrentStreak == 0 {
		fmt.Println("No streak yet. Add a design or record a win to start one!")
	} else {
		fmt.Printf("🔥 Current streak: %d day(s)\n", data.CurrentStreak)
	}
	fmt.Printf("   Longest streak: %d day(s)\n", data.LongestStreak)
	fmt.Printf("   Total active days: %d\n", data.TotalActiveDays)
	if data.LastActiveDate != "" {
		fmt.Printf("   Last active: %s\n", data.LastActiveDate)
	}
	return nil
}

type StreakHistoryCmd struct {
	Limit int `help:"Maximum number of days to show." default:"14"`
}

func (c *StreakHistoryCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := ctx.Streaks.Data()
	if err != nil {
		return err
	}

	if len(data.History) == 0 {
		fmt.Println("No activity recorded yet.")
		return nil
	}

	// History is ordered oldest first; show the most recent days.
	start := 0
	if c.Limit > 0 && len(data.History) > c.Limit {
		start = len(data.History) - c.Limit
	}
	for _, entry := range data.History[start:] {
		fmt.Printf("%s  %s\n", entry.Date, contributors(entry))
	}
	return nil
}

func contributors(entry models.StreakHistoryEntry) string {
	switch {
	case entry.HasPerson(models.PersonShubham) && entry.HasPerson(models.PersonKhushi):
		return "both 💪"
	case entry.HasPerson(models.PersonShubham):
		return string(models.PersonShubham)
	case entry.HasPerson(models.PersonKhushi):
		return string(models.PersonKhushi)
	default:
		return "-"
	}
}
