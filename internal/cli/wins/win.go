package wins

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/models"
	"github.com/duolog/duolog/internal/storage"
)

type WinCmd struct {
	Add  WinAddCmd  `cmd:"" help:"Record today's win."`
	List WinListCmd `cmd:"" help:"List recorded wins."`
}

type WinAddCmd struct {
	Content string `arg:"" help:"The one thing you're proud of today."`
	Person  string `help:"Person recording the win (default: current person)."`
	Day     string `help:"Day to record for (YYYY-MM-DD, default: today)."`
}

func (c *WinAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	person, err := ctx.ResolvePerson(c.Person)
	if err != nil {
		return err
	}
	day, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	replacing := false
	if _, err := ctx.Store.GetWin(person, day); err == nil {
		replacing = true
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	win := models.DailyWin{
		ID:        uuid.New().String(),
		Person:    person,
		Content:   c.Content,
		Day:       day,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.SaveWin(win); err != nil {
		return err
	}

	ctx.RecordActivity(person)

	if replacing {
		fmt.Printf("Updated %s's win for %s.\n", person, day)
	} else {
		fmt.Printf("Recorded %s's win for %s. 🎉\n", person, day)
	}
	return nil
}

type WinListCmd struct {
	Day string `help:"Only show wins for this day (YYYY-MM-DD)."`
}

func (c *WinListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var list []models.DailyWin
	var err error
	if c.Day != "" {
		day, derr := ctx.ResolveDay(c.Day)
		if derr != nil {
			return derr
		}
		list, err = ctx.Store.GetWinsByDay(day)
	} else {
		list, err = ctx.Store.GetAllWins()
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No wins recorded yet.")
		return nil
	}

	for _, w := range list {
		fmt.Printf("%s  %-8s %s\n", w.Day, w.Person, w.Content)
	}
	return nil
}
