package gratitudes

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/models"
)

type GratitudeCmd struct {
	Add  GratitudeAddCmd  `cmd:"" help:"Record something you're grateful for."`
	List GratitudeListCmd `cmd:"" help:"List gratitude entries."`
}

type GratitudeAddCmd struct {
	Content string `arg:"" help:"What you're grateful for."`
	Person  string `help:"Person recording (default: current person)."`
	Day     string `help:"Day to record for (YYYY-MM-DD, default: today)."`
}

func (c *GratitudeAddCmd) Run(ctx *cli.Context) error {
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

	entry := models.GratitudeEntry{
		ID:        uuid.New().String(),
		Person:    person,
		Content:   c.Content,
		Day:       day,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddGratitude(entry); err != nil {
		return err
	}

	fmt.Println("Gratitude recorded. 🙏")
	return nil
}

type GratitudeListCmd struct {
	Day string `help:"Only show entries for this day (YYYY-MM-DD)."`
}

func (c *GratitudeListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var list []models.GratitudeEntry
	var err error
	if c.Day != "" {
		day, derr := ctx.ResolveDay(c.Day)
		if derr != nil {
			return derr
		}
		list, err = ctx.Store.GetGratitudeByDay(day)
	} else {
		list, err = ctx.Store.GetAllGratitude()
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No gratitude entries yet.")
		return nil
	}

	for _, g := range list {
		fmt.Printf("%s  %-8s %s\n", g.Day, g.Person, g.Content)
	}
	return nil
}
