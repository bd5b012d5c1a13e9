package incomes

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/models"
)

type IncomeCmd struct {
	Add   IncomeAddCmd   `cmd:"" help:"Record income from a design project."`
	List  IncomeListCmd  `cmd:"" help:"List income entries."`
	Total IncomeTotalCmd `cmd:"" help:"Show total income earned together."`
}

type IncomeAddCmd struct {
	Amount  int64  `arg:"" help:"Amount in whole rupees."`
	Project string `arg:"" help:"What the money was for."`
	Person  string `help:"Person who earned it (default: current person)."`
	Client  string `help:"Client name."`
	Design  string `help:"Related design ID."`
	Day     string `help:"Day earned (YYYY-MM-DD, default: today)."`
	Note    string `help:"Optional note."`
}

func (c *IncomeAddCmd) Run(ctx *cli.Context) error {
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

	income := models.Income{
		ID:                 uuid.New().String(),
		Person:             person,
		Amount:             c.Amount,
		Currency:           "INR",
		ClientName:         c.Client,
		ProjectDescription: c.Project,
		DesignID:           c.Design,
		Day:                day,
		Note:               c.Note,
		CreatedAt:          time.Now(),
	}
	if err := income.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddIncome(income); err != nil {
		return err
	}

	fmt.Printf("Recorded ₹%d for %q. 💰\n", c.Amount, c.Project)
	return nil
}

type IncomeListCmd struct {
	Person string `help:"Only show income earned by this person."`
}

func (c *IncomeListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var list []models.Income
	var err error
	if c.Person != "" {
		person, perr := models.ParsePerson(c.Person)
		if perr != nil {
			return perr
		}
		list, err = ctx.Store.GetIncomeByPerson(person)
	} else {
		list, err = ctx.Store.GetAllIncome()
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No income recorded yet.")
		return nil
	}

	for _, i := range list {
		client := ""
		if i.ClientName != "" {
			client = " for " + i.ClientName
		}
		fmt.Printf("%s  %-8s ₹%-8d %s%s\n", i.Day, i.Person, i.Amount, i.ProjectDescription, client)
	}
	return nil
}

type IncomeTotalCmd struct{}

func (c *IncomeTotalCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	total, err := ctx.Store.GetTotalIncome()
	if err != nil {
		return err
	}

	fmt.Printf("Total earned together: ₹%d\n", total)
	return nil
}
