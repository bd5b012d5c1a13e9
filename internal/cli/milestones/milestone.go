package milestones

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/milestone"
	"github.com/duolog/duolog/internal/models"
)

type MilestoneCmd struct {
	List     MilestoneListCmd     `cmd:"" default:"1" help:"Show the milestone ladder."`
	Complete MilestoneCompleteCmd `cmd:"" help:"Mark a milestone stage as completed."`
}

type MilestoneListCmd struct{}

func (c *MilestoneListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	all, err := ctx.Milestones.All()
	if err != nil {
		return err
	}

	current := milestone.CurrentStage(all)
	next := milestone.Next(all)

	for _, m := range all {
		marker := "  "
		if m.IsCompleted {
			marker = "✅"
		} else if next != nil && m.Stage == next.Stage {
			marker = "👉"
		}
		fmt.Printf("%s %d. %s %s\n", marker, m.Stage, m.Emoji, m.Title)
		fmt.Printf("      %s\n", m.Description)
		if m.IsCompleted && m.CompletedDate != nil {
			fmt.Printf("      completed %s", m.CompletedDate.Format(constants.DateFormat))
			if m.CompletionNote != "" {
				fmt.Printf(" (%s)", m.CompletionNote)
			}
			fmt.Println()
		}
	}

	progress, err := ctx.Milestones.Progress()
	if err != nil {
		return err
	}
	fmt.Printf("\nCurrent stage: %d of %d (%.0f%% complete)\n", current, progress.Total, progress.Percentage)
	return nil
}

type MilestoneCompleteCmd struct {
	Stage int    `arg:"" help:"Stage number to complete (1-5)."`
	Note  string `help:"Celebration note. Prompts interactively when omitted."`
	Quiet bool   `help:"Skip the interactive note prompt."`
}

func (c *MilestoneCompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	all, err := ctx.Milestones.All()
	if err != nil {
		return err
	}

	var target *models.Milestone
	for i := range all {
		if all[i].Stage == c.Stage {
			target = &all[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no milestone at stage %d", c.Stage)
	}

	note := c.Note
	if note == "" && !c.Quiet {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("How did %q feel?", target.Title)).
				Placeholder("a few words to remember this by").
				Value(&note),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	completed, err := ctx.Milestones.Complete(target.ID, note)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s completed! 🎉\n", completed.Emoji, completed.Title)

	refreshed, err := ctx.Milestones.All()
	if err != nil {
		return err
	}
	if next := milestone.Next(refreshed); next != nil {
		fmt.Printf("Next up: %s %s\n", next.Emoji, next.Title)
	} else {
		fmt.Println("The whole ladder is complete. 🏆")
	}
	return nil
}
