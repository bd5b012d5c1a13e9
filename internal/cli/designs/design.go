package designs

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/models"
)

type DesignCmd struct {
	Add    DesignAddCmd    `cmd:"" help:"Record a new design."`
	List   DesignListCmd   `cmd:"" help:"List designs."`
	Show   DesignShowCmd   `cmd:"" help:"Show a design's details."`
	Hype   DesignHypeCmd   `cmd:"" help:"Send a reaction to your partner's design."`
	Fame   DesignFameCmd   `cmd:"" help:"Put a design in the hall of fame."`
	Delete DesignDeleteCmd `cmd:"" help:"Delete a design."`
}

type DesignAddCmd struct {
	Title      string `arg:"" help:"Design title."`
	Image      string `arg:"" type:"existingfile" help:"Path to the design image."`
	Person     string `help:"Person recording the design (default: current person)."`
	Desc       string `help:"Optional description."`
	Tool       string `help:"Tool used: photoshop, illustrator, figma, or other." default:"other"`
	ToolDetail string `help:"Tool detail, e.g. 'After Effects'."`
	Tags       string `help:"Comma-separated tags."`
	Mood       int    `help:"Mood rating 1-5." default:"3"`
	Client     bool   `help:"Mark as client work instead of practice."`
}

func (c *DesignAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	person, err := ctx.ResolvePerson(c.Person)
	if err != nil {
		return err
	}

	count, err := ctx.Store.CountDesigns()
	if err != nil {
		return err
	}

	var tags []string
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	workType := models.WorkTypePractice
	if c.Client {
		workType = models.WorkTypeClient
	}

	imagePath, err := filepath.Abs(c.Image)
	if err != nil {
		return err
	}

	now := time.Now()
	design := models.Design{
		ID:            uuid.New().String(),
		Person:        person,
		Title:         c.Title,
		Description:   c.Desc,
		ImagePath:     imagePath,
		Tool:          models.Tool(c.Tool),
		ToolDetail:    c.ToolDetail,
		Tags:          tags,
		MoodRating:    c.Mood,
		WorkType:      workType,
		IsFirstDesign: count == 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := design.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddDesign(design); err != nil {
		return err
	}

	// A new design counts toward the shared streak.
	ctx.RecordActivity(person)

	if design.IsFirstDesign {
		fmt.Printf("🌱 First design ever! %q is planted.\n", c.Title)
	} else {
		fmt.Printf("Added design: %s\n", c.Title)
	}
	return nil
}

type DesignListCmd struct {
	Person string `help:"Only show designs by this person."`
	Fame   bool   `help:"Only show hall of fame designs."`
}

func (c *DesignListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var designs []models.Design
	var err error
	switch {
	case c.Fame:
		designs, err = ctx.Store.GetHallOfFame()
	case c.Person != "":
		person, perr := models.ParsePerson(c.Person)
		if perr != nil {
			return perr
		}
		designs, err = ctx.Store.GetDesignsByPerson(person)
	default:
		designs, err = ctx.Store.GetAllDesigns()
	}
	if err != nil {
		return err
	}

	if len(designs) == 0 {
		fmt.Println("No designs found.")
		return nil
	}

	for _, d := range designs {
		markers := ""
		if d.IsFirstDesign {
			markers += " 🌱"
		}
		if d.IsHallOfFame {
			markers += " 🏆"
		}
		fmt.Printf("%s  %s  %-10s %s (🔥 %d)%s\n",
			d.CreatedAt.Format(constants.DateFormat), shortID(d.ID), d.Person, d.Title, d.HypeCount, markers)
	}
	return nil
}

type DesignShowCmd struct {
	ID string `arg:"" help:"Design ID (or unique prefix)."`
}

func (c *DesignShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	design, err := findDesign(ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Title:       %s\n", design.Title)
	fmt.Printf("Person:      %s\n", design.Person)
	fmt.Printf("Tool:        %s", design.Tool)
	if design.ToolDetail != "" {
		fmt.Printf(" (%s)", design.ToolDetail)
	}
	fmt.Println()
	fmt.Printf("Work type:   %s\n", design.WorkType)
	fmt.Printf("Mood:        %d/5\n", design.MoodRating)
	fmt.Printf("Hype:        %d\n", design.HypeCount)
	if len(design.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(design.Tags, ", "))
	}
	if design.Description != "" {
		fmt.Printf("Description: %s\n", design.Description)
	}
	fmt.Printf("Image:       %s\n", design.ImagePath)
	fmt.Printf("Created:     %s\n", design.CreatedAt.Format(time.RFC1123))
	if design.IsHallOfFame {
		fmt.Printf("🏆 Hall of fame (%s)\n", design.HallOfFameMonth)
	}

	events, err := ctx.Store.GetHypeEventsForDesign(design.ID)
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Printf("  %s from %s on %s\n", reactionEmoji(e.Type), e.FromPerson, e.CreatedAt.Format(constants.DateFormat))
	}

	return nil
}

type DesignHypeCmd struct {
	ID   string `arg:"" help:"Design ID (or unique prefix)."`
	Type string `help:"Reaction type: fire, heart, or star." default:"fire"`
	From string `help:"Person reacting (default: current person)."`
}

func (c *DesignHypeCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	design, err := findDesign(ctx, c.ID)
	if err != nil {
		return err
	}

	from, err := ctx.ResolvePerson(c.From)
	if err != nil {
		return err
	}
	if from == design.Person {
		return fmt.Errorf("hype is for cheering your partner, not yourself")
	}

	reaction, err := models.ParseReactionType(c.Type)
	if err != nil {
		return err
	}

	event := models.HypeEvent{
		ID:         uuid.New().String(),
		FromPerson: from,
		ToPerson:   design.Person,
		DesignID:   design.ID,
		Type:       reaction,
		CreatedAt:  time.Now(),
	}
	if err := ctx.Store.AddHypeEvent(event); err != nil {
		return err
	}

	design.HypeCount++
	design.UpdatedAt = time.Now()
	if err := ctx.Store.UpdateDesign(design); err != nil {
		return err
	}

	fmt.Printf("%s sent to %s for %q!\n", reactionEmoji(reaction), design.Person, design.Title)
	return nil
}

type DesignFameCmd struct {
	ID    string `arg:"" help:"Design ID (or unique prefix)."`
	Month string `help:"Hall of fame month (YYYY-MM, default: current month)."`
}

func (c *DesignFameCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	design, err := findDesign(ctx, c.ID)
	if err != nil {
		return err
	}

	month := c.Month
	if month == "" {
		month = time.Now().Format(constants.MonthFormat)
	} else if _, err := time.Parse(constants.MonthFormat, month); err != nil {
		return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", month)
	}

	design.IsHallOfFame = true
	design.HallOfFameMonth = month
	design.UpdatedAt = time.Now()
	if err := ctx.Store.UpdateDesign(design); err != nil {
		return err
	}

	fmt.Printf("🏆 %q is the hall of fame pick for %s!\n", design.Title, month)
	return nil
}

type DesignDeleteCmd struct {
	ID string `arg:"" help:"Design ID (or unique prefix)."`
}

func (c *DesignDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	design, err := findDesign(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteDesign(design.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted design: %s\n", design.Title)
	return nil
}

// findDesign resolves a full ID or a unique prefix to a design.
func findDesign(ctx *cli.Context, id string) (models.Design, error) {
	design, err := ctx.Store.GetDesign(id)
	if err == nil {
		return design, nil
	}

	designs, err := ctx.Store.GetAllDesigns()
	if err != nil {
		return models.Design{}, err
	}

	var matches []models.Design
	for _, d := range designs {
		if strings.HasPrefix(d.ID, id) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 0:
		return models.Design{}, fmt.Errorf("design %q not found", id)
	case 1:
		return matches[0], nil
	default:
		return models.Design{}, fmt.Errorf("design ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func reactionEmoji(t models.ReactionType) string {
	switch t {
	case models.ReactionFire:
		return "🔥"
	case models.ReactionHeart:
		return "❤️"
	case models.ReactionStar:
		return "⭐"
	default:
		return string(t)
	}
}
