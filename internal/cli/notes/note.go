package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/models"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Pin a new sticky note to the board."`
	List   NoteListCmd   `cmd:"" help:"List sticky notes."`
	Pin    NotePinCmd    `cmd:"" help:"Pin or unpin a note."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a sticky note."`
}

type NoteAddCmd struct {
	Content string `arg:"" help:"Note content."`
	Type    string `help:"Note type: idea, boost, goal, resource, or future-self." default:"idea"`
	Person  string `help:"Author (default: current person)."`
	Color   string `help:"Sticky note color." default:"yellow"`
	Link    string `help:"Optional URL to attach, e.g. a tutorial or reference."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	person, err := ctx.ResolvePerson(c.Person)
	if err != nil {
		return err
	}

	note := models.StickyNote{
		ID:        uuid.New().String(),
		Person:    person,
		Type:      models.NoteType(c.Type),
		Content:   c.Content,
		Color:     c.Color,
		LinkedURL: c.Link,
		CreatedAt: time.Now(),
	}
	if err := note.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddNote(note); err != nil {
		return err
	}

	fmt.Printf("Pinned %s note to the board.\n", note.Type)
	return nil
}

type NoteListCmd struct {
	Type string `help:"Only show notes of this type."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var list []models.StickyNote
	var err error
	if c.Type != "" {
		list, err = ctx.Store.GetNotesByType(models.NoteType(c.Type))
	} else {
		list, err = ctx.Store.GetAllNotes()
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("The board is empty.")
		return nil
	}

	for _, n := range list {
		pin := " "
		if n.IsPinned {
			pin = "📌"
		}
		fmt.Printf("%s %s  %-11s %-8s %s\n",
			pin, shortID(n.ID), n.Type, n.Person, n.Content)
	}
	return nil
}

type NotePinCmd struct {
	ID    string `arg:"" help:"Note ID (or unique prefix)."`
	Unpin bool   `help:"Unpin instead of pinning."`
}

func (c *NotePinCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	note, err := findNote(ctx, c.ID)
	if err != nil {
		return err
	}

	note.IsPinned = !c.Unpin
	if err := ctx.Store.UpdateNote(note); err != nil {
		return err
	}

	if note.IsPinned {
		fmt.Println("Note pinned to the top of the board.")
	} else {
		fmt.Println("Note unpinned.")
	}
	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID (or unique prefix)."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	note, err := findNote(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteNote(note.ID); err != nil {
		return err
	}

	fmt.Printf("Removed note from %s.\n", note.CreatedAt.Format(constants.DateFormat))
	return nil
}

func findNote(ctx *cli.Context, id string) (models.StickyNote, error) {
	note, err := ctx.Store.GetNote(id)
	if err == nil {
		return note, nil
	}

	all, err := ctx.Store.GetAllNotes()
	if err != nil {
		return models.StickyNote{}, err
	}

	var matches []models.StickyNote
	for _, n := range all {
		if strings.HasPrefix(n.ID, id) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return models.StickyNote{}, fmt.Errorf("note %q not found", id)
	case 1:
		return matches[0], nil
	default:
		return models.StickyNote{}, fmt.Errorf("note ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
