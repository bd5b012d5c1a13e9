package models

import (
	"fmt"
	"time"
)

type NoteType string

const (
	NoteIdea       NoteType = "idea"
	NoteBoost      NoteType = "boost"
	NoteGoal       NoteType = "goal"
	NoteResource   NoteType = "resource"
	NoteFutureSelf NoteType = "future-self"
)

// StickyNote is a short free-form note pinned to the shared board.
type StickyNote struct {
	ID        string    `json:"id"`
	Person    Person    `json:"person"`
	Content   string    `json:"content"`
	Type      NoteType  `json:"type"`
	Color     string    `json:"color,omitempty"`
	IsPinned  bool      `json:"is_pinned"`
	LinkedURL string    `json:"linked_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *StickyNote) Validate() error {
	if n.Content == "" {
		return fmt.Errorf("note content cannot be empty")
	}
	switch n.Type {
	case NoteIdea, NoteBoost, NoteGoal, NoteResource, NoteFutureSelf:
	default:
		return fmt.Errorf("unknown note type %q", n.Type)
	}
	return nil
}
