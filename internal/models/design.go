package models

import (
	"fmt"
	"time"
)

type Tool string

const (
	ToolPhotoshop   Tool = "photoshop"
	ToolIllustrator Tool = "illustrator"
	ToolFigma       Tool = "figma"
	ToolOther       Tool = "other"
)

type WorkType string

const (
	WorkTypePractice WorkType = "practice"
	WorkTypeClient   WorkType = "client"
)

// Design is a single uploaded piece of creative work. Image data lives on
// disk next to the database; only the paths are stored.
type Design struct {
	ID              string    `json:"id"`
	Person          Person    `json:"person"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ImagePath       string    `json:"image_path"`
	ThumbnailPath   string    `json:"thumbnail_path,omitempty"`
	Tool            Tool      `json:"tool"`
	ToolDetail      string    `json:"tool_detail,omitempty"` // e.g. "After Effects"
	Tags            []string  `json:"tags,omitempty"`
	MoodRating      int       `json:"mood_rating"` // 1..5
	WorkType        WorkType  `json:"work_type"`
	IsHallOfFame    bool      `json:"is_hall_of_fame"`
	HallOfFameMonth string    `json:"hall_of_fame_month,omitempty"` // YYYY-MM
	IsFirstDesign   bool      `json:"is_first_design"`
	HypeCount       int       `json:"hype_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d *Design) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("design title cannot be empty")
	}
	if d.MoodRating < 1 || d.MoodRating > 5 {
		return fmt.Errorf("mood rating must be between 1 and 5")
	}
	switch d.Tool {
	case ToolPhotoshop, ToolIllustrator, ToolFigma, ToolOther:
	default:
		return fmt.Errorf("unknown tool %q", d.Tool)
	}
	switch d.WorkType {
	case WorkTypePractice, WorkTypeClient:
	default:
		return fmt.Errorf("unknown work type %q", d.WorkType)
	}
	return nil
}

type ReactionType string

const (
	ReactionFire  ReactionType = "fire"
	ReactionHeart ReactionType = "heart"
	ReactionStar  ReactionType = "star"
)

// HypeEvent records one reaction from one person to the other's design.
type HypeEvent struct {
	ID         string       `json:"id"`
	FromPerson Person       `json:"from_person"`
	ToPerson   Person       `json:"to_person"`
	DesignID   string       `json:"design_id"`
	Type       ReactionType `json:"type"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ParseReactionType validates a reaction type string.
func ParseReactionType(s string) (ReactionType, error) {
	switch ReactionType(s) {
	case ReactionFire, ReactionHeart, ReactionStar:
		return ReactionType(s), nil
	}
	return "", fmt.Errorf("unknown reaction %q (expected fire, heart, or star)", s)
}
