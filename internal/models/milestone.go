package models

import "time"

// Milestone is one of the five fixed stages of the progress ladder,
// seeded once at first launch.
type Milestone struct {
	ID             string     `json:"id"`
	Stage          int        `json:"stage"` // 1..5, unique
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Emoji          string     `json:"emoji"`
	IsCompleted    bool       `json:"is_completed"`
	CompletedDate  *time.Time `json:"completed_date,omitempty"`
	CompletionNote string     `json:"completion_note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MilestoneProgress summarizes ladder completion.
type MilestoneProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
