package models

import "time"

// DailyWin is the one thing a person is proud of on a given day.
// At most one win per person per day is kept; recording again replaces it.
type DailyWin struct {
	ID        string    `json:"id"`
	Person    Person    `json:"person"`
	Content   string    `json:"content"`
	Day       string    `json:"day"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

// GratitudeEntry is a short gratitude note for a day.
type GratitudeEntry struct {
	ID        string    `json:"id"`
	Person    Person    `json:"person"`
	Content   string    `json:"content"`
	Day       string    `json:"day"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
