package models

import (
	"fmt"
	"time"
)

// Income records money earned from a design project. Amounts are whole
// rupees; the app has no other currency.
type Income struct {
	ID                 string    `json:"id"`
	Person             Person    `json:"person"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"` // always "INR"
	ClientName         string    `json:"client_name,omitempty"`
	ProjectDescription string    `json:"project_description"`
	DesignID           string    `json:"design_id,omitempty"`
	Day                string    `json:"day"` // YYYY-MM-DD
	Note               string    `json:"note,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func (i *Income) Validate() error {
	if i.Amount <= 0 {
		return fmt.Errorf("income amount must be positive")
	}
	if i.ProjectDescription == "" {
		return fmt.Errorf("project description cannot be empty")
	}
	return nil
}
