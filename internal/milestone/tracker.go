// Package milestone exposes the five-stage progress ladder. Stages can be
// completed in any order; the "current" and "next" stages are pure
// derivations over the collection and are never stored.
package milestone

import (
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

// Store is the slice of the local store the tracker needs.
type Store interface {
	GetAllMilestones() ([]models.Milestone, error)
	GetMilestone(id string) (models.Milestone, error)
	UpdateMilestone(models.Milestone) error
}

type Tracker struct {
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// All returns every milestone ordered by stage ascending.
func (t *Tracker) All() ([]models.Milestone, error) {
	return t.store.GetAllMilestones()
}

// Complete marks a milestone as completed with an optional note. Completing
// an already-completed milestone is an error; completing stages out of
// order is not.
func (t *Tracker) Complete(id, note string) (models.Milestone, error) {
	m, err := t.store.GetMilestone(id)
	if err != nil {
		return models.Milestone{}, err
	}
	if m.IsCompleted {
		return models.Milestone{}, fmt.Errorf("milestone %q is already completed", m.Title)
	}

	now := time.Now()
	m.IsCompleted = true
	m.CompletedDate = &now
	m.CompletionNote = note

	if err := t.store.UpdateMilestone(m); err != nil {
		return models.Milestone{}, err
	}
	return m, nil
}

// Progress summarizes how much of the ladder is done.
func (t *Tracker) Progress() (models.MilestoneProgress, error) {
	milestones, err := t.store.GetAllMilestones()
	if err != nil {
		return models.MilestoneProgress{}, err
	}

	completed := 0
	for _, m := range milestones {
		if m.IsCompleted {
			completed++
		}
	}

	p := models.MilestoneProgress{Completed: completed, Total: len(milestones)}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p, nil
}

// CurrentStage is the highest completed stage, floored at 1 so the ladder
// always shows a current position even before anything is done.
func CurrentStage(milestones []models.Milestone) int {
	stage := 1
	for _, m := range milestones {
		if m.IsCompleted && m.Stage > stage {
			stage = m.Stage
		}
	}
	return stage
}

// Next returns the lowest incomplete stage, or nil when the ladder is done.
// With out-of-order completion this can differ from CurrentStage+1.
func Next(milestones []models.Milestone) *models.Milestone {
	var next *models.Milestone
	for i := range milestones {
		m := &milestones[i]
		if m.IsCompleted {
			continue
		}
		if next == nil || m.Stage < next.Stage {
			next = m
		}
	}
	return next
}
