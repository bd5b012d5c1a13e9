package milestone

import (
	"fmt"
	"testing"
	"time"

	"github.com/duolog/duolog/internal/models"
)

type fakeStore struct {
	milestones []models.Milestone
}

func (f *fakeStore) GetAllMilestones() ([]models.Milestone, error) {
	return f.milestones, nil
}

func (f *fakeStore) GetMilestone(id string) (models.Milestone, error) {
	for _, m := range f.milestones {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Milestone{}, fmt.Errorf("milestone %q not found", id)
}

func (f *fakeStore) UpdateMilestone(m models.Milestone) error {
	for i := range f.milestones {
		if f.milestones[i].ID == m.ID {
			f.milestones[i] = m
			return nil
		}
	}
	return fmt.Errorf("milestone %q not found", m.ID)
}

func ladder(completed ...int) []models.Milestone {
	titles := []string{"The Seed", "First Sprout", "Growing Strong", "In Bloom", "The Harvest"}
	done := make(map[int]bool, len(completed))
	for _, stage := range completed {
		done[stage] = true
	}

	now := time.Now()
	var milestones []models.Milestone
	for i, title := range titles {
		m := models.Milestone{
			ID:        fmt.Sprintf("ms-%d", i+1),
			Stage:     i + 1,
			Title:     title,
			CreatedAt: now,
		}
		if done[m.Stage] {
			m.IsCompleted = true
			m.CompletedDate = &now
		}
		milestones = append(milestones, m)
	}
	return milestones
}

func TestCurrentStage(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		want      int
	}{
		{"nothing completed", nil, 1},
		{"first stage completed", []int{1}, 1},
		{"first two completed", []int{1, 2}, 2},
		{"out of order completion", []int{1, 4}, 4},
		{"all completed", []int{1, 2, 3, 4, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStage(ladder(tt.completed...)); got != tt.want {
				t.Errorf("CurrentStage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		wantStage int // 0 means nil
	}{
		{"nothing completed", nil, 1},
		{"first completed", []int{1}, 2},
		{"out of order leaves earlier gap", []int{1, 4}, 2},
		{"all completed", []int{1, 2, 3, 4, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Next(ladder(tt.completed...))
			if tt.wantStage == 0 {
				if next != nil {
					t.Errorf("Next() = stage %d, want nil", next.Stage)
				}
				return
			}
			if next == nil {
				t.Fatalf("Next() = nil, want stage %d", tt.wantStage)
			}
			if next.Stage != tt.wantStage {
				t.Errorf("Next() = stage %d, want %d", next.Stage, tt.wantStage)
			}
		})
	}
}

func TestCompleteMarksMilestone(t *testing.T) {
	store := &fakeStore{milestones: ladder()}
	tracker := NewTracker(store)

	m, err := tracker.Complete("ms-3", "first paid gig!")
	if err != nil {
		t.Fatalf("failed to complete milestone: %v", err)
	}
	if !m.IsCompleted {
		t.Error("expected milestone to be completed")
	}
	if m.CompletedDate == nil {
		t.Error("expected a completed date")
	}
	if m.CompletionNote != "first paid gig!" {
		t.Errorf("unexpected completion note %q", m.CompletionNote)
	}

	// Stage 3 done out of order: current jumps, next stays at the gap.
	all, _ := store.GetAllMilestones()
	if got := CurrentStage(all); got != 3 {
		t.Errorf("CurrentStage() = %d, want 3", got)
	}
	if next := Next(all); next == nil || next.Stage != 1 {
		t.Errorf("Next() = %+v, want stage 1", next)
	}
}

func TestCompleteTwiceFails(t *testing.T) {
	store := &fakeStore{milestones: ladder(2)}
	tracker := NewTracker(store)

	if _, err := tracker.Complete("ms-2", ""); err == nil {
		t.Error("expected error completing an already-completed milestone")
	}
}

func TestProgress(t *testing.T) {
	store := &fakeStore{milestones: ladder(1, 2)}
	tracker := NewTracker(store)

	p, err := tracker.Progress()
	if err != nil {
		t.Fatalf("failed to compute progress: %v", err)
	}
	if p.Completed != 2 || p.Total != 5 {
		t.Errorf("expected 2/5 completed, got %d/%d", p.Completed, p.Total)
	}
	if p.Percentage != 40 {
		t.Errorf("expected 40%% progress, got %.1f", p.Percentage)
	}
}
