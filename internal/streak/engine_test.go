package streak

import (
	"fmt"
	"testing"

	"github.com/duolog/duolog/internal/constants"
	"github.com/duolog/duolog/internal/models"
)

// fakeStore keeps the streak record in memory so transitions can be tested
// without a database.
type fakeStore struct {
	data     models.StreakData
	settings models.Settings
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:     models.StreakData{ID: constants.StreakKey, History: []models.StreakHistoryEntry{}},
		settings: models.Settings{Timezone: "Local", CurrentPerson: models.PersonShubham},
	}
}

func (f *fakeStore) GetStreakData() (models.StreakData, error) { return f.data, nil }
func (f *fakeStore) SaveStreakData(sd models.StreakData) error { f.data = sd; return nil }
func (f *fakeStore) GetSettings() (models.Settings, error)     { return f.settings, nil }

func mustRecord(t *testing.T, e *Engine, person models.Person, day string) {
	t.Helper()
	if err := e.RecordActivityOn(person, day); err != nil {
		t.Fatalf("failed to record activity for %s on %s: %v", person, day, err)
	}
}

func TestFirstActivityStartsStreak(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	mustRecord(t, engine, models.PersonShubham, "2024-03-01")

	sd := store.data
	if sd.CurrentStreak != 1 {
		t.Errorf("expected current streak 1, got %d", sd.CurrentStreak)
	}
	if sd.LongestStreak != 1 {
		t.Errorf("expected longest streak 1, got %d", sd.LongestStreak)
	}
	if sd.TotalActiveDays != 1 {
		t.Errorf("expected 1 total active day, got %d", sd.TotalActiveDays)
	}
	if sd.LastActiveDate != "2024-03-01" {
		t.Errorf("expected last active date 2024-03-01, got %s", sd.LastActiveDate)
	}
}

func TestSameDayActivityIsIdempotent(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	mustRecord(t, engine, models.PersonShubham, "2024-03-01")
	mustRecord(t, engine, models.PersonShubham, "2024-03-01")
	mustRecord(t, engine, models.PersonKhushi, "2024-03-01")

	sd := store.data
	if sd.CurrentStreak != 1 {
		t.Errorf("expected current streak 1 after repeated same-day activity, got %d", sd.CurrentStreak)
	}
	if sd.TotalActiveDays != 1 {
		t.Errorf("expected 1 total active day, got %d", sd.TotalActiveDays)
	}
	if len(sd.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(sd.History))
	}
	entry := sd.History[0]
	if len(entry.Persons) != 2 {
		t.Errorf("expected both persons in the history entry, got %v", entry.Persons)
	}
	if !entry.HasPerson(models.PersonShubham) || !entry.HasPerson(models.PersonKhushi) {
		t.Errorf("expected shubham and khushi as contributors, got %v", entry.Persons)
	}
}

func TestConsecutiveDaysExtendStreak(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	mustRecord(t, engine, models.PersonShubham, "2024-03-01")
	mustRecord(t, engine, models.PersonKhushi, "2024-03-02")
	mustRecord(t, engine, models.PersonShubham, "2024-03-03")

	sd := store.data
	if sd.CurrentStreak != 3 {
		t.Errorf("expected current streak 3, got %d", sd.CurrentStreak)
	}
	if sd.LongestStreak != 3 {
		t.Errorf("expected longest streak 3, got %d", sd.LongestStreak)
	}
	if sd.TotalActiveDays != 3 {
		t.Errorf("expected 3 total active days, got %d", sd.TotalActiveDays)
	}
}

func TestGapResetsStreakButKeepsLongest(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	mustRecord(t, engine, models.PersonShubham, "2024-03-01")
	mustRecord(t, engine, models.PersonShubham, "2024-03-02")
	mustRecord(t, engine, models.PersonKhushi, "2024-03-10")

	sd := store.data
	if sd.CurrentStreak != 1 {
		t.Errorf("expected streak reset to 1 after gap, got %d", sd.CurrentStreak)
	}
	if sd.LongestStreak != 2 {
		t.Errorf("expected longest streak to stay 2, got %d", sd.LongestStreak)
	}
	if sd.TotalActiveDays != 3 {
		t.Errorf("expected 3 total active days, got %d", sd.TotalActiveDays)
	}
	if sd.LastActiveDate != "2024-03-10" {
		t.Errorf("expected last active date 2024-03-10, got %s", sd.LastActiveDate)
	}
}

func TestBackwardDateKeepsCounters(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	mustRecord(t, engine, models.PersonShubham, "2024-03-01")
	mustRecord(t, engine, models.PersonShubham, "2024-03-02")

	// Clock moved backward: counters hold, contributor is still recorded.
	mustRecord(t, engine, models.PersonKhushi, "2024-03-01")

	sd := store.data
	if sd.CurrentStreak != 2 {
		t.Errorf("expected current streak to stay 2, got %d", sd.CurrentStreak)
	}
	if sd.LongestStreak != 2 {
		t.Errorf("expected longest streak to stay 2, got %d", sd.LongestStreak)
	}
	if sd.TotalActiveDays != 2 {
		t.Errorf("expected total active days to stay 2, got %d", sd.TotalActiveDays)
	}

	entry := sd.HistoryEntry("2024-03-01")
	if entry == nil {
		t.Fatal("expected a history entry for 2024-03-01")
	}
	if !entry.HasPerson(models.PersonKhushi) {
		t.Errorf("expected khushi recorded as contributor on 2024-03-01, got %v", entry.Persons)
	}
}

func TestHistoryIsCapped(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	days := constants.StreakHistoryLimit + 10
	for i := 0; i < days; i++ {
		day := fmt.Sprintf("2024-01-%02d", i+1)
		if i >= 31 {
			day = fmt.Sprintf("2024-02-%02d", i-30)
		}
		mustRecord(t, engine, models.PersonShubham, day)
	}

	sd := store.data
	if len(sd.History) != constants.StreakHistoryLimit {
		t.Errorf("expected history capped at %d entries, got %d", constants.StreakHistoryLimit, len(sd.History))
	}
	if sd.TotalActiveDays != days {
		t.Errorf("expected total active days %d to survive the cap, got %d", days, sd.TotalActiveDays)
	}
	// The oldest entries fall off; the newest stays.
	last := sd.History[len(sd.History)-1]
	if last.Date != sd.LastActiveDate {
		t.Errorf("expected newest history entry %s to match last active date %s", last.Date, sd.LastActiveDate)
	}
}

func TestRecordActivityOnRejectsBadDate(t *testing.T) {
	engine := NewEngine(newFakeStore())

	for _, bad := range []string{"", "03/01/2024", "2024-3-1", "yesterday"} {
		if err := engine.RecordActivityOn(models.PersonShubham, bad); err == nil {
			t.Errorf("expected error for date %q, got nil", bad)
		}
	}
}

func TestSharedScenario(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	// Shubham starts, both work the next day, then life happens for a week.
	mustRecord(t, engine, models.PersonShubham, "2024-03-01")
	mustRecord(t, engine, models.PersonShubham, "2024-03-02")
	mustRecord(t, engine, models.PersonKhushi, "2024-03-02")
	mustRecord(t, engine, models.PersonKhushi, "2024-03-10")

	sd := store.data
	if sd.CurrentStreak != 1 {
		t.Errorf("expected current streak 1, got %d", sd.CurrentStreak)
	}
	if sd.LongestStreak != 2 {
		t.Errorf("expected longest streak 2, got %d", sd.LongestStreak)
	}
	if sd.TotalActiveDays != 3 {
		t.Errorf("expected 3 total active days, got %d", sd.TotalActiveDays)
	}

	both := sd.HistoryEntry("2024-03-02")
	if both == nil || !both.HasPerson(models.PersonShubham) || !both.HasPerson(models.PersonKhushi) {
		t.Errorf("expected both contributors on 2024-03-02, got %+v", both)
	}
}
