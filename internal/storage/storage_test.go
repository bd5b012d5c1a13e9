package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/duolog/duolog/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSeedDefaults(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to load seeded settings: %v", err)
	}
	if settings.CurrentPerson != models.PersonShubham {
		t.Errorf("expected seeded current person shubham, got %s", settings.CurrentPerson)
	}
	if settings.Theme != "sunrise" {
		t.Errorf("expected seeded theme sunrise, got %s", settings.Theme)
	}

	milestones, err := store.GetAllMilestones()
	if err != nil {
		t.Fatalf("failed to load seeded milestones: %v", err)
	}
	if len(milestones) != 5 {
		t.Fatalf("expected 5 seeded milestones, got %d", len(milestones))
	}
	for i, m := range milestones {
		if m.Stage != i+1 {
			t.Errorf("expected stage %d at position %d, got %d", i+1, i, m.Stage)
		}
		if m.IsCompleted {
			t.Errorf("seeded milestone %q should not be completed", m.Title)
		}
	}
	if milestones[0].Title != "The Seed" || milestones[4].Title != "The Harvest" {
		t.Errorf("unexpected ladder titles: %q ... %q", milestones[0].Title, milestones[4].Title)
	}

	sd, err := store.GetStreakData()
	if err != nil {
		t.Fatalf("failed to load seeded streak record: %v", err)
	}
	if sd.CurrentStreak != 0 || sd.LongestStreak != 0 || sd.TotalActiveDays != 0 {
		t.Errorf("expected zeroed streak record, got %+v", sd)
	}
	if sd.LastActiveDate != "" {
		t.Errorf("expected empty last active date before any activity, got %q", sd.LastActiveDate)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	settings.CurrentPerson = models.PersonKhushi
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	if err := store.seed(); err != nil {
		t.Fatalf("re-seed failed: %v", err)
	}

	settings, err = store.GetSettings()
	if err != nil {
		t.Fatalf("failed to reload settings: %v", err)
	}
	if settings.CurrentPerson != models.PersonKhushi {
		t.Errorf("re-seed overwrote settings, current person reverted to %s", settings.CurrentPerson)
	}

	milestones, err := store.GetAllMilestones()
	if err != nil {
		t.Fatalf("failed to load milestones: %v", err)
	}
	if len(milestones) != 5 {
		t.Errorf("expected 5 milestones after re-seed, got %d", len(milestones))
	}
}

func TestStreakDataRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := models.StreakData{
		ID:              "main-streak",
		CurrentStreak:   4,
		LongestStreak:   9,
		LastActiveDate:  "2024-03-04",
		TotalActiveDays: 17,
		History: []models.StreakHistoryEntry{
			{Date: "2024-03-03", Persons: []models.Person{models.PersonShubham}},
			{Date: "2024-03-04", Persons: []models.Person{models.PersonShubham, models.PersonKhushi}},
		},
	}
	if err := store.SaveStreakData(want); err != nil {
		t.Fatalf("failed to save streak record: %v", err)
	}

	got, err := store.GetStreakData()
	if err != nil {
		t.Fatalf("failed to load streak record: %v", err)
	}
	if got.CurrentStreak != want.CurrentStreak || got.LongestStreak != want.LongestStreak {
		t.Errorf("counters mismatch: got %+v", got)
	}
	if got.LastActiveDate != want.LastActiveDate || got.TotalActiveDays != want.TotalActiveDays {
		t.Errorf("record mismatch: got %+v", got)
	}
	if len(got.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(got.History))
	}
	if !got.History[1].HasPerson(models.PersonKhushi) {
		t.Errorf("history lost a contributor: %+v", got.History[1])
	}
}

func TestDesignLifecycle(t *testing.T) {
	store := setupTestStore(t)

	now := time.Now()
	first := models.Design{
		ID:            "d-1",
		Person:        models.PersonShubham,
		Title:         "Logo sketch",
		ImagePath:     "/tmp/logo.png",
		Tool:          models.ToolFigma,
		Tags:          []string{"logo", "practice"},
		MoodRating:    4,
		WorkType:      models.WorkTypePractice,
		IsFirstDesign: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := store.AddDesign(first); err != nil {
		t.Fatalf("failed to add design: %v", err)
	}

	second := first
	second.ID = "d-2"
	second.Person = models.PersonKhushi
	second.Title = "Poster draft"
	second.IsFirstDesign = false
	if err := store.AddDesign(second); err != nil {
		t.Fatalf("failed to add second design: %v", err)
	}

	got, err := store.GetDesign("d-1")
	if err != nil {
		t.Fatalf("failed to get design: %v", err)
	}
	if got.Title != "Logo sketch" || len(got.Tags) != 2 {
		t.Errorf("design did not round-trip: %+v", got)
	}

	count, err := store.CountDesigns()
	if err != nil {
		t.Fatalf("failed to count designs: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 designs, got %d", count)
	}

	byPerson, err := store.GetDesignsByPerson(models.PersonKhushi)
	if err != nil {
		t.Fatalf("failed to list by person: %v", err)
	}
	if len(byPerson) != 1 || byPerson[0].ID != "d-2" {
		t.Errorf("unexpected designs for khushi: %+v", byPerson)
	}

	// Hall of fame promotion shows up in the fame listing.
	second.IsHallOfFame = true
	second.HallOfFameMonth = "2024-03"
	if err := store.UpdateDesign(second); err != nil {
		t.Fatalf("failed to update design: %v", err)
	}
	fame, err := store.GetHallOfFame()
	if err != nil {
		t.Fatalf("failed to list hall of fame: %v", err)
	}
	if len(fame) != 1 || fame[0].ID != "d-2" {
		t.Errorf("unexpected hall of fame: %+v", fame)
	}

	// The first design is part of the couple's history and cannot go.
	if err := store.DeleteDesign("d-1"); err == nil {
		t.Error("expected deleting the first design to fail")
	}
	if err := store.DeleteDesign("d-2"); err != nil {
		t.Errorf("failed to delete design: %v", err)
	}
	if _, err := store.GetDesign("d-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHypeEvents(t *testing.T) {
	store := setupTestStore(t)

	now := time.Now()
	design := models.Design{
		ID: "d-1", Person: models.PersonShubham, Title: "Icon set",
		ImagePath: "/tmp/icons.png", Tool: models.ToolIllustrator,
		MoodRating: 5, WorkType: models.WorkTypePractice,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := store.AddDesign(design); err != nil {
		t.Fatalf("failed to add design: %v", err)
	}

	event := models.HypeEvent{
		ID:         "h-1",
		FromPerson: models.PersonKhushi,
		ToPerson:   models.PersonShubham,
		DesignID:   "d-1",
		Type:       models.ReactionFire,
		CreatedAt:  now,
	}
	if err := store.AddHypeEvent(event); err != nil {
		t.Fatalf("failed to add hype event: %v", err)
	}

	events, err := store.GetHypeEventsForDesign("d-1")
	if err != nil {
		t.Fatalf("failed to list hype events: %v", err)
	}
	if len(events) != 1 || events[0].Type != models.ReactionFire {
		t.Errorf("unexpected hype events: %+v", events)
	}
}

func TestWinUpsert(t *testing.T) {
	store := setupTestStore(t)

	win := models.DailyWin{
		ID:        "w-1",
		Person:    models.PersonKhushi,
		Content:   "finished the brand board",
		Day:       "2024-03-01",
		CreatedAt: time.Now(),
	}
	if err := store.SaveWin(win); err != nil {
		t.Fatalf("failed to save win: %v", err)
	}

	// Same person, same day: the win is replaced, not duplicated.
	win.ID = "w-2"
	win.Content = "actually, landed a client"
	if err := store.SaveWin(win); err != nil {
		t.Fatalf("failed to replace win: %v", err)
	}

	got, err := store.GetWin(models.PersonKhushi, "2024-03-01")
	if err != nil {
		t.Fatalf("failed to get win: %v", err)
	}
	if got.Content != "actually, landed a client" {
		t.Errorf("expected replaced content, got %q", got.Content)
	}

	all, err := store.GetAllWins()
	if err != nil {
		t.Fatalf("failed to list wins: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 win after replacement, got %d", len(all))
	}

	if _, err := store.GetWin(models.PersonShubham, "2024-03-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing win, got %v", err)
	}
}

func TestNotesPinnedOrdering(t *testing.T) {
	store := setupTestStore(t)

	old := models.StickyNote{
		ID: "n-1", Person: models.PersonShubham, Type: models.NoteGoal,
		Content: "10 designs this month", CreatedAt: time.Now().Add(-time.Hour),
	}
	pinned := models.StickyNote{
		ID: "n-2", Person: models.PersonKhushi, Type: models.NoteBoost,
		Content: "you've got this!", IsPinned: true, CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	for _, n := range []models.StickyNote{old, pinned} {
		if err := store.AddNote(n); err != nil {
			t.Fatalf("failed to add note: %v", err)
		}
	}

	notes, err := store.GetAllNotes()
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "n-2" {
		t.Errorf("expected the pinned note first, got %s", notes[0].ID)
	}

	boosts, err := store.GetNotesByType(models.NoteBoost)
	if err != nil {
		t.Fatalf("failed to filter notes: %v", err)
	}
	if len(boosts) != 1 || boosts[0].ID != "n-2" {
		t.Errorf("unexpected boost notes: %+v", boosts)
	}
}

func TestIncomeTotal(t *testing.T) {
	store := setupTestStore(t)

	total, err := store.GetTotalIncome()
	if err != nil {
		t.Fatalf("failed to total empty income: %v", err)
	}
	if total != 0 {
		t.Errorf("expected zero total with no income, got %d", total)
	}

	entries := []models.Income{
		{ID: "i-1", Person: models.PersonShubham, Amount: 1500, ProjectDescription: "logo for a cafe", Day: "2024-03-01", CreatedAt: time.Now()},
		{ID: "i-2", Person: models.PersonKhushi, Amount: 2500, ProjectDescription: "wedding invite", Day: "2024-03-05", CreatedAt: time.Now()},
	}
	for _, e := range entries {
		if err := store.AddIncome(e); err != nil {
			t.Fatalf("failed to add income: %v", err)
		}
	}

	total, err = store.GetTotalIncome()
	if err != nil {
		t.Fatalf("failed to total income: %v", err)
	}
	if total != 4000 {
		t.Errorf("expected total 4000, got %d", total)
	}

	byPerson, err := store.GetIncomeByPerson(models.PersonShubham)
	if err != nil {
		t.Fatalf("failed to list income by person: %v", err)
	}
	if len(byPerson) != 1 || byPerson[0].Amount != 1500 {
		t.Errorf("unexpected income for shubham: %+v", byPerson)
	}
}

func TestGratitudeByDay(t *testing.T) {
	store := setupTestStore(t)

	entries := []models.GratitudeEntry{
		{ID: "g-1", Person: models.PersonShubham, Content: "chai together", Day: "2024-03-01", CreatedAt: time.Now()},
		{ID: "g-2", Person: models.PersonKhushi, Content: "a new client lead", Day: "2024-03-02", CreatedAt: time.Now()},
	}
	for _, e := range entries {
		if err := store.AddGratitude(e); err != nil {
			t.Fatalf("failed to add gratitude: %v", err)
		}
	}

	day, err := store.GetGratitudeByDay("2024-03-01")
	if err != nil {
		t.Fatalf("failed to list gratitude by day: %v", err)
	}
	if len(day) != 1 || day[0].ID != "g-1" {
		t.Errorf("unexpected gratitude for 2024-03-01: %+v", day)
	}
}

func TestMilestoneUpdate(t *testing.T) {
	store := setupTestStore(t)

	milestones, err := store.GetAllMilestones()
	if err != nil {
		t.Fatalf("failed to load milestones: %v", err)
	}

	m := milestones[2]
	now := time.Now()
	m.IsCompleted = true
	m.CompletedDate = &now
	m.CompletionNote = "first rupee earned"
	if err := store.UpdateMilestone(m); err != nil {
		t.Fatalf("failed to update milestone: %v", err)
	}

	got, err := store.GetMilestone(m.ID)
	if err != nil {
		t.Fatalf("failed to reload milestone: %v", err)
	}
	if !got.IsCompleted || got.CompletedDate == nil {
		t.Errorf("milestone completion did not persist: %+v", got)
	}
	if got.CompletionNote != "first rupee earned" {
		t.Errorf("unexpected completion note %q", got.CompletionNote)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}

	settings.Theme = "midnight"
	settings.SharedWhy = "design our way out of the 9 to 5"
	settings.SoundEnabled = false
	settings.Timezone = "Asia/Kolkata"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to reload settings: %v", err)
	}
	if got.Theme != "midnight" || got.SoundEnabled || got.Timezone != "Asia/Kolkata" {
		t.Errorf("settings did not round-trip: %+v", got)
	}
	if got.SharedWhy != "design our way out of the 9 to 5" {
		t.Errorf("unexpected shared why %q", got.SharedWhy)
	}
}
