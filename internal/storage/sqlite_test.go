package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(SessionRecord{StartedAt: time.Now(), Generations: 3}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session after reopening, got %d", len(sessions))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := SessionRecord{
		StartedAt:       started,
		Duration:        90 * time.Second,
		Generations:     450,
		PeakPopulation:  312,
		FinalPopulation: 120,
		Spawns:          7,
		RandomMode:      true,
		Rows:            23,
		Cols:            80,
	}

	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveSession() id = %d, expected positive", id)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, expected %v", got.StartedAt, started)
	}
	if got.Duration != rec.Duration {
		t.Errorf("Duration = %v, expected %v", got.Duration, rec.Duration)
	}
	if got.Generations != 450 || got.PeakPopulation != 312 || got.FinalPopulation != 120 {
		t.Errorf("counters mismatch: %+v", got)
	}
	if !got.RandomMode || got.Spawns != 7 {
		t.Errorf("random mode fields mismatch: %+v", got)
	}
	if got.Rows != 23 || got.Cols != 80 {
		t.Errorf("grid size = %dx%d, expected 23x80", got.Rows, got.Cols)
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		store.SaveSession(SessionRecord{
			StartedAt:   base.Add(time.Duration(i) * time.Hour),
			Generations: uint64(i),
		})
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	// Newest first: 4, 3, 2
	for i, want := range []uint64{4, 3, 2} {
		if sessions[i].Generations != want {
			t.Errorf("sessions[%d].Generations = %d, expected %d", i, sessions[i].Generations, want)
		}
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty Summary() = %+v, expected zero values", empty)
	}

	last := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	store.SaveSession(SessionRecord{StartedAt: last.Add(-time.Hour), Duration: time.Minute, Generations: 100, PeakPopulation: 50})
	store.SaveSession(SessionRecord{StartedAt: last, Duration: 5 * time.Minute, Generations: 250, PeakPopulation: 40})

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", sum.Sessions)
	}
	if sum.TotalGenerations != 350 {
		t.Errorf("TotalGenerations = %d, expected 350", sum.TotalGenerations)
	}
	if sum.BestPeak != 50 {
		t.Errorf("BestPeak = %d, expected 50", sum.BestPeak)
	}
	if sum.LongestRun != 5*time.Minute {
		t.Errorf("LongestRun = %v, expected 5m", sum.LongestRun)
	}
	if !sum.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", sum.LastPlayed, last)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(SessionRecord{StartedAt: time.Now()})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions after clear, got %d", len(sessions))
	}
}
