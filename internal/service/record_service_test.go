package service

import (
	"testing"
	"time"

	"hanguldrill/internal/database"
	"hanguldrill/internal/models"
	"hanguldrill/internal/repository"
)

func TestApplyScore(t *testing.T) {
	now := time.Now()
	rec := &models.Record{}

	applyScore(rec, 80, now)
	if rec.Plays != 1 || rec.Last != 80 || rec.High != 80 {
		t.Errorf("after first save: %+v", rec)
	}

	applyScore(rec, 60, now.Add(time.Minute))
	if rec.Plays != 2 || rec.Last != 60 || rec.High != 80 {
		t.Errorf("after second save: %+v", rec)
	}
	if len(rec.History) != 2 {
		t.Fatalf("history length %d, want 2", len(rec.History))
	}
	if rec.History[0].Score != 60 || rec.History[1].Score != 80 {
		t.Errorf("history not newest-first: %+v", rec.History)
	}
}

func TestApplyScoreHighWatermark(t *testing.T) {
	rec := &models.Record{}
	now := time.Now()

	scores := []int{50, 100, 30, 90}
	for _, sc := range scores {
		applyScore(rec, sc, now)
	}
	if rec.High != 100 {
		t.Errorf("high = %d, want 100", rec.High)
	}
	if rec.Last != 90 {
		t.Errorf("last = %d, want 90", rec.Last)
	}
}

func TestApplyScoreHistoryCap(t *testing.T) {
	rec := &models.Record{}
	start := time.Now()

	for i := 0; i <= HistoryLimit; i++ {
		applyScore(rec, i, start.Add(time.Duration(i)*time.Minute))
	}

	if len(rec.History) != HistoryLimit {
		t.Fatalf("history length %d, want %d", len(rec.History), HistoryLimit)
	}
	// Newest entry first; the oldest save (score 0) must have been dropped.
	if rec.History[0].Score != HistoryLimit {
		t.Errorf("newest entry score %d, want %d", rec.History[0].Score, HistoryLimit)
	}
	if rec.History[len(rec.History)-1].Score != 1 {
		t.Errorf("oldest kept entry score %d, want 1", rec.History[len(rec.History)-1].Score)
	}
}

func newTestRecordService(t *testing.T) (*RecordService, *database.DB) {
	t.Helper()

	dbPath := t.TempDir() + "/records_test.db"
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS record_store (
			store_key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create record_store table: %v", err)
	}

	return NewRecordService(repository.NewRecordRepository(db)), db
}

func TestRecordRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, _ := newTestRecordService(t)

	if err := svc.Save("grade1", 80); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := svc.Save("grade1", 60); err != nil {
		t.Fatalf("second save: %v", err)
	}

	rec, err := svc.Read("grade1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec == nil {
		t.Fatal("record absent after save")
	}
	if rec.Plays != 2 || rec.Last != 60 || rec.High != 80 {
		t.Errorf("round trip: plays=%d last=%d high=%d", rec.Plays, rec.Last, rec.High)
	}
	if len(rec.History) != 2 || rec.History[0].Score != 60 || rec.History[1].Score != 80 {
		t.Errorf("history wrong: %+v", rec.History)
	}
}

func TestRecordReadAbsentLevel(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, _ := newTestRecordService(t)

	rec, err := svc.Read("never-played")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec != nil {
		t.Errorf("expected absent record, got %+v", rec)
	}
}

func TestRecordLevelsAreIndependent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, _ := newTestRecordService(t)

	if err := svc.Save("grade1", 70); err != nil {
		t.Fatal(err)
	}
	if err := svc.Save("grade2", 100); err != nil {
		t.Fatal(err)
	}

	all, err := svc.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if all["grade1"].High != 70 || all["grade2"].High != 100 {
		t.Errorf("levels bled into each other: %+v", all)
	}
}

func TestCorruptStoreRecoversEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, db := newTestRecordService(t)

	_, err := db.Exec(
		"INSERT INTO record_store (store_key, payload) VALUES (?, ?)",
		"dictation_records.v1", "{not json at all",
	)
	if err != nil {
		t.Fatalf("seeding corrupt payload: %v", err)
	}

	rec, err := svc.Read("grade1")
	if err != nil {
		t.Fatalf("read over corrupt store errored: %v", err)
	}
	if rec != nil {
		t.Errorf("corrupt store yielded a record: %+v", rec)
	}

	// Saving must still work, replacing the corrupt blob.
	if err := svc.Save("grade1", 90); err != nil {
		t.Fatalf("save over corrupt store: %v", err)
	}
	rec, err = svc.Read("grade1")
	if err != nil || rec == nil || rec.High != 90 {
		t.Errorf("store did not recover: rec=%+v err=%v", rec, err)
	}
}

func TestHistoryCapPersisted(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, _ := newTestRecordService(t)

	for i := 0; i < HistoryLimit+1; i++ {
		if err := svc.Save("grade1", (i%11)*10); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	rec, err := svc.Read("grade1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.History) != HistoryLimit {
		t.Errorf("persisted history length %d, want %d", len(rec.History), HistoryLimit)
	}
	if rec.Plays != HistoryLimit+1 {
		t.Errorf("plays = %d, want %d", rec.Plays, HistoryLimit+1)
	}
}
