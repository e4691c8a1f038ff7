package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hanguldrill/internal/models"
	"hanguldrill/internal/repository"
)

// HistoryLimit caps each level's history at the most recent plays.
const HistoryLimit = 50

// RecordService owns the durable play records, one aggregate per
// level, serialized together as a single JSON blob.
type RecordService struct {
	recordRepo *repository.RecordRepository
}

// NewRecordService creates a new record service
func NewRecordService(recordRepo *repository.RecordRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

// load decodes the store blob. A corrupt payload is recovered as an
// empty store: losing old records beats refusing to save new ones, and
// the player never sees the difference.
func (s *RecordService) load() (map[string]*models.Record, error) {
	payload, err := s.recordRepo.LoadBlob()
	if err != nil {
		return nil, fmt.Errorf("failed to load record store: %w", err)
	}
	if payload == "" {
		return make(map[string]*models.Record), nil
	}

	var store map[string]*models.Record
	if err := json.Unmarshal([]byte(payload), &store); err != nil {
		log.Printf("Record store payload unreadable, starting empty: %v", err)
		return make(map[string]*models.Record), nil
	}
	if store == nil {
		store = make(map[string]*models.Record)
	}
	return store, nil
}

// Save folds one completed session into the level's record and writes
// the whole store back.
func (s *RecordService) Save(levelID string, score int) error {
	store, err := s.load()
	if err != nil {
		return err
	}

	rec := store[levelID]
	if rec == nil {
		rec = &models.Record{}
		store[levelID] = rec
	}
	applyScore(rec, score, time.Now())

	payload, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to encode record store: %w", err)
	}
	return s.recordRepo.SaveBlob(string(payload))
}

// applyScore updates a record in place for one completed session.
// History stays newest-first and bounded; High never decreases.
func applyScore(rec *models.Record, score int, at time.Time) {
	rec.Plays++
	rec.Last = score
	if score > rec.High {
		rec.High = score
	}

	rec.History = append([]models.RecordEntry{{At: at, Score: score}}, rec.History...)
	if len(rec.History) > HistoryLimit {
		rec.History = rec.History[:HistoryLimit]
	}
}

// Read returns the record for a level, or nil if the level has never
// been completed.
func (s *RecordService) Read(levelID string) (*models.Record, error) {
	store, err := s.load()
	if err != nil {
		return nil, err
	}
	return store[levelID], nil
}

// ReadAll returns every level's record, keyed by level id.
func (s *RecordService) ReadAll() (map[string]*models.Record, error) {
	return s.load()
}
