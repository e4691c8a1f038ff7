package service

import (
	"encoding/json"
	"fmt"
	"os"

	"hanguldrill/internal/models"
	"hanguldrill/internal/repository"
)

// BackupService exports and imports the record store as a JSON file,
// so play history survives moving the app between machines.
type BackupService struct {
	recordRepo *repository.RecordRepository
}

// NewBackupService creates a new backup service
func NewBackupService(recordRepo *repository.RecordRepository) *BackupService {
	return &BackupService{recordRepo: recordRepo}
}

// Export writes the whole record store to path as indented JSON.
func (s *BackupService) Export(path string) error {
	payload, err := s.recordRepo.LoadBlob()
	if err != nil {
		return fmt.Errorf("failed to load record store: %w", err)
	}

	store := make(map[string]*models.Record)
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &store); err != nil {
			return fmt.Errorf("record store payload unreadable: %w", err)
		}
	}

	out, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}

// Import replaces the record store with the contents of a backup file.
// The file must decode as a level-to-record map; a malformed backup is
// rejected rather than silently wiping the store.
func (s *BackupService) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var store map[string]*models.Record
	if err := json.Unmarshal(data, &store); err != nil {
		return fmt.Errorf("backup file is not a valid record store: %w", err)
	}

	payload, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to encode record store: %w", err)
	}
	return s.recordRepo.SaveBlob(string(payload))
}
