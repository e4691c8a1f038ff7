package repository

import (
	"database/sql"

	"hanguldrill/internal/database"
)

// storeKey is the single row the whole record blob lives under. The
// version suffix leaves room for a future format change without a
// migration.
const storeKey = "dictation_records.v1"

// RecordRepository persists the serialized record store as one opaque
// blob. The store has a single writer, so every save is a plain
// read-modify-write overwrite of the row.
type RecordRepository struct {
	db *database.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *database.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// LoadBlob returns the raw serialized store, or "" when no record has
// ever been saved.
func (r *RecordRepository) LoadBlob() (string, error) {
	query := "SELECT payload FROM record_store WHERE store_key = ?"

	var payload string
	err := r.db.QueryRow(query, storeKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return payload, nil
}

// SaveBlob overwrites the stored blob. Update-then-insert keeps the
// statement portable across all three dialects.
func (r *RecordRepository) SaveBlob(payload string) error {
	result, err := r.db.Exec(
		"UPDATE record_store SET payload = ?, updated_at = CURRENT_TIMESTAMP WHERE store_key = ?",
		payload, storeKey,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	_, err = r.db.Exec(
		"INSERT INTO record_store (store_key, payload) VALUES (?, ?)",
		storeKey, payload,
	)
	return err
}
