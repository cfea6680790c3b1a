package gallery

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DefaultStorageKey is the row key for the persisted gallery blob.
const DefaultStorageKey = "art-explorer-gallery"

// DBStorage keeps the gallery blob in a single keyed row of a MySQL table.
// Save upserts the row wholesale, matching the single-key contract of
// Storage.
//
// Schema:
//
//	CREATE TABLE gallery_blobs (
//	    `key`  VARCHAR(191) PRIMARY KEY,
//	    `data` MEDIUMBLOB NOT NULL
//	);
type DBStorage struct {
	db  *sqlx.DB
	key string
}

// NewDBStorage creates a DBStorage. An empty key falls back to
// DefaultStorageKey.
func NewDBStorage(db *sqlx.DB, key string) *DBStorage {
	if key == "" {
		key = DefaultStorageKey
	}
	return &DBStorage{db: db, key: key}
}

// Load reads the gallery row. A missing row is not an error.
func (s *DBStorage) Load() ([]byte, bool, error) {
	var data []byte
	err := s.db.Get(&data, "SELECT `data` FROM gallery_blobs WHERE `key` = ?", s.key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load gallery blob: %w", err)
	}
	return data, true, nil
}

// Save upserts the gallery row.
func (s *DBStorage) Save(data []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO gallery_blobs (`key`, `data`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `data` = VALUES(`data`)",
		s.key, data,
	)
	if err != nil {
		return fmt.Errorf("save gallery blob: %w", err)
	}
	return nil
}

// Clear deletes the gallery row.
func (s *DBStorage) Clear() error {
	if _, err := s.db.Exec("DELETE FROM gallery_blobs WHERE `key` = ?", s.key); err != nil {
		return fmt.Errorf("clear gallery blob: %w", err)
	}
	return nil
}
