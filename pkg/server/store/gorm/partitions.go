package gorm

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"orghub/pkg/partition"
	"orghub/pkg/server/store"
)

// Ensure PartitionsStore implements store.PartitionsStore
var _ store.PartitionsStore = (*PartitionsStore)(nil)

// PartitionsStore manages per-tenant partitions as dynamically named tables
// of opaque JSONB records. The underlying store has no native table rename
// that preserves our bookkeeping, so renames are copy-then-drop at a higher
// layer.
type PartitionsStore struct {
	db *gorm.DB
}

// NewPartitionsStore creates a new PartitionsStore
func NewPartitionsStore(db *gorm.DB) *PartitionsStore {
	return &PartitionsStore{db: db}
}

// validatePartitionID guards the identifiers interpolated into DDL. Only
// identifiers produced by partition.DeriveID are accepted.
func validatePartitionID(id string) error {
	if !strings.HasPrefix(id, partition.Prefix) {
		return fmt.Errorf("partition id %q lacks the %q prefix", id, partition.Prefix)
	}
	if partition.Sanitize(id) != id {
		return fmt.Errorf("partition id %q contains disallowed characters", id)
	}
	return nil
}

func createTableSQL(id string) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id bigserial PRIMARY KEY,
			data jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)
	`, pq.QuoteIdentifier(id))
}

// CreateEmpty materializes an empty partition tagged with an initialization
// marker record
func (s *PartitionsStore) CreateEmpty(partitionID string) error {
	if err := validatePartitionID(partitionID); err != nil {
		return err
	}

	if err := s.db.Exec(createTableSQL(partitionID)).Error; err != nil {
		return err
	}

	return s.db.Exec(fmt.Sprintf(
		`INSERT INTO %s (data) VALUES ('{"_init": true}'::jsonb)`,
		pq.QuoteIdentifier(partitionID),
	)).Error
}

// CopyAll copies every record of src into dst, creating dst if needed.
// On failure dst may hold a prefix of src's records; callers retry or
// abandon, no rollback happens here.
func (s *PartitionsStore) CopyAll(srcID, dstID string) error {
	if err := validatePartitionID(srcID); err != nil {
		return err
	}
	if err := validatePartitionID(dstID); err != nil {
		return err
	}

	if err := s.db.Exec(createTableSQL(dstID)).Error; err != nil {
		return err
	}

	return s.db.Exec(fmt.Sprintf(
		`INSERT INTO %s (data, created_at) SELECT data, created_at FROM %s ORDER BY id`,
		pq.QuoteIdentifier(dstID),
		pq.QuoteIdentifier(srcID),
	)).Error
}

// Drop destroys a partition. Dropping a nonexistent partition is not an
// error.
func (s *PartitionsStore) Drop(partitionID string) error {
	if err := validatePartitionID(partitionID); err != nil {
		return err
	}

	return s.db.Exec(fmt.Sprintf(
		`DROP TABLE IF EXISTS %s`,
		pq.QuoteIdentifier(partitionID),
	)).Error
}

// Exists reports whether a partition is materialized
func (s *PartitionsStore) Exists(partitionID string) (bool, error) {
	if err := validatePartitionID(partitionID); err != nil {
		return false, err
	}

	var exists bool
	tx := s.db.Raw(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = ?
		)
	`, partitionID).Scan(&exists)
	return exists, tx.Error
}

// Count returns the number of records in a partition
func (s *PartitionsStore) Count(partitionID string) (int64, error) {
	if err := validatePartitionID(partitionID); err != nil {
		return 0, err
	}

	var count int64
	tx := s.db.Raw(fmt.Sprintf(
		`SELECT count(*) FROM %s`,
		pq.QuoteIdentifier(partitionID),
	)).Scan(&count)
	return count, tx.Error
}

// List returns the identifiers of all materialized partitions
func (s *PartitionsStore) List() ([]string, error) {
	// Underscores are LIKE wildcards, escape them in the prefix
	pattern := strings.ReplaceAll(partition.Prefix, "_", `\_`) + "%"

	var names []string
	tx := s.db.Raw(`
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name LIKE ?
		ORDER BY table_name
	`, pattern).Scan(&names)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return names, nil
}
