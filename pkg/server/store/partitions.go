package store

// PartitionsStore manages the physical per-tenant data partitions referenced
// by the tenant registry
type PartitionsStore interface {
	// CreateEmpty materializes an empty partition tagged with an
	// initialization marker record
	CreateEmpty(partitionID string) error

	// CopyAll copies every record of src into a newly created dst. On
	// failure dst holds a prefix of src's records; no rollback is attempted.
	CopyAll(srcID, dstID string) error

	// Drop destroys a partition. Idempotent: dropping a nonexistent
	// partition is not an error.
	Drop(partitionID string) error

	// Exists reports whether a partition is materialized
	Exists(partitionID string) (bool, error)

	// Count returns the number of records in a partition
	Count(partitionID string) (int64, error)

	// List returns the identifiers of all materialized partitions
	List() ([]string, error)
}
