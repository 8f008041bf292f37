package store

import (
	"time"

	"orghub/pkg/model"
)

// OrgsStore abstracts the tenant registry
type OrgsStore interface {
	// FindByName returns the non-deleted organization with the given name,
	// matched case-insensitively. Returns ErrNotFound if absent.
	FindByName(name string) (*model.Organization, error)

	// FindByAdmin returns the non-deleted organization owned by the given
	// admin. Returns ErrNotFound if the admin has no active organization.
	FindByAdmin(adminID string) (*model.Organization, error)

	// Insert adds a new organization. Returns ErrDuplicate when another
	// non-deleted organization holds the same name or partition id.
	Insert(org *model.Organization) error

	// MarkDeleted soft-deletes an organization
	MarkDeleted(id string, at time.Time) error

	// Rename repoints an organization to a new name and partition id
	Rename(id, newName, newPartitionID string, at time.Time) error

	// List returns up to limit non-deleted organizations ordered by name
	List(limit int) ([]model.Organization, error)
}
