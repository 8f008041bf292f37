package store

import "orghub/pkg/model"

// AdminsStore abstracts the admin credential store
type AdminsStore interface {
	// Create inserts a new admin credential
	Create(admin *model.Admin) error

	// FindByEmail returns the first admin with the given email.
	// Returns ErrNotFound if absent.
	FindByEmail(email string) (*model.Admin, error)

	// Delete removes an admin credential. Used only to compensate a failed
	// organization create.
	Delete(id string) error
}
