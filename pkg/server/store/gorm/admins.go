package gorm

import (
	"errors"

	"gorm.io/gorm"

	"orghub/pkg/model"
	"orghub/pkg/server/store"
)

// Ensure AdminsStore implements store.AdminsStore
var _ store.AdminsStore = (*AdminsStore)(nil)

// AdminsStore implements store.AdminsStore using GORM
type AdminsStore struct {
	db *gorm.DB
}

// NewAdminsStore creates a new AdminsStore
func NewAdminsStore(db *gorm.DB) *AdminsStore {
	return &AdminsStore{db: db}
}

// Create inserts a new admin credential
func (s *AdminsStore) Create(admin *model.Admin) error {
	return s.db.Create(admin).Error
}

// FindByEmail returns the first admin with the given email
func (s *AdminsStore) FindByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	tx := s.db.Where("email = ?", email).Order("created_at").First(&admin)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &admin, nil
}

// Delete removes an admin credential
func (s *AdminsStore) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&model.Admin{}).Error
}
