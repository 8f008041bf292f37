package gorm

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"orghub/pkg/model"
	"orghub/pkg/server/store"
)

// Ensure OrgsStore implements store.OrgsStore
var _ store.OrgsStore = (*OrgsStore)(nil)

// OrgsStore implements store.OrgsStore using GORM
type OrgsStore struct {
	db *gorm.DB
}

// NewOrgsStore creates a new OrgsStore
func NewOrgsStore(db *gorm.DB) *OrgsStore {
	return &OrgsStore{db: db}
}

// FindByName returns the non-deleted organization with the given name,
// matched case-insensitively
func (s *OrgsStore) FindByName(name string) (*model.Organization, error) {
	var org model.Organization
	tx := s.db.Where("lower(name) = lower(?) AND NOT deleted", strings.TrimSpace(name)).First(&org)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &org, nil
}

// FindByAdmin returns the non-deleted organization owned by the given admin
func (s *OrgsStore) FindByAdmin(adminID string) (*model.Organization, error) {
	var org model.Organization
	tx := s.db.Where("admin_id = ? AND NOT deleted", adminID).First(&org)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &org, nil
}

// Insert adds a new organization, reporting unique-index violations as
// store.ErrDuplicate so the caller can compensate
func (s *OrgsStore) Insert(org *model.Organization) error {
	if err := s.db.Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

// MarkDeleted soft-deletes an organization
func (s *OrgsStore) MarkDeleted(id string, at time.Time) error {
	return s.db.Model(&model.Organization{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted":    true,
		"deleted_at": at,
	}).Error
}

// Rename repoints an organization to a new name and partition id
func (s *OrgsStore) Rename(id, newName, newPartitionID string, at time.Time) error {
	return s.db.Model(&model.Organization{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":         newName,
		"partition_id": newPartitionID,
		"updated_at":   at,
	}).Error
}

// List returns up to limit non-deleted organizations ordered by name
func (s *OrgsStore) List(limit int) ([]model.Organization, error) {
	var orgs []model.Organization
	tx := s.db.Where("NOT deleted").Order("lower(name)").Limit(limit).Find(&orgs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return orgs, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
