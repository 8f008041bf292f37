package model

import "time"

// Organization is a tenant metadata record. PartitionID names the physical
// data partition holding the tenant's records; the Organization row is the
// sole source of truth for which partition is current.
type Organization struct {
	ID          string     `gorm:"column:id;primaryKey"`
	Name        string     `gorm:"column:name"`
	PartitionID string     `gorm:"column:partition_id"`
	AdminID     string     `gorm:"column:admin_id"`
	Deleted     bool       `gorm:"column:deleted"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
