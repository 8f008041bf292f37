package model

import "time"

// Admin is an organization's admin identity. Created together with its
// Organization; never independently deleted outside create-compensation.
type Admin struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
