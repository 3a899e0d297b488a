package model

import "time"

// User entity.
//
// Table schema constraints (see migrations/0001_init.sql):
// - id: CHAR(36) uuid, primary key
// - username/email: unique across the whole user set (enforced by the store)
// - password_hash is opaque to everything except the auth package
type User struct {
	ID           string    `gorm:"primaryKey;type:char(36);not null" json:"id"`
	UserName     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"userName"`
	Email        string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
