package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"index"` // not unique, duplicate usernames are allowed
	// Password is stored exactly as supplied and compared with plain equality
	// at login. See DESIGN.md before changing this contract.
	Password  string
	AccessID  string `gorm:"uniqueIndex;not null"` // opaque bearer token issued at registration
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
