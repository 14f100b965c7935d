package models

import (
	"time"
)

type List struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;index"`
	Name        string
	Description string
	IsDone      bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (List) TableName() string {
	return "lists"
}
