package models

import (
	"time"
)

// Task optionally belongs to a List. ListID is nullable: a task created
// without a list, or whose list has been deleted, stays around unattached.
type Task struct {
	ID          uint  `gorm:"primaryKey"`
	ListID      *uint `gorm:"index"`
	Name        string
	Description string
	IsDone      bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
