package models

import (
	"time"
)

// Dock is a finite physical assignment slot. The user-chosen dock number is
// the primary identity, so creating an existing number is an update.
type Dock struct {
	DockNumber int       `json:"dock_number" gorm:"primaryKey;autoIncrement:false"`
	Label      string    `json:"label" gorm:"size:100"`
	Notes      string    `json:"notes" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for Dock
func (Dock) TableName() string {
	return "docks"
}
