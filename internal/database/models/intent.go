package models

import (
	"time"
)

// Intent is a reusable label describing what a loadout or plan item is for.
// Built-in intents are seeded at startup and can never be deleted; custom
// intents are fully owned by the user.
type Intent struct {
	Key         string         `json:"key" gorm:"size:60;primaryKey"`
	Label       string         `json:"label" gorm:"size:100;not null"`
	Category    IntentCategory `json:"category" gorm:"size:20;not null;index"`
	Description string         `json:"description" gorm:"size:200"`
	Icon        string         `json:"icon" gorm:"size:60"`
	IsBuiltin   bool           `json:"is_builtin" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName returns the table name for Intent
func (Intent) TableName() string {
	return "intents"
}
