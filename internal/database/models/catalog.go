package models

import (
	"time"

	"github.com/google/uuid"
)

// Ship is a read-side row from the reference catalog. The planning engine
// only ever reads ships for existence checks and display names; ingestion
// of catalog data is owned elsewhere.
type Ship struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Class     string    `json:"class" gorm:"size:40"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Ship
func (Ship) TableName() string {
	return "ships"
}

// Officer is a read-side row from the reference catalog
type Officer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Rarity    string    `json:"rarity" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Officer
func (Officer) TableName() string {
	return "officers"
}
