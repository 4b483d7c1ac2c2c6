package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Loadout is a named crew composition: a ship paired with a set of officer
// assignments. (ShipID, Name) is unique.
type Loadout struct {
	BaseModel
	ShipID     uuid.UUID                   `json:"ship_id" gorm:"type:uuid;not null;uniqueIndex:idx_loadouts_ship_name"`
	Name       string                      `json:"name" gorm:"size:100;not null;uniqueIndex:idx_loadouts_ship_name"`
	Priority   int                         `json:"priority" gorm:"not null;default:0"`
	IsActive   bool                        `json:"is_active" gorm:"not null;default:true"`
	IntentKeys datatypes.JSONSlice[string] `json:"intent_keys"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	Notes      string                      `json:"notes" gorm:"size:500"`

	// Relationships
	Members []LoadoutMember `json:"members,omitempty" gorm:"foreignKey:LoadoutID"`
}

// TableName returns the table name for Loadout
func (Loadout) TableName() string {
	return "loadouts"
}

// LoadoutMember assigns one officer to one loadout. The member set of a
// loadout is always replaced as a whole, never patched row by row.
type LoadoutMember struct {
	BaseModel
	LoadoutID uuid.UUID `json:"loadout_id" gorm:"type:uuid;not null;index"`
	OfficerID uuid.UUID `json:"officer_id" gorm:"type:uuid;not null;index"`
	RoleType  RoleType  `json:"role_type" gorm:"size:20;not null"`
	Slot      string    `json:"slot" gorm:"size:20"` // bridge only
}

// TableName returns the table name for LoadoutMember
func (LoadoutMember) TableName() string {
	return "loadout_members"
}
