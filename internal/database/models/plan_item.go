package models

import (
	"github.com/google/uuid"
)

// PlanItem binds an intent to a loadout/dock pair, or to a standalone
// away-team officer set. All three references are optional: a plan item is
// a standing intention that outlives the resources it points at, so deleting
// a loadout or dock nulls the reference here rather than deleting the item.
type PlanItem struct {
	BaseModel
	IntentKey  *string    `json:"intent_key" gorm:"size:60;index"`
	Label      string     `json:"label" gorm:"size:100"`
	LoadoutID  *uuid.UUID `json:"loadout_id" gorm:"type:uuid;index"`
	DockNumber *int       `json:"dock_number" gorm:"index"`
	Priority   int        `json:"priority" gorm:"not null;default:0"`
	IsActive   bool       `json:"is_active" gorm:"not null;default:true"`
	Notes      string     `json:"notes" gorm:"size:500"`

	// Relationships
	Loadout     *Loadout     `json:"loadout,omitempty" gorm:"foreignKey:LoadoutID"`
	AwayMembers []AwayMember `json:"away_members,omitempty" gorm:"foreignKey:PlanItemID"`
}

// TableName returns the table name for PlanItem
func (PlanItem) TableName() string {
	return "plan_items"
}

// AwayMember assigns an officer directly to a plan item, independent of any
// loadout. Used for away-team style intents that have no ship.
type AwayMember struct {
	BaseModel
	PlanItemID uuid.UUID `json:"plan_item_id" gorm:"type:uuid;not null;index"`
	OfficerID  uuid.UUID `json:"officer_id" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for AwayMember
func (AwayMember) TableName() string {
	return "away_members"
}
