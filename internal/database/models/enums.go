package models

// IntentCategory groups intents by the kind of activity they describe
type IntentCategory string

const (
	IntentCategoryMining  IntentCategory = "mining"
	IntentCategoryCombat  IntentCategory = "combat"
	IntentCategoryUtility IntentCategory = "utility"
	IntentCategoryCustom  IntentCategory = "custom"
)

// IsValid checks if the IntentCategory is valid
func (c IntentCategory) IsValid() bool {
	switch c {
	case IntentCategoryMining, IntentCategoryCombat, IntentCategoryUtility, IntentCategoryCustom:
		return true
	}
	return false
}

// RoleType defines where an officer sits in a loadout
type RoleType string

const (
	RoleTypeBridge    RoleType = "bridge"
	RoleTypeBelowDeck RoleType = "below_deck"
)

// IsValid checks if the RoleType is valid
func (r RoleType) IsValid() bool {
	switch r {
	case RoleTypeBridge, RoleTypeBelowDeck:
		return true
	}
	return false
}

// Bridge slot names as the game UI labels them. Slot is free-form and
// only meaningful for bridge members; these are the conventional values.
const (
	BridgeSlotCaptain  = "captain"
	BridgeSlotOfficer1 = "officer_1"
	BridgeSlotOfficer2 = "officer_2"
)

// AppearanceSource tags how an officer ended up on a plan item
type AppearanceSource string

const (
	AppearanceSourceLoadout  AppearanceSource = "loadout"
	AppearanceSourceAwayTeam AppearanceSource = "away_team"
)
