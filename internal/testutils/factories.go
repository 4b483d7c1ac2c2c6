package testutils

import (
	"time"

	"majel-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShipFactory provides methods to create test Ship data
type ShipFactory struct{}

// NewShipFactory creates a new ShipFactory
func NewShipFactory() *ShipFactory {
	return &ShipFactory{}
}

// Create creates a test Ship with default values
func (f *ShipFactory) Create() *models.Ship {
	return &models.Ship{
		ID:        uuid.New(),
		Name:      "USS Test Ship",
		Class:     "explorer",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithName sets a custom name for the ship
func (f *ShipFactory) WithName(name string) *models.Ship {
	ship := f.Create()
	ship.Name = name
	return ship
}

// OfficerFactory provides methods to create test Officer data
type OfficerFactory struct{}

// NewOfficerFactory creates a new OfficerFactory
func NewOfficerFactory() *OfficerFactory {
	return &OfficerFactory{}
}

// Create creates a test Officer with default values
func (f *OfficerFactory) Create() *models.Officer {
	return &models.Officer{
		ID:        uuid.New(),
		Name:      "Test Officer",
		Rarity:    "rare",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithName sets a custom name for the officer
func (f *OfficerFactory) WithName(name string) *models.Officer {
	officer := f.Create()
	officer.Name = name
	return officer
}

// IntentFactory provides methods to create test Intent data
type IntentFactory struct{}

// NewIntentFactory creates a new IntentFactory
func NewIntentFactory() *IntentFactory {
	return &IntentFactory{}
}

// Create creates a custom (non-builtin) test Intent with default values
func (f *IntentFactory) Create() *models.Intent {
	key := "test-intent-" + uuid.New().String()[:8]
	return &models.Intent{
		Key:      key,
		Label:    "Test Intent",
		Category: models.IntentCategoryCustom,
	}
}

// WithKey sets a custom key for the intent
func (f *IntentFactory) WithKey(key string) *models.Intent {
	intent := f.Create()
	intent.Key = key
	return intent
}

// WithCategory sets a custom category for the intent
func (f *IntentFactory) WithCategory(category models.IntentCategory) *models.Intent {
	intent := f.Create()
	intent.Category = category
	return intent
}

// LoadoutFactory provides methods to create test Loadout data
type LoadoutFactory struct{}

// NewLoadoutFactory creates a new LoadoutFactory
func NewLoadoutFactory() *LoadoutFactory {
	return &LoadoutFactory{}
}

// Create creates an active test Loadout with default values. The ship ID is
// random; pass a real one via WithShip when the test needs catalog checks
// to pass.
func (f *LoadoutFactory) Create() *models.Loadout {
	return &models.Loadout{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		ShipID:     uuid.New(),
		Name:       "Test Loadout " + uuid.New().String()[:8],
		Priority:   0,
		IsActive:   true,
		IntentKeys: datatypes.NewJSONSlice([]string{}),
		Tags:       datatypes.NewJSONSlice([]string{}),
	}
}

// WithShip sets the ship ID for the loadout
func (f *LoadoutFactory) WithShip(shipID uuid.UUID) *models.Loadout {
	loadout := f.Create()
	loadout.ShipID = shipID
	return loadout
}

// WithName sets the ship and a custom name for the loadout
func (f *LoadoutFactory) WithName(shipID uuid.UUID, name string) *models.Loadout {
	loadout := f.Create()
	loadout.ShipID = shipID
	loadout.Name = name
	return loadout
}

// WithIntentKeys sets the intent keys for the loadout
func (f *LoadoutFactory) WithIntentKeys(shipID uuid.UUID, keys ...string) *models.Loadout {
	loadout := f.Create()
	loadout.ShipID = shipID
	loadout.IntentKeys = datatypes.NewJSONSlice(keys)
	return loadout
}

// Inactive creates an inactive loadout for the given ship
func (f *LoadoutFactory) Inactive(shipID uuid.UUID) *models.Loadout {
	loadout := f.Create()
	loadout.ShipID = shipID
	loadout.IsActive = false
	return loadout
}

// DockFactory provides methods to create test Dock data
type DockFactory struct{}

// NewDockFactory creates a new DockFactory
func NewDockFactory() *DockFactory {
	return &DockFactory{}
}

// Create creates a test Dock with the given number
func (f *DockFactory) Create(dockNumber int) *models.Dock {
	return &models.Dock{
		DockNumber: dockNumber,
		Label:      "Test Dock",
	}
}

// PlanItemFactory provides methods to create test PlanItem data
type PlanItemFactory struct{}

// NewPlanItemFactory creates a new PlanItemFactory
func NewPlanItemFactory() *PlanItemFactory {
	return &PlanItemFactory{}
}

// Create creates an active test PlanItem with no references
func (f *PlanItemFactory) Create() *models.PlanItem {
	return &models.PlanItem{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Label:    "Test Plan Item " + uuid.New().String()[:8],
		Priority: 0,
		IsActive: true,
	}
}

// WithLoadout sets the loadout reference for the plan item
func (f *PlanItemFactory) WithLoadout(loadoutID uuid.UUID) *models.PlanItem {
	item := f.Create()
	item.LoadoutID = &loadoutID
	return item
}

// WithDock sets the dock reference for the plan item
func (f *PlanItemFactory) WithDock(dockNumber int) *models.PlanItem {
	item := f.Create()
	item.DockNumber = &dockNumber
	return item
}

// WithLoadoutAndDock sets both references for the plan item
func (f *PlanItemFactory) WithLoadoutAndDock(loadoutID uuid.UUID, dockNumber int) *models.PlanItem {
	item := f.Create()
	item.LoadoutID = &loadoutID
	item.DockNumber = &dockNumber
	return item
}

// Inactive creates an inactive plan item
func (f *PlanItemFactory) Inactive() *models.PlanItem {
	item := f.Create()
	item.IsActive = false
	return item
}
