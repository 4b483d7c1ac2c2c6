package repository

import (
	"majel-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// IntentRepositoryInterface defines the interface for intent repository operations
type IntentRepositoryInterface interface {
	Create(intent *models.Intent) error
	GetByKey(key string) (*models.Intent, error)
	GetAll(category *models.IntentCategory) ([]models.Intent, error)
	ExistsByKey(key string) (bool, error)
	Delete(key string) (bool, error)
}

// LoadoutFilter narrows a loadout listing. Nil fields are not applied.
type LoadoutFilter struct {
	ShipID    *uuid.UUID
	IntentKey *string
	Tag       *string
	Active    *bool
}

// LoadoutRepositoryInterface defines the interface for loadout repository operations
type LoadoutRepositoryInterface interface {
	Create(loadout *models.Loadout) error
	GetByID(id uuid.UUID) (*models.Loadout, error)
	GetByShipAndName(shipID uuid.UUID, name string) (*models.Loadout, error)
	List(filter LoadoutFilter) ([]models.Loadout, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) (bool, error)
	Exists(id uuid.UUID) (bool, error)
	ReplaceMembers(loadoutID uuid.UUID, members []models.LoadoutMember) error
	CountMembers(loadoutID uuid.UUID) (int64, error)
	ListMembersByOfficer(officerID uuid.UUID) ([]models.LoadoutMember, error)
}

// DockRepositoryInterface defines the interface for dock repository operations
type DockRepositoryInterface interface {
	Upsert(dock *models.Dock) error
	GetByNumber(dockNumber int) (*models.Dock, error)
	GetAll() ([]models.Dock, error)
	Delete(dockNumber int) (bool, error)
	Exists(dockNumber int) (bool, error)
}

// PlanItemFilter narrows a plan item listing. Nil fields are not applied.
type PlanItemFilter struct {
	Active     *bool
	DockNumber *int
	IntentKey  *string
}

// PlanItemRepositoryInterface defines the interface for plan item repository operations
type PlanItemRepositoryInterface interface {
	Create(item *models.PlanItem) error
	GetByID(id uuid.UUID) (*models.PlanItem, error)
	List(filter PlanItemFilter) ([]models.PlanItem, error)
	ListActive() ([]models.PlanItem, error)
	ListByLoadoutID(loadoutID uuid.UUID) ([]models.PlanItem, error)
	ListByDockNumber(dockNumber int) ([]models.PlanItem, error)
	GetActiveByDockNumber(dockNumber int) (*models.PlanItem, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) (bool, error)
	Exists(id uuid.UUID) (bool, error)
	ReplaceAwayMembers(planItemID uuid.UUID, officerIDs []uuid.UUID) error
	ListAwayMembersByOfficer(officerID uuid.UUID) ([]models.AwayMember, error)
}
