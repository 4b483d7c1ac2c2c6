package service

import (
	"github.com/google/uuid"
)

// IntentServiceInterface defines the interface for the intent catalog
type IntentServiceInterface interface {
	SeedBuiltins() (int, error)
	ListIntents(category *string) ([]IntentResponse, error)
	GetIntent(key string) (*IntentResponse, error)
	CreateIntent(req *CreateIntentRequest) (*IntentResponse, error)
	DeleteIntent(key string) (bool, error)
}

// LoadoutServiceInterface defines the interface for the loadout store
type LoadoutServiceInterface interface {
	CreateLoadout(req *CreateLoadoutRequest) (*LoadoutResponse, error)
	GetLoadout(id uuid.UUID) (*LoadoutResponse, error)
	ListLoadouts(req *ListLoadoutsRequest) ([]LoadoutResponse, error)
	FindLoadoutsForIntent(intentKey string) ([]LoadoutResponse, error)
	UpdateLoadout(id uuid.UUID, req *UpdateLoadoutRequest) (*LoadoutResponse, error)
	DeleteLoadout(id uuid.UUID) (bool, error)
	SetLoadoutMembers(loadoutID uuid.UUID, members []LoadoutMemberInput) ([]LoadoutMemberResponse, error)
}

// DockServiceInterface defines the interface for the dock registry
type DockServiceInterface interface {
	UpsertDock(req *UpsertDockRequest) (*DockResponse, error)
	GetDock(dockNumber int) (*DockResponse, error)
	ListDocks() ([]DockResponse, error)
	DeleteDock(dockNumber int) (bool, error)
}

// PlanItemServiceInterface defines the interface for the plan item ledger
type PlanItemServiceInterface interface {
	CreatePlanItem(req *CreatePlanItemRequest) (*PlanItemResponse, error)
	GetPlanItem(id uuid.UUID) (*PlanItemResponse, error)
	ListPlanItems(req *ListPlanItemsRequest) ([]PlanItemResponse, error)
	UpdatePlanItem(id uuid.UUID, req *UpdatePlanItemRequest) (*PlanItemResponse, error)
	DeletePlanItem(id uuid.UUID) (bool, error)
	SetAwayMembers(planItemID uuid.UUID, officerIDs []uuid.UUID) ([]AwayMemberResponse, error)
}

// ValidationServiceInterface defines the interface for the conflict engine
type ValidationServiceInterface interface {
	GetOfficerConflicts() ([]OfficerConflict, error)
	ValidatePlan() (*PlanReport, error)
}

// PreviewServiceInterface defines the interface for cascade previews
type PreviewServiceInterface interface {
	PreviewDeleteLoadout(id uuid.UUID) (*LoadoutDeletePreview, error)
	PreviewDeleteDock(dockNumber int) (*DockDeletePreview, error)
	PreviewDeleteOfficer(officerID uuid.UUID) (*OfficerDeletePreview, error)
}
