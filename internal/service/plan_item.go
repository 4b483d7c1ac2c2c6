package service

import (
	"errors"
	"fmt"
	"time"

	"majel-backend/internal/catalog"
	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanItemService handles business logic for the plan item ledger
type PlanItemService struct {
	repo      repository.PlanItemRepositoryInterface
	loadouts  repository.LoadoutRepositoryInterface
	docks     repository.DockRepositoryInterface
	intents   repository.IntentRepositoryInterface
	catalog   catalog.Reference
	validator *validator.Validate
}

// Ensure PlanItemService implements PlanItemServiceInterface
var _ PlanItemServiceInterface = (*PlanItemService)(nil)

// NewPlanItemService creates a new plan item service
func NewPlanItemService(
	repo repository.PlanItemRepositoryInterface,
	loadouts repository.LoadoutRepositoryInterface,
	docks repository.DockRepositoryInterface,
	intents repository.IntentRepositoryInterface,
	ref catalog.Reference,
	validator *validator.Validate,
) *PlanItemService {
	return &PlanItemService{
		repo:      repo,
		loadouts:  loadouts,
		docks:     docks,
		intents:   intents,
		catalog:   ref,
		validator: validator,
	}
}

// CreatePlanItemRequest represents the data needed to create a plan item.
// All references are optional; a bare plan item (for an away-team intent,
// say) is valid.
type CreatePlanItemRequest struct {
	IntentKey  *string    `json:"intent_key"`
	Label      string     `json:"label" validate:"max=100"`
	LoadoutID  *uuid.UUID `json:"loadout_id"`
	DockNumber *int       `json:"dock_number"`
	Priority   *int       `json:"priority"`
	IsActive   *bool      `json:"is_active"`
	Notes      string     `json:"notes" validate:"max=500"`
}

// UpdatePlanItemRequest represents a partial plan item update. Nil pointer
// fields are left untouched; the Clear flags explicitly null a reference,
// which is distinct from omitting it.
type UpdatePlanItemRequest struct {
	IntentKey    *string    `json:"intent_key"`
	ClearIntent  bool       `json:"clear_intent"`
	Label        *string    `json:"label" validate:"omitempty,max=100"`
	LoadoutID    *uuid.UUID `json:"loadout_id"`
	ClearLoadout bool       `json:"clear_loadout"`
	DockNumber   *int       `json:"dock_number"`
	ClearDock    bool       `json:"clear_dock"`
	Priority     *int       `json:"priority"`
	IsActive     *bool      `json:"is_active"`
	Notes        *string    `json:"notes" validate:"omitempty,max=500"`
}

// AwayMemberResponse represents one resolved away-team officer
type AwayMemberResponse struct {
	OfficerID   uuid.UUID `json:"officer_id"`
	OfficerName string    `json:"officer_name"`
}

// PlanItemResponse represents the response data for a plan item
type PlanItemResponse struct {
	ID          uuid.UUID               `json:"id"`
	IntentKey   *string                 `json:"intent_key,omitempty"`
	IntentLabel string                  `json:"intent_label,omitempty"`
	Label       string                  `json:"label"`
	LoadoutID   *uuid.UUID              `json:"loadout_id,omitempty"`
	LoadoutName string                  `json:"loadout_name,omitempty"`
	ShipName    string                  `json:"ship_name,omitempty"`
	DockNumber  *int                    `json:"dock_number,omitempty"`
	DockLabel   string                  `json:"dock_label,omitempty"`
	Priority    int                     `json:"priority"`
	IsActive    bool                    `json:"is_active"`
	Notes       string                  `json:"notes"`
	Members     []LoadoutMemberResponse `json:"members,omitempty"`
	AwayMembers []AwayMemberResponse    `json:"away_members,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// ListPlanItemsRequest narrows a plan item listing
type ListPlanItemsRequest struct {
	Active     *bool   `json:"active"`
	DockNumber *int    `json:"dock_number"`
	IntentKey  *string `json:"intent_key"`
}

// CreatePlanItem creates a new plan item, validating any provided references
func (s *PlanItemService) CreatePlanItem(req *CreatePlanItemRequest) (*PlanItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if err := s.checkReferences(req.IntentKey, req.LoadoutID, req.DockNumber); err != nil {
		return nil, err
	}

	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item := &models.PlanItem{
		IntentKey:  req.IntentKey,
		Label:      req.Label,
		LoadoutID:  req.LoadoutID,
		DockNumber: req.DockNumber,
		Priority:   priority,
		IsActive:   isActive,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create plan item: %w", err)
	}

	return s.GetPlanItem(item.ID)
}

// GetPlanItem retrieves a plan item with every reference resolved: intent
// label, loadout and ship names, dock label, the loadout's member set, and
// the away-team members
func (s *PlanItemService) GetPlanItem(id uuid.UUID) (*PlanItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanItemNotFound
		}
		return nil, fmt.Errorf("failed to get plan item: %w", err)
	}
	return s.convertToResponse(item, true), nil
}

// ListPlanItems retrieves plan items matching the filter, ordered by
// priority descending. Member sets and resolved names are not included in
// listings; use GetPlanItem for the full picture.
func (s *PlanItemService) ListPlanItems(req *ListPlanItemsRequest) ([]PlanItemResponse, error) {
	filter := repository.PlanItemFilter{}
	if req != nil {
		filter.Active = req.Active
		filter.DockNumber = req.DockNumber
		filter.IntentKey = req.IntentKey
	}

	items, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan items: %w", err)
	}

	responses := make([]PlanItemResponse, len(items))
	for i, item := range items {
		responses[i] = *s.convertToResponse(&item, false)
	}
	return responses, nil
}

// UpdatePlanItem applies a partial update, re-validating any new references
// and supporting explicit nulling of loadout/dock/intent
func (s *PlanItemService) UpdatePlanItem(id uuid.UUID, req *UpdatePlanItemRequest) (*PlanItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if req.ClearIntent && req.IntentKey != nil {
		return nil, apperrors.NewValidationError("intent_key", "cannot both set and clear")
	}
	if req.ClearLoadout && req.LoadoutID != nil {
		return nil, apperrors.NewValidationError("loadout_id", "cannot both set and clear")
	}
	if req.ClearDock && req.DockNumber != nil {
		return nil, apperrors.NewValidationError("dock_number", "cannot both set and clear")
	}

	exists, err := s.repo.Exists(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan item: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrPlanItemNotFound
	}

	if err := s.checkReferences(req.IntentKey, req.LoadoutID, req.DockNumber); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.IntentKey != nil {
		updates["intent_key"] = *req.IntentKey
	}
	if req.ClearIntent {
		updates["intent_key"] = nil
	}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.LoadoutID != nil {
		updates["loadout_id"] = *req.LoadoutID
	}
	if req.ClearLoadout {
		updates["loadout_id"] = nil
	}
	if req.DockNumber != nil {
		updates["dock_number"] = *req.DockNumber
	}
	if req.ClearDock {
		updates["dock_number"] = nil
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update plan item: %w", err)
		}
	}

	return s.GetPlanItem(id)
}

// DeletePlanItem removes a plan item, cascading its away members. Returns
// whether the item existed.
func (s *PlanItemService) DeletePlanItem(id uuid.UUID) (bool, error) {
	existed, err := s.repo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete plan item: %w", err)
	}
	return existed, nil
}

// SetAwayMembers replaces the plan item's entire away-member set atomically.
// An empty slice clears all away members.
func (s *PlanItemService) SetAwayMembers(planItemID uuid.UUID, officerIDs []uuid.UUID) ([]AwayMemberResponse, error) {
	exists, err := s.repo.Exists(planItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan item: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrPlanItemNotFound
	}

	for _, officerID := range officerIDs {
		officerExists, err := s.catalog.OfficerExists(officerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check officer: %w", err)
		}
		if !officerExists {
			return nil, apperrors.ErrOfficerNotFound
		}
	}

	if err := s.repo.ReplaceAwayMembers(planItemID, officerIDs); err != nil {
		return nil, fmt.Errorf("failed to replace away members: %w", err)
	}

	responses := make([]AwayMemberResponse, len(officerIDs))
	for i, officerID := range officerIDs {
		name, err := s.catalog.OfficerName(officerID)
		if err != nil {
			name = ""
		}
		responses[i] = AwayMemberResponse{OfficerID: officerID, OfficerName: name}
	}
	return responses, nil
}

// checkReferences validates that any provided foreign reference resolves
func (s *PlanItemService) checkReferences(intentKey *string, loadoutID *uuid.UUID, dockNumber *int) error {
	if intentKey != nil {
		exists, err := s.intents.ExistsByKey(*intentKey)
		if err != nil {
			return fmt.Errorf("failed to check intent: %w", err)
		}
		if !exists {
			return apperrors.ErrIntentNotFound
		}
	}
	if loadoutID != nil {
		exists, err := s.loadouts.Exists(*loadoutID)
		if err != nil {
			return fmt.Errorf("failed to check loadout: %w", err)
		}
		if !exists {
			return apperrors.ErrLoadoutNotFound
		}
	}
	if dockNumber != nil {
		exists, err := s.docks.Exists(*dockNumber)
		if err != nil {
			return fmt.Errorf("failed to check dock: %w", err)
		}
		if !exists {
			return apperrors.ErrDockNotFound
		}
	}
	return nil
}

// convertToResponse converts a PlanItem model to API response. Resolution
// of labels, names, and member sets only happens for single-item reads.
func (s *PlanItemService) convertToResponse(item *models.PlanItem, resolve bool) *PlanItemResponse {
	resp := &PlanItemResponse{
		ID:         item.ID,
		IntentKey:  item.IntentKey,
		Label:      item.Label,
		LoadoutID:  item.LoadoutID,
		DockNumber: item.DockNumber,
		Priority:   item.Priority,
		IsActive:   item.IsActive,
		Notes:      item.Notes,
		CreatedAt:  item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  item.UpdatedAt.Format(time.RFC3339),
	}
	if !resolve {
		return resp
	}

	if item.IntentKey != nil {
		if intent, err := s.intents.GetByKey(*item.IntentKey); err == nil {
			resp.IntentLabel = intent.Label
		}
	}
	if item.DockNumber != nil {
		if dock, err := s.docks.GetByNumber(*item.DockNumber); err == nil {
			resp.DockLabel = dock.Label
		}
	}
	if item.Loadout != nil {
		resp.LoadoutName = item.Loadout.Name
		if shipName, err := s.catalog.ShipName(item.Loadout.ShipID); err == nil {
			resp.ShipName = shipName
		}
		resp.Members = make([]LoadoutMemberResponse, len(item.Loadout.Members))
		for i, member := range item.Loadout.Members {
			name, err := s.catalog.OfficerName(member.OfficerID)
			if err != nil {
				name = ""
			}
			resp.Members[i] = LoadoutMemberResponse{
				OfficerID:   member.OfficerID,
				OfficerName: name,
				RoleType:    string(member.RoleType),
				Slot:        member.Slot,
			}
		}
	}
	resp.AwayMembers = make([]AwayMemberResponse, len(item.AwayMembers))
	for i, member := range item.AwayMembers {
		name, err := s.catalog.OfficerName(member.OfficerID)
		if err != nil {
			name = ""
		}
		resp.AwayMembers[i] = AwayMemberResponse{OfficerID: member.OfficerID, OfficerName: name}
	}
	return resp
}
