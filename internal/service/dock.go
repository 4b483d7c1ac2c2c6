package service

import (
	"errors"
	"fmt"

	"majel-backend/internal/catalog"
	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DockService handles business logic for the dock registry
type DockService struct {
	repo      repository.DockRepositoryInterface
	planItems repository.PlanItemRepositoryInterface
	catalog   catalog.Reference
	validator *validator.Validate
}

// Ensure DockService implements DockServiceInterface
var _ DockServiceInterface = (*DockService)(nil)

// NewDockService creates a new dock service
func NewDockService(repo repository.DockRepositoryInterface, planItems repository.PlanItemRepositoryInterface, ref catalog.Reference, validator *validator.Validate) *DockService {
	return &DockService{
		repo:      repo,
		planItems: planItems,
		catalog:   ref,
		validator: validator,
	}
}

// UpsertDockRequest represents the data needed to create or update a dock
type UpsertDockRequest struct {
	DockNumber int    `json:"dock_number"`
	Label      string `json:"label" validate:"max=100"`
	Notes      string `json:"notes" validate:"max=500"`
}

// DockAssignment is the single active plan item currently pointing at a dock
type DockAssignment struct {
	PlanItemID  uuid.UUID  `json:"plan_item_id"`
	Label       string     `json:"label"`
	IntentKey   *string    `json:"intent_key,omitempty"`
	LoadoutID   *uuid.UUID `json:"loadout_id,omitempty"`
	LoadoutName string     `json:"loadout_name,omitempty"`
	ShipName    string     `json:"ship_name,omitempty"`
}

// DockResponse represents the response data for a dock
type DockResponse struct {
	DockNumber int             `json:"dock_number"`
	Label      string          `json:"label"`
	Notes      string          `json:"notes"`
	Assignment *DockAssignment `json:"assignment"`
}

// UpsertDock creates or updates a dock by its user-chosen number
func (s *DockService) UpsertDock(req *UpsertDockRequest) (*DockResponse, error) {
	if req.DockNumber <= 0 {
		return nil, apperrors.NewValidationError("dock_number", "must be a positive integer")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	dock := &models.Dock{
		DockNumber: req.DockNumber,
		Label:      req.Label,
		Notes:      req.Notes,
	}
	if err := s.repo.Upsert(dock); err != nil {
		return nil, fmt.Errorf("failed to upsert dock: %w", err)
	}

	return s.convertToResponse(dock)
}

// GetDock retrieves a dock with its derived active assignment
func (s *DockService) GetDock(dockNumber int) (*DockResponse, error) {
	dock, err := s.repo.GetByNumber(dockNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDockNotFound
		}
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}
	return s.convertToResponse(dock)
}

// ListDocks retrieves all docks ordered by dock number, each with its
// derived assignment
func (s *DockService) ListDocks() ([]DockResponse, error) {
	docks, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list docks: %w", err)
	}

	responses := make([]DockResponse, len(docks))
	for i, dock := range docks {
		resp, err := s.convertToResponse(&dock)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}

// DeleteDock removes a dock, clearing the dock reference on plan items.
// Returns whether the dock existed.
func (s *DockService) DeleteDock(dockNumber int) (bool, error) {
	existed, err := s.repo.Delete(dockNumber)
	if err != nil {
		return false, fmt.Errorf("failed to delete dock: %w", err)
	}
	return existed, nil
}

// convertToResponse converts a Dock model to API response with the derived
// assignment attached
func (s *DockService) convertToResponse(dock *models.Dock) (*DockResponse, error) {
	resp := &DockResponse{
		DockNumber: dock.DockNumber,
		Label:      dock.Label,
		Notes:      dock.Notes,
	}

	item, err := s.planItems.GetActiveByDockNumber(dock.DockNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("failed to resolve dock assignment: %w", err)
	}

	assignment := &DockAssignment{
		PlanItemID: item.ID,
		Label:      item.Label,
		IntentKey:  item.IntentKey,
		LoadoutID:  item.LoadoutID,
	}
	if item.Loadout != nil {
		assignment.LoadoutName = item.Loadout.Name
		if shipName, err := s.catalog.ShipName(item.Loadout.ShipID); err == nil {
			assignment.ShipName = shipName
		}
	}
	resp.Assignment = assignment
	return resp, nil
}
