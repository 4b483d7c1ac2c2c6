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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LoadoutService handles business logic for crew loadouts
type LoadoutService struct {
	repo      repository.LoadoutRepositoryInterface
	catalog   catalog.Reference
	validator *validator.Validate
}

// Ensure LoadoutService implements LoadoutServiceInterface
var _ LoadoutServiceInterface = (*LoadoutService)(nil)

// NewLoadoutService creates a new loadout service
func NewLoadoutService(repo repository.LoadoutRepositoryInterface, ref catalog.Reference, validator *validator.Validate) *LoadoutService {
	return &LoadoutService{
		repo:      repo,
		catalog:   ref,
		validator: validator,
	}
}

// CreateLoadoutRequest represents the data needed to create a loadout
type CreateLoadoutRequest struct {
	ShipID     uuid.UUID `json:"ship_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=100"`
	Priority   *int      `json:"priority"`
	IsActive   *bool     `json:"is_active"`
	IntentKeys []string  `json:"intent_keys"`
	Tags       []string  `json:"tags"`
	Notes      string    `json:"notes" validate:"max=500"`
}

// UpdateLoadoutRequest represents a partial loadout update. Nil fields are
// left untouched; a non-nil empty slice clears intent keys or tags.
type UpdateLoadoutRequest struct {
	Name       *string  `json:"name" validate:"omitempty,max=100"`
	Priority   *int     `json:"priority"`
	IsActive   *bool    `json:"is_active"`
	IntentKeys []string `json:"intent_keys"`
	Tags       []string `json:"tags"`
	Notes      *string  `json:"notes" validate:"omitempty,max=500"`
}

// LoadoutMemberInput specifies one officer assignment when replacing a
// loadout's member set
type LoadoutMemberInput struct {
	OfficerID uuid.UUID `json:"officer_id" validate:"required"`
	RoleType  string    `json:"role_type" validate:"required"`
	Slot      string    `json:"slot" validate:"max=20"`
}

// LoadoutMemberResponse represents one resolved officer assignment
type LoadoutMemberResponse struct {
	OfficerID   uuid.UUID `json:"officer_id"`
	OfficerName string    `json:"officer_name"`
	RoleType    string    `json:"role_type"`
	Slot        string    `json:"slot,omitempty"`
}

// LoadoutResponse represents the response data for a loadout
type LoadoutResponse struct {
	ID         uuid.UUID               `json:"id"`
	ShipID     uuid.UUID               `json:"ship_id"`
	ShipName   string                  `json:"ship_name"`
	Name       string                  `json:"name"`
	Priority   int                     `json:"priority"`
	IsActive   bool                    `json:"is_active"`
	IntentKeys []string                `json:"intent_keys"`
	Tags       []string                `json:"tags"`
	Notes      string                  `json:"notes"`
	Members    []LoadoutMemberResponse `json:"members,omitempty"`
	CreatedAt  string                  `json:"created_at"`
	UpdatedAt  string                  `json:"updated_at"`
}

// ListLoadoutsRequest narrows a loadout listing
type ListLoadoutsRequest struct {
	ShipID    *uuid.UUID `json:"ship_id"`
	IntentKey *string    `json:"intent_key"`
	Tag       *string    `json:"tag"`
	Active    *bool      `json:"active"`
}

// CreateLoadout creates a new loadout for an existing ship
func (s *LoadoutService) CreateLoadout(req *CreateLoadoutRequest) (*LoadoutResponse, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	exists, err := s.catalog.ShipExists(req.ShipID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ship: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrShipNotFound
	}

	if _, err := s.repo.GetByShipAndName(req.ShipID, req.Name); err == nil {
		return nil, apperrors.ErrLoadoutExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check loadout name: %w", err)
	}

	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	loadout := &models.Loadout{
		ShipID:     req.ShipID,
		Name:       req.Name,
		Priority:   priority,
		IsActive:   isActive,
		IntentKeys: datatypes.NewJSONSlice(emptyIfNil(req.IntentKeys)),
		Tags:       datatypes.NewJSONSlice(emptyIfNil(req.Tags)),
		Notes:      req.Notes,
	}
	if err := s.repo.Create(loadout); err != nil {
		return nil, fmt.Errorf("failed to create loadout: %w", err)
	}

	return s.convertToResponse(loadout, true), nil
}

// GetLoadout retrieves a loadout with resolved ship and officer names
func (s *LoadoutService) GetLoadout(id uuid.UUID) (*LoadoutResponse, error) {
	loadout, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoadoutNotFound
		}
		return nil, fmt.Errorf("failed to get loadout: %w", err)
	}
	return s.convertToResponse(loadout, true), nil
}

// ListLoadouts retrieves loadouts matching the filter, ordered by priority
// descending. Members are not included in listings; use GetLoadout for the
// full member set.
func (s *LoadoutService) ListLoadouts(req *ListLoadoutsRequest) ([]LoadoutResponse, error) {
	filter := repository.LoadoutFilter{}
	if req != nil {
		filter.ShipID = req.ShipID
		filter.IntentKey = req.IntentKey
		filter.Tag = req.Tag
		filter.Active = req.Active
	}

	loadouts, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list loadouts: %w", err)
	}

	responses := make([]LoadoutResponse, len(loadouts))
	for i, loadout := range loadouts {
		responses[i] = *s.convertToResponse(&loadout, false)
	}
	return responses, nil
}

// FindLoadoutsForIntent retrieves loadouts tagged with the given intent key
func (s *LoadoutService) FindLoadoutsForIntent(intentKey string) ([]LoadoutResponse, error) {
	return s.ListLoadouts(&ListLoadoutsRequest{IntentKey: &intentKey})
}

// UpdateLoadout applies a partial update. A name change re-validates the
// (ship, name) uniqueness constraint.
func (s *LoadoutService) UpdateLoadout(id uuid.UUID, req *UpdateLoadoutRequest) (*LoadoutResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	loadout, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoadoutNotFound
		}
		return nil, fmt.Errorf("failed to get loadout: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != loadout.Name {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("name", "name cannot be empty")
		}
		if _, err := s.repo.GetByShipAndName(loadout.ShipID, *req.Name); err == nil {
			return nil, apperrors.ErrLoadoutExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check loadout name: %w", err)
		}
		updates["name"] = *req.Name
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IntentKeys != nil {
		updates["intent_keys"] = datatypes.NewJSONSlice(req.IntentKeys)
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(req.Tags)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update loadout: %w", err)
		}
	}

	return s.GetLoadout(id)
}

// DeleteLoadout removes a loadout, cascading members and clearing plan item
// references. Returns whether the loadout existed.
func (s *LoadoutService) DeleteLoadout(id uuid.UUID) (bool, error) {
	existed, err := s.repo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete loadout: %w", err)
	}
	return existed, nil
}

// SetLoadoutMembers replaces the loadout's entire member set atomically.
// An empty slice clears all members.
func (s *LoadoutService) SetLoadoutMembers(loadoutID uuid.UUID, members []LoadoutMemberInput) ([]LoadoutMemberResponse, error) {
	exists, err := s.repo.Exists(loadoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to check loadout: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrLoadoutNotFound
	}

	rows := make([]models.LoadoutMember, len(members))
	for i, m := range members {
		roleType := models.RoleType(m.RoleType)
		if !roleType.IsValid() {
			return nil, apperrors.NewValidationError("role_type", fmt.Sprintf("unknown role type %q", m.RoleType))
		}
		officerExists, err := s.catalog.OfficerExists(m.OfficerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check officer: %w", err)
		}
		if !officerExists {
			return nil, apperrors.ErrOfficerNotFound
		}
		rows[i] = models.LoadoutMember{
			OfficerID: m.OfficerID,
			RoleType:  roleType,
			Slot:      m.Slot,
		}
	}

	if err := s.repo.ReplaceMembers(loadoutID, rows); err != nil {
		return nil, fmt.Errorf("failed to replace members: %w", err)
	}

	responses := make([]LoadoutMemberResponse, len(rows))
	for i, row := range rows {
		responses[i] = s.convertMember(&row)
	}
	return responses, nil
}

// convertToResponse converts a Loadout model to API response. Dangling ship
// references render as an empty name rather than an error.
func (s *LoadoutService) convertToResponse(loadout *models.Loadout, includeMembers bool) *LoadoutResponse {
	shipName, err := s.catalog.ShipName(loadout.ShipID)
	if err != nil {
		shipName = ""
	}

	resp := &LoadoutResponse{
		ID:         loadout.ID,
		ShipID:     loadout.ShipID,
		ShipName:   shipName,
		Name:       loadout.Name,
		Priority:   loadout.Priority,
		IsActive:   loadout.IsActive,
		IntentKeys: loadout.IntentKeys,
		Tags:       loadout.Tags,
		Notes:      loadout.Notes,
		CreatedAt:  loadout.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  loadout.UpdatedAt.Format(time.RFC3339),
	}
	if includeMembers {
		resp.Members = make([]LoadoutMemberResponse, len(loadout.Members))
		for i, member := range loadout.Members {
			resp.Members[i] = s.convertMember(&member)
		}
	}
	return resp
}

// convertMember resolves one member row to its response form
func (s *LoadoutService) convertMember(member *models.LoadoutMember) LoadoutMemberResponse {
	name, err := s.catalog.OfficerName(member.OfficerID)
	if err != nil {
		name = ""
	}
	return LoadoutMemberResponse{
		OfficerID:   member.OfficerID,
		OfficerName: name,
		RoleType:    string(member.RoleType),
		Slot:        member.Slot,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
