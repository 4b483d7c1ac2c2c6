package service

import (
	"errors"
	"fmt"

	"majel-backend/internal/catalog"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreviewService answers "what would break" before a destructive operation.
// Previews are read-only, computed fresh on each call, and never mutate
// state; they exist so a caller can warn the user before an irreversible
// cascade.
type PreviewService struct {
	loadouts  repository.LoadoutRepositoryInterface
	docks     repository.DockRepositoryInterface
	planItems repository.PlanItemRepositoryInterface
	catalog   catalog.Reference
}

// Ensure PreviewService implements PreviewServiceInterface
var _ PreviewServiceInterface = (*PreviewService)(nil)

// NewPreviewService creates a new preview service
func NewPreviewService(
	loadouts repository.LoadoutRepositoryInterface,
	docks repository.DockRepositoryInterface,
	planItems repository.PlanItemRepositoryInterface,
	ref catalog.Reference,
) *PreviewService {
	return &PreviewService{
		loadouts:  loadouts,
		docks:     docks,
		planItems: planItems,
		catalog:   ref,
	}
}

// PlanItemRef identifies a plan item touched by a cascade
type PlanItemRef struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"`
	DockNumber *int      `json:"dock_number,omitempty"`
}

// LoadoutDeletePreview reports what deleting a loadout would touch
type LoadoutDeletePreview struct {
	LoadoutID   uuid.UUID     `json:"loadout_id"`
	Name        string        `json:"name"`
	MemberCount int64         `json:"member_count"`
	PlanItems   []PlanItemRef `json:"plan_items"`
}

// DockDeletePreview reports what deleting a dock would touch
type DockDeletePreview struct {
	DockNumber int           `json:"dock_number"`
	Label      string        `json:"label"`
	PlanItems  []PlanItemRef `json:"plan_items"`
}

// LoadoutMemberRef identifies a loadout membership touched by a cascade
type LoadoutMemberRef struct {
	LoadoutID   uuid.UUID `json:"loadout_id"`
	LoadoutName string    `json:"loadout_name"`
	RoleType    string    `json:"role_type"`
	Slot        string    `json:"slot,omitempty"`
}

// AwayMemberRef identifies an away-team membership touched by a cascade
type AwayMemberRef struct {
	PlanItemID    uuid.UUID `json:"plan_item_id"`
	PlanItemLabel string    `json:"plan_item_label"`
}

// OfficerDeletePreview reports what deleting an officer would touch
type OfficerDeletePreview struct {
	OfficerID      uuid.UUID          `json:"officer_id"`
	OfficerName    string             `json:"officer_name"`
	LoadoutMembers []LoadoutMemberRef `json:"loadout_members"`
	AwayMembers    []AwayMemberRef    `json:"away_members"`
}

// PreviewDeleteLoadout reports the member count and every plan item
// currently referencing the loadout
func (s *PreviewService) PreviewDeleteLoadout(id uuid.UUID) (*LoadoutDeletePreview, error) {
	loadout, err := s.loadouts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoadoutNotFound
		}
		return nil, fmt.Errorf("failed to get loadout: %w", err)
	}

	count, err := s.loadouts.CountMembers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	items, err := s.planItems.ListByLoadoutID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan items: %w", err)
	}

	refs := make([]PlanItemRef, len(items))
	for i, item := range items {
		refs[i] = PlanItemRef{ID: item.ID, Label: item.Label, DockNumber: item.DockNumber}
	}

	return &LoadoutDeletePreview{
		LoadoutID:   loadout.ID,
		Name:        loadout.Name,
		MemberCount: count,
		PlanItems:   refs,
	}, nil
}

// PreviewDeleteDock reports every plan item currently referencing the dock
func (s *PreviewService) PreviewDeleteDock(dockNumber int) (*DockDeletePreview, error) {
	dock, err := s.docks.GetByNumber(dockNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDockNotFound
		}
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}

	items, err := s.planItems.ListByDockNumber(dockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan items: %w", err)
	}

	refs := make([]PlanItemRef, len(items))
	for i, item := range items {
		refs[i] = PlanItemRef{ID: item.ID, Label: item.Label, DockNumber: item.DockNumber}
	}

	return &DockDeletePreview{
		DockNumber: dock.DockNumber,
		Label:      dock.Label,
		PlanItems:  refs,
	}, nil
}

// PreviewDeleteOfficer reports every loadout membership and away-team
// membership referencing the officer
func (s *PreviewService) PreviewDeleteOfficer(officerID uuid.UUID) (*OfficerDeletePreview, error) {
	name, err := s.catalog.OfficerName(officerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to resolve officer: %w", err)
	}

	members, err := s.loadouts.ListMembersByOfficer(officerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loadout members: %w", err)
	}
	memberRefs := make([]LoadoutMemberRef, len(members))
	for i, member := range members {
		ref := LoadoutMemberRef{
			LoadoutID: member.LoadoutID,
			RoleType:  string(member.RoleType),
			Slot:      member.Slot,
		}
		if loadout, err := s.loadouts.GetByID(member.LoadoutID); err == nil {
			ref.LoadoutName = loadout.Name
		}
		memberRefs[i] = ref
	}

	awayMembers, err := s.planItems.ListAwayMembersByOfficer(officerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list away members: %w", err)
	}
	awayRefs := make([]AwayMemberRef, len(awayMembers))
	for i, member := range awayMembers {
		ref := AwayMemberRef{PlanItemID: member.PlanItemID}
		if item, err := s.planItems.GetByID(member.PlanItemID); err == nil {
			ref.PlanItemLabel = item.Label
		}
		awayRefs[i] = ref
	}

	return &OfficerDeletePreview{
		OfficerID:      officerID,
		OfficerName:    name,
		LoadoutMembers: memberRefs,
		AwayMembers:    awayRefs,
	}, nil
}
