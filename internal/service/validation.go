package service

import (
	"fmt"
	"sort"

	"majel-backend/internal/catalog"
	"majel-backend/internal/database/models"
	"majel-backend/internal/repository"

	"github.com/google/uuid"
)

// ValidationService is the conflict engine: it reads across the loadout
// store, dock registry, and plan item ledger to detect officer
// double-booking, dock over-assignment, and unresolved plan items. All
// checks run over a fresh snapshot of active plan items; inactive plan
// items and inactive loadouts never participate — a paused assignment
// cannot conflict.
type ValidationService struct {
	planItems repository.PlanItemRepositoryInterface
	catalog   catalog.Reference
}

// Ensure ValidationService implements ValidationServiceInterface
var _ ValidationServiceInterface = (*ValidationService)(nil)

// NewValidationService creates a new validation service
func NewValidationService(planItems repository.PlanItemRepositoryInterface, ref catalog.Reference) *ValidationService {
	return &ValidationService{
		planItems: planItems,
		catalog:   ref,
	}
}

// OfficerAppearance records one active assignment an officer appears in
type OfficerAppearance struct {
	PlanItemID    uuid.UUID               `json:"plan_item_id"`
	PlanItemLabel string                  `json:"plan_item_label"`
	Source        models.AppearanceSource `json:"source"`
}

// OfficerConflict reports an officer appearing in two or more active
// assignments at once
type OfficerConflict struct {
	OfficerID   uuid.UUID           `json:"officer_id"`
	OfficerName string              `json:"officer_name"`
	Appearances []OfficerAppearance `json:"appearances"`
}

// DockConflict reports a dock claimed by more than one active plan item
type DockConflict struct {
	DockNumber  int         `json:"dock_number"`
	PlanItemIDs []uuid.UUID `json:"plan_item_ids"`
}

// UnassignedLoadout reports an active plan item with nothing backing it:
// no loadout and no away members. Error level.
type UnassignedLoadout struct {
	PlanItemID uuid.UUID `json:"plan_item_id"`
	Label      string    `json:"label"`
}

// PlanWarning reports a non-fatal finding, currently only a crewed loadout
// with nowhere to go (a loadout-backed plan item with no dock)
type PlanWarning struct {
	Type       string    `json:"type"`
	PlanItemID uuid.UUID `json:"plan_item_id"`
	Label      string    `json:"label"`
	Message    string    `json:"message"`
}

// PlanReport is the full validation result. Valid is true iff dock
// conflicts, officer conflicts, and unassigned loadouts are all empty;
// warnings never affect validity. An empty plan is always valid.
type PlanReport struct {
	Valid              bool                `json:"valid"`
	DockConflicts      []DockConflict      `json:"dock_conflicts"`
	OfficerConflicts   []OfficerConflict   `json:"officer_conflicts"`
	UnassignedLoadouts []UnassignedLoadout `json:"unassigned_loadouts"`
	Warnings           []PlanWarning       `json:"warnings"`
}

// GetOfficerConflicts detects officers appearing in two or more active
// assignments. An appearance is a loadout membership on an active plan
// item whose loadout is itself active, or an away-team membership on an
// active plan item; the source mix does not matter.
func (s *ValidationService) GetOfficerConflicts() ([]OfficerConflict, error) {
	items, err := s.planItems.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active plan items: %w", err)
	}
	return s.officerConflicts(items), nil
}

// ValidatePlan composes the full report over one snapshot of the plan
func (s *ValidationService) ValidatePlan() (*PlanReport, error) {
	items, err := s.planItems.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active plan items: %w", err)
	}

	report := &PlanReport{
		DockConflicts:      s.dockConflicts(items),
		OfficerConflicts:   s.officerConflicts(items),
		UnassignedLoadouts: []UnassignedLoadout{},
		Warnings:           []PlanWarning{},
	}

	for _, item := range items {
		if item.LoadoutID == nil && len(item.AwayMembers) == 0 {
			report.UnassignedLoadouts = append(report.UnassignedLoadouts, UnassignedLoadout{
				PlanItemID: item.ID,
				Label:      item.Label,
			})
		}
		if item.LoadoutID != nil && item.DockNumber == nil {
			report.Warnings = append(report.Warnings, PlanWarning{
				Type:       "unassigned_dock",
				PlanItemID: item.ID,
				Label:      item.Label,
				Message:    "loadout is crewed but not assigned to any dock",
			})
		}
	}

	report.Valid = len(report.DockConflicts) == 0 &&
		len(report.OfficerConflicts) == 0 &&
		len(report.UnassignedLoadouts) == 0
	return report, nil
}

// dockConflicts groups active plan items by dock and reports docks claimed
// more than once, ordered by dock number
func (s *ValidationService) dockConflicts(items []models.PlanItem) []DockConflict {
	byDock := map[int][]uuid.UUID{}
	for _, item := range items {
		if item.DockNumber == nil {
			continue
		}
		byDock[*item.DockNumber] = append(byDock[*item.DockNumber], item.ID)
	}

	numbers := make([]int, 0, len(byDock))
	for number, ids := range byDock {
		if len(ids) > 1 {
			numbers = append(numbers, number)
		}
	}
	sort.Ints(numbers)

	conflicts := make([]DockConflict, 0, len(numbers))
	for _, number := range numbers {
		conflicts = append(conflicts, DockConflict{
			DockNumber:  number,
			PlanItemIDs: byDock[number],
		})
	}
	return conflicts
}

// officerConflicts collects each officer's appearances across the active
// snapshot and reports those booked twice or more, in first-seen order
func (s *ValidationService) officerConflicts(items []models.PlanItem) []OfficerConflict {
	appearances := map[uuid.UUID][]OfficerAppearance{}
	var order []uuid.UUID

	record := func(officerID uuid.UUID, item *models.PlanItem, source models.AppearanceSource) {
		if _, seen := appearances[officerID]; !seen {
			order = append(order, officerID)
		}
		appearances[officerID] = append(appearances[officerID], OfficerAppearance{
			PlanItemID:    item.ID,
			PlanItemLabel: item.Label,
			Source:        source,
		})
	}

	for i := range items {
		item := &items[i]
		if item.Loadout != nil && item.Loadout.IsActive {
			for _, member := range item.Loadout.Members {
				record(member.OfficerID, item, models.AppearanceSourceLoadout)
			}
		}
		for _, member := range item.AwayMembers {
			record(member.OfficerID, item, models.AppearanceSourceAwayTeam)
		}
	}

	conflicts := []OfficerConflict{}
	for _, officerID := range order {
		if len(appearances[officerID]) < 2 {
			continue
		}
		name, err := s.catalog.OfficerName(officerID)
		if err != nil {
			name = ""
		}
		conflicts = append(conflicts, OfficerConflict{
			OfficerID:   officerID,
			OfficerName: name,
			Appearances: appearances[officerID],
		})
	}
	return conflicts
}
