package repository

import (
	"majel-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanItemRepository handles database operations for plan items and their
// away members
type PlanItemRepository struct {
	db *gorm.DB
}

// NewPlanItemRepository creates a new plan item repository
func NewPlanItemRepository(db *gorm.DB) *PlanItemRepository {
	return &PlanItemRepository{db: db}
}

// Create creates a new plan item
func (r *PlanItemRepository) Create(item *models.PlanItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a plan item with away members and the referenced
// loadout's member set
func (r *PlanItemRepository) GetByID(id uuid.UUID) (*models.PlanItem, error) {
	var item models.PlanItem
	err := r.db.Preload("AwayMembers").Preload("Loadout").Preload("Loadout.Members").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves plan items matching the filter, ordered by priority descending
func (r *PlanItemRepository) List(filter PlanItemFilter) ([]models.PlanItem, error) {
	var items []models.PlanItem
	query := r.db.Order("priority DESC, created_at ASC")
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.DockNumber != nil {
		query = query.Where("dock_number = ?", *filter.DockNumber)
	}
	if filter.IntentKey != nil {
		query = query.Where("intent_key = ?", *filter.IntentKey)
	}
	err := query.Find(&items).Error
	return items, err
}

// ListActive retrieves every active plan item with the loadout member sets
// and away members preloaded. This is the snapshot the validation engine
// runs over.
func (r *PlanItemRepository) ListActive() ([]models.PlanItem, error) {
	var items []models.PlanItem
	err := r.db.Where("is_active = ?", true).
		Preload("AwayMembers").Preload("Loadout").Preload("Loadout.Members").
		Order("priority DESC, created_at ASC").
		Find(&items).Error
	return items, err
}

// ListByLoadoutID retrieves plan items referencing a loadout
func (r *PlanItemRepository) ListByLoadoutID(loadoutID uuid.UUID) ([]models.PlanItem, error) {
	var items []models.PlanItem
	err := r.db.Where("loadout_id = ?", loadoutID).
		Order("priority DESC, created_at ASC").Find(&items).Error
	return items, err
}

// ListByDockNumber retrieves plan items referencing a dock
func (r *PlanItemRepository) ListByDockNumber(dockNumber int) ([]models.PlanItem, error) {
	var items []models.PlanItem
	err := r.db.Where("dock_number = ?", dockNumber).
		Order("priority DESC, created_at ASC").Find(&items).Error
	return items, err
}

// GetActiveByDockNumber retrieves the single active plan item pointing at a
// dock, with its loadout preloaded. Returns gorm.ErrRecordNotFound when the
// dock has no active assignment.
func (r *PlanItemRepository) GetActiveByDockNumber(dockNumber int) (*models.PlanItem, error) {
	var item models.PlanItem
	err := r.db.Where("dock_number = ? AND is_active = ?", dockNumber, true).
		Preload("Loadout").
		Order("priority DESC, created_at ASC").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial update to a plan item. Nil values in the map
// clear nullable references.
func (r *PlanItemRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.PlanItem{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a plan item and cascades its away members. Returns whether
// the item existed.
func (r *PlanItemRepository) Delete(id uuid.UUID) (bool, error) {
	existed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PlanItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		existed = true

		if err := tx.Where("plan_item_id = ?", id).Delete(&models.AwayMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PlanItem{}, "id = ?", id).Error
	})
	return existed, err
}

// Exists checks if a plan item exists by ID
func (r *PlanItemRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.PlanItem{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ReplaceAwayMembers swaps the plan item's entire away-member set in one
// transaction, delete-all-then-insert-all.
func (r *PlanItemRepository) ReplaceAwayMembers(planItemID uuid.UUID, officerIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_item_id = ?", planItemID).Delete(&models.AwayMember{}).Error; err != nil {
			return err
		}
		if len(officerIDs) == 0 {
			return nil
		}
		members := make([]models.AwayMember, len(officerIDs))
		for i, officerID := range officerIDs {
			members[i] = models.AwayMember{PlanItemID: planItemID, OfficerID: officerID}
		}
		return tx.Create(&members).Error
	})
}

// ListAwayMembersByOfficer retrieves every away-member row referencing an officer
func (r *PlanItemRepository) ListAwayMembersByOfficer(officerID uuid.UUID) ([]models.AwayMember, error) {
	var members []models.AwayMember
	err := r.db.Where("officer_id = ?", officerID).Find(&members).Error
	return members, err
}
