package repository

import (
	"majel-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoadoutRepository handles database operations for loadouts and their members
type LoadoutRepository struct {
	db *gorm.DB
}

// NewLoadoutRepository creates a new loadout repository
func NewLoadoutRepository(db *gorm.DB) *LoadoutRepository {
	return &LoadoutRepository{db: db}
}

// Create creates a new loadout
func (r *LoadoutRepository) Create(loadout *models.Loadout) error {
	return r.db.Create(loadout).Error
}

// GetByID retrieves a loadout by ID with its members
func (r *LoadoutRepository) GetByID(id uuid.UUID) (*models.Loadout, error) {
	var loadout models.Loadout
	err := r.db.Preload("Members").First(&loadout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &loadout, nil
}

// GetByShipAndName retrieves a loadout by its natural (ship, name) pair
func (r *LoadoutRepository) GetByShipAndName(shipID uuid.UUID, name string) (*models.Loadout, error) {
	var loadout models.Loadout
	err := r.db.First(&loadout, "ship_id = ? AND name = ?", shipID, name).Error
	if err != nil {
		return nil, err
	}
	return &loadout, nil
}

// List retrieves loadouts matching the filter, ordered by priority
// descending. Ship and active narrowing happen in SQL; intent-key and tag
// membership are JSON-array columns and are filtered in memory so the query
// stays portable across the postgres and sqlite drivers.
func (r *LoadoutRepository) List(filter LoadoutFilter) ([]models.Loadout, error) {
	var loadouts []models.Loadout
	query := r.db.Order("priority DESC, created_at ASC")
	if filter.ShipID != nil {
		query = query.Where("ship_id = ?", *filter.ShipID)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if err := query.Find(&loadouts).Error; err != nil {
		return nil, err
	}

	if filter.IntentKey == nil && filter.Tag == nil {
		return loadouts, nil
	}
	filtered := make([]models.Loadout, 0, len(loadouts))
	for _, l := range loadouts {
		if filter.IntentKey != nil && !containsString(l.IntentKeys, *filter.IntentKey) {
			continue
		}
		if filter.Tag != nil && !containsString(l.Tags, *filter.Tag) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered, nil
}

// Update applies a partial update to a loadout
func (r *LoadoutRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Loadout{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a loadout, cascading its members and clearing the loadout
// reference on plan items. Returns whether the loadout existed.
func (r *LoadoutRepository) Delete(id uuid.UUID) (bool, error) {
	existed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Loadout{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		existed = true

		if err := tx.Where("loadout_id = ?", id).Delete(&models.LoadoutMember{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PlanItem{}).Where("loadout_id = ?", id).
			Update("loadout_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Loadout{}, "id = ?", id).Error
	})
	return existed, err
}

// Exists checks if a loadout exists by ID
func (r *LoadoutRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Loadout{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ReplaceMembers swaps the loadout's entire member set in one transaction.
// Delete-all-then-insert-all: a failure leaves the prior set intact.
func (r *LoadoutRepository) ReplaceMembers(loadoutID uuid.UUID, members []models.LoadoutMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("loadout_id = ?", loadoutID).Delete(&models.LoadoutMember{}).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		for i := range members {
			members[i].LoadoutID = loadoutID
		}
		return tx.Create(&members).Error
	})
}

// CountMembers returns the number of members in a loadout
func (r *LoadoutRepository) CountMembers(loadoutID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.LoadoutMember{}).Where("loadout_id = ?", loadoutID).Count(&count).Error
	return count, err
}

// ListMembersByOfficer retrieves every member row referencing an officer
func (r *LoadoutRepository) ListMembersByOfficer(officerID uuid.UUID) ([]models.LoadoutMember, error) {
	var members []models.LoadoutMember
	err := r.db.Where("officer_id = ?", officerID).Find(&members).Error
	return members, err
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
