package catalog

import (
	"fmt"

	"majel-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lifecycle owns the catalog side of entity deletion: removing a ship or an
// officer drags planning rows with it. Ship deletion cascades into owned
// loadouts (members deleted, referencing plan items set to null); officer
// deletion removes the officer's loadout-member and away-member rows. Each
// delete runs in one transaction so a failure leaves the prior state intact.
type Lifecycle struct {
	db *gorm.DB
}

// NewLifecycle creates a new catalog lifecycle handler
func NewLifecycle(db *gorm.DB) *Lifecycle {
	return &Lifecycle{db: db}
}

// DeleteShip removes a ship and cascades its loadouts. Returns whether the
// ship existed; deleting a missing ship is not an error.
func (l *Lifecycle) DeleteShip(shipID uuid.UUID) (bool, error) {
	existed := false
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Ship{}).Where("id = ?", shipID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		existed = true

		var loadoutIDs []uuid.UUID
		if err := tx.Model(&models.Loadout{}).Where("ship_id = ?", shipID).
			Pluck("id", &loadoutIDs).Error; err != nil {
			return err
		}

		if len(loadoutIDs) > 0 {
			if err := tx.Where("loadout_id IN ?", loadoutIDs).
				Delete(&models.LoadoutMember{}).Error; err != nil {
				return err
			}
			// Plan items outlive the loadout: clear the reference, keep the row.
			if err := tx.Model(&models.PlanItem{}).Where("loadout_id IN ?", loadoutIDs).
				Update("loadout_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", loadoutIDs).
				Delete(&models.Loadout{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Ship{}, "id = ?", shipID).Error
	})
	if err != nil {
		return false, fmt.Errorf("delete ship: %w", err)
	}
	return existed, nil
}

// DeleteOfficer removes an officer and every member row referencing it.
// Returns whether the officer existed.
func (l *Lifecycle) DeleteOfficer(officerID uuid.UUID) (bool, error) {
	existed := false
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Officer{}).Where("id = ?", officerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		existed = true

		if err := tx.Where("officer_id = ?", officerID).
			Delete(&models.LoadoutMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("officer_id = ?", officerID).
			Delete(&models.AwayMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Officer{}, "id = ?", officerID).Error
	})
	if err != nil {
		return false, fmt.Errorf("delete officer: %w", err)
	}
	return existed, nil
}
