package repository

import (
	"errors"

	"majel-backend/internal/database/models"

	"gorm.io/gorm"
)

// DockRepository handles database operations for docks
type DockRepository struct {
	db *gorm.DB
}

// NewDockRepository creates a new dock repository
func NewDockRepository(db *gorm.DB) *DockRepository {
	return &DockRepository{db: db}
}

// Upsert creates or updates a dock by its number. A lookup-then-save on the
// natural key rather than ON CONFLICT SQL, so it behaves the same on both
// supported drivers.
func (r *DockRepository) Upsert(dock *models.Dock) error {
	var existing models.Dock
	err := r.db.First(&existing, "dock_number = ?", dock.DockNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(dock).Error
		}
		return err
	}
	existing.Label = dock.Label
	existing.Notes = dock.Notes
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*dock = existing
	return nil
}

// GetByNumber retrieves a dock by its number
func (r *DockRepository) GetByNumber(dockNumber int) (*models.Dock, error) {
	var dock models.Dock
	err := r.db.First(&dock, "dock_number = ?", dockNumber).Error
	if err != nil {
		return nil, err
	}
	return &dock, nil
}

// GetAll retrieves all docks ordered by dock number
func (r *DockRepository) GetAll() ([]models.Dock, error) {
	var docks []models.Dock
	err := r.db.Order("dock_number ASC").Find(&docks).Error
	return docks, err
}

// Delete removes a dock and clears the dock reference on plan items.
// Returns whether the dock existed.
func (r *DockRepository) Delete(dockNumber int) (bool, error) {
	existed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Dock{}).Where("dock_number = ?", dockNumber).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		existed = true

		if err := tx.Model(&models.PlanItem{}).Where("dock_number = ?", dockNumber).
			Update("dock_number", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Dock{}, "dock_number = ?", dockNumber).Error
	})
	return existed, err
}

// Exists checks if a dock exists by number
func (r *DockRepository) Exists(dockNumber int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Dock{}).Where("dock_number = ?", dockNumber).Count(&count).Error
	return count > 0, err
}
