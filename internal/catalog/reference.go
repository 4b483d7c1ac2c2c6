package catalog

import (
	"errors"

	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=reference.go -destination=../mocks/catalog_mocks.go -package=mocks

// Reference is the read-only lookup surface the planning engine depends on
// for officers and ships. The catalog tables themselves are foreign: this
// engine never ingests or edits them.
type Reference interface {
	OfficerExists(id uuid.UUID) (bool, error)
	ShipExists(id uuid.UUID) (bool, error)
	OfficerName(id uuid.UUID) (string, error)
	ShipName(id uuid.UUID) (string, error)
}

// GormReference resolves reference lookups against the ships/officers tables
type GormReference struct {
	db *gorm.DB
}

// Ensure GormReference implements Reference
var _ Reference = (*GormReference)(nil)

// NewGormReference creates a new gorm-backed reference catalog
func NewGormReference(db *gorm.DB) *GormReference {
	return &GormReference{db: db}
}

// OfficerExists reports whether an officer row exists
func (r *GormReference) OfficerExists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Officer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ShipExists reports whether a ship row exists
func (r *GormReference) ShipExists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Ship{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// OfficerName returns the officer's display name, or ErrOfficerNotFound
func (r *GormReference) OfficerName(id uuid.UUID) (string, error) {
	var officer models.Officer
	err := r.db.Select("name").First(&officer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrOfficerNotFound
		}
		return "", err
	}
	return officer.Name, nil
}

// ShipName returns the ship's display name, or ErrShipNotFound
func (r *GormReference) ShipName(id uuid.UUID) (string, error) {
	var ship models.Ship
	err := r.db.Select("name").First(&ship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrShipNotFound
		}
		return "", err
	}
	return ship.Name, nil
}
