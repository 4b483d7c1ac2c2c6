package repository

import (
	"majel-backend/internal/database/models"

	"gorm.io/gorm"
)

// IntentRepository handles database operations for intents
type IntentRepository struct {
	db *gorm.DB
}

// NewIntentRepository creates a new intent repository
func NewIntentRepository(db *gorm.DB) *IntentRepository {
	return &IntentRepository{db: db}
}

// Create creates a new intent
func (r *IntentRepository) Create(intent *models.Intent) error {
	return r.db.Create(intent).Error
}

// GetByKey retrieves an intent by key
func (r *IntentRepository) GetByKey(key string) (*models.Intent, error) {
	var intent models.Intent
	err := r.db.First(&intent, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// GetAll retrieves all intents, optionally filtered by category, in
// creation order
func (r *IntentRepository) GetAll(category *models.IntentCategory) ([]models.Intent, error) {
	var intents []models.Intent
	query := r.db.Order("created_at ASC, key ASC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	err := query.Find(&intents).Error
	return intents, err
}

// ExistsByKey checks if an intent exists by key
func (r *IntentRepository) ExistsByKey(key string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Intent{}).Where("key = ?", key).Count(&count).Error
	return count > 0, err
}

// Delete removes an intent by key and reports whether a row was removed
func (r *IntentRepository) Delete(key string) (bool, error) {
	result := r.db.Delete(&models.Intent{}, "key = ?", key)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
