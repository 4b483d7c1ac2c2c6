package service

import (
	"errors"
	"fmt"

	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// IntentService handles business logic for the intent catalog
type IntentService struct {
	repo      repository.IntentRepositoryInterface
	validator *validator.Validate
}

// Ensure IntentService implements IntentServiceInterface
var _ IntentServiceInterface = (*IntentService)(nil)

// NewIntentService creates a new intent service
func NewIntentService(repo repository.IntentRepositoryInterface, validator *validator.Validate) *IntentService {
	return &IntentService{
		repo:      repo,
		validator: validator,
	}
}

// builtinIntents is the seed vocabulary. Built-ins are immutable and
// undeletable; the keys are stable and referenced by loadouts and plan items.
var builtinIntents = []models.Intent{
	// Mining
	{Key: "mining-parsteel", Label: "Parsteel Mining", Category: models.IntentCategoryMining, Icon: "parsteel"},
	{Key: "mining-tritanium", Label: "Tritanium Mining", Category: models.IntentCategoryMining, Icon: "tritanium"},
	{Key: "mining-dilithium", Label: "Dilithium Mining", Category: models.IntentCategoryMining, Icon: "dilithium"},
	{Key: "mining-latinum", Label: "Latinum Mining", Category: models.IntentCategoryMining, Icon: "latinum"},
	{Key: "mining-ore", Label: "Raw Ore Mining", Category: models.IntentCategoryMining, Icon: "ore"},
	{Key: "mining-crystal", Label: "Raw Crystal Mining", Category: models.IntentCategoryMining, Icon: "crystal"},
	{Key: "mining-gas", Label: "Raw Gas Mining", Category: models.IntentCategoryMining, Icon: "gas"},
	{Key: "mining-isogen", Label: "Isogen Mining", Category: models.IntentCategoryMining, Icon: "isogen"},
	{Key: "mining-data", Label: "Data Mining", Category: models.IntentCategoryMining, Icon: "data"},
	// Combat
	{Key: "hostile-grinding", Label: "Hostile Grinding", Category: models.IntentCategoryCombat, Icon: "crosshair"},
	{Key: "armadas", Label: "Armada Raids", Category: models.IntentCategoryCombat, Icon: "armada"},
	{Key: "pvp-attack", Label: "PvP Attack", Category: models.IntentCategoryCombat, Icon: "sword"},
	{Key: "pvp-defense", Label: "PvP Defense", Category: models.IntentCategoryCombat, Icon: "shield"},
	{Key: "base-defense", Label: "Base Defense", Category: models.IntentCategoryCombat, Icon: "fortress"},
	{Key: "swarm", Label: "Swarm Hunting", Category: models.IntentCategoryCombat, Icon: "swarm"},
	{Key: "borg-probes", Label: "Borg Probe Sweep", Category: models.IntentCategoryCombat, Icon: "borg"},
	{Key: "eclipse", Label: "Eclipse Hunting", Category: models.IntentCategoryCombat, Icon: "eclipse"},
	{Key: "faction-grinding", Label: "Faction Grinding", Category: models.IntentCategoryCombat, Icon: "faction"},
	// Utility
	{Key: "exploration", Label: "Exploration", Category: models.IntentCategoryUtility, Icon: "compass"},
	{Key: "away-team", Label: "Away Team Assignment", Category: models.IntentCategoryUtility, Icon: "transporter"},
	{Key: "scrapping", Label: "Ship Scrapping", Category: models.IntentCategoryUtility, Icon: "scrap"},
	{Key: "leveling", Label: "Ship Leveling", Category: models.IntentCategoryUtility, Icon: "levelup"},
	{Key: "events", Label: "Event Running", Category: models.IntentCategoryUtility, Icon: "calendar"},
	{Key: "territory", Label: "Territory Capture", Category: models.IntentCategoryUtility, Icon: "flag"},
	{Key: "cargo", Label: "Cargo Running", Category: models.IntentCategoryUtility, Icon: "cargo"},
	// Custom
	{Key: "custom", Label: "Custom", Category: models.IntentCategoryCustom, Icon: "star"},
}

// CreateIntentRequest represents the data needed to create a custom intent
type CreateIntentRequest struct {
	Key         string `json:"key" validate:"required,max=60"`
	Label       string `json:"label" validate:"required,max=100"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"max=200"`
	Icon        string `json:"icon" validate:"max=60"`
}

// IntentResponse represents the response data for an intent
type IntentResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsBuiltin   bool   `json:"is_builtin"`
}

// SeedBuiltins inserts any missing built-in intents and returns how many
// were inserted. Idempotent: safe to invoke on every startup, and a
// partially seeded catalog self-heals on the next call.
func (s *IntentService) SeedBuiltins() (int, error) {
	inserted := 0
	for _, builtin := range builtinIntents {
		exists, err := s.repo.ExistsByKey(builtin.Key)
		if err != nil {
			return inserted, fmt.Errorf("failed to check intent %q: %w", builtin.Key, err)
		}
		if exists {
			continue
		}
		intent := builtin
		intent.IsBuiltin = true
		if err := s.repo.Create(&intent); err != nil {
			return inserted, fmt.Errorf("failed to seed intent %q: %w", builtin.Key, err)
		}
		inserted++
	}
	return inserted, nil
}

// ListIntents retrieves all intents, optionally filtered by category
func (s *IntentService) ListIntents(category *string) ([]IntentResponse, error) {
	var filter *models.IntentCategory
	if category != nil {
		c := models.IntentCategory(*category)
		if !c.IsValid() {
			return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", *category))
		}
		filter = &c
	}

	intents, err := s.repo.GetAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list intents: %w", err)
	}

	responses := make([]IntentResponse, len(intents))
	for i, intent := range intents {
		responses[i] = *s.convertToResponse(&intent)
	}
	return responses, nil
}

// GetIntent retrieves a single intent by key
func (s *IntentService) GetIntent(key string) (*IntentResponse, error) {
	intent, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIntentNotFound
		}
		return nil, fmt.Errorf("failed to get intent: %w", err)
	}
	return s.convertToResponse(intent), nil
}

// CreateIntent creates a new user-defined intent
func (s *IntentService) CreateIntent(req *CreateIntentRequest) (*IntentResponse, error) {
	if req.Key == "" {
		return nil, apperrors.NewValidationError("key", "key is required")
	}
	if req.Label == "" {
		return nil, apperrors.NewValidationError("label", "label is required")
	}
	category := models.IntentCategory(req.Category)
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", req.Category))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	exists, err := s.repo.ExistsByKey(req.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to check intent key: %w", err)
	}
	if exists {
		return nil, apperrors.ErrIntentExists
	}

	intent := &models.Intent{
		Key:         req.Key,
		Label:       req.Label,
		Category:    category,
		Description: req.Description,
		Icon:        req.Icon,
		IsBuiltin:   false,
	}
	if err := s.repo.Create(intent); err != nil {
		return nil, fmt.Errorf("failed to create intent: %w", err)
	}

	return s.convertToResponse(intent), nil
}

// DeleteIntent removes a custom intent and reports whether a row was
// removed. Built-in intents are never deleted: the call no-ops and returns
// false rather than erroring.
func (s *IntentService) DeleteIntent(key string) (bool, error) {
	intent, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get intent: %w", err)
	}
	if intent.IsBuiltin {
		return false, nil
	}

	removed, err := s.repo.Delete(key)
	if err != nil {
		return false, fmt.Errorf("failed to delete intent: %w", err)
	}
	return removed, nil
}

// convertToResponse converts an Intent model to API response
func (s *IntentService) convertToResponse(intent *models.Intent) *IntentResponse {
	return &IntentResponse{
		Key:         intent.Key,
		Label:       intent.Label,
		Category:    string(intent.Category),
		Description: intent.Description,
		Icon:        intent.Icon,
		IsBuiltin:   intent.IsBuiltin,
	}
}
