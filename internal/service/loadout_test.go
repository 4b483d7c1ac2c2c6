package service_test

import (
	"testing"

	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/mocks"
	"majel-backend/internal/repository"
	"majel-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LoadoutServiceTestSuite defines the test suite for LoadoutService
type LoadoutServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLoadoutRepo *mocks.MockLoadoutRepositoryInterface
	mockCatalog     *mocks.MockReference
	loadoutService  *service.LoadoutService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *LoadoutServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLoadoutRepo = mocks.NewMockLoadoutRepositoryInterface(suite.ctrl)
	suite.mockCatalog = mocks.NewMockReference(suite.ctrl)
	suite.validator = validator.New()

	suite.loadoutService = service.NewLoadoutService(suite.mockLoadoutRepo, suite.mockCatalog, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *LoadoutServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLoadout tests creating a loadout with defaults applied
func (suite *LoadoutServiceTestSuite) TestCreateLoadout() {
	shipID := uuid.New()
	req := &service.CreateLoadoutRequest{
		ShipID:     shipID,
		Name:       "Borg Loop",
		IntentKeys: []string{"borg-probes"},
	}

	suite.mockCatalog.EXPECT().
		ShipExists(shipID).
		Return(true, nil).
		Times(1)

	suite.mockLoadoutRepo.EXPECT().
		GetByShipAndName(shipID, "Borg Loop").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockLoadoutRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(loadout *models.Loadout) error {
			assert.Equal(suite.T(), 0, loadout.Priority)
			assert.True(suite.T(), loadout.IsActive)
			assert.Equal(suite.T(), []string{"borg-probes"}, []string(loadout.IntentKeys))
			assert.NotNil(suite.T(), []string(loadout.Tags))
			return nil
		}).
		Times(1)

	suite.mockCatalog.EXPECT().
		ShipName(shipID).
		Return("USS Vidar", nil).
		Times(1)

	response, err := suite.loadoutService.CreateLoadout(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Borg Loop", response.Name)
	assert.Equal(suite.T(), "USS Vidar", response.ShipName)
	assert.True(suite.T(), response.IsActive)
}

// TestCreateLoadoutMissingName tests that an empty name is rejected
func (suite *LoadoutServiceTestSuite) TestCreateLoadoutMissingName() {
	req := &service.CreateLoadoutRequest{ShipID: uuid.New()}

	response, err := suite.loadoutService.CreateLoadout(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), response)
}

// TestCreateLoadoutShipNotFound tests that an unknown ship is rejected
func (suite *LoadoutServiceTestSuite) TestCreateLoadoutShipNotFound() {
	shipID := uuid.New()
	req := &service.CreateLoadoutRequest{ShipID: shipID, Name: "Borg Loop"}

	suite.mockCatalog.EXPECT().
		ShipExists(shipID).
		Return(false, nil).
		Times(1)

	response, err := suite.loadoutService.CreateLoadout(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.Nil(suite.T(), response)
}

// TestCreateLoadoutDuplicateName tests the (ship, name) uniqueness check
func (suite *LoadoutServiceTestSuite) TestCreateLoadoutDuplicateName() {
	shipID := uuid.New()
	req := &service.CreateLoadoutRequest{ShipID: shipID, Name: "Borg Loop"}

	suite.mockCatalog.EXPECT().
		ShipExists(shipID).
		Return(true, nil).
		Times(1)

	suite.mockLoadoutRepo.EXPECT().
		GetByShipAndName(shipID, "Borg Loop").
		Return(&models.Loadout{Name: "Borg Loop"}, nil).
		Times(1)

	response, err := suite.loadoutService.CreateLoadout(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Nil(suite.T(), response)
}

// TestGetLoadoutNotFound tests that a missing loadout maps to a typed error
func (suite *LoadoutServiceTestSuite) TestGetLoadoutNotFound() {
	id := uuid.New()

	suite.mockLoadoutRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.loadoutService.GetLoadout(id)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.Nil(suite.T(), response)
}

// TestUpdateLoadoutRenameConflict tests that renaming onto a taken name conflicts
func (suite *LoadoutServiceTestSuite) TestUpdateLoadoutRenameConflict() {
	id := uuid.New()
	shipID := uuid.New()
	newName := "Daily Miner"

	suite.mockLoadoutRepo.EXPECT().
		GetByID(id).
		Return(&models.Loadout{
			BaseModel: models.BaseModel{ID: id},
			ShipID:    shipID,
			Name:      "Borg Loop",
		}, nil).
		Times(1)

	suite.mockLoadoutRepo.EXPECT().
		GetByShipAndName(shipID, newName).
		Return(&models.Loadout{Name: newName}, nil).
		Times(1)

	response, err := suite.loadoutService.UpdateLoadout(id, &service.UpdateLoadoutRequest{Name: &newName})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Nil(suite.T(), response)
}

// TestUpdateLoadoutClearsIntentKeys tests that a non-nil empty slice clears keys
func (suite *LoadoutServiceTestSuite) TestUpdateLoadoutClearsIntentKeys() {
	id := uuid.New()
	shipID := uuid.New()
	stored := &models.Loadout{
		BaseModel:  models.BaseModel{ID: id},
		ShipID:     shipID,
		Name:       "Borg Loop",
		IsActive:   true,
		IntentKeys: datatypes.NewJSONSlice([]string{"borg-probes"}),
		Tags:       datatypes.NewJSONSlice([]string{}),
	}

	suite.mockLoadoutRepo.EXPECT().
		GetByID(id).
		Return(stored, nil).
		Times(2) // once for the update read, once for the response re-read

	suite.mockLoadoutRepo.EXPECT().
		Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, updates map[string]interface{}) error {
			keys, ok := updates["intent_keys"].(datatypes.JSONSlice[string])
			assert.True(suite.T(), ok)
			assert.Len(suite.T(), []string(keys), 0)
			return nil
		}).
		Times(1)

	suite.mockCatalog.EXPECT().
		ShipName(shipID).
		Return("USS Vidar", nil).
		Times(1)

	response, err := suite.loadoutService.UpdateLoadout(id, &service.UpdateLoadoutRequest{IntentKeys: []string{}})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestSetLoadoutMembersUnknownOfficer tests that member replacement checks officers
func (suite *LoadoutServiceTestSuite) TestSetLoadoutMembersUnknownOfficer() {
	loadoutID := uuid.New()
	officerID := uuid.New()

	suite.mockLoadoutRepo.EXPECT().
		Exists(loadoutID).
		Return(true, nil).
		Times(1)

	suite.mockCatalog.EXPECT().
		OfficerExists(officerID).
		Return(false, nil).
		Times(1)

	members, err := suite.loadoutService.SetLoadoutMembers(loadoutID, []service.LoadoutMemberInput{
		{OfficerID: officerID, RoleType: "bridge", Slot: models.BridgeSlotCaptain},
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.Nil(suite.T(), members)
}

// TestSetLoadoutMembersUnknownRole tests that an unknown role type is rejected
func (suite *LoadoutServiceTestSuite) TestSetLoadoutMembersUnknownRole() {
	loadoutID := uuid.New()

	suite.mockLoadoutRepo.EXPECT().
		Exists(loadoutID).
		Return(true, nil).
		Times(1)

	members, err := suite.loadoutService.SetLoadoutMembers(loadoutID, []service.LoadoutMemberInput{
		{OfficerID: uuid.New(), RoleType: "janitor"},
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), members)
}

// TestSetLoadoutMembers tests a successful member replacement
func (suite *LoadoutServiceTestSuite) TestSetLoadoutMembers() {
	loadoutID := uuid.New()
	officerID := uuid.New()

	suite.mockLoadoutRepo.EXPECT().
		Exists(loadoutID).
		Return(true, nil).
		Times(1)

	suite.mockCatalog.EXPECT().
		OfficerExists(officerID).
		Return(true, nil).
		Times(1)

	suite.mockLoadoutRepo.EXPECT().
		ReplaceMembers(loadoutID, gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockCatalog.EXPECT().
		OfficerName(officerID).
		Return("James T. Kirk", nil).
		Times(1)

	members, err := suite.loadoutService.SetLoadoutMembers(loadoutID, []service.LoadoutMemberInput{
		{OfficerID: officerID, RoleType: "bridge", Slot: models.BridgeSlotCaptain},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), members, 1)
	assert.Equal(suite.T(), "James T. Kirk", members[0].OfficerName)
	assert.Equal(suite.T(), models.BridgeSlotCaptain, members[0].Slot)
}

// TestListLoadoutsPassesFilter tests filter plumbing into the repository
func (suite *LoadoutServiceTestSuite) TestListLoadoutsPassesFilter() {
	shipID := uuid.New()
	intentKey := "mining-ore"
	active := true

	suite.mockLoadoutRepo.EXPECT().
		List(repository.LoadoutFilter{ShipID: &shipID, IntentKey: &intentKey, Active: &active}).
		Return([]models.Loadout{}, nil).
		Times(1)

	responses, err := suite.loadoutService.ListLoadouts(&service.ListLoadoutsRequest{
		ShipID:    &shipID,
		IntentKey: &intentKey,
		Active:    &active,
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 0)
}

// TestDeleteLoadout tests the existed report passthrough
func (suite *LoadoutServiceTestSuite) TestDeleteLoadout() {
	id := uuid.New()

	suite.mockLoadoutRepo.EXPECT().
		Delete(id).
		Return(true, nil).
		Times(1)

	existed, err := suite.loadoutService.DeleteLoadout(id)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), existed)
}

// Run the test suite
func TestLoadoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoadoutServiceTestSuite))
}
