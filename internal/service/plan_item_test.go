package service_test

import (
	"testing"

	"majel-backend/internal/catalog"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"
	"majel-backend/internal/service"
	"majel-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlanItemServiceTestSuite tests the plan item ledger against a real database,
// wiring the service to concrete repositories
type PlanItemServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	loadouts  *repository.LoadoutRepository
	docks     *repository.DockRepository
	intents   *repository.IntentRepository
	planItems *repository.PlanItemRepository
	svc       *service.PlanItemService
}

// SetupTest runs before each test
func (suite *PlanItemServiceTestSuite) SetupTest() {
	suite.db = testutils.OpenTestDB(suite.T())
	suite.loadouts = repository.NewLoadoutRepository(suite.db)
	suite.docks = repository.NewDockRepository(suite.db)
	suite.intents = repository.NewIntentRepository(suite.db)
	suite.planItems = repository.NewPlanItemRepository(suite.db)
	suite.svc = service.NewPlanItemService(
		suite.planItems,
		suite.loadouts,
		suite.docks,
		suite.intents,
		catalog.NewGormReference(suite.db),
		validator.New(),
	)
}

// helpers

func (suite *PlanItemServiceTestSuite) seedIntent(key string) {
	suite.NoError(suite.db.Create(testutils.NewIntentFactory().WithKey(key)).Error)
}

func (suite *PlanItemServiceTestSuite) seedLoadout(name string) uuid.UUID {
	ship := testutils.NewShipFactory().WithName("USS Vidar")
	suite.NoError(suite.db.Create(ship).Error)
	loadout := testutils.NewLoadoutFactory().WithName(ship.ID, name)
	suite.NoError(suite.db.Create(loadout).Error)
	return loadout.ID
}

// TestCreateBarePlanItem tests that a plan item needs no references
func (suite *PlanItemServiceTestSuite) TestCreateBarePlanItem() {
	response, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{Label: "Someday"})

	suite.NoError(err)
	suite.NotNil(response)
	suite.Equal("Someday", response.Label)
	suite.True(response.IsActive)
	suite.Nil(response.IntentKey)
	suite.Nil(response.LoadoutID)
	suite.Nil(response.DockNumber)
}

// TestCreatePlanItemResolvesReferences tests the resolved read-back
func (suite *PlanItemServiceTestSuite) TestCreatePlanItemResolvesReferences() {
	suite.seedIntent("hostile-grinding")
	loadoutID := suite.seedLoadout("Borg Loop")
	suite.NoError(suite.docks.Upsert(testutils.NewDockFactory().Create(1)))

	intentKey := "hostile-grinding"
	dock := 1
	response, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{
		IntentKey:  &intentKey,
		Label:      "Daily Grind",
		LoadoutID:  &loadoutID,
		DockNumber: &dock,
	})

	suite.NoError(err)
	suite.Equal("hostile-grinding", *response.IntentKey)
	suite.Equal("Borg Loop", response.LoadoutName)
	suite.Equal("USS Vidar", response.ShipName)
	suite.Equal("Test Dock", response.DockLabel)
}

// TestCreatePlanItemUnknownIntent tests reference validation for intents
func (suite *PlanItemServiceTestSuite) TestCreatePlanItemUnknownIntent() {
	intentKey := "no-such-intent"
	response, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{IntentKey: &intentKey})

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.ErrorIs(err, apperrors.ErrIntentNotFound)
	suite.Nil(response)
}

// TestCreatePlanItemUnknownLoadout tests reference validation for loadouts
func (suite *PlanItemServiceTestSuite) TestCreatePlanItemUnknownLoadout() {
	loadoutID := uuid.New()
	response, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{LoadoutID: &loadoutID})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrLoadoutNotFound)
	suite.Nil(response)
}

// TestCreatePlanItemUnknownDock tests reference validation for docks
func (suite *PlanItemServiceTestSuite) TestCreatePlanItemUnknownDock() {
	dock := 9
	response, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{DockNumber: &dock})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrDockNotFound)
	suite.Nil(response)
}

// TestUpdateClearDock tests explicit nulling of the dock reference
func (suite *PlanItemServiceTestSuite) TestUpdateClearDock() {
	loadoutID := suite.seedLoadout("Borg Loop")
	suite.NoError(suite.docks.Upsert(testutils.NewDockFactory().Create(1)))

	dock := 1
	created, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{
		Label:      "Daily Grind",
		LoadoutID:  &loadoutID,
		DockNumber: &dock,
	})
	suite.NoError(err)

	updated, err := suite.svc.UpdatePlanItem(created.ID, &service.UpdatePlanItemRequest{ClearDock: true})
	suite.NoError(err)
	suite.Nil(updated.DockNumber)
	// Untouched fields survive the update
	suite.NotNil(updated.LoadoutID)
	suite.Equal("Daily Grind", updated.Label)
}

// TestUpdateSetAndClearConflict tests that setting and clearing together is rejected
func (suite *PlanItemServiceTestSuite) TestUpdateSetAndClearConflict() {
	created, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{Label: "Someday"})
	suite.NoError(err)

	dock := 1
	response, err := suite.svc.UpdatePlanItem(created.ID, &service.UpdatePlanItemRequest{
		DockNumber: &dock,
		ClearDock:  true,
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Nil(response)
}

// TestUpdateNotFound tests updating a missing plan item
func (suite *PlanItemServiceTestSuite) TestUpdateNotFound() {
	response, err := suite.svc.UpdatePlanItem(uuid.New(), &service.UpdatePlanItemRequest{})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrPlanItemNotFound)
	suite.Nil(response)
}

// TestSetAwayMembers tests away-team replacement with name resolution
func (suite *PlanItemServiceTestSuite) TestSetAwayMembers() {
	created, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{Label: "Away Mission"})
	suite.NoError(err)

	officer := testutils.NewOfficerFactory().WithName("James T. Kirk")
	suite.NoError(suite.db.Create(officer).Error)

	members, err := suite.svc.SetAwayMembers(created.ID, []uuid.UUID{officer.ID})
	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal("James T. Kirk", members[0].OfficerName)

	// Clearing with an empty set
	members, err = suite.svc.SetAwayMembers(created.ID, nil)
	suite.NoError(err)
	suite.Len(members, 0)
}

// TestSetAwayMembersUnknownOfficer tests officer validation
func (suite *PlanItemServiceTestSuite) TestSetAwayMembersUnknownOfficer() {
	created, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{Label: "Away Mission"})
	suite.NoError(err)

	members, err := suite.svc.SetAwayMembers(created.ID, []uuid.UUID{uuid.New()})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrOfficerNotFound)
	suite.Nil(members)
}

// TestDeletePlanItem tests the existed report
func (suite *PlanItemServiceTestSuite) TestDeletePlanItem() {
	created, err := suite.svc.CreatePlanItem(&service.CreatePlanItemRequest{Label: "Someday"})
	suite.NoError(err)

	existed, err := suite.svc.DeletePlanItem(created.ID)
	suite.NoError(err)
	suite.True(existed)

	existed, err = suite.svc.DeletePlanItem(created.ID)
	suite.NoError(err)
	suite.False(existed)
}

// Run the test suite
func TestPlanItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanItemServiceTestSuite))
}
