package service_test

import (
	"testing"

	"majel-backend/internal/catalog"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"
	"majel-backend/internal/service"
	"majel-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DockServiceTestSuite tests the dock registry against a real database
type DockServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	docks     *repository.DockRepository
	planItems *repository.PlanItemRepository
	svc       *service.DockService
}

// SetupTest runs before each test
func (suite *DockServiceTestSuite) SetupTest() {
	suite.db = testutils.OpenTestDB(suite.T())
	suite.docks = repository.NewDockRepository(suite.db)
	suite.planItems = repository.NewPlanItemRepository(suite.db)
	suite.svc = service.NewDockService(suite.docks, suite.planItems, catalog.NewGormReference(suite.db), validator.New())
}

// TestUpsertDockRejectsNonPositive tests the dock number validation
func (suite *DockServiceTestSuite) TestUpsertDockRejectsNonPositive() {
	for _, number := range []int{0, -1} {
		response, err := suite.svc.UpsertDock(&service.UpsertDockRequest{DockNumber: number})
		suite.Error(err)
		suite.True(apperrors.IsValidation(err))
		suite.Nil(response)
	}
}

// TestUpsertDockCreatesThenUpdates tests create-or-update on the natural key
func (suite *DockServiceTestSuite) TestUpsertDockCreatesThenUpdates() {
	created, err := suite.svc.UpsertDock(&service.UpsertDockRequest{DockNumber: 1, Label: "Drydock A"})
	suite.NoError(err)
	suite.Equal("Drydock A", created.Label)
	suite.Nil(created.Assignment)

	updated, err := suite.svc.UpsertDock(&service.UpsertDockRequest{DockNumber: 1, Label: "Drydock Prime"})
	suite.NoError(err)
	suite.Equal("Drydock Prime", updated.Label)

	docks, err := suite.svc.ListDocks()
	suite.NoError(err)
	suite.Len(docks, 1)
}

// TestGetDockWithAssignment tests the derived active assignment
func (suite *DockServiceTestSuite) TestGetDockWithAssignment() {
	_, err := suite.svc.UpsertDock(&service.UpsertDockRequest{DockNumber: 1, Label: "Drydock A"})
	suite.NoError(err)

	item := testutils.NewPlanItemFactory().WithDock(1)
	item.Label = "Daily Grind"
	suite.NoError(suite.planItems.Create(item))

	dock, err := suite.svc.GetDock(1)
	suite.NoError(err)
	suite.NotNil(dock.Assignment)
	suite.Equal(item.ID, dock.Assignment.PlanItemID)
	suite.Equal("Daily Grind", dock.Assignment.Label)
}

// TestGetDockIgnoresInactiveAssignment tests that paused items never show
func (suite *DockServiceTestSuite) TestGetDockIgnoresInactiveAssignment() {
	_, err := suite.svc.UpsertDock(&service.UpsertDockRequest{DockNumber: 1})
	suite.NoError(err)

	item := testutils.NewPlanItemFactory().Inactive()
	dockNumber := 1
	item.DockNumber = &dockNumber
	suite.NoError(suite.planItems.Create(item))

	dock, err := suite.svc.GetDock(1)
	suite.NoError(err)
	suite.Nil(dock.Assignment)
}

// TestGetDockNotFound tests retrieving a missing dock
func (suite *DockServiceTestSuite) TestGetDockNotFound() {
	dock, err := suite.svc.GetDock(9)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrDockNotFound)
	suite.Nil(dock)
}

// TestDeleteDock tests deletion and the existed report
func (suite *DockServiceTestSuite) TestDeleteDock() {
	_, err := suite.svc.UpsertDock(&service.UpsertDockRequest{DockNumber: 1})
	suite.NoError(err)

	existed, err := suite.svc.DeleteDock(1)
	suite.NoError(err)
	suite.True(existed)

	existed, err = suite.svc.DeleteDock(1)
	suite.NoError(err)
	suite.False(existed)
}

// Run the test suite
func TestDockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DockServiceTestSuite))
}
