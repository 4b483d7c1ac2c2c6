package service_test

import (
	"testing"

	"majel-backend/internal/catalog"
	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"
	"majel-backend/internal/service"
	"majel-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PreviewServiceTestSuite tests cascade previews against a real database
type PreviewServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	loadouts  *repository.LoadoutRepository
	docks     *repository.DockRepository
	planItems *repository.PlanItemRepository
	svc       *service.PreviewService
}

// SetupTest runs before each test
func (suite *PreviewServiceTestSuite) SetupTest() {
	suite.db = testutils.OpenTestDB(suite.T())
	suite.loadouts = repository.NewLoadoutRepository(suite.db)
	suite.docks = repository.NewDockRepository(suite.db)
	suite.planItems = repository.NewPlanItemRepository(suite.db)
	suite.svc = service.NewPreviewService(suite.loadouts, suite.docks, suite.planItems, catalog.NewGormReference(suite.db))
}

func (suite *PreviewServiceTestSuite) createLoadout(name string) *models.Loadout {
	ship := testutils.NewShipFactory().Create()
	suite.NoError(suite.db.Create(ship).Error)
	loadout := testutils.NewLoadoutFactory().WithName(ship.ID, name)
	suite.NoError(suite.db.Create(loadout).Error)
	return loadout
}

// TestPreviewDeleteLoadout tests the member count and referencing items
func (suite *PreviewServiceTestSuite) TestPreviewDeleteLoadout() {
	loadout := suite.createLoadout("Borg Loop")
	suite.NoError(suite.loadouts.ReplaceMembers(loadout.ID, []models.LoadoutMember{
		{OfficerID: uuid.New(), RoleType: models.RoleTypeBridge, Slot: models.BridgeSlotCaptain},
		{OfficerID: uuid.New(), RoleType: models.RoleTypeBelowDeck},
	}))

	dock := 1
	item := testutils.NewPlanItemFactory().WithLoadout(loadout.ID)
	item.Label = "Daily Grind"
	item.DockNumber = &dock
	suite.NoError(suite.planItems.Create(item))

	preview, err := suite.svc.PreviewDeleteLoadout(loadout.ID)
	suite.NoError(err)
	suite.Equal("Borg Loop", preview.Name)
	suite.Equal(int64(2), preview.MemberCount)
	suite.Len(preview.PlanItems, 1)
	suite.Equal(item.ID, preview.PlanItems[0].ID)
	suite.Equal("Daily Grind", preview.PlanItems[0].Label)
	suite.Equal(1, *preview.PlanItems[0].DockNumber)

	// A preview never mutates anything
	count, err := suite.loadouts.CountMembers(loadout.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestPreviewDeleteLoadoutNotFound tests previewing a missing loadout
func (suite *PreviewServiceTestSuite) TestPreviewDeleteLoadoutNotFound() {
	preview, err := suite.svc.PreviewDeleteLoadout(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrLoadoutNotFound)
	suite.Nil(preview)
}

// TestPreviewDeleteDock tests the referencing items for a dock
func (suite *PreviewServiceTestSuite) TestPreviewDeleteDock() {
	suite.NoError(suite.docks.Upsert(&models.Dock{DockNumber: 2, Label: "Drydock B"}))

	item := testutils.NewPlanItemFactory().WithDock(2)
	suite.NoError(suite.planItems.Create(item))

	preview, err := suite.svc.PreviewDeleteDock(2)
	suite.NoError(err)
	suite.Equal(2, preview.DockNumber)
	suite.Equal("Drydock B", preview.Label)
	suite.Len(preview.PlanItems, 1)
	suite.Equal(item.ID, preview.PlanItems[0].ID)
}

// TestPreviewDeleteDockNotFound tests previewing a missing dock
func (suite *PreviewServiceTestSuite) TestPreviewDeleteDockNotFound() {
	preview, err := suite.svc.PreviewDeleteDock(42)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrDockNotFound)
	suite.Nil(preview)
}

// TestPreviewDeleteOfficer tests loadout and away-team memberships
func (suite *PreviewServiceTestSuite) TestPreviewDeleteOfficer() {
	officer := testutils.NewOfficerFactory().WithName("James T. Kirk")
	suite.NoError(suite.db.Create(officer).Error)

	loadout := suite.createLoadout("Borg Loop")
	suite.NoError(suite.loadouts.ReplaceMembers(loadout.ID, []models.LoadoutMember{
		{OfficerID: officer.ID, RoleType: models.RoleTypeBridge, Slot: models.BridgeSlotCaptain},
	}))

	item := testutils.NewPlanItemFactory().Create()
	item.Label = "Away Mission"
	suite.NoError(suite.planItems.Create(item))
	suite.NoError(suite.planItems.ReplaceAwayMembers(item.ID, []uuid.UUID{officer.ID}))

	preview, err := suite.svc.PreviewDeleteOfficer(officer.ID)
	suite.NoError(err)
	suite.Equal("James T. Kirk", preview.OfficerName)
	suite.Len(preview.LoadoutMembers, 1)
	suite.Equal("Borg Loop", preview.LoadoutMembers[0].LoadoutName)
	suite.Equal(models.BridgeSlotCaptain, preview.LoadoutMembers[0].Slot)
	suite.Len(preview.AwayMembers, 1)
	suite.Equal("Away Mission", preview.AwayMembers[0].PlanItemLabel)
}

// TestPreviewDeleteOfficerNotFound tests previewing a missing officer
func (suite *PreviewServiceTestSuite) TestPreviewDeleteOfficerNotFound() {
	preview, err := suite.svc.PreviewDeleteOfficer(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrOfficerNotFound)
	suite.Nil(preview)
}

// Run the test suite
func TestPreviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreviewServiceTestSuite))
}
