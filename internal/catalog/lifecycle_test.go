package catalog

import (
	"testing"

	"majel-backend/internal/database/models"
	apperrors "majel-backend/internal/errors"
	"majel-backend/internal/repository"
	"majel-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LifecycleTestSuite tests catalog entity deletion cascades
type LifecycleTestSuite struct {
	suite.Suite
	db        *gorm.DB
	lifecycle *Lifecycle
	ref       *GormReference
	loadouts  *repository.LoadoutRepository
	planItems *repository.PlanItemRepository
}

// SetupTest runs before each test
func (suite *LifecycleTestSuite) SetupTest() {
	suite.db = testutils.OpenTestDB(suite.T())
	suite.lifecycle = NewLifecycle(suite.db)
	suite.ref = NewGormReference(suite.db)
	suite.loadouts = repository.NewLoadoutRepository(suite.db)
	suite.planItems = repository.NewPlanItemRepository(suite.db)
}

// TestDeleteShipCascades tests that loadouts go with the ship while plan items survive
func (suite *LifecycleTestSuite) TestDeleteShipCascades() {
	ship := testutils.NewShipFactory().WithName("USS Vidar")
	suite.NoError(suite.db.Create(ship).Error)

	loadout := testutils.NewLoadoutFactory().WithShip(ship.ID)
	suite.NoError(suite.db.Create(loadout).Error)
	suite.NoError(suite.loadouts.ReplaceMembers(loadout.ID, []models.LoadoutMember{
		{OfficerID: uuid.New(), RoleType: models.RoleTypeBelowDeck},
	}))

	item := testutils.NewPlanItemFactory().WithLoadout(loadout.ID)
	suite.NoError(suite.planItems.Create(item))

	existed, err := suite.lifecycle.DeleteShip(ship.ID)
	suite.NoError(err)
	suite.True(existed)

	// Ship and loadout are gone
	exists, err := suite.ref.ShipExists(ship.ID)
	suite.NoError(err)
	suite.False(exists)

	_, err = suite.loadouts.GetByID(loadout.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	count, err := suite.loadouts.CountMembers(loadout.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	// The plan item survives with the reference cleared
	retrieved, err := suite.planItems.GetByID(item.ID)
	suite.NoError(err)
	suite.Nil(retrieved.LoadoutID)
}

// TestDeleteShipNotFound tests deleting a missing ship
func (suite *LifecycleTestSuite) TestDeleteShipNotFound() {
	existed, err := suite.lifecycle.DeleteShip(uuid.New())
	suite.NoError(err)
	suite.False(existed)
}

// TestDeleteOfficerRemovesMemberships tests officer deletion cleanup
func (suite *LifecycleTestSuite) TestDeleteOfficerRemovesMemberships() {
	officer := testutils.NewOfficerFactory().Create()
	suite.NoError(suite.db.Create(officer).Error)

	ship := testutils.NewShipFactory().Create()
	suite.NoError(suite.db.Create(ship).Error)
	loadout := testutils.NewLoadoutFactory().WithShip(ship.ID)
	suite.NoError(suite.db.Create(loadout).Error)
	suite.NoError(suite.loadouts.ReplaceMembers(loadout.ID, []models.LoadoutMember{
		{OfficerID: officer.ID, RoleType: models.RoleTypeBridge, Slot: models.BridgeSlotCaptain},
	}))

	item := testutils.NewPlanItemFactory().Create()
	suite.NoError(suite.planItems.Create(item))
	suite.NoError(suite.planItems.ReplaceAwayMembers(item.ID, []uuid.UUID{officer.ID}))

	existed, err := suite.lifecycle.DeleteOfficer(officer.ID)
	suite.NoError(err)
	suite.True(existed)

	members, err := suite.loadouts.ListMembersByOfficer(officer.ID)
	suite.NoError(err)
	suite.Len(members, 0)

	away, err := suite.planItems.ListAwayMembersByOfficer(officer.ID)
	suite.NoError(err)
	suite.Len(away, 0)

	// The loadout and plan item themselves survive
	_, err = suite.loadouts.GetByID(loadout.ID)
	suite.NoError(err)
	_, err = suite.planItems.GetByID(item.ID)
	suite.NoError(err)
}

// TestReferenceLookups tests the read-side catalog surface
func (suite *LifecycleTestSuite) TestReferenceLookups() {
	ship := testutils.NewShipFactory().WithName("USS Vidar")
	suite.NoError(suite.db.Create(ship).Error)
	officer := testutils.NewOfficerFactory().WithName("James T. Kirk")
	suite.NoError(suite.db.Create(officer).Error)

	name, err := suite.ref.ShipName(ship.ID)
	suite.NoError(err)
	suite.Equal("USS Vidar", name)

	name, err = suite.ref.OfficerName(officer.ID)
	suite.NoError(err)
	suite.Equal("James T. Kirk", name)

	_, err = suite.ref.ShipName(uuid.New())
	suite.ErrorIs(err, apperrors.ErrShipNotFound)

	_, err = suite.ref.OfficerName(uuid.New())
	suite.ErrorIs(err, apperrors.ErrOfficerNotFound)

	exists, err := suite.ref.OfficerExists(officer.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.ref.OfficerExists(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// Run the test suite
func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}
