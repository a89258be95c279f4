package missionrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"missionops/internal/adapters/out/postgres/missionrepo"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// MissionOrderRepositoryIntegrationTestSuite provides integration tests for
// MissionOrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type MissionOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *missionrepo.GormMissionOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&missionrepo.MissionOrderDTO{}))
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE mission_orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = missionrepo.NewGormMissionOrderRepository(suite.db, suite.tracker)
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createDraftOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder_Rejected() {
	ctx := context.Background()

	// A zero-value aggregate never entered a constructor
	err := suite.repository.Add(ctx, &missionorder.MissionOrder{})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, missionorder.ErrMissionOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createSignedApprovedOrder()

	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	// Verify the full aggregate survives the roundtrip
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.RequesterID(), retrievedOrder.RequesterID())
	suite.Equal(originalOrder.Destination(), retrievedOrder.Destination())
	suite.Equal(originalOrder.Purpose(), retrievedOrder.Purpose())
	suite.Equal(originalOrder.PlannedActivities(), retrievedOrder.PlannedActivities())
	suite.Require().NotNil(retrievedOrder.EstimatedBudget())
	suite.Equal(*originalOrder.EstimatedBudget(), *retrievedOrder.EstimatedBudget())
	suite.Equal(missionorder.Approved, retrievedOrder.Status())
	suite.True(originalOrder.Period().Start().Equal(retrievedOrder.Period().Start()))
	suite.True(originalOrder.Period().End().Equal(retrievedOrder.Period().End()))
	suite.Equal(originalOrder.ValidatorAt(missionorder.LevelTeamLead), retrievedOrder.ValidatorAt(missionorder.LevelTeamLead))
	suite.Equal(originalOrder.ValidatorAt(missionorder.LevelFinance), retrievedOrder.ValidatorAt(missionorder.LevelFinance))
	suite.Equal(originalOrder.ValidatorAt(missionorder.LevelDirection), retrievedOrder.ValidatorAt(missionorder.LevelDirection))
	suite.Require().NotNil(retrievedOrder.Signature())
	suite.Equal(originalOrder.Signature().ImagePath(), retrievedOrder.Signature().ImagePath())
	suite.Equal(originalOrder.Signature().Digest(), retrievedOrder.Signature().Digest())
	suite.True(originalOrder.Signature().SignedAt().Equal(retrievedOrder.Signature().SignedAt()))
	suite.Equal(originalOrder.ValidationComment(), retrievedOrder.ValidationComment())
	suite.Equal(originalOrder.Version(), retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestUpdate_CurrentVersion_PersistsAndBumps() {
	ctx := context.Background()

	testOrder := suite.createDraftOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Submit())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	err := suite.repository.Update(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Equal(2, testOrder.Version())

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(missionorder.Submitted, retrievedOrder.Status())
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.createDraftOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two workflow actors load the same row
	firstCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.Submit())
	suite.tracker.On("TrackAggregate", firstCopy.ID(), firstCopy).Once()
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	// The slower writer carries the stale version and must lose
	suite.Require().NoError(secondCopy.Submit())
	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The winner's write is still the persisted state
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentOrder := suite.createDraftOrder()

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestGetAllInSubmittedStatus_MixedStatuses_ReturnsOnlySubmitted() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	suite.createOrderWithStatus(ctx, missionorder.Draft)
	submitted1 := suite.createOrderWithStatus(ctx, missionorder.Submitted)
	submitted2 := suite.createOrderWithStatus(ctx, missionorder.Submitted)
	suite.createOrderWithStatus(ctx, missionorder.Rejected)

	submittedOrders, err := suite.repository.GetAllInSubmittedStatus(ctx)
	suite.Require().NoError(err)
	suite.Len(submittedOrders, 2)

	retrievedIDs := make(map[kernel.UUID]bool, len(submittedOrders))
	for _, submittedOrder := range submittedOrders {
		suite.Equal(missionorder.Submitted, submittedOrder.Status())
		retrievedIDs[submittedOrder.ID()] = true
	}
	suite.True(retrievedIDs[submitted1.ID()])
	suite.True(retrievedIDs[submitted2.ID()])

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestGetAllApprovedOrInProgress_MixedStatuses_ReturnsDueOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	suite.createOrderWithStatus(ctx, missionorder.Draft)
	approved := suite.createOrderWithStatus(ctx, missionorder.Approved)
	inProgress := suite.createOrderWithStatus(ctx, missionorder.InProgress)
	suite.createOrderWithStatus(ctx, missionorder.Completed)

	dueOrders, err := suite.repository.GetAllApprovedOrInProgress(ctx)
	suite.Require().NoError(err)
	suite.Len(dueOrders, 2)

	retrievedIDs := make(map[kernel.UUID]bool, len(dueOrders))
	for _, dueOrder := range dueOrders {
		retrievedIDs[dueOrder.ID()] = true
	}
	suite.True(retrievedIDs[approved.ID()])
	suite.True(retrievedIDs[inProgress.ID()])

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MissionOrderRepositoryIntegrationTestSuite) TestGetAllInSubmittedStatus_NoSubmittedOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.createOrderWithStatus(ctx, missionorder.Draft)
	suite.createOrderWithStatus(ctx, missionorder.Completed)

	submittedOrders, err := suite.repository.GetAllInSubmittedStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(submittedOrders)

	suite.tracker.AssertExpectations(suite.T())
}

// TestMissionOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *MissionOrderRepositoryIntegrationTestSuite) TestMissionOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestMissionOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *MissionOrderRepositoryIntegrationTestSuite) TestMissionOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createDraftOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

	results := make(chan *missionorder.MissionOrder, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createDraftOrder creates a basic draft mission order with default values.
func (suite *MissionOrderRepositoryIntegrationTestSuite) createDraftOrder() *missionorder.MissionOrder {
	id := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	period, err := kernel.NewPeriod(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	budget := int64(250_000)
	testOrder, err := missionorder.NewMissionOrder(
		id, requesterID,
		"Dakar", "Field assessment", "Site visits and partner meetings",
		&budget, period,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createSignedApprovedOrder builds an approved order carrying a sealed
// signature by driving a draft through the full approval chain.
func (suite *MissionOrderRepositoryIntegrationTestSuite) createSignedApprovedOrder() *missionorder.MissionOrder {
	testOrder := suite.createDraftOrder()
	suite.Require().NoError(testOrder.Submit())

	suite.Require().NoError(testOrder.Approve(missionorder.LevelTeamLead, kernel.NewUUID(), "ok", 0))
	suite.Require().NoError(testOrder.Approve(missionorder.LevelFinance, kernel.NewUUID(), "budget fits", 0))

	sig, err := missionorder.NewSignature(
		"signatures/"+testOrder.ID().String()+".png",
		strings.Repeat("ab", 32),
		time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.ApproveWithSignature(kernel.NewUUID(), sig, "final approval"))

	return testOrder
}

// createOrderWithStatus persists an order restored in the given status.
func (suite *MissionOrderRepositoryIntegrationTestSuite) createOrderWithStatus(
	ctx context.Context, status missionorder.Status,
) *missionorder.MissionOrder {
	id := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	period, err := kernel.NewPeriod(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	budget := int64(100_000)
	var validatorRefs [3]*kernel.UUID
	comment := ""
	if status != missionorder.Draft && status != missionorder.Submitted {
		for i := range validatorRefs {
			vid := kernel.NewUUID()
			validatorRefs[i] = &vid
		}
		comment = "approved for travel"
	}

	testOrder, err := missionorder.RestoreMissionOrder(
		id, requesterID,
		"Thies", "Training session", "Workshop facilitation",
		&budget, period, status,
		validatorRefs[0], validatorRefs[1], validatorRefs[2],
		nil, comment, "", 1,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

// assertOrderCount verifies the number of mission orders in the database.
func (suite *MissionOrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&missionrepo.MissionOrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestMissionOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MissionOrderRepositoryIntegrationTestSuite))
}
