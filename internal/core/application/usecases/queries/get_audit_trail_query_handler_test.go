package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"missionops/internal/adapters/out/postgres/auditrepo"
	"missionops/internal/core/application/usecases/queries"
	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAuditTrailQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAuditTrailQueryHandler
	auditRepo *auditrepo.GormAuditRepository
}

func (suite *GetAuditTrailQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&auditrepo.AuditEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAuditTrailQueryHandler(db)
	suite.auditRepo = auditrepo.NewGormAuditRepository(db)
}

func (suite *GetAuditTrailQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAuditTrailQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE audit_entries").Error
	suite.Require().NoError(err)
}

func (suite *GetAuditTrailQueryHandlerTestSuite) TestHandle_NoEntries_ReturnsEmptySlice() {
	query, err := queries.NewGetAuditTrailQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAuditTrailQueryHandlerTestSuite) TestHandle_FullWorkflow_ReturnsTimelineInOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	directionID := kernel.NewUUID()
	digest := strings.Repeat("cd", 32)

	// Append out of chronological order to prove ordering comes from the query
	suite.seedEntry(ctx, orderID, directionID, audit.ActionApprovedWithSignature, digest,
		time.Date(2026, 2, 22, 15, 0, 0, 0, time.UTC))
	suite.seedEntry(ctx, orderID, requesterID, audit.ActionSubmitted, "",
		time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC))
	suite.seedEntry(ctx, orderID, kernel.NewUUID(), audit.ActionApproved, "",
		time.Date(2026, 2, 21, 11, 0, 0, 0, time.UTC))

	// An entry for another order stays out of the trail
	suite.seedEntry(ctx, kernel.NewUUID(), requesterID, audit.ActionSubmitted, "",
		time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC))

	query, err := queries.NewGetAuditTrailQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(string(audit.ActionSubmitted), result[0].Action)
	suite.Equal(requesterID, result[0].ActorID)
	suite.Empty(result[0].SignatureDigest)

	suite.Equal(string(audit.ActionApproved), result[1].Action)

	suite.Equal(string(audit.ActionApprovedWithSignature), result[2].Action)
	suite.Equal(directionID, result[2].ActorID)
	suite.Equal(digest, result[2].SignatureDigest)

	suite.True(result[0].RecordedAt.Before(result[1].RecordedAt))
	suite.True(result[1].RecordedAt.Before(result[2].RecordedAt))
}

func (suite *GetAuditTrailQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAuditTrailQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAuditTrailQuery constructor")
}

func (suite *GetAuditTrailQueryHandlerTestSuite) seedEntry(
	ctx context.Context,
	orderID, actorID kernel.UUID,
	action audit.Action,
	digest string,
	recordedAt time.Time,
) {
	entry, err := audit.NewEntry(kernel.NewUUID(), orderID, actorID, action, digest, "", recordedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.auditRepo.Append(ctx, entry))
}

func TestGetAuditTrailQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAuditTrailQueryHandlerTestSuite))
}
