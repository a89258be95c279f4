package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"missionops/internal/adapters/out/blob"
	"missionops/internal/adapters/out/notify"
	"missionops/internal/adapters/out/postgres"
	"missionops/internal/adapters/out/roles"
	"missionops/internal/core/application/usecases/commands"
	"missionops/internal/core/application/usecases/queries"
	"missionops/internal/core/domain/services"
	"missionops/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers. All construction
// happens here so the rest of the code depends only on ports.
type CompositionRoot struct {
	config Config

	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	blobStore    *blob.FileStore
	roleResolver *roles.StaticResolver
	notifier     *notify.SlogNotifier
	generator    services.DocumentGenerator
}

// NewCompositionRoot builds the full adapter graph from configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	blobStore, err := blob.NewFileStore(config.BlobRoot, config.BlobBaseURL, []byte(config.SignedURLSecret))
	if err != nil {
		return nil, err
	}

	bindings, err := roles.ParseBindings(config.RoleBindings)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		blobStore:    blobStore,
		roleResolver: roles.NewStaticResolver(bindings),
		notifier:     notify.NewSlogNotifier(logger),
		generator:    services.NewDocumentGenerator(),
	}, nil
}

// BlobStore exposes the blob store for the HTTP adapter's signed URL
// serving.
func (c *CompositionRoot) BlobStore() *blob.FileStore {
	return c.blobStore
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMissionOrderCommandHandler() commands.CreateMissionOrderCommandHandler {
	return commands.NewCreateMissionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDraftCommandHandler() commands.UpdateDraftCommandHandler {
	return commands.NewUpdateDraftCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitMissionOrderCommandHandler() commands.SubmitMissionOrderCommandHandler {
	return commands.NewSubmitMissionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveMissionOrderCommandHandler() commands.ApproveMissionOrderCommandHandler {
	return commands.NewApproveMissionOrderCommandHandler(
		c.orderUoWFactory(),
		c.roleResolver,
		c.notifier,
		c.config.BudgetCommentThreshold,
	)
}

func (c *CompositionRoot) CreateSignMissionOrderCommandHandler() commands.SignMissionOrderCommandHandler {
	return commands.NewSignMissionOrderCommandHandler(
		c.orderUoWFactory(),
		c.roleResolver,
		c.blobStore,
		c.notifier,
	)
}

func (c *CompositionRoot) CreateRejectMissionOrderCommandHandler() commands.RejectMissionOrderCommandHandler {
	return commands.NewRejectMissionOrderCommandHandler(
		c.orderUoWFactory(),
		c.roleResolver,
		c.notifier,
	)
}

func (c *CompositionRoot) CreateAttachMissionDocumentCommandHandler() commands.AttachMissionDocumentCommandHandler {
	return commands.NewAttachMissionDocumentCommandHandler(
		c.orderUoWFactory(),
		c.generator,
		c.blobStore,
	)
}

func (c *CompositionRoot) CreateAdvanceMissionsCommandHandler() commands.AdvanceMissionsCommandHandler {
	return commands.NewAdvanceMissionsCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCloseAssignmentCommandHandler() commands.CloseAssignmentCommandHandler {
	return commands.NewCloseAssignmentCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB, c.roleResolver)
}

func (c *CompositionRoot) CreateGetVehicleAssignmentsQueryHandler() queries.GetVehicleAssignmentsQueryHandler {
	return queries.NewGetVehicleAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

// RoleResolver exposes the resolver, mainly for seeding and diagnostics.
func (c *CompositionRoot) RoleResolver() ports.RoleResolver {
	return c.roleResolver
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
