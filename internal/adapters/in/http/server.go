// Package http is the inbound HTTP adapter. It translates REST requests
// into commands and queries and maps domain errors to status codes.
package http

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"missionops/internal/core/application/usecases/commands"
	"missionops/internal/core/application/usecases/queries"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/pkg/errs"
)

// signedURLTTL bounds how long a returned document link stays valid.
const signedURLTTL = 15 * time.Minute

// blobReader is the slice of the blob store the HTTP layer needs to serve
// signed URLs.
type blobReader interface {
	Get(ctx context.Context, path string) ([]byte, error)
	SignedURL(path string, ttl time.Duration) (string, error)
	VerifySignedURL(path string, expires int64, signature string) bool
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createMissionHandler  commands.CreateMissionOrderCommandHandler
	updateDraftHandler    commands.UpdateDraftCommandHandler
	submitMissionHandler  commands.SubmitMissionOrderCommandHandler
	approveMissionHandler commands.ApproveMissionOrderCommandHandler
	signMissionHandler    commands.SignMissionOrderCommandHandler
	rejectMissionHandler  commands.RejectMissionOrderCommandHandler
	attachDocumentHandler commands.AttachMissionDocumentCommandHandler

	createAssignmentHandler commands.CreateAssignmentCommandHandler
	closeAssignmentHandler  commands.CloseAssignmentCommandHandler

	pendingOrdersHandler      queries.GetPendingOrdersQueryHandler
	vehicleAssignmentsHandler queries.GetVehicleAssignmentsQueryHandler
	auditTrailHandler         queries.GetAuditTrailQueryHandler

	blobs blobReader
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createMissionHandler commands.CreateMissionOrderCommandHandler,
	updateDraftHandler commands.UpdateDraftCommandHandler,
	submitMissionHandler commands.SubmitMissionOrderCommandHandler,
	approveMissionHandler commands.ApproveMissionOrderCommandHandler,
	signMissionHandler commands.SignMissionOrderCommandHandler,
	rejectMissionHandler commands.RejectMissionOrderCommandHandler,
	attachDocumentHandler commands.AttachMissionDocumentCommandHandler,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	closeAssignmentHandler commands.CloseAssignmentCommandHandler,
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	vehicleAssignmentsHandler queries.GetVehicleAssignmentsQueryHandler,
	auditTrailHandler queries.GetAuditTrailQueryHandler,
	blobs blobReader,
) *Server {
	return &Server{
		createMissionHandler:      createMissionHandler,
		updateDraftHandler:        updateDraftHandler,
		submitMissionHandler:      submitMissionHandler,
		approveMissionHandler:     approveMissionHandler,
		signMissionHandler:        signMissionHandler,
		rejectMissionHandler:      rejectMissionHandler,
		attachDocumentHandler:     attachDocumentHandler,
		createAssignmentHandler:   createAssignmentHandler,
		closeAssignmentHandler:    closeAssignmentHandler,
		pendingOrdersHandler:      pendingOrdersHandler,
		vehicleAssignmentsHandler: vehicleAssignmentsHandler,
		auditTrailHandler:         auditTrailHandler,
		blobs:                     blobs,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/missions", s.CreateMission)
	api.PUT("/missions/:id", s.UpdateMission)
	api.POST("/missions/:id/submit", s.SubmitMission)
	api.POST("/missions/:id/approve", s.ApproveMission)
	api.POST("/missions/:id/sign", s.SignMission)
	api.POST("/missions/:id/reject", s.RejectMission)
	api.POST("/missions/:id/document", s.AttachMissionDocument)
	api.GET("/missions/pending", s.GetPendingMissions)
	api.GET("/missions/:id/audit", s.GetAuditTrail)

	api.POST("/assignments", s.CreateAssignment)
	api.POST("/assignments/:id/close", s.CloseAssignment)
	api.GET("/assignments", s.GetAssignments)

	e.GET("/blobs/*", s.ServeBlob)
}

// CreateMission handles POST /api/v1/missions.
func (s *Server) CreateMission(ctx echo.Context) error {
	var req CreateMissionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requesterID, err := kernel.UUIDFromString(req.RequesterID)
	if err != nil {
		return badRequest(ctx, "Invalid requester_id")
	}
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateMissionOrderCommand(
		orderID,
		requesterID,
		req.Destination,
		req.Purpose,
		req.PlannedActivities,
		req.EstimatedBudget,
		startDate, endDate,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MissionCreatedResponse{ID: orderID.String()})
}

// UpdateMission handles PUT /api/v1/missions/:id.
func (s *Server) UpdateMission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	var req UpdateMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateDraftCommand(
		orderID,
		actorID,
		req.Destination,
		req.Purpose,
		req.PlannedActivities,
		req.EstimatedBudget,
		startDate, endDate,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateDraftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitMission handles POST /api/v1/missions/:id/submit.
func (s *Server) SubmitMission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	var req ActorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	cmd, err := commands.NewSubmitMissionOrderCommand(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.submitMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveMission handles POST /api/v1/missions/:id/approve.
func (s *Server) ApproveMission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	var req ApproveMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}
	level, err := missionorder.LevelFromRoleTag(req.Level)
	if err != nil {
		return badRequest(ctx, "Invalid approval level")
	}

	cmd, err := commands.NewApproveMissionOrderCommand(orderID, actorID, level, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SignMission handles POST /api/v1/missions/:id/sign.
func (s *Server) SignMission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	var req SignMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}
	signatureBytes, err := base64.StdEncoding.DecodeString(req.SignatureImage)
	if err != nil {
		return badRequest(ctx, "Invalid signature_image encoding")
	}

	cmd, err := commands.NewSignMissionOrderCommand(orderID, actorID, signatureBytes, req.Comment, req.ClientContext)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.signMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectMission handles POST /api/v1/missions/:id/reject.
func (s *Server) RejectMission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	var req RejectMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	cmd, err := commands.NewRejectMissionOrderCommand(orderID, actorID, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachMissionDocument handles POST /api/v1/missions/:id/document.
func (s *Server) AttachMissionDocument(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	cmd, err := commands.NewAttachMissionDocumentCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.attachDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	path := commands.MissionDocumentPath(orderID)
	signedURL, err := s.blobs.SignedURL(path, signedURLTTL)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionDocumentResponse{Path: path, SignedURL: signedURL})
}

// GetPendingMissions handles GET /api/v1/missions/pending.
func (s *Server) GetPendingMissions(ctx echo.Context) error {
	actorID, err := kernel.UUIDFromString(ctx.QueryParam("actor_id"))
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	query, err := queries.NewGetPendingOrdersQuery(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	pending, err := s.pendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PendingMissionResponse, len(pending))
	for i, item := range pending {
		response[i] = toPendingMissionResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/missions/:id/audit.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid mission id")
	}

	query, err := queries.NewGetAuditTrailQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	trail, err := s.auditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AuditEntryResponse, len(trail))
	for i, item := range trail {
		response[i] = toAuditEntryResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAssignment handles POST /api/v1/assignments.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var req CreateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle_id")
	}
	orderID, err := optionalPathlessUUID(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id")
	}
	driverID, err := optionalPathlessUUID(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(
		assignmentID,
		vehicleID,
		orderID,
		driverID,
		req.StartAt,
		req.StartOdometer,
		req.Reason,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AssignmentCreatedResponse{ID: assignmentID.String()})
}

// CloseAssignment handles POST /api/v1/assignments/:id/close.
func (s *Server) CloseAssignment(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid assignment id")
	}

	var req CloseAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCloseAssignmentCommand(assignmentID, req.EndAt, req.EndOdometer)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.closeAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignments handles GET /api/v1/assignments. Exactly one of vehicle_id
// and order_id must be given.
func (s *Server) GetAssignments(ctx echo.Context) error {
	vehicleParam := ctx.QueryParam("vehicle_id")
	orderParam := ctx.QueryParam("order_id")

	var query queries.GetVehicleAssignmentsQuery
	var err error
	switch {
	case vehicleParam != "" && orderParam == "":
		var vehicleID kernel.UUID
		if vehicleID, err = kernel.UUIDFromString(vehicleParam); err != nil {
			return badRequest(ctx, "Invalid vehicle_id")
		}
		query, err = queries.NewGetVehicleAssignmentsQueryByVehicle(vehicleID)
	case orderParam != "" && vehicleParam == "":
		var orderID kernel.UUID
		if orderID, err = kernel.UUIDFromString(orderParam); err != nil {
			return badRequest(ctx, "Invalid order_id")
		}
		query, err = queries.NewGetVehicleAssignmentsQueryByOrder(orderID)
	default:
		return badRequest(ctx, "Exactly one of vehicle_id and order_id is required")
	}
	if err != nil {
		return writeError(ctx, err)
	}

	assignments, err := s.vehicleAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AssignmentResponse, len(assignments))
	for i, item := range assignments {
		response[i] = toAssignmentResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ServeBlob handles GET /blobs/* and serves stored objects to holders of a
// valid signed URL.
func (s *Server) ServeBlob(ctx echo.Context) error {
	path := ctx.Param("*")

	expires, err := strconv.ParseInt(ctx.QueryParam("expires"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid expires")
	}
	if !s.blobs.VerifySignedURL(path, expires, ctx.QueryParam("signature")) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Invalid or expired signature",
		})
	}

	data, err := s.blobs.Get(ctx.Request().Context(), path)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, echo.MIMEOctetStream, data)
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func optionalPathlessUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, errs.NewValueIsInvalidErrorWithCause("start_date", err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, errs.NewValueIsInvalidErrorWithCause("end_date", err)
	}
	return startDate, endDate, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var conflict *errs.ConflictError
	var invalidState *errs.InvalidStateError
	var timeout *errs.TimeoutError
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict),
		errors.As(err, &invalidState):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrActorLacksRole),
		errors.Is(err, queries.ErrActorIsNotValidator),
		errors.Is(err, missionorder.ErrOnlyRequesterMayEditDraft):
		status = http.StatusForbidden
	case errors.As(err, &required),
		errors.As(err, &invalid),
		errors.As(err, &outOfRange):
		status = http.StatusBadRequest
	case errors.As(err, &timeout):
		status = http.StatusGatewayTimeout
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
