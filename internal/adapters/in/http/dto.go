package http

import (
	"time"

	"missionops/internal/core/application/usecases/queries"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateMissionRequest is the body of POST /api/v1/missions.
type CreateMissionRequest struct {
	RequesterID       string `json:"requester_id"`
	Destination       string `json:"destination"`
	Purpose           string `json:"purpose"`
	PlannedActivities string `json:"planned_activities"`
	EstimatedBudget   *int64 `json:"estimated_budget,omitempty"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
}

// UpdateMissionRequest is the body of PUT /api/v1/missions/:id.
type UpdateMissionRequest struct {
	ActorID           string `json:"actor_id"`
	Destination       string `json:"destination"`
	Purpose           string `json:"purpose"`
	PlannedActivities string `json:"planned_activities"`
	EstimatedBudget   *int64 `json:"estimated_budget,omitempty"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
}

// ActorRequest is the body of actions that only need the acting user.
type ActorRequest struct {
	ActorID string `json:"actor_id"`
}

// ApproveMissionRequest is the body of POST /api/v1/missions/:id/approve.
type ApproveMissionRequest struct {
	ActorID string `json:"actor_id"`
	Level   string `json:"level"`
	Comment string `json:"comment"`
}

// SignMissionRequest is the body of POST /api/v1/missions/:id/sign. The
// signature image travels as base64-encoded PNG bytes.
type SignMissionRequest struct {
	ActorID        string `json:"actor_id"`
	SignatureImage string `json:"signature_image"`
	Comment        string `json:"comment"`
	ClientContext  string `json:"client_context"`
}

// RejectMissionRequest is the body of POST /api/v1/missions/:id/reject.
type RejectMissionRequest struct {
	ActorID string `json:"actor_id"`
	Comment string `json:"comment"`
}

// MissionCreatedResponse returns the identifier of a newly created draft.
type MissionCreatedResponse struct {
	ID string `json:"id"`
}

// MissionDocumentResponse returns where the generated document can be read.
type MissionDocumentResponse struct {
	Path      string `json:"path"`
	SignedURL string `json:"signed_url"`
}

// PendingMissionResponse is one entry of the pending approvals view.
type PendingMissionResponse struct {
	ID              string `json:"id"`
	RequesterID     string `json:"requester_id"`
	Destination     string `json:"destination"`
	Purpose         string `json:"purpose"`
	EstimatedBudget *int64 `json:"estimated_budget,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TeamLeadID      string `json:"team_lead_id,omitempty"`
	FinanceID       string `json:"finance_id,omitempty"`
}

// AuditEntryResponse is one entry of a mission's audit trail.
type AuditEntryResponse struct {
	ID              string    `json:"id"`
	ActorID         string    `json:"actor_id"`
	Action          string    `json:"action"`
	SignatureDigest string    `json:"signature_digest,omitempty"`
	Metadata        string    `json:"metadata,omitempty"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// CreateAssignmentRequest is the body of POST /api/v1/assignments.
type CreateAssignmentRequest struct {
	VehicleID     string    `json:"vehicle_id"`
	OrderID       string    `json:"order_id,omitempty"`
	DriverID      string    `json:"driver_id,omitempty"`
	StartAt       time.Time `json:"start_at"`
	StartOdometer int64     `json:"start_odometer"`
	Reason        string    `json:"reason"`
}

// CloseAssignmentRequest is the body of POST /api/v1/assignments/:id/close.
type CloseAssignmentRequest struct {
	EndAt       time.Time `json:"end_at"`
	EndOdometer int64     `json:"end_odometer"`
}

// AssignmentCreatedResponse returns the identifier of a new assignment.
type AssignmentCreatedResponse struct {
	ID string `json:"id"`
}

// AssignmentResponse is one assignment row of the history view.
type AssignmentResponse struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicle_id"`
	OrderID       string     `json:"order_id,omitempty"`
	DriverID      string     `json:"driver_id,omitempty"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         *time.Time `json:"end_at,omitempty"`
	StartOdometer int64      `json:"start_odometer"`
	EndOdometer   *int64     `json:"end_odometer,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Status        string     `json:"status"`
}

func toPendingMissionResponse(item queries.GetPendingOrdersQueryResponse) PendingMissionResponse {
	resp := PendingMissionResponse{
		ID:              item.ID.String(),
		RequesterID:     item.RequesterID.String(),
		Destination:     item.Destination,
		Purpose:         item.Purpose,
		EstimatedBudget: item.EstimatedBudget,
		StartDate:       item.PeriodStart.Format(dateLayout),
		EndDate:         item.PeriodEnd.Format(dateLayout),
	}
	if item.TeamLeadID != nil {
		resp.TeamLeadID = item.TeamLeadID.String()
	}
	if item.FinanceID != nil {
		resp.FinanceID = item.FinanceID.String()
	}
	return resp
}

func toAssignmentResponse(item queries.GetVehicleAssignmentsQueryResponse) AssignmentResponse {
	resp := AssignmentResponse{
		ID:            item.ID.String(),
		VehicleID:     item.VehicleID.String(),
		StartAt:       item.StartAt,
		EndAt:         item.EndAt,
		StartOdometer: item.StartOdometer,
		EndOdometer:   item.EndOdometer,
		Reason:        item.Reason,
		Status:        item.Status,
	}
	if item.OrderID != nil {
		resp.OrderID = item.OrderID.String()
	}
	if item.DriverID != nil {
		resp.DriverID = item.DriverID.String()
	}
	return resp
}

func toAuditEntryResponse(item queries.GetAuditTrailQueryResponse) AuditEntryResponse {
	return AuditEntryResponse{
		ID:              item.ID.String(),
		ActorID:         item.ActorID.String(),
		Action:          item.Action,
		SignatureDigest: item.SignatureDigest,
		Metadata:        item.Metadata,
		RecordedAt:      item.RecordedAt,
	}
}
