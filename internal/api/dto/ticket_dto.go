package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/support-ticket-api/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Validate enforces ticket creation rules. Priority may be omitted, in
// which case the service defaults it to MEDIUM.
func (r CreateTicketRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(5, 255)),
		validation.Field(&r.Description, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.Priority, validation.In(
			string(domain.TicketPriorityLow),
			string(domain.TicketPriorityMedium),
			string(domain.TicketPriorityHigh),
		)),
	)
}

// AssignTicketRequest payload.
type AssignTicketRequest struct {
	UserID int64 `json:"user_id"`
}

// Validate enforces assignment input rules.
func (r AssignTicketRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
	)
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the requested status names a known lifecycle state;
// whether the transition is legal is the lifecycle manager's call.
func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(
			string(domain.TicketStatusOpen),
			string(domain.TicketStatusInProgress),
			string(domain.TicketStatusResolved),
			string(domain.TicketStatusClosed),
		)),
	)
}

// TicketResponse describes a ticket.
type TicketResponse struct {
	ID           int64                 `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	CreatedByID  int64                 `json:"created_by_id"`
	AssignedToID *int64                `json:"assigned_to_id"`
	CreatedAt    time.Time             `json:"created_at"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           ticket.ID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Status:       ticket.Status,
		Priority:     ticket.Priority,
		CreatedByID:  ticket.CreatedByID,
		AssignedToID: ticket.AssignedToID,
		CreatedAt:    ticket.CreatedAt,
	}
}

// StatusLogResponse describes one audit entry.
type StatusLogResponse struct {
	ID          int64               `json:"id"`
	OldStatus   domain.TicketStatus `json:"old_status"`
	NewStatus   domain.TicketStatus `json:"new_status"`
	ChangedByID int64               `json:"changed_by_id"`
	ChangedAt   time.Time           `json:"changed_at"`
}

// TicketDetailResponse bundles a ticket with its status history.
type TicketDetailResponse struct {
	TicketResponse
	StatusLogs []StatusLogResponse `json:"status_logs"`
}

// NewTicketDetailResponse maps a ticket and its audit trail.
func NewTicketDetailResponse(ticket *domain.Ticket, logs []domain.StatusLog) TicketDetailResponse {
	logResponses := make([]StatusLogResponse, 0, len(logs))
	for _, log := range logs {
		logResponses = append(logResponses, StatusLogResponse{
			ID:          log.ID,
			OldStatus:   log.OldStatus,
			NewStatus:   log.NewStatus,
			ChangedByID: log.ChangedByID,
			ChangedAt:   log.ChangedAt,
		})
	}
	return TicketDetailResponse{
		TicketResponse: NewTicketResponse(ticket),
		StatusLogs:     logResponses,
	}
}
