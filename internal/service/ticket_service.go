package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/support-ticket-api/internal/domain"
	"github.com/spec-kit/support-ticket-api/internal/events"
	"github.com/spec-kit/support-ticket-api/internal/policy"
	"github.com/spec-kit/support-ticket-api/internal/repository"
	apperrors "github.com/spec-kit/support-ticket-api/pkg/util"
)

// TicketService owns ticket creation, assignment and the status state
// machine.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	statusLogs repository.StatusLogRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo    repository.TicketRepository
	UserRepo      repository.UserRepository
	StatusLogRepo repository.StatusLogRepository
	Dispatcher    events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Priority    domain.TicketPriority
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		statusLogs: deps.StatusLogRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create opens a new ticket. It always starts OPEN and unassigned.
func (s *TicketService) Create(ctx context.Context, creatorID int64, role domain.Role, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.TicketStatusOpen,
		Priority:    input.Priority,
		CreatedByID: creatorID,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: creatorID, Role: role},
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// List returns tickets visible to the requester: all for managers,
// assigned-to-self for support, created-by-self for end-users.
func (s *TicketService) List(ctx context.Context, requesterID int64, role domain.Role) ([]domain.Ticket, error) {
	var filter repository.TicketFilter
	switch role {
	case domain.RoleManager:
		// no constraint
	case domain.RoleSupport:
		filter.AssignedToID = &requesterID
	case domain.RoleUser:
		filter.CreatedByID = &requesterID
	default:
		return []domain.Ticket{}, nil
	}

	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Get fetches one ticket with its status history, subject to the
// requester's visibility.
func (s *TicketService) Get(ctx context.Context, ticketID, requesterID int64, role domain.Role) (*domain.Ticket, []domain.StatusLog, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.CanAccessTicket(ticket, requesterID, role) {
		return nil, nil, apperrors.NewForbidden("access denied")
	}
	logs, err := s.statusLogs.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return ticket, logs, nil
}

// Assign binds a ticket to a support or manager account. A support
// requester may only claim an unassigned ticket or re-affirm their own
// assignment; managers are unrestricted. Assignment changes are not
// audited, unlike status changes.
func (s *TicketService) Assign(ctx context.Context, ticketID, assigneeID, requesterID int64, role domain.Role) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageAssignment(ticket, requesterID, role) {
		return nil, apperrors.NewForbidden("access denied")
	}

	assignee, err := s.users.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("assignee", map[string]any{"user_id": assigneeID})
		}
		return nil, apperrors.MapError(err)
	}
	if assignee.Role == domain.RoleUser {
		return nil, apperrors.NewInvalidAssigneeRole(string(assignee.Role))
	}

	if err := s.tickets.UpdateAssignee(ctx, ticket.ID, &assignee.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	ticket.AssignedToID = &assignee.ID

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: requesterID, Role: role},
		Payload:  events.TicketAssignedPayload{AssigneeID: assignee.ID},
	})
	return ticket, nil
}

// UpdateStatus advances a ticket along the lifecycle. Support
// requesters must own the assignment; managers bypass that check. The
// only legal target is the current status's successor. The row update
// and the audit entry are applied as one transaction.
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID int64, requested domain.TicketStatus, requesterID int64, role domain.Role) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleSupport && !policy.CanAccessTicket(ticket, requesterID, role) {
		return nil, apperrors.NewForbidden("access denied")
	}

	allowed, ok := ticket.Status.Next()
	if !ok || requested != allowed {
		allowedStr := ""
		if ok {
			allowedStr = string(allowed)
		}
		return nil, apperrors.NewInvalidTransition(string(ticket.Status), string(requested), allowedStr)
	}

	log := &domain.StatusLog{
		TicketID:    ticket.ID,
		OldStatus:   ticket.Status,
		NewStatus:   requested,
		ChangedByID: requesterID,
	}
	if err := s.tickets.UpdateStatusWithLog(ctx, log); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// A concurrent transition won; report against the status
			// the ticket actually has now.
			current, readErr := s.getTicket(ctx, ticketID)
			if readErr != nil {
				return nil, readErr
			}
			allowedStr := ""
			if next, ok := current.Status.Next(); ok {
				allowedStr = string(next)
			}
			return nil, apperrors.NewInvalidTransition(string(current.Status), string(requested), allowedStr)
		}
		return nil, apperrors.MapError(err)
	}
	ticket.Status = requested

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: requesterID, Role: role},
		Payload: events.TicketStatusChangedPayload{
			OldStatus: log.OldStatus,
			NewStatus: log.NewStatus,
		},
	})
	return ticket, nil
}

// Delete removes a ticket and, through the store, its comments and
// status logs. The manager-only gate lives at the HTTP boundary.
func (s *TicketService) Delete(ctx context.Context, ticketID, requesterID int64, role domain.Role) error {
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticketID,
		Actor:    events.Actor{UserID: requesterID, Role: role},
	})
	return nil
}

func (s *TicketService) getTicket(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
