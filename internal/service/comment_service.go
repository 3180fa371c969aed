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

// CommentService owns the comment thread under each ticket.
type CommentService struct {
	comments   repository.CommentRepository
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(comments repository.CommentRepository, tickets repository.TicketRepository, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, tickets: tickets, dispatcher: dispatcher}
}

// Add creates a comment on a ticket the author can access.
func (s *CommentService) Add(ctx context.Context, ticketID int64, body string, authorID int64, role domain.Role) (*domain.Comment, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTicket(ticket, authorID, role) {
		return nil, apperrors.NewForbidden("access denied")
	}

	comment := &domain.Comment{
		TicketID: ticket.ID,
		AuthorID: authorID,
		Body:     strings.TrimSpace(body),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventCommentAdded,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: authorID, Role: role},
		Payload: events.CommentAddedPayload{
			CommentID: comment.ID,
			AuthorID:  authorID,
		},
	})
	return comment, nil
}

// List returns a ticket's comments in insertion order, subject to the
// requester's ticket visibility.
func (s *CommentService) List(ctx context.Context, ticketID, requesterID int64, role domain.Role) ([]domain.Comment, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTicket(ticket, requesterID, role) {
		return nil, apperrors.NewForbidden("access denied")
	}
	comments, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}

// Edit replaces a comment's text. Only the author or a manager may do
// this; the creation timestamp is preserved.
func (s *CommentService) Edit(ctx context.Context, commentID int64, body string, requesterID int64, role domain.Role) (*domain.Comment, error) {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyComment(comment, requesterID, role) {
		return nil, apperrors.NewForbidden("access denied")
	}

	body = strings.TrimSpace(body)
	if err := s.comments.UpdateBody(ctx, comment.ID, body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": commentID})
		}
		return nil, apperrors.MapError(err)
	}
	comment.Body = body
	return comment, nil
}

// Delete removes a comment under the same authority rule as Edit.
func (s *CommentService) Delete(ctx context.Context, commentID, requesterID int64, role domain.Role) error {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return err
	}
	if !policy.CanModifyComment(comment, requesterID, role) {
		return apperrors.NewForbidden("access denied")
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("comment", map[string]any{"comment_id": commentID})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *CommentService) getTicket(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *CommentService) getComment(ctx context.Context, commentID int64) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": commentID})
		}
		return nil, apperrors.MapError(err)
	}
	return comment, nil
}

func (s *CommentService) publishEvent(ctx context.Context, event events.Event) {
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
