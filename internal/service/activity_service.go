package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-ticket-api/internal/events"
)

// ActivityService writes a structured log line for every domain event.
// It is the only event consumer; actual notification delivery is out
// of scope.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	return &ActivityService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to every event type.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketAssigned,
		events.EventTicketStatusChanged,
		events.EventTicketDeleted,
		events.EventCommentAdded,
	} {
		a.dispatcher.Subscribe(eventType, a.handleEvent)
	}
}

func (a *ActivityService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("domain event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
		zap.Int64("actor_id", event.Actor.UserID),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload))
	return nil
}
