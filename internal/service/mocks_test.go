package service

import (
	"context"
	"sync"

	"github.com/spec-kit/support-ticket-api/internal/domain"
	"github.com/spec-kit/support-ticket-api/internal/events"
	"github.com/spec-kit/support-ticket-api/internal/repository"
)

type userRepoMock struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	listFn       func(ctx context.Context) ([]domain.User, error)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	return m.listFn(ctx)
}

type ticketRepoMock struct {
	createFn              func(ctx context.Context, ticket *domain.Ticket) error
	getByIDFn             func(ctx context.Context, id int64) (*domain.Ticket, error)
	updateAssigneeFn      func(ctx context.Context, ticketID int64, assigneeID *int64) error
	updateStatusWithLogFn func(ctx context.Context, log *domain.StatusLog) error
	deleteFn              func(ctx context.Context, id int64) error
	listFn                func(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error)
}

func (m *ticketRepoMock) Create(ctx context.Context, ticket *domain.Ticket) error {
	return m.createFn(ctx, ticket)
}

func (m *ticketRepoMock) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return m.getByIDFn(ctx, id)
}

func (m *ticketRepoMock) UpdateAssignee(ctx context.Context, ticketID int64, assigneeID *int64) error {
	return m.updateAssigneeFn(ctx, ticketID, assigneeID)
}

func (m *ticketRepoMock) UpdateStatusWithLog(ctx context.Context, log *domain.StatusLog) error {
	return m.updateStatusWithLogFn(ctx, log)
}

func (m *ticketRepoMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *ticketRepoMock) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return m.listFn(ctx, filter)
}

type statusLogRepoMock struct {
	listByTicketFn func(ctx context.Context, ticketID int64) ([]domain.StatusLog, error)
}

func (m *statusLogRepoMock) ListByTicket(ctx context.Context, ticketID int64) ([]domain.StatusLog, error) {
	return m.listByTicketFn(ctx, ticketID)
}

type commentRepoMock struct {
	createFn       func(ctx context.Context, comment *domain.Comment) error
	getByIDFn      func(ctx context.Context, id int64) (*domain.Comment, error)
	listByTicketFn func(ctx context.Context, ticketID int64) ([]domain.Comment, error)
	updateBodyFn   func(ctx context.Context, id int64, body string) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *commentRepoMock) Create(ctx context.Context, comment *domain.Comment) error {
	return m.createFn(ctx, comment)
}

func (m *commentRepoMock) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *commentRepoMock) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comment, error) {
	return m.listByTicketFn(ctx, ticketID)
}

func (m *commentRepoMock) UpdateBody(ctx context.Context, id int64, body string) error {
	return m.updateBodyFn(ctx, id, body)
}

func (m *commentRepoMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.published...)
}

func int64Ptr(v int64) *int64 {
	return &v
}
