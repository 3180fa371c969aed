package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-ticket-api/internal/domain"
)

// ErrStatusConflict signals that the guarded status update matched no
// row: either a concurrent transition moved the ticket first, or the
// ticket disappeared between read and write.
var ErrStatusConflict = errors.New("ticket status changed concurrently")

// TicketFilter narrows listing to the requester's visibility scope.
// Nil fields apply no constraint.
type TicketFilter struct {
	CreatedByID  *int64
	AssignedToID *int64
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	UpdateAssignee(ctx context.Context, ticketID int64, assigneeID *int64) error
	// UpdateStatusWithLog applies a status transition and appends its
	// audit entry in a single transaction. The UPDATE is guarded by
	// log.OldStatus so a concurrent conflicting transition fails with
	// ErrStatusConflict instead of silently overwriting.
	UpdateStatusWithLog(ctx context.Context, log *domain.StatusLog) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, status, priority, created_by_id, assigned_to_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.CreatedByID,
		ticket.AssignedToID,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        SELECT id, title, description, status, priority, created_by_id, assigned_to_id, created_at
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CreatedByID,
		&ticket.AssignedToID,
		&ticket.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateAssignee(ctx context.Context, ticketID int64, assigneeID *int64) error {
	const query = `UPDATE tickets SET assigned_to_id=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, assigneeID, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) UpdateStatusWithLog(ctx context.Context, log *domain.StatusLog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const update = `UPDATE tickets SET status=$1 WHERE id=$2 AND status=$3`
	cmd, err := tx.Exec(ctx, update, log.NewStatus, log.TicketID, log.OldStatus)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrStatusConflict
	}

	const insert = `
        INSERT INTO ticket_status_logs (ticket_id, old_status, new_status, changed_by_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, changed_at`
	if err := tx.QueryRow(ctx, insert,
		log.TicketID,
		log.OldStatus,
		log.NewStatus,
		log.ChangedByID,
	).Scan(&log.ID, &log.ChangedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the ticket; comments and status logs go with it via
// ON DELETE CASCADE.
func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tickets WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query := `
        SELECT id, title, description, status, priority, created_by_id, assigned_to_id, created_at
        FROM tickets`
	args := []any{}
	switch {
	case filter.CreatedByID != nil:
		args = append(args, *filter.CreatedByID)
		query += ` WHERE created_by_id=$1`
	case filter.AssignedToID != nil:
		args = append(args, *filter.AssignedToID)
		query += ` WHERE assigned_to_id=$1`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Status,
			&ticket.Priority,
			&ticket.CreatedByID,
			&ticket.AssignedToID,
			&ticket.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
