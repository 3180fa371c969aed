package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-ticket-api/internal/domain"
)

// StatusLogRepository reads the append-only audit trail. Writes happen
// only inside TicketRepository.UpdateStatusWithLog so an entry can
// never exist without its transition.
type StatusLogRepository interface {
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.StatusLog, error)
}

type statusLogRepository struct {
	pool *pgxpool.Pool
}

// NewStatusLogRepository builds repository.
func NewStatusLogRepository(pool *pgxpool.Pool) StatusLogRepository {
	return &statusLogRepository{pool: pool}
}

func (r *statusLogRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.StatusLog, error) {
	const query = `
        SELECT id, ticket_id, old_status, new_status, changed_by_id, changed_at
        FROM ticket_status_logs WHERE ticket_id=$1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StatusLog
	for rows.Next() {
		var log domain.StatusLog
		if err := rows.Scan(
			&log.ID,
			&log.TicketID,
			&log.OldStatus,
			&log.NewStatus,
			&log.ChangedByID,
			&log.ChangedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	return result, rows.Err()
}
