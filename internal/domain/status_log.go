package domain

import "time"

// StatusLog is an append-only audit entry recording one status
// transition. Entries are never mutated or deleted on their own; they
// only disappear when the parent ticket is deleted.
type StatusLog struct {
	ID          int64
	TicketID    int64
	OldStatus   TicketStatus
	NewStatus   TicketStatus
	ChangedByID int64
	ChangedAt   time.Time
}
