package domain

import "time"

// Comment is a message attached to a ticket thread. CreatedAt is the
// original creation time and is preserved across edits.
type Comment struct {
	ID        int64
	TicketID  int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
}
