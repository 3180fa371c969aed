package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Next returns the only status a ticket may transition into from s.
// The lifecycle is strictly linear (OPEN -> IN_PROGRESS -> RESOLVED ->
// CLOSED); ok is false for CLOSED, which is terminal.
func (s TicketStatus) Next() (next TicketStatus, ok bool) {
	switch s {
	case TicketStatusOpen:
		return TicketStatusInProgress, true
	case TicketStatusInProgress:
		return TicketStatusResolved, true
	case TicketStatusResolved:
		return TicketStatusClosed, true
	}
	return "", false
}

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ParseTicketStatus resolves a status by name.
func ParseTicketStatus(v string) (TicketStatus, error) {
	status := TicketStatus(v)
	if !status.Valid() {
		return "", fmt.Errorf("unknown ticket status %q", v)
	}
	return status, nil
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. CreatedByID is set at
// creation and never changes; AssignedToID is optional and, when set,
// always references a SUPPORT or MANAGER account.
type Ticket struct {
	ID           int64
	Title        string
	Description  string
	Status       TicketStatus
	Priority     TicketPriority
	CreatedByID  int64
	AssignedToID *int64
	CreatedAt    time.Time
}
