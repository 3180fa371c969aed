// Package policy holds the access rules applied before any ticket or
// comment mutation. Every function here is pure: persisted entities
// in, allow/deny out.
package policy

import "github.com/spec-kit/support-ticket-api/internal/domain"

// CanAccessTicket decides whether the requester may view or act on a
// ticket. Managers see everything, support agents only tickets
// assigned to them, end-users only tickets they created.
func CanAccessTicket(ticket *domain.Ticket, requesterID int64, role domain.Role) bool {
	if ticket == nil {
		return false
	}
	switch role {
	case domain.RoleManager:
		return true
	case domain.RoleSupport:
		return ticket.AssignedToID != nil && *ticket.AssignedToID == requesterID
	case domain.RoleUser:
		return ticket.CreatedByID == requesterID
	}
	return false
}

// CanModifyComment decides whether the requester may edit or delete a
// comment. This is deliberately not the same predicate as ticket
// access: being able to view a ticket never grants authority over
// someone else's comment. Only the author or a manager qualifies.
func CanModifyComment(comment *domain.Comment, requesterID int64, role domain.Role) bool {
	if comment == nil {
		return false
	}
	return role == domain.RoleManager || comment.AuthorID == requesterID
}

// CanManageAssignment decides whether the requester may change a
// ticket's assignee. Managers are unrestricted; a support agent may
// claim an unassigned ticket or re-affirm their own assignment, but
// never take over another agent's ticket.
func CanManageAssignment(ticket *domain.Ticket, requesterID int64, role domain.Role) bool {
	if ticket == nil {
		return false
	}
	switch role {
	case domain.RoleManager:
		return true
	case domain.RoleSupport:
		return ticket.AssignedToID == nil || *ticket.AssignedToID == requesterID
	}
	return false
}
