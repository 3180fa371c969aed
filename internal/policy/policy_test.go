package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/support-ticket-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCanAccessTicket(t *testing.T) {
	ticket := &domain.Ticket{ID: 1, CreatedByID: 5, AssignedToID: int64Ptr(42)}
	unassigned := &domain.Ticket{ID: 2, CreatedByID: 5}

	tests := []struct {
		name        string
		ticket      *domain.Ticket
		requesterID int64
		role        domain.Role
		want        bool
	}{
		{"manager sees any ticket", ticket, 999, domain.RoleManager, true},
		{"support sees assigned ticket", ticket, 42, domain.RoleSupport, true},
		{"support denied on another agent's ticket", ticket, 43, domain.RoleSupport, false},
		{"support denied on unassigned ticket", unassigned, 42, domain.RoleSupport, false},
		{"creator sees own ticket", ticket, 5, domain.RoleUser, true},
		{"end-user denied on someone else's ticket", ticket, 6, domain.RoleUser, false},
		{"end-user denied even when assigned id matches", ticket, 42, domain.RoleUser, false},
		{"unknown role denied", ticket, 5, domain.Role("ADMIN"), false},
		{"nil ticket denied", nil, 5, domain.RoleManager, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessTicket(tt.ticket, tt.requesterID, tt.role))
		})
	}
}

func TestCanModifyComment(t *testing.T) {
	comment := &domain.Comment{ID: 3, TicketID: 1, AuthorID: 5}

	tests := []struct {
		name        string
		comment     *domain.Comment
		requesterID int64
		role        domain.Role
		want        bool
	}{
		{"author may modify", comment, 5, domain.RoleUser, true},
		{"manager may modify anyone's comment", comment, 999, domain.RoleManager, true},
		{"support non-author denied", comment, 42, domain.RoleSupport, false},
		{"other end-user denied", comment, 6, domain.RoleUser, false},
		{"nil comment denied", nil, 5, domain.RoleManager, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyComment(tt.comment, tt.requesterID, tt.role))
		})
	}
}

func TestCanManageAssignment(t *testing.T) {
	assigned := &domain.Ticket{ID: 1, AssignedToID: int64Ptr(42)}
	unassigned := &domain.Ticket{ID: 2}

	tests := []struct {
		name        string
		ticket      *domain.Ticket
		requesterID int64
		role        domain.Role
		want        bool
	}{
		{"manager reassigns freely", assigned, 999, domain.RoleManager, true},
		{"support claims unassigned", unassigned, 42, domain.RoleSupport, true},
		{"support re-affirms own assignment", assigned, 42, domain.RoleSupport, true},
		{"support denied takeover", assigned, 43, domain.RoleSupport, false},
		{"end-user denied", unassigned, 5, domain.RoleUser, false},
		{"nil ticket denied", nil, 42, domain.RoleManager, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageAssignment(tt.ticket, tt.requesterID, tt.role))
		})
	}
}
