package domain

import "time"

// User is the domain model for all accounts: requesters, support
// agents and managers alike. Capability differences live entirely in
// Role.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
