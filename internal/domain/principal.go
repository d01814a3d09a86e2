package domain

import "github.com/google/uuid"

// Principal identifies the authenticated caller of a service operation.
// A nil *Principal means the call is anonymous; operations that require
// authentication reject it before doing any work.
type Principal struct {
	ID   uuid.UUID
	Role UserRole
}

// IsProvider reports whether the principal carries the provider role.
func (p *Principal) IsProvider() bool {
	return p != nil && p.Role == RoleProvider
}
