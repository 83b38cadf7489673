package entities

import "strings"

// Role is the caller's role as provided by the identity collaborator.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleForeman     Role = "foreman"
	RoleStorekeeper Role = "storekeeper"
	RoleTeam        Role = "team"
)

func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Actor is the authenticated caller of a mutation.
type Actor struct {
	ID   string
	Role Role
}

// ConsumableEntryTypeForRole maps the caller's role to the entry track it writes:
// foremen plan, everybody else records what was actually used.
func ConsumableEntryTypeForRole(role Role) ConsumableEntryType {
	if role == RoleForeman {
		return ConsumableEntryPlanned
	}
	return ConsumableEntryActual
}

// CanDecideWorkOrders reports whether the role may approve/reject work orders and completions.
func CanDecideWorkOrders(role Role) bool {
	return role == RoleManager || role == RoleAdmin
}

// CanReviewTrack reports whether the role may decide the given requisition line track.
func CanReviewTrack(role Role, track ReviewTrack) bool {
	if role == RoleAdmin {
		return true
	}
	switch track {
	case ReviewTrackForeman:
		return role == RoleForeman
	case ReviewTrackStorekeeper:
		return role == RoleStorekeeper
	}
	return false
}
