package db_models

import "strings"

// Role is the closed set of account roles. Stored as a plain string column
// but only ever compared against these constants.
type Role string

const (
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleBoard   Role = "board"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleManager:
		return RoleManager, true
	case RoleMember:
		return RoleMember, true
	case RoleBoard:
		return RoleBoard, true
	}
	return "", false
}

func (r Role) In(set ...Role) bool {
	for _, allowed := range set {
		if r == allowed {
			return true
		}
	}
	return false
}
