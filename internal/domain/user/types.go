package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// SystemActorName labels changes made without an authenticated person.
const SystemActorName = "Sistema"

// Actor is the portal user behind a local action, as carried in the access token.
type Actor struct {
	ID   uuid.UUID
	Role Role
	Name string
}

// DisplayName is what gets denormalized into timeline rows.
func (a Actor) DisplayName() string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}
	return SystemActorName
}
