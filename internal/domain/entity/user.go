package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account allowed to log in and, when admin, manage site records.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles derives the token roles of the user.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
