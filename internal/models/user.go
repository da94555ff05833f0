package models

import (
	"time"
)

// User represents an author account in the system
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"admin":  true,
	"editor": true,
	"system": true,
}

// The well-known identity generated posts are attributed to. Author
// resolution looks this account up by email and creates it once if missing.
const (
	SystemAuthorEmail = "system@aiblog.com"
	SystemAuthorName  = "System"
	SystemAuthorRole  = "system"
)
