package models

import "time"

// User roles
const (
	RoleAdmin      = 1
	RoleTranslator = 2
)

// IsValidRole reports whether roleID is one of the known roles
func IsValidRole(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleTranslator
}

// RoleName returns the display name for a role id
func RoleName(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "Admin"
	case RoleTranslator:
		return "Translator"
	}
	return "Unknown"
}

// User represents an account that can manage or translate words
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Language  string    `json:"language" db:"language"`
	RoleID    int       `json:"role_id" db:"role_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
