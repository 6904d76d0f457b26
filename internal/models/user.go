package models

import (
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/constants"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName  string    `gorm:"type:varchar(255)" json:"display_name"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProtectedAdminID is the id of the seeded administrator, which owns public
// submissions and can never be deleted.
func ProtectedAdminID() uint64 {
	return constants.ProtectedAdminID
}

// IsProtectedAdmin reports whether id belongs to the seeded administrator.
func IsProtectedAdmin(id uint64) bool {
	return id == ProtectedAdminID()
}
