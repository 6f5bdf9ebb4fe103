package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt    time.Time `json:"created_date"`
	UpdatedAt    time.Time `json:"updated_date"`
	Email        string    `gorm:"not null;uniqueIndex" json:"email"`
	FullName     string    `json:"full_name"`
	Role         Role      `gorm:"not null;default:'user'" json:"role"`
	IsClubLeader bool      `gorm:"default:false" json:"is_club_leader"`
}

// IsAdmin reports whether the user holds the system-wide admin role.
// A nil user is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
