package models

import (
	"time"
)

// Roles understood by the platform. Everything beyond admin is a plain user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User model for authentication
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
