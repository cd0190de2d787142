// Package model defines database models
package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Empty for accounts created through Google. Password login is
	// refused for those until a password is set
	PasswordHash string `json:"-"`

	// Stable subject ID handed out by Google. Unique when present
	GoogleID *string `gorm:"uniqueIndex" json:"-"`

	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `gorm:"default:user;not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
