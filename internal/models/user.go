package models

import "gorm.io/gorm"

// Valid role tags carried in User.Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account of the store.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string   `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	FullName   string   `json:"fullName" gorm:"type:varchar(255)" validate:"required,min=1"`
	IsActive   bool     `json:"isActive" gorm:"default:true"`
	Roles      []string `json:"roles" gorm:"serializer:json"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
