package repositories

import "tienda/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	// FindByEmail selects only the columns the login flow needs
	// (id, email, password, roles).
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	DeleteAll() error
}
