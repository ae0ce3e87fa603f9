package repositories

import "filmoteca/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetActive() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id uint, fields map[string]interface{}) (*models.User, error)
	Deactivate(id uint) (*models.User, error)
}
