package repositories

import "filmoteca/internal/models"

// MovieRepository defines the interface for movie data access.
type MovieRepository interface {
	Create(movie *models.Movie) error
	GetAll() ([]models.Movie, error)
	GetByID(id uint) (*models.Movie, error)
	Update(id uint, fields map[string]interface{}) (*models.Movie, error)
	Delete(id uint) error
}
