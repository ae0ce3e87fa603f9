package repositories

import "filmoteca/internal/models"

// GenreRepository defines the interface for genre data access.
type GenreRepository interface {
	Create(genre *models.Genre) error
	GetAll() ([]models.Genre, error)
	GetByID(id uint) (*models.Genre, error)
	Update(id uint, fields map[string]interface{}) (*models.Genre, error)
	Delete(id uint) error
}
