package repositories

import "filmoteca/internal/models"

// RatingRepository defines the interface for rating data access. All lookups
// are by the composite (user, movie) key.
type RatingRepository interface {
	Create(rating *models.Rating) error
	GetAll() ([]models.Rating, error)
	Get(userID, movieID uint) (*models.Rating, error)
	Update(userID, movieID uint, fields map[string]interface{}) (*models.Rating, error)
	Delete(userID, movieID uint) error
}
