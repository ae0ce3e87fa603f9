package repositories

import "filmoteca/internal/models"

// MovieGenreRepository defines the interface for movie-genre link data
// access. All lookups are by the composite (movie, genre) key.
type MovieGenreRepository interface {
	Create(link *models.MovieGenre) error
	GetAll() ([]models.MovieGenre, error)
	Get(movieID, genreID uint) (*models.MovieGenre, error)
	Update(movieID, genreID uint, fields map[string]interface{}) (*models.MovieGenre, error)
	Delete(movieID, genreID uint) error
}
