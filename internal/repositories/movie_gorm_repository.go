package repositories

import (
	"fmt"

	"filmoteca/internal/models"

	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// Create inserts a new movie. Genres already set on the model are linked
// through the movie_genres join table in the same call.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if err := r.db.Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", translateGormError(err))
	}
	return nil
}

// GetAll retrieves all movies with their genres and ratings expanded.
func (r *GORMMovieRepository) GetAll() ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.Preload("Genres").Preload("Ratings").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}
	return movies, nil
}

// GetByID retrieves a single movie with genres and ratings expanded.
func (r *GORMMovieRepository) GetByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.Preload("Genres").Preload("Ratings").First(&movie, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("movie %d: %w", id, translateGormError(err))
	}
	return &movie, nil
}

// Update applies a partial update and returns the refreshed record.
func (r *GORMMovieRepository) Update(id uint, fields map[string]interface{}) (*models.Movie, error) {
	res := r.db.Model(&models.Movie{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update movie %d: %w", id, translateGormError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete removes a movie for good, together with its genre links and
// ratings.
func (r *GORMMovieRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.MovieGenre{}, "movie_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete genre links for movie %d: %w", id, err)
	}
	if err := r.db.Delete(&models.Rating{}, "movie_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete ratings for movie %d: %w", id, err)
	}
	res := r.db.Delete(&models.Movie{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}
