package repositories

import (
	"fmt"

	"filmoteca/internal/models"

	"gorm.io/gorm"
)

// GORMMovieGenreRepository is a GORM implementation of MovieGenreRepository.
type GORMMovieGenreRepository struct {
	db *gorm.DB
}

// NewGORMMovieGenreRepository creates a new instance of GORMMovieGenreRepository.
func NewGORMMovieGenreRepository(db *gorm.DB) *GORMMovieGenreRepository {
	return &GORMMovieGenreRepository{
		db: db,
	}
}

// Create inserts a new link. Linking the same pair twice yields ErrDuplicate.
func (r *GORMMovieGenreRepository) Create(link *models.MovieGenre) error {
	if err := r.db.Create(link).Error; err != nil {
		return fmt.Errorf("failed to create movie-genre link: %w", translateGormError(err))
	}
	return nil
}

// GetAll retrieves all movie-genre links.
func (r *GORMMovieGenreRepository) GetAll() ([]models.MovieGenre, error) {
	var links []models.MovieGenre
	if err := r.db.Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movie-genre links: %w", err)
	}
	return links, nil
}

// Get retrieves a link by its composite key.
func (r *GORMMovieGenreRepository) Get(movieID, genreID uint) (*models.MovieGenre, error) {
	var link models.MovieGenre
	err := r.db.First(&link, "movie_id = ? AND genre_id = ?", movieID, genreID).Error
	if err != nil {
		return nil, fmt.Errorf("link (%d, %d): %w", movieID, genreID, translateGormError(err))
	}
	return &link, nil
}

// Update rewrites a link's key columns. Moving the link onto a pair that
// already exists yields ErrDuplicate.
func (r *GORMMovieGenreRepository) Update(movieID, genreID uint, fields map[string]interface{}) (*models.MovieGenre, error) {
	res := r.db.Model(&models.MovieGenre{}).
		Where("movie_id = ? AND genre_id = ?", movieID, genreID).
		Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update link (%d, %d): %w", movieID, genreID, translateGormError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("link (%d, %d): %w", movieID, genreID, ErrNotFound)
	}

	newMovieID, newGenreID := movieID, genreID
	if v, ok := fields["movie_id"].(uint); ok {
		newMovieID = v
	}
	if v, ok := fields["genre_id"].(uint); ok {
		newGenreID = v
	}
	return r.Get(newMovieID, newGenreID)
}

// Delete removes a link by its composite key.
func (r *GORMMovieGenreRepository) Delete(movieID, genreID uint) error {
	res := r.db.Delete(&models.MovieGenre{}, "movie_id = ? AND genre_id = ?", movieID, genreID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete link (%d, %d): %w", movieID, genreID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("link (%d, %d): %w", movieID, genreID, ErrNotFound)
	}
	return nil
}
