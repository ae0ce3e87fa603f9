package repositories

import (
	"fmt"

	"filmoteca/internal/models"

	"gorm.io/gorm"
)

// GORMGenreRepository is a GORM implementation of GenreRepository.
type GORMGenreRepository struct {
	db *gorm.DB
}

// NewGORMGenreRepository creates a new instance of GORMGenreRepository.
func NewGORMGenreRepository(db *gorm.DB) *GORMGenreRepository {
	return &GORMGenreRepository{
		db: db,
	}
}

// Create inserts a new genre.
func (r *GORMGenreRepository) Create(genre *models.Genre) error {
	if err := r.db.Create(genre).Error; err != nil {
		return fmt.Errorf("failed to create genre: %w", translateGormError(err))
	}
	return nil
}

// GetAll retrieves all genres.
func (r *GORMGenreRepository) GetAll() ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to get all genres: %w", err)
	}
	return genres, nil
}

// GetByID retrieves a single genre by its ID.
func (r *GORMGenreRepository) GetByID(id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.First(&genre, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("genre %d: %w", id, translateGormError(err))
	}
	return &genre, nil
}

// Update applies a partial update and returns the refreshed record.
func (r *GORMGenreRepository) Update(id uint, fields map[string]interface{}) (*models.Genre, error) {
	res := r.db.Model(&models.Genre{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update genre %d: %w", id, translateGormError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete removes a genre and its movie links.
func (r *GORMGenreRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.MovieGenre{}, "genre_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete movie links for genre %d: %w", id, err)
	}
	res := r.db.Delete(&models.Genre{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete genre %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return nil
}
