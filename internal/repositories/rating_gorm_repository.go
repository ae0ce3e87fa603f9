package repositories

import (
	"fmt"

	"filmoteca/internal/models"

	"gorm.io/gorm"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Create inserts a new rating. A second rating for the same (user, movie)
// pair violates the composite primary key and yields ErrDuplicate.
func (r *GORMRatingRepository) Create(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", translateGormError(err))
	}
	return nil
}

// GetAll retrieves all ratings.
func (r *GORMRatingRepository) GetAll() ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to get all ratings: %w", err)
	}
	return ratings, nil
}

// Get retrieves a rating by its composite key.
func (r *GORMRatingRepository) Get(userID, movieID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, "user_id = ? AND movie_id = ?", userID, movieID).Error
	if err != nil {
		return nil, fmt.Errorf("rating (%d, %d): %w", userID, movieID, translateGormError(err))
	}
	return &rating, nil
}

// Update applies a partial update and returns the refreshed record.
func (r *GORMRatingRepository) Update(userID, movieID uint, fields map[string]interface{}) (*models.Rating, error) {
	res := r.db.Model(&models.Rating{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update rating (%d, %d): %w", userID, movieID, translateGormError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("rating (%d, %d): %w", userID, movieID, ErrNotFound)
	}
	return r.Get(userID, movieID)
}

// Delete removes a rating by its composite key.
func (r *GORMRatingRepository) Delete(userID, movieID uint) error {
	res := r.db.Delete(&models.Rating{}, "user_id = ? AND movie_id = ?", userID, movieID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete rating (%d, %d): %w", userID, movieID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rating (%d, %d): %w", userID, movieID, ErrNotFound)
	}
	return nil
}
