package repositories

import (
	"fmt"
	"sync"
	"time"

	"filmoteca/internal/models"
)

type ratingKey struct {
	userID  uint
	movieID uint
}

// MockRatingRepository is an in-memory implementation of RatingRepository.
type MockRatingRepository struct {
	ratings map[ratingKey]models.Rating
	mu      sync.RWMutex
}

// NewMockRatingRepository creates a new instance of MockRatingRepository.
func NewMockRatingRepository() *MockRatingRepository {
	return &MockRatingRepository{
		ratings: make(map[ratingKey]models.Rating),
	}
}

// Create adds a new rating, rejecting duplicates like the composite key would.
func (r *MockRatingRepository) Create(rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratingKey{rating.UserID, rating.MovieID}
	if _, ok := r.ratings[key]; ok {
		return fmt.Errorf("failed to create rating: %w", ErrDuplicate)
	}
	rating.CreatedAt = time.Now()
	rating.UpdatedAt = rating.CreatedAt
	r.ratings[key] = *rating
	return nil
}

// GetAll returns all ratings.
func (r *MockRatingRepository) GetAll() ([]models.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Rating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		list = append(list, rating)
	}
	return list, nil
}

// Get returns a rating by its composite key.
func (r *MockRatingRepository) Get(userID, movieID uint) (*models.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, ok := r.ratings[ratingKey{userID, movieID}]
	if !ok {
		return nil, fmt.Errorf("rating (%d, %d): %w", userID, movieID, ErrNotFound)
	}
	return &rating, nil
}

// Update modifies the supplied columns of an existing rating.
func (r *MockRatingRepository) Update(userID, movieID uint, fields map[string]interface{}) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratingKey{userID, movieID}
	rating, ok := r.ratings[key]
	if !ok {
		return nil, fmt.Errorf("rating (%d, %d): %w", userID, movieID, ErrNotFound)
	}
	if v, ok := fields["score"].(float64); ok {
		rating.Score = v
	}
	if v, ok := fields["comment"].(string); ok {
		rating.Comment = v
	}
	rating.UpdatedAt = time.Now()
	r.ratings[key] = rating
	return &rating, nil
}

// Delete removes a rating by its composite key.
func (r *MockRatingRepository) Delete(userID, movieID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratingKey{userID, movieID}
	if _, ok := r.ratings[key]; !ok {
		return fmt.Errorf("rating (%d, %d): %w", userID, movieID, ErrNotFound)
	}
	delete(r.ratings, key)
	return nil
}
