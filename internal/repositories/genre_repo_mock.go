package repositories

import (
	"fmt"
	"sync"
	"time"

	"filmoteca/internal/models"
)

// MockGenreRepository is an in-memory implementation of GenreRepository.
type MockGenreRepository struct {
	genres map[uint]models.Genre
	nextID uint
	mu     sync.RWMutex
}

// NewMockGenreRepository creates a new instance of MockGenreRepository.
func NewMockGenreRepository() *MockGenreRepository {
	return &MockGenreRepository{
		genres: make(map[uint]models.Genre),
		nextID: 1,
	}
}

// Create adds a new genre, assigning a sequential ID like the database would.
func (r *MockGenreRepository) Create(genre *models.Genre) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if genre.ID == 0 {
		genre.ID = r.nextID
		r.nextID++
	}
	genre.CreatedAt = time.Now()
	genre.UpdatedAt = genre.CreatedAt
	r.genres[genre.ID] = *genre
	return nil
}

// GetAll returns all genres.
func (r *MockGenreRepository) GetAll() ([]models.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		list = append(list, g)
	}
	return list, nil
}

// GetByID returns a genre by its ID.
func (r *MockGenreRepository) GetByID(id uint) (*models.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genre, ok := r.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return &genre, nil
}

// Update modifies the supplied columns of an existing genre.
func (r *MockGenreRepository) Update(id uint, fields map[string]interface{}) (*models.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	genre, ok := r.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	if v, ok := fields["description"].(string); ok {
		genre.Description = v
	}
	genre.UpdatedAt = time.Now()
	r.genres[id] = genre
	return &genre, nil
}

// Delete removes a genre by its ID.
func (r *MockGenreRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.genres[id]; !ok {
		return fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	delete(r.genres, id)
	return nil
}
