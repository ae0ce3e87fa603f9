package repositories

import (
	"fmt"
	"sync"
	"time"

	"filmoteca/internal/models"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
type MockMovieRepository struct {
	movies map[uint]models.Movie
	nextID uint
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[uint]models.Movie),
		nextID: 1,
	}
}

// Create adds a new movie, assigning a sequential ID like the database would.
func (r *MockMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID == 0 {
		movie.ID = r.nextID
		r.nextID++
	}
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt
	r.movies[movie.ID] = *movie
	return nil
}

// GetAll returns all movies.
func (r *MockMovieRepository) GetAll() ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		list = append(list, m)
	}
	return list, nil
}

// GetByID returns a movie by its ID.
func (r *MockMovieRepository) GetByID(id uint) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return &movie, nil
}

// Update modifies the supplied columns of an existing movie.
func (r *MockMovieRepository) Update(id uint, fields map[string]interface{}) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	if v, ok := fields["title"].(string); ok {
		movie.Title = v
	}
	if v, ok := fields["director"].(string); ok {
		movie.Director = v
	}
	if v, ok := fields["release_date"].(time.Time); ok {
		movie.ReleaseDate = v
	}
	if v, ok := fields["duration"].(int); ok {
		movie.Duration = v
	}
	if v, ok := fields["studio"].(string); ok {
		movie.Studio = v
	}
	if v, ok := fields["content_rating"].(string); ok {
		movie.ContentRating = v
	}
	if v, ok := fields["poster"].(string); ok {
		movie.Poster = v
	}
	movie.UpdatedAt = time.Now()
	r.movies[id] = movie
	return &movie, nil
}

// Delete removes a movie by its ID.
func (r *MockMovieRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	delete(r.movies, id)
	return nil
}
