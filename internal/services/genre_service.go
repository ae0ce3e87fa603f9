package services

import (
	"filmoteca/internal/models"
	"filmoteca/internal/repositories"
)

// GenreService handles business logic related to genres.
type GenreService struct {
	repo repositories.GenreRepository
}

// NewGenreService creates a new GenreService.
func NewGenreService(repo repositories.GenreRepository) *GenreService {
	return &GenreService{
		repo: repo,
	}
}

// GetAllGenres retrieves all genres.
func (s *GenreService) GetAllGenres() ([]models.Genre, error) {
	return s.repo.GetAll()
}

// GetGenreByID retrieves a single genre by its ID.
func (s *GenreService) GetGenreByID(id uint) (*models.Genre, error) {
	return s.repo.GetByID(id)
}

// CreateGenre persists a new genre.
func (s *GenreService) CreateGenre(genre *models.Genre) error {
	return s.repo.Create(genre)
}

// UpdateGenre applies a partial update and returns the updated record.
func (s *GenreService) UpdateGenre(id uint, fields map[string]interface{}) (*models.Genre, error) {
	if len(fields) == 0 {
		return s.repo.GetByID(id)
	}
	return s.repo.Update(id, fields)
}

// DeleteGenre removes a genre permanently.
func (s *GenreService) DeleteGenre(id uint) error {
	return s.repo.Delete(id)
}
