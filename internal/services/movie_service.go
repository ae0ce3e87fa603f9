package services

import (
	"filmoteca/internal/models"
	"filmoteca/internal/repositories"
)

// MovieService handles business logic related to movies.
type MovieService struct {
	repo      repositories.MovieRepository
	genreRepo repositories.GenreRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repositories.MovieRepository, genreRepo repositories.GenreRepository) *MovieService {
	return &MovieService{
		repo:      repo,
		genreRepo: genreRepo,
	}
}

// GetAllMovies retrieves all movies with genres and ratings expanded.
func (s *MovieService) GetAllMovies() ([]models.Movie, error) {
	return s.repo.GetAll()
}

// GetMovieByID retrieves a single movie with genres and ratings expanded.
func (s *MovieService) GetMovieByID(id uint) (*models.Movie, error) {
	return s.repo.GetByID(id)
}

// CreateMovie persists a new movie. Genre IDs supplied with the request are
// resolved first so an unknown genre fails the whole create instead of
// leaving a movie with dangling links.
func (s *MovieService) CreateMovie(movie *models.Movie, genreIDs []uint) error {
	for _, id := range genreIDs {
		genre, err := s.genreRepo.GetByID(id)
		if err != nil {
			return err
		}
		movie.Genres = append(movie.Genres, *genre)
	}
	return s.repo.Create(movie)
}

// UpdateMovie applies a partial update and returns the updated record.
func (s *MovieService) UpdateMovie(id uint, fields map[string]interface{}) (*models.Movie, error) {
	if len(fields) == 0 {
		return s.repo.GetByID(id)
	}
	return s.repo.Update(id, fields)
}

// DeleteMovie removes a movie permanently.
func (s *MovieService) DeleteMovie(id uint) error {
	return s.repo.Delete(id)
}
