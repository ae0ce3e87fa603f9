package services

import (
	"filmoteca/internal/models"
	"filmoteca/internal/repositories"
)

// MovieGenreService handles business logic for movie-genre associations.
type MovieGenreService struct {
	repo      repositories.MovieGenreRepository
	movieRepo repositories.MovieRepository
	genreRepo repositories.GenreRepository
}

// NewMovieGenreService creates a new MovieGenreService.
func NewMovieGenreService(repo repositories.MovieGenreRepository, movieRepo repositories.MovieRepository, genreRepo repositories.GenreRepository) *MovieGenreService {
	return &MovieGenreService{
		repo:      repo,
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

// GetAllLinks retrieves all movie-genre links.
func (s *MovieGenreService) GetAllLinks() ([]models.MovieGenre, error) {
	return s.repo.GetAll()
}

// GetLink retrieves a link by its composite key.
func (s *MovieGenreService) GetLink(movieID, genreID uint) (*models.MovieGenre, error) {
	return s.repo.Get(movieID, genreID)
}

// CreateLink associates a movie with a genre. Both ends must exist; linking
// the same pair twice returns ErrDuplicate from the repository.
func (s *MovieGenreService) CreateLink(link *models.MovieGenre) error {
	if _, err := s.movieRepo.GetByID(link.MovieID); err != nil {
		return err
	}
	if _, err := s.genreRepo.GetByID(link.GenreID); err != nil {
		return err
	}
	return s.repo.Create(link)
}

// UpdateLink rewrites a link's key columns and returns the updated record.
func (s *MovieGenreService) UpdateLink(movieID, genreID uint, fields map[string]interface{}) (*models.MovieGenre, error) {
	if len(fields) == 0 {
		return s.repo.Get(movieID, genreID)
	}
	if id, ok := fields["movie_id"].(uint); ok {
		if _, err := s.movieRepo.GetByID(id); err != nil {
			return nil, err
		}
	}
	if id, ok := fields["genre_id"].(uint); ok {
		if _, err := s.genreRepo.GetByID(id); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(movieID, genreID, fields)
}

// DeleteLink removes an association by its composite key.
func (s *MovieGenreService) DeleteLink(movieID, genreID uint) error {
	return s.repo.Delete(movieID, genreID)
}
