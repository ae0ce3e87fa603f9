package services

import (
	"encoding/json"
	"log"

	"filmoteca/internal/models"
	"filmoteca/internal/repositories"
	"filmoteca/pkg/rabbitmq"
)

// RatingService handles business logic related to ratings.
type RatingService struct {
	repo      repositories.RatingRepository
	movieRepo repositories.MovieRepository
	mqClient  *rabbitmq.Client
}

// NewRatingService creates a new RatingService. mqClient may be nil; rating
// events are then skipped, which keeps tests and broker-less setups working.
func NewRatingService(repo repositories.RatingRepository, movieRepo repositories.MovieRepository, mqClient *rabbitmq.Client) *RatingService {
	return &RatingService{
		repo:      repo,
		movieRepo: movieRepo,
		mqClient:  mqClient,
	}
}

// GetAllRatings retrieves all ratings.
func (s *RatingService) GetAllRatings() ([]models.Rating, error) {
	return s.repo.GetAll()
}

// GetRating retrieves a rating by its composite key.
func (s *RatingService) GetRating(userID, movieID uint) (*models.Rating, error) {
	return s.repo.Get(userID, movieID)
}

// CreateRating persists a new rating. The rated movie must exist; a second
// rating by the same user for the same movie returns ErrDuplicate from the
// repository. On success a rating.created event is published.
func (s *RatingService) CreateRating(rating *models.Rating) error {
	if _, err := s.movieRepo.GetByID(rating.MovieID); err != nil {
		return err
	}
	if err := s.repo.Create(rating); err != nil {
		return err
	}

	s.publishEvent("rating.created", map[string]interface{}{
		"id_usuario": rating.UserID,
		"id_filme":   rating.MovieID,
		"nota":       rating.Score,
	})
	return nil
}

// UpdateRating applies a partial update and returns the updated record.
func (s *RatingService) UpdateRating(userID, movieID uint, fields map[string]interface{}) (*models.Rating, error) {
	if len(fields) == 0 {
		return s.repo.Get(userID, movieID)
	}
	return s.repo.Update(userID, movieID, fields)
}

// DeleteRating removes a rating by its composite key.
func (s *RatingService) DeleteRating(userID, movieID uint) error {
	return s.repo.Delete(userID, movieID)
}

// publishEvent sends a catalog event to RabbitMQ. Publish failures are
// logged, never surfaced; the write already succeeded.
func (s *RatingService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping event publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("", rabbitmq.CatalogQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
