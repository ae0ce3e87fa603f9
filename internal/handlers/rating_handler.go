package handlers

import (
	"log"

	"filmoteca/internal/models"
	"filmoteca/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RatingHandler handles HTTP requests for ratings.
type RatingHandler struct {
	service  *services.RatingService
	validate *validator.Validate
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service *services.RatingService) *RatingHandler {
	return &RatingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the rating routes with the Fiber app.
func (h *RatingHandler) RegisterRoutes(router fiber.Router) {
	ratingRoutes := router.Group("/avaliacoes")
	ratingRoutes.Post("/", h.HandleCreate)
	ratingRoutes.Get("/", h.HandleList)
	ratingRoutes.Get("/:idUsuario/:idFilme", h.HandleGet)
	ratingRoutes.Put("/:idUsuario/:idFilme", h.HandleUpdate)
	ratingRoutes.Delete("/:idUsuario/:idFilme", h.HandleDelete)
}

// CreateRatingRequest represents the request body for rating creation.
// Nota is a pointer so a missing score is distinguishable from a zero score,
// which is a valid value.
type CreateRatingRequest struct {
	IDUsuario  uint     `json:"id_usuario" validate:"required,gt=0"`
	IDFilme    uint     `json:"id_filme" validate:"required,gt=0"`
	Nota       *float64 `json:"nota" validate:"required,gte=0,lte=5"`
	Comentario string   `json:"comentario" validate:"omitempty,max=1000"`
}

// UpdateRatingRequest represents the partial request body for rating updates.
type UpdateRatingRequest struct {
	Nota       *float64 `json:"nota" validate:"omitempty,gte=0,lte=5"`
	Comentario *string  `json:"comentario" validate:"omitempty,max=1000"`
}

// HandleCreate records a user's rating for a movie. A second rating for the
// same (user, movie) pair is answered with 409.
func (h *RatingHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRatingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create rating request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	rating := models.Rating{
		UserID:  req.IDUsuario,
		MovieID: req.IDFilme,
		Score:   *req.Nota,
		Comment: req.Comentario,
	}

	if err := h.service.CreateRating(&rating); err != nil {
		log.Printf("Error creating rating: %v", err)
		return storeError(c, err, "Could not create rating; the user may have already rated this movie")
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}

// HandleList retrieves all ratings.
func (h *RatingHandler) HandleList(c *fiber.Ctx) error {
	ratings, err := h.service.GetAllRatings()
	if err != nil {
		log.Printf("Error getting ratings: %v", err)
		return storeError(c, err, "Could not retrieve ratings")
	}
	return c.JSON(ratings)
}

// HandleGet retrieves a rating by its composite key.
func (h *RatingHandler) HandleGet(c *fiber.Ctx) error {
	userID, err := paramID(c, "idUsuario")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	movieID, err := paramID(c, "idFilme")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	rating, err := h.service.GetRating(userID, movieID)
	if err != nil {
		log.Printf("Error getting rating (%d, %d): %v", userID, movieID, err)
		return storeError(c, err, "Could not retrieve rating")
	}
	return c.JSON(rating)
}

// HandleUpdate applies a partial update to a rating.
func (h *RatingHandler) HandleUpdate(c *fiber.Ctx) error {
	userID, err := paramID(c, "idUsuario")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	movieID, err := paramID(c, "idFilme")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateRatingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update rating request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	fields := map[string]interface{}{}
	if req.Nota != nil {
		fields["score"] = *req.Nota
	}
	if req.Comentario != nil {
		fields["comment"] = *req.Comentario
	}

	rating, err := h.service.UpdateRating(userID, movieID, fields)
	if err != nil {
		log.Printf("Error updating rating (%d, %d): %v", userID, movieID, err)
		return storeError(c, err, "Could not update rating")
	}
	return c.JSON(rating)
}

// HandleDelete removes a rating by its composite key.
func (h *RatingHandler) HandleDelete(c *fiber.Ctx) error {
	userID, err := paramID(c, "idUsuario")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	movieID, err := paramID(c, "idFilme")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteRating(userID, movieID); err != nil {
		log.Printf("Error deleting rating (%d, %d): %v", userID, movieID, err)
		return storeError(c, err, "Could not delete rating")
	}
	return c.JSON(fiber.Map{
		"message": "Rating deleted successfully",
	})
}
