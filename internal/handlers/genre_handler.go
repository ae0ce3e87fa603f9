package handlers

import (
	"log"

	"filmoteca/internal/models"
	"filmoteca/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GenreHandler handles HTTP requests for genres.
type GenreHandler struct {
	service  *services.GenreService
	validate *validator.Validate
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(service *services.GenreService) *GenreHandler {
	return &GenreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the genre routes with the Fiber app.
func (h *GenreHandler) RegisterRoutes(router fiber.Router) {
	genreRoutes := router.Group("/generos")
	genreRoutes.Post("/", h.HandleCreate)
	genreRoutes.Get("/", h.HandleList)
	genreRoutes.Get("/:id", h.HandleGetByID)
	genreRoutes.Put("/:id", h.HandleUpdate)
	genreRoutes.Delete("/:id", h.HandleDelete)
}

// CreateGenreRequest represents the request body for genre creation.
type CreateGenreRequest struct {
	Descricao string `json:"descricao" validate:"required"`
}

// UpdateGenreRequest represents the partial request body for genre updates.
type UpdateGenreRequest struct {
	Descricao *string `json:"descricao" validate:"omitempty,min=1"`
}

// HandleCreate creates a new genre.
func (h *GenreHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create genre request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	genre := models.Genre{Description: req.Descricao}
	if err := h.service.CreateGenre(&genre); err != nil {
		log.Printf("Error creating genre: %v", err)
		return storeError(c, err, "Could not create genre")
	}

	return c.Status(fiber.StatusCreated).JSON(genre)
}

// HandleList retrieves all genres.
func (h *GenreHandler) HandleList(c *fiber.Ctx) error {
	genres, err := h.service.GetAllGenres()
	if err != nil {
		log.Printf("Error getting genres: %v", err)
		return storeError(c, err, "Could not retrieve genres")
	}
	return c.JSON(genres)
}

// HandleGetByID retrieves a single genre by its ID.
func (h *GenreHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	genre, err := h.service.GetGenreByID(id)
	if err != nil {
		log.Printf("Error getting genre %d: %v", id, err)
		return storeError(c, err, "Could not retrieve genre")
	}
	return c.JSON(genre)
}

// HandleUpdate applies a partial update to a genre.
func (h *GenreHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update genre request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	fields := map[string]interface{}{}
	if req.Descricao != nil {
		fields["description"] = *req.Descricao
	}

	genre, err := h.service.UpdateGenre(id, fields)
	if err != nil {
		log.Printf("Error updating genre %d: %v", id, err)
		return storeError(c, err, "Could not update genre")
	}
	return c.JSON(genre)
}

// HandleDelete removes a genre permanently.
func (h *GenreHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteGenre(id); err != nil {
		log.Printf("Error deleting genre %d: %v", id, err)
		return storeError(c, err, "Could not delete genre")
	}
	return c.JSON(fiber.Map{
		"message": "Genre deleted successfully",
	})
}
