package handlers

import (
	"log"

	"filmoteca/internal/models"
	"filmoteca/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MovieGenreHandler handles HTTP requests for movie-genre associations.
type MovieGenreHandler struct {
	service  *services.MovieGenreService
	validate *validator.Validate
}

// NewMovieGenreHandler creates a new MovieGenreHandler.
func NewMovieGenreHandler(service *services.MovieGenreService) *MovieGenreHandler {
	return &MovieGenreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the movie-genre routes with the Fiber app. The
// composite key travels in the path for read, update and delete.
func (h *MovieGenreHandler) RegisterRoutes(router fiber.Router) {
	linkRoutes := router.Group("/generos-filme")
	linkRoutes.Post("/", h.HandleCreate)
	linkRoutes.Get("/", h.HandleList)
	linkRoutes.Get("/:idFilme/:idGenero", h.HandleGet)
	linkRoutes.Put("/:idFilme/:idGenero", h.HandleUpdate)
	linkRoutes.Delete("/:idFilme/:idGenero", h.HandleDelete)
}

// CreateMovieGenreRequest represents the request body for link creation.
type CreateMovieGenreRequest struct {
	IDFilme  uint `json:"id_filme" validate:"required,gt=0"`
	IDGenero uint `json:"id_genero" validate:"required,gt=0"`
}

// UpdateMovieGenreRequest represents the partial request body for rewriting
// a link's key.
type UpdateMovieGenreRequest struct {
	IDFilme  *uint `json:"id_filme" validate:"omitempty,gt=0"`
	IDGenero *uint `json:"id_genero" validate:"omitempty,gt=0"`
}

// HandleCreate associates a movie with a genre.
func (h *MovieGenreHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateMovieGenreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create link request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	link := models.MovieGenre{MovieID: req.IDFilme, GenreID: req.IDGenero}
	if err := h.service.CreateLink(&link); err != nil {
		log.Printf("Error creating movie-genre link: %v", err)
		return storeError(c, err, "Could not create movie-genre link")
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

// HandleList retrieves all movie-genre links.
func (h *MovieGenreHandler) HandleList(c *fiber.Ctx) error {
	links, err := h.service.GetAllLinks()
	if err != nil {
		log.Printf("Error getting movie-genre links: %v", err)
		return storeError(c, err, "Could not retrieve movie-genre links")
	}
	return c.JSON(links)
}

// HandleGet retrieves a link by its composite key.
func (h *MovieGenreHandler) HandleGet(c *fiber.Ctx) error {
	movieID, err := paramID(c, "idFilme")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	genreID, err := paramID(c, "idGenero")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	link, err := h.service.GetLink(movieID, genreID)
	if err != nil {
		log.Printf("Error getting link (%d, %d): %v", movieID, genreID, err)
		return storeError(c, err, "Could not retrieve movie-genre link")
	}
	return c.JSON(link)
}

// HandleUpdate rewrites a link's key columns.
func (h *MovieGenreHandler) HandleUpdate(c *fiber.Ctx) error {
	movieID, err := paramID(c, "idFilme")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	genreID, err := paramID(c, "idGenero")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateMovieGenreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update link request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	fields := map[string]interface{}{}
	if req.IDFilme != nil {
		fields["movie_id"] = *req.IDFilme
	}
	if req.IDGenero != nil {
		fields["genre_id"] = *req.IDGenero
	}

	link, err := h.service.UpdateLink(movieID, genreID, fields)
	if err != nil {
		log.Printf("Error updating link (%d, %d): %v", movieID, genreID, err)
		return storeError(c, err, "Could not update movie-genre link")
	}
	return c.JSON(link)
}

// HandleDelete removes a link by its composite key.
func (h *MovieGenreHandler) HandleDelete(c *fiber.Ctx) error {
	movieID, err := paramID(c, "idFilme")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	genreID, err := paramID(c, "idGenero")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteLink(movieID, genreID); err != nil {
		log.Printf("Error deleting link (%d, %d): %v", movieID, genreID, err)
		return storeError(c, err, "Could not delete movie-genre link")
	}
	return c.JSON(fiber.Map{
		"message": "Movie-genre link deleted successfully",
	})
}
