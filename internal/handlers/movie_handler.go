package handlers

import (
	"log"

	"filmoteca/internal/models"
	"filmoteca/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for movies.
type MovieHandler struct {
	service  *services.MovieService
	validate *validator.Validate
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.MovieService) *MovieHandler {
	return &MovieHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the movie routes with the Fiber app.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	movieRoutes := router.Group("/filmes")
	movieRoutes.Post("/", h.HandleCreate)
	movieRoutes.Get("/", h.HandleList)
	movieRoutes.Get("/:id", h.HandleGetByID)
	movieRoutes.Put("/:id", h.HandleUpdate)
	movieRoutes.Delete("/:id", h.HandleDelete)
}

// RegisterAdminRoutes registers the privileged movie routes; the caller is
// expected to guard the router with the admin gate.
func (h *MovieHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/filmes", h.HandleCreate)
	router.Put("/filmes/:id", h.HandleUpdate)
	router.Delete("/filmes/:id", h.HandleDelete)
}

// CreateMovieRequest represents the request body for movie creation.
type CreateMovieRequest struct {
	Nome          string `json:"nome" validate:"required"`
	Diretor       string `json:"diretor" validate:"required"`
	AnoLancamento string `json:"ano_lancamento" validate:"required,datetime=2006-01-02"`
	Duracao       int    `json:"duracao" validate:"required,gt=0"`
	Produtora     string `json:"produtora" validate:"required"`
	Classificacao string `json:"classificacao" validate:"required"`
	Poster        string `json:"poster" validate:"required,url"`
	GenerosID     []uint `json:"generos_id" validate:"omitempty,dive,gt=0"`
}

// UpdateMovieRequest represents the partial request body for movie updates.
type UpdateMovieRequest struct {
	Nome          *string `json:"nome" validate:"omitempty,min=1"`
	Diretor       *string `json:"diretor" validate:"omitempty,min=1"`
	AnoLancamento *string `json:"ano_lancamento" validate:"omitempty,datetime=2006-01-02"`
	Duracao       *int    `json:"duracao" validate:"omitempty,gt=0"`
	Produtora     *string `json:"produtora" validate:"omitempty,min=1"`
	Classificacao *string `json:"classificacao" validate:"omitempty,min=1"`
	Poster        *string `json:"poster" validate:"omitempty,url"`
}

// HandleCreate creates a new movie, linking any supplied genres.
func (h *MovieHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	releaseDate, _ := parseDate(req.AnoLancamento)
	movie := models.Movie{
		Title:         req.Nome,
		Director:      req.Diretor,
		ReleaseDate:   releaseDate,
		Duration:      req.Duracao,
		Studio:        req.Produtora,
		ContentRating: req.Classificacao,
		Poster:        req.Poster,
	}

	if err := h.service.CreateMovie(&movie, req.GenerosID); err != nil {
		log.Printf("Error creating movie: %v", err)
		return storeError(c, err, "Could not create movie")
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// HandleList retrieves all movies with genres and ratings expanded.
func (h *MovieHandler) HandleList(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies()
	if err != nil {
		log.Printf("Error getting movies: %v", err)
		return storeError(c, err, "Could not retrieve movies")
	}
	return c.JSON(movies)
}

// HandleGetByID retrieves a single movie by its ID.
func (h *MovieHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	movie, err := h.service.GetMovieByID(id)
	if err != nil {
		log.Printf("Error getting movie %d: %v", id, err)
		return storeError(c, err, "Could not retrieve movie")
	}
	return c.JSON(movie)
}

// HandleUpdate applies a partial update to a movie.
func (h *MovieHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	fields := map[string]interface{}{}
	if req.Nome != nil {
		fields["title"] = *req.Nome
	}
	if req.Diretor != nil {
		fields["director"] = *req.Diretor
	}
	if req.AnoLancamento != nil {
		releaseDate, _ := parseDate(*req.AnoLancamento)
		fields["release_date"] = releaseDate
	}
	if req.Duracao != nil {
		fields["duration"] = *req.Duracao
	}
	if req.Produtora != nil {
		fields["studio"] = *req.Produtora
	}
	if req.Classificacao != nil {
		fields["content_rating"] = *req.Classificacao
	}
	if req.Poster != nil {
		fields["poster"] = *req.Poster
	}

	movie, err := h.service.UpdateMovie(id, fields)
	if err != nil {
		log.Printf("Error updating movie %d: %v", id, err)
		return storeError(c, err, "Could not update movie")
	}
	return c.JSON(movie)
}

// HandleDelete removes a movie permanently.
func (h *MovieHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteMovie(id); err != nil {
		log.Printf("Error deleting movie %d: %v", id, err)
		return storeError(c, err, "Could not delete movie")
	}
	return c.JSON(fiber.Map{
		"message": "Movie deleted successfully",
	})
}
