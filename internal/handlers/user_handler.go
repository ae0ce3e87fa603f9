package handlers

import (
	"log"

	"filmoteca/internal/models"
	"filmoteca/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/usuarios")
	userRoutes.Post("/", h.HandleCreate)
	userRoutes.Get("/", h.HandleList)
	userRoutes.Get("/:id", h.HandleGetByID)
	userRoutes.Put("/:id", h.HandleUpdate)
	userRoutes.Delete("/:id", h.HandleDelete)
}

// RegisterAdminRoutes registers the privileged user routes; the caller is
// expected to guard the router with the admin gate.
func (h *UserHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/usuarios", h.HandleListAll)
}

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Nome           string `json:"nome" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Apelido        string `json:"apelido" validate:"required"`
	DataNascimento string `json:"data_nascimento" validate:"required,datetime=2006-01-02"`
	Password       string `json:"password" validate:"required,min=6"`
	TipoUsuario    string `json:"tipo_usuario" validate:"omitempty,oneof=admin comum"`
}

// UpdateUserRequest represents the partial request body for user updates.
// Every field is optional; only supplied fields are written.
type UpdateUserRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Apelido        *string `json:"apelido" validate:"omitempty,min=1"`
	DataNascimento *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
	TipoUsuario    *string `json:"tipo_usuario" validate:"omitempty,oneof=admin comum"`
	Status         *bool   `json:"status"`
}

// HandleCreate creates a new user account.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	birthDate, _ := parseDate(req.DataNascimento)
	user := models.User{
		Name:      req.Nome,
		Email:     req.Email,
		Nickname:  req.Apelido,
		BirthDate: birthDate,
		Password:  req.Password,
		Status:    true,
		Role:      req.TipoUsuario,
	}

	if err := h.service.CreateUser(&user); err != nil {
		log.Printf("Error creating user: %v", err)
		return storeError(c, err, "Could not create user")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleList retrieves all active users.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.service.GetActiveUsers()
	if err != nil {
		log.Printf("Error getting users: %v", err)
		return storeError(c, err, "Could not retrieve users")
	}
	return c.JSON(users)
}

// HandleListAll retrieves every account, including deactivated ones.
func (h *UserHandler) HandleListAll(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return storeError(c, err, "Could not retrieve users")
	}
	return c.JSON(users)
}

// HandleGetByID retrieves one user by ID. Deactivated accounts are still
// returned; their status field tells the caller.
func (h *UserHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		log.Printf("Error getting user %d: %v", id, err)
		return storeError(c, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleUpdate applies a partial update to a user.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
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
		fields["name"] = *req.Nome
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Apelido != nil {
		fields["nickname"] = *req.Apelido
	}
	if req.DataNascimento != nil {
		birthDate, _ := parseDate(*req.DataNascimento)
		fields["birth_date"] = birthDate
	}
	if req.Password != nil {
		fields["password"] = *req.Password
	}
	if req.TipoUsuario != nil {
		fields["role"] = *req.TipoUsuario
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	user, err := h.service.UpdateUser(id, fields)
	if err != nil {
		log.Printf("Error updating user %d: %v", id, err)
		return storeError(c, err, "Could not update user")
	}
	return c.JSON(user)
}

// HandleDelete soft-deletes a user: the account is deactivated, the row
// stays so ratings keep a valid owner.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.service.DeactivateUser(id)
	if err != nil {
		log.Printf("Error deactivating user %d: %v", id, err)
		return storeError(c, err, "Could not deactivate user")
	}
	return c.JSON(user)
}
