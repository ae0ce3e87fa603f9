package middleware

import (
	"errors"
	"log"
	"strings"

	"filmoteca/internal/models"
	"filmoteca/internal/repositories"
	"filmoteca/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Keys under which the authenticated identity is stored in fiber locals.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "tipo_usuario"
)

// AuthRequired is the authentication gate. A request without a bearer
// credential is rejected with 401; a request whose credential fails
// validation (bad signature, expired, malformed) is rejected with 403.
// On success the decoded identity is attached to the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		// Numeric claims decode as float64.
		id, ok := claims[LocalUserID].(float64)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}
		c.Locals(LocalUserID, uint(id))
		c.Locals(LocalEmail, claims[LocalEmail])
		c.Locals(LocalRole, claims[LocalRole])

		return c.Next()
	}
}

// AdminRequired is the authorization gate for administrative routes. It
// assumes AuthRequired ran first; a missing identity still yields 401 in
// case the chain is ever misordered.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access restricted to administrators",
			})
		}
		return c.Next()
	}
}

// ActiveUserRequired is the status gate: it rejects requests whose backing
// account has been deactivated. Composes after AuthRequired.
func ActiveUserRequired(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := c.Locals(LocalUserID).(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		user, err := userService.GetUserByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// Token refers to an account that no longer exists.
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "Account not found",
				})
			}
			log.Printf("Status check failed for user %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not verify account status",
				"error":   err.Error(),
			})
		}

		if !user.Status {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Account is inactive",
			})
		}
		return c.Next()
	}
}
