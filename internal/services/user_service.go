package services

import (
	"fmt"

	"filmoteca/internal/models"
	"filmoteca/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser persists a new user with a hashed password.
func (s *UserService) CreateUser(user *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleCommon
	}
	return s.repo.Create(user)
}

// GetActiveUsers retrieves users whose account has not been deactivated.
func (s *UserService) GetActiveUsers() ([]models.User, error) {
	return s.repo.GetActive()
}

// GetAllUsers retrieves every account, including deactivated ones. Reserved
// for administrative listings.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by ID, active or not.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser applies a partial update. A password present in fields is
// hashed before it reaches the store.
func (s *UserService) UpdateUser(id uint, fields map[string]interface{}) (*models.User, error) {
	if plain, ok := fields["password"].(string); ok {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password"] = string(hashed)
	}
	if len(fields) == 0 {
		return s.repo.GetByID(id)
	}
	return s.repo.Update(id, fields)
}

// DeactivateUser performs the soft delete and returns the updated record.
func (s *UserService) DeactivateUser(id uint) (*models.User, error) {
	return s.repo.Deactivate(id)
}
