package repositories

import (
	"fmt"

	"filmoteca/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate email surfaces as ErrDuplicate.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translateGormError(err))
	}
	return nil
}

// GetAll retrieves every user, active or not.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetActive retrieves only users whose account has not been deactivated.
func (r *GORMUserRepository) GetActive() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("status = ?", true).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by ID. Deactivated users are still returned.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, translateGormError(err))
	}
	return &user, nil
}

// GetByEmail retrieves a user by their unique email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, translateGormError(err))
	}
	return &user, nil
}

// Update applies a partial update and returns the refreshed record. Only the
// columns present in fields are touched.
func (r *GORMUserRepository) Update(id uint, fields map[string]interface{}) (*models.User, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, translateGormError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Deactivate performs the soft delete: the row is kept, status goes false.
func (r *GORMUserRepository) Deactivate(id uint) (*models.User, error) {
	return r.Update(id, map[string]interface{}{"status": false})
}
