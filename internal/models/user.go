package models

import "time"

// Role values stored in the tipo_usuario column.
const (
	RoleAdmin  = "admin"
	RoleCommon = "comum"
)

// User represents an account in the catalog. Deleting a user only flips
// Status to false so ratings keep a valid owner.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Nickname  string    `json:"apelido" gorm:"type:varchar(100)"`
	BirthDate time.Time `json:"data_nascimento"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // No json tag value for security
	Status    bool      `json:"status" gorm:"default:true"`
	Role      string    `json:"tipo_usuario" gorm:"type:varchar(20);default:comum"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the privileged role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
