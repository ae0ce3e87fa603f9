package models

import "time"

// Rating is one user's score for one movie. The composite primary key
// enforces at most one rating per (user, movie) pair; a second insert
// surfaces as a duplicate-key error from the store.
type Rating struct {
	UserID    uint      `json:"id_usuario" gorm:"primaryKey;autoIncrement:false"`
	MovieID   uint      `json:"id_filme" gorm:"primaryKey;autoIncrement:false"`
	Score     float64   `json:"nota"` // bounded to [0,5] at the request layer
	Comment   string    `json:"comentario,omitempty" gorm:"type:varchar(1000)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
