package models

import "time"

// Genre is a catalog category, e.g. "Ação" or "Drama".
type Genre struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"descricao" gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieGenre links a movie to a genre. The pair is the primary key, so the
// same association cannot be stored twice.
type MovieGenre struct {
	MovieID   uint      `json:"id_filme" gorm:"primaryKey;autoIncrement:false"`
	GenreID   uint      `json:"id_genero" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the join table shared with Movie's many2many relation.
func (MovieGenre) TableName() string {
	return "movie_genres"
}
