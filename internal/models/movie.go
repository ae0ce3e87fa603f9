package models

import "time"

// Movie represents a catalog entry. Genres are attached through the
// movie_genres join table and ratings reference the movie by ID; both are
// loaded on demand via Preload.
type Movie struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"nome" gorm:"type:varchar(255);not null"`
	Director      string    `json:"diretor" gorm:"type:varchar(255)"`
	ReleaseDate   time.Time `json:"ano_lancamento"`
	Duration      int       `json:"duracao"` // runtime in minutes
	Studio        string    `json:"produtora" gorm:"type:varchar(255)"`
	ContentRating string    `json:"classificacao" gorm:"type:varchar(20)"`
	Poster        string    `json:"poster" gorm:"type:varchar(512)"`
	Genres        []Genre   `json:"generos,omitempty" gorm:"many2many:movie_genres"`
	Ratings       []Rating  `json:"avaliacoes,omitempty" gorm:"foreignKey:MovieID"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
