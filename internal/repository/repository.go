package repository

import (
	"database/sql"

	"arenadash/internal/models"
)

// GameCache is the one durable value the sync engine owns: the full merged
// game list, read once at cycle start and replaced once at cycle end. There
// is never a partial write visible between the two.
type GameCache interface {
	Load() ([]models.Game, error)
	Replace(games []models.Game) error
}

type Repository struct {
	GameCache
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		GameCache: NewGameCachePostgres(db),
		db:        db,
	}
}
