package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"arenadash/internal/models"
)

const cachedGamesKey = "cached_games"

type GameCachePostgres struct {
	db *sql.DB
}

func NewGameCachePostgres(db *sql.DB) *GameCachePostgres {
	return &GameCachePostgres{db: db}
}

// Load returns the previously persisted game list, newest first. A missing
// row and an unparseable payload both degrade to an empty cache so the next
// sync simply re-fetches the full feed.
func (r *GameCachePostgres) Load() ([]models.Game, error) {
	var payload []byte
	query := "SELECT payload FROM game_cache WHERE key = $1"
	err := r.db.QueryRow(query, cachedGamesKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game cache: %w", err)
	}

	var games []models.Game
	if err := json.Unmarshal(payload, &games); err != nil {
		return nil, nil
	}
	return games, nil
}

func (r *GameCachePostgres) Replace(games []models.Game) error {
	payload, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("failed to marshal game cache: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO game_cache (key, payload, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = $2, updated_at = NOW()
	`, cachedGamesKey, payload)
	if err != nil {
		return fmt.Errorf("failed to replace game cache: %w", err)
	}
	return nil
}
