package application

import (
	"context"
	"fmt"

	"arenadash/internal/models"
	"arenadash/internal/repository"
)

// SyncService extends the cached game list with whatever the feed has
// published since the last cycle, without re-fetching known games.
type SyncService struct {
	feed   GameFeed
	cache  repository.GameCache
	logger Logger
}

func NewSyncService(feed GameFeed, cache repository.GameCache, logger Logger) *SyncService {
	return &SyncService{feed: feed, cache: cache, logger: logger}
}

// Sync pages through the feed newest-first until it sees the newest cached
// game, splices the cached tail onto the freshly fetched head, persists the
// union as the new cache and returns it.
//
// Any fetch or persist failure aborts the cycle before the cache is touched,
// so a failed sync can simply be retried against the previous cache state.
func (s *SyncService) Sync(ctx context.Context) ([]models.Game, error) {
	cached, err := s.cache.Load()
	if err != nil {
		return nil, fmt.Errorf("load game cache: %w", err)
	}

	games := make([]models.Game, 0, len(cached))
	cursor := ""
	pages := 0
	for {
		page, err := s.feed.ListGames(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetch games page: %w", err)
		}
		pages++
		games = append(games, page.Games...)

		if len(cached) > 0 {
			if i := indexOfGame(games, cached[0].GameID); i >= 0 {
				// games[i:] duplicates the head of the cache, so only the
				// cached entries beyond that overlap are still missing.
				rest := len(games) - i
				if rest < len(cached) {
					games = append(games, cached[rest:]...)
				}
				break
			}
		}
		if page.HasMore && page.Next != "" {
			cursor = page.Next
			continue
		}
		break
	}

	if err := s.cache.Replace(games); err != nil {
		return nil, fmt.Errorf("persist game cache: %w", err)
	}

	s.logger.Debug("game feed synced", "pages", pages, "games", len(games))
	return games, nil
}

func indexOfGame(games []models.Game, gameID string) int {
	for i := range games {
		if games[i].GameID == gameID {
			return i
		}
	}
	return -1
}
