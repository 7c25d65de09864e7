package application

import (
	"context"

	"arenadash/internal/arena"
	"arenadash/internal/models"
	"arenadash/internal/repository"

	"github.com/google/uuid"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// GameFeed is the paginated source of our non-rating games, newest first.
type GameFeed interface {
	ListGames(ctx context.Context, before string) (*models.GamePage, error)
}

// Directory lists the current submissions and the scoreboard.
type Directory interface {
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	Scoreboard(ctx context.Context) (*models.Scoreboard, error)
}

// RunStarter schedules a non-rating run. Fire-and-forget.
type RunStarter interface {
	StartNonRating(ctx context.Context, attackerID, defenderID int) error
}

type DashboardService interface {
	Refresh(ctx context.Context) (*Snapshot, error)
	RunMissing(ctx context.Context) (*Snapshot, error)
	Current() *Snapshot
	ExcelReport(ctx context.Context) ([]byte, error)
}

// Options carries the roster and indexing knobs from config.
type Options struct {
	TeamID           uuid.UUID
	OurBranches      []string
	OpponentCount    int
	SubmissionWindow int
	Policy           IndexPolicy
}

type Service struct {
	Dashboard DashboardService
}

func NewService(repos *repository.Repository, client *arena.Client, opts Options, logger Logger) *Service {
	syncSvc := NewSyncService(client, repos.GameCache, logger)
	backfill := NewBackfillService(client, logger)
	return &Service{
		Dashboard: NewDashboardServiceImpl(syncSvc, backfill, client, opts, logger),
	}
}
