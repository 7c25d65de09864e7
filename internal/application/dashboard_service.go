package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"arenadash/internal/models"
)

// ErrCycleInFlight is returned when a cycle is requested while another one
// is still running. Callers treat it as "try again later", not a failure.
var ErrCycleInFlight = errors.New("sync cycle already in flight")

// Snapshot is everything a presentation layer needs after one cycle: the
// merged game set, both result tables, the roster, the ranked opponents and
// whatever runs the last run-missing cycle scheduled.
type Snapshot struct {
	Games     []models.Game `json:"games"`
	Roster    Roster        `json:"roster"`
	Opponents []Opponent    `json:"opponents"`
	Index     ResultIndex   `json:"index"`
	Triggered []MissingRun  `json:"triggered,omitempty"`
	SyncedAt  time.Time     `json:"syncedAt"`
}

type DashboardServiceImpl struct {
	sync      *SyncService
	backfill  *BackfillService
	directory Directory
	opts      Options
	logger    Logger

	// Guards against overlapping cycles: two concurrent cycles could both
	// observe a pair as missing and double-trigger it.
	running atomic.Bool

	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewDashboardServiceImpl(syncSvc *SyncService, backfill *BackfillService, directory Directory, opts Options, logger Logger) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		sync:      syncSvc,
		backfill:  backfill,
		directory: directory,
		opts:      opts,
		logger:    logger,
	}
}

// Refresh runs one sync-and-index cycle without scheduling anything.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) (*Snapshot, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrCycleInFlight
	}
	defer s.running.Store(false)

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.store(snap)
	return snap, nil
}

// RunMissing runs a full cycle, triggers every pair absent from the index,
// then syncs again so freshly scheduled runs show up as Pending.
func (s *DashboardServiceImpl) RunMissing(ctx context.Context) (*Snapshot, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrCycleInFlight
	}
	defer s.running.Store(false)

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	missing := FindMissing(snap.Roster.OurIDs, snap.Opponents, snap.Index)
	triggered, err := s.backfill.Trigger(ctx, missing)
	if err != nil {
		s.logger.Warn("some runs failed to start", "error", err.Error())
	}
	s.logger.Info("backfill pass finished", "missing", len(missing), "triggered", len(triggered))

	snap, err = s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	snap.Triggered = triggered
	s.store(snap)
	return snap, nil
}

// Current returns the snapshot of the last completed cycle, nil before the
// first one finishes.
func (s *DashboardServiceImpl) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *DashboardServiceImpl) ExcelReport(ctx context.Context) ([]byte, error) {
	snap := s.Current()
	if snap == nil {
		var err error
		if snap, err = s.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return BuildExcelReport(snap)
}

func (s *DashboardServiceImpl) buildSnapshot(ctx context.Context) (*Snapshot, error) {
	games, err := s.sync.Sync(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := s.directory.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	board, err := s.directory.Scoreboard(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Games:     games,
		Roster:    ResolveOurs(subs, s.opts.OurBranches, s.opts.SubmissionWindow),
		Opponents: ResolveOpponents(board, s.opts.TeamID, s.opts.OpponentCount),
		Index:     BuildResultIndex(games, s.opts.TeamID, s.opts.Policy),
		SyncedAt:  time.Now().UTC(),
	}, nil
}

func (s *DashboardServiceImpl) store(snap *Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}
