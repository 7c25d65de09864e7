package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingDashboard struct {
	mu   sync.Mutex
	runs int
	err  error
	done chan struct{}
}

func (d *countingDashboard) RunMissing(context.Context) (*Snapshot, error) {
	d.mu.Lock()
	d.runs++
	d.mu.Unlock()
	if d.done != nil {
		select {
		case d.done <- struct{}{}:
		default:
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	return &Snapshot{}, nil
}

func (d *countingDashboard) Refresh(context.Context) (*Snapshot, error) { return &Snapshot{}, nil }
func (d *countingDashboard) Current() *Snapshot                         { return nil }
func (d *countingDashboard) ExcelReport(context.Context) ([]byte, error) {
	return nil, nil
}

func (d *countingDashboard) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runs
}

func TestAutoRunSchedulerRunsImmediately(t *testing.T) {
	dashboard := &countingDashboard{done: make(chan struct{}, 1)}
	s := NewAutoRunScheduler(dashboard, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	select {
	case <-dashboard.done:
	case <-time.After(time.Second):
		t.Fatal("scheduler never ran the initial cycle")
	}
	s.Stop()
	assert.Equal(t, 1, dashboard.count())
}

func TestSchedulerSwallowsInFlightRejection(t *testing.T) {
	dashboard := &countingDashboard{err: ErrCycleInFlight}
	s := NewAutoRunScheduler(dashboard, time.Hour, nopLogger{})

	// A rejected tick is skipped silently, not treated as a failure.
	s.cycle(context.Background())
	assert.Equal(t, 1, dashboard.count())
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewAutoRunScheduler(&countingDashboard{}, time.Hour, nopLogger{})
	s.Stop()
	s.Stop()
}
