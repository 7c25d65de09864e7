package application

import (
	"context"
	"errors"

	"arenadash/internal/models"
)

// MissingRun is a run that has never happened: one (our submission,
// opponent submission) pair in one role. Role is our side in the run.
type MissingRun struct {
	AttackerID int         `json:"attackerId"`
	DefenderID int         `json:"defenderId"`
	Role       models.Role `json:"role"`
}

// FindMissing diffs every required pair against the index and returns the
// pairs absent from it. A pair with any recorded outcome, Pending included,
// is never reported.
func FindMissing(ourIDs []int, opponents []Opponent, idx ResultIndex) []MissingRun {
	var missing []MissingRun
	for _, ourID := range ourIDs {
		for _, opp := range opponents {
			if !idx.ByAttacker.Has(ourID, opp.SubmissionID) {
				missing = append(missing, MissingRun{
					AttackerID: ourID,
					DefenderID: opp.SubmissionID,
					Role:       models.RoleAttacker,
				})
			}
			if !idx.ByDefender.Has(ourID, opp.SubmissionID) {
				missing = append(missing, MissingRun{
					AttackerID: opp.SubmissionID,
					DefenderID: ourID,
					Role:       models.RoleDefender,
				})
			}
		}
	}
	return missing
}

// BackfillService fires the trigger call once per missing pair. Each pair is
// attempted independently; failures are collected and returned joined so a
// crashed trigger never blocks the remaining pairs.
type BackfillService struct {
	starter RunStarter
	logger  Logger
}

func NewBackfillService(starter RunStarter, logger Logger) *BackfillService {
	return &BackfillService{starter: starter, logger: logger}
}

func (s *BackfillService) Trigger(ctx context.Context, missing []MissingRun) ([]MissingRun, error) {
	triggered := make([]MissingRun, 0, len(missing))
	var errs []error
	for _, run := range missing {
		if err := s.starter.StartNonRating(ctx, run.AttackerID, run.DefenderID); err != nil {
			s.logger.Warn("failed to start run",
				"attacker", run.AttackerID, "defender", run.DefenderID, "error", err.Error())
			errs = append(errs, err)
			continue
		}
		triggered = append(triggered, run)
	}
	return triggered, errors.Join(errs...)
}
