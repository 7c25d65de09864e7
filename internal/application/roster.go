package application

import (
	"sort"
	"strconv"
	"strings"

	"arenadash/internal/models"

	"github.com/google/uuid"
)

// Roster is the working set of our own submissions plus the metadata the
// grid header renders (branch, commit, commit message, active flag).
type Roster struct {
	// OurIDs keeps submissions listing order, with the active submission
	// prepended when the allow-list rule alone would have dropped it.
	OurIDs      []int          `json:"ourIds"`
	BranchByID  map[int]string `json:"branchById"`
	CommitByID  map[int]string `json:"commitById"`
	MessageByID map[int]string `json:"messageById"`
	ActiveID    int            `json:"activeId"`
}

type Opponent struct {
	TeamName     string `json:"teamName"`
	SubmissionID int    `json:"submissionId"`
}

// ResolveOurs filters the submissions listing down to our live variants.
// A submission qualifies when its branch is on the allow-list, its build
// succeeded, and it is either within the first window entries or currently
// active. The active submission is always part of the working set even when
// it fails the allow-list rule, so a mid-rollout variant is never invisible.
func ResolveOurs(subs []models.Submission, branches []string, window int) Roster {
	allowed := make(map[string]struct{}, len(branches))
	for _, b := range branches {
		if b = strings.TrimSpace(b); b != "" {
			allowed[b] = struct{}{}
		}
	}

	r := Roster{
		BranchByID:  make(map[int]string),
		CommitByID:  make(map[int]string),
		MessageByID: make(map[int]string),
	}
	for i, sub := range subs {
		r.CommitByID[sub.SubmissionID] = sub.CommitHash
		r.MessageByID[sub.SubmissionID] = sub.CommitMessage
		if sub.Active {
			r.ActiveID = sub.SubmissionID
		}
		if sub.BranchName == "" {
			continue
		}
		if sub.Status != models.StatusSucceeded {
			continue
		}
		r.BranchByID[sub.SubmissionID] = sub.BranchName
		if _, ok := allowed[sub.BranchName]; ok && (i < window || sub.Active) {
			r.OurIDs = append(r.OurIDs, sub.SubmissionID)
		}
	}

	if r.ActiveID != 0 && !containsID(r.OurIDs, r.ActiveID) {
		r.OurIDs = append([]int{r.ActiveID}, r.OurIDs...)
	}
	return r
}

// ResolveOpponents ranks every other team by total score and returns the top
// topN, each represented by the submission of its highest-numbered round.
func ResolveOpponents(board *models.Scoreboard, selfTeamID uuid.UUID, topN int) []Opponent {
	type ranked struct {
		score float64
		name  string
		subID int
	}

	entries := make([]ranked, 0, len(board.Teams))
	for _, team := range board.Teams {
		if team.Team.TeamID == selfTeamID {
			continue
		}
		latest := -1
		for key := range team.Tournaments {
			round, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			if round > latest {
				latest = round
			}
		}
		if latest < 0 {
			continue
		}
		entries = append(entries, ranked{
			score: team.Score,
			name:  team.Team.TeamName,
			subID: team.Tournaments[strconv.Itoa(latest)].Submission.SubmissionID,
		})
	}

	// Stable sort: equal scores keep scoreboard order.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })
	if topN < len(entries) {
		entries = entries[:topN]
	}

	opponents := make([]Opponent, 0, len(entries))
	for _, e := range entries {
		opponents = append(opponents, Opponent{TeamName: e.name, SubmissionID: e.subID})
	}
	return opponents
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
