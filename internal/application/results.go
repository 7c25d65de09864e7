package application

import (
	"fmt"

	"arenadash/internal/models"

	"github.com/google/uuid"
)

// IndexPolicy decides which record wins when several games exist for the
// same (our submission, opponent submission) pair in one role.
type IndexPolicy uint8

const (
	// PolicyLastProcessed keeps whichever game appears last in merged feed
	// order, matching the historical dashboard behavior.
	PolicyLastProcessed IndexPolicy = iota
	// PolicyMostRecent keeps the first game seen. The merged list is newest
	// first, so the first record for a pair is the most recent run.
	PolicyMostRecent
)

func ParseIndexPolicy(s string) (IndexPolicy, error) {
	switch s {
	case "", "last-processed":
		return PolicyLastProcessed, nil
	case "most-recent":
		return PolicyMostRecent, nil
	}
	return PolicyLastProcessed, fmt.Errorf("unknown index policy %q", s)
}

// ResultCell is one grid cell: the outcome plus our player key for that game,
// which the visualizer link is built from.
type ResultCell struct {
	Outcome   models.Outcome `json:"outcome"`
	PlayerKey int64          `json:"playerKey"`
}

// ResultTable maps our submission id to opponent submission id to the cell.
type ResultTable map[int]map[int]ResultCell

func (t ResultTable) Has(ourID, oppID int) bool {
	row, ok := t[ourID]
	if !ok {
		return false
	}
	_, ok = row[oppID]
	return ok
}

type ResultIndex struct {
	OpponentNames map[int]string `json:"opponentNames"`
	ByAttacker    ResultTable    `json:"byAttacker"`
	ByDefender    ResultTable    `json:"byDefender"`
}

// BuildResultIndex derives both role tables from the merged game list.
// Self-play games are skipped. The feed only ever returns games involving
// our team, so a game where the attacker is not us has us as the defender.
func BuildResultIndex(games []models.Game, selfTeamID uuid.UUID, policy IndexPolicy) ResultIndex {
	idx := ResultIndex{
		OpponentNames: make(map[int]string),
		ByAttacker:    make(ResultTable),
		ByDefender:    make(ResultTable),
	}

	for _, game := range games {
		if game.SelfPlay() {
			continue
		}

		var (
			ourSubID  int
			opp       models.Player
			mySide    string
			table     ResultTable
			playerKey int64
		)
		if game.Attacker.Team.TeamID == selfTeamID {
			ourSubID = game.Attacker.SubmissionID
			opp = game.Defender
			mySide = models.WinnerAttacker
			table = idx.ByAttacker
			playerKey = game.Attacker.PlayerKey
		} else {
			ourSubID = game.Defender.SubmissionID
			opp = game.Attacker
			mySide = models.WinnerDefender
			table = idx.ByDefender
			playerKey = game.Defender.PlayerKey
		}

		idx.OpponentNames[opp.SubmissionID] = opp.Team.TeamName

		if table[ourSubID] == nil {
			table[ourSubID] = make(map[int]ResultCell)
		}
		if _, exists := table[ourSubID][opp.SubmissionID]; exists && policy == PolicyMostRecent {
			continue
		}
		table[ourSubID][opp.SubmissionID] = ResultCell{
			Outcome:   models.OutcomeOf(game.Winner, mySide),
			PlayerKey: playerKey,
		}
	}

	return idx
}
