package models

import "github.com/google/uuid"

// Winner designators as the arena feed reports them. An empty winner means
// the game has not finished yet.
const (
	WinnerAttacker = "Attacker"
	WinnerDefender = "Defender"
	WinnerNobody   = "Nobody"
)

type Team struct {
	TeamID   uuid.UUID `json:"teamId"`
	TeamName string    `json:"teamName"`
}

type Player struct {
	SubmissionID int   `json:"submissionId"`
	Team         Team  `json:"team"`
	PlayerKey    int64 `json:"playerKey"`
}

// Game is a single non-rating run as reported by the arena feed. Records are
// immutable once observed; GameID is globally unique within the feed.
type Game struct {
	GameID   string `json:"gameId"`
	Attacker Player `json:"attacker"`
	Defender Player `json:"defender"`
	Winner   string `json:"winner,omitempty"`
}

func (g Game) Finished() bool {
	return g.Winner != ""
}

func (g Game) SelfPlay() bool {
	return g.Attacker.Team.TeamID == g.Defender.Team.TeamID
}

// GamePage is one page of the reverse-chronological feed. Next is the cursor
// for the page of games older than the ones returned here.
type GamePage struct {
	HasMore bool   `json:"hasMore"`
	Next    string `json:"next,omitempty"`
	Games   []Game `json:"games"`
}
