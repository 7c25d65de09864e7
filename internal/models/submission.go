package models

// Build status reported by the submissions listing.
const StatusSucceeded = "Succeeded"

type Submission struct {
	SubmissionID  int    `json:"submissionId"`
	BranchName    string `json:"branchName,omitempty"`
	Status        string `json:"status"`
	CommitHash    string `json:"commitHash"`
	CommitMessage string `json:"commitMessage"`
	Active        bool   `json:"active"`
}

type Scoreboard struct {
	Teams []TeamScore `json:"teams"`
}

// TeamScore holds one team's total score plus its per-round tournament
// entries, keyed by the round number rendered as a string.
type TeamScore struct {
	Team        Team                  `json:"team"`
	Score       float64               `json:"score"`
	Tournaments map[string]Tournament `json:"tournaments"`
}

type Tournament struct {
	Submission TournamentSubmission `json:"submission"`
	Score      float64              `json:"score"`
}

type TournamentSubmission struct {
	SubmissionID int `json:"submissionId"`
}
