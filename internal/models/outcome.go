package models

import "fmt"

// Outcome is a game result seen from our side.
type Outcome uint8

const (
	OutcomePending Outcome = iota
	OutcomeWin
	OutcomeDraw
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomeWin:
		return "Win"
	case OutcomeDraw:
		return "Draw"
	case OutcomeLose:
		return "Lose"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Pending"`:
		*o = OutcomePending
	case `"Win"`:
		*o = OutcomeWin
	case `"Draw"`:
		*o = OutcomeDraw
	case `"Lose"`:
		*o = OutcomeLose
	default:
		return fmt.Errorf("unknown outcome %s", data)
	}
	return nil
}

// OutcomeOf maps a finished or pending game's winner designator to the
// outcome for the side named by mySide (WinnerAttacker or WinnerDefender).
func OutcomeOf(winner, mySide string) Outcome {
	switch winner {
	case "":
		return OutcomePending
	case mySide:
		return OutcomeWin
	case WinnerNobody:
		return OutcomeDraw
	default:
		return OutcomeLose
	}
}

// Role distinguishes the two result tables kept for our submissions.
type Role uint8

const (
	RoleAttacker Role = iota
	RoleDefender
)

func (r Role) String() string {
	if r == RoleAttacker {
		return "attacker"
	}
	return "defender"
}

func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}
