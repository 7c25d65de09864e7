package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name   string
		winner string
		mySide string
		want   Outcome
	}{
		{name: "pending", winner: "", mySide: WinnerAttacker, want: OutcomePending},
		{name: "win as attacker", winner: WinnerAttacker, mySide: WinnerAttacker, want: OutcomeWin},
		{name: "win as defender", winner: WinnerDefender, mySide: WinnerDefender, want: OutcomeWin},
		{name: "draw", winner: WinnerNobody, mySide: WinnerAttacker, want: OutcomeDraw},
		{name: "lose", winner: WinnerDefender, mySide: WinnerAttacker, want: OutcomeLose},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OutcomeOf(tc.winner, tc.mySide))
		})
	}
}

func TestOutcomeJSON(t *testing.T) {
	data, err := json.Marshal(OutcomeDraw)
	require.NoError(t, err)
	assert.Equal(t, `"Draw"`, string(data))

	var o Outcome
	require.NoError(t, json.Unmarshal([]byte(`"Lose"`), &o))
	assert.Equal(t, OutcomeLose, o)

	assert.Error(t, json.Unmarshal([]byte(`"Crashed"`), &o))
}
