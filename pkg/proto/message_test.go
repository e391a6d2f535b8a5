package proto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/tictactoe/internal/game"
)

func TestNewGameSnapshot_InProgress(t *testing.T) {
	g := game.New("X", "O")
	res, err := g.ApplyMove("X", game.Position{Row: 1, Col: 1})
	require.NoError(t, err)

	snap := NewGameSnapshot("s1", g, res)

	assert.Equal(t, "in_progress", snap.Outcome)
	assert.Equal(t, game.Player("O"), snap.Next)
	assert.Empty(t, snap.Winner)
	assert.Empty(t, snap.Reason)
	assert.Equal(t, game.Player("X"), snap.Board[1][1])
}

func TestNewGameSnapshot_WonJSON(t *testing.T) {
	g := game.New("X", "O")
	var res game.Result
	for _, m := range []struct {
		p   game.Player
		pos game.Position
	}{
		{"X", game.Position{Row: 0, Col: 0}},
		{"O", game.Position{Row: 1, Col: 0}},
		{"X", game.Position{Row: 0, Col: 1}},
		{"O", game.Position{Row: 1, Col: 1}},
		{"X", game.Position{Row: 0, Col: 2}},
	} {
		var err error
		res, err = g.ApplyMove(m.p, m.pos)
		require.NoError(t, err)
	}

	data, err := json.Marshal(NewGameSnapshot("", g, res))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"player1": "X",
		"player2": "O",
		"board": [["X","X","X"],["O","O",""],["","",""]],
		"winner": "X",
		"outcome": "won",
		"reason": "\"X\" wins!"
	}`, string(data))
}
