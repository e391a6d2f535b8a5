package proto

import "ctchen222/tictactoe/internal/game"

// GameSnapshot is the JSON view of a game printed by the command line.
type GameSnapshot struct {
	SessionID string          `json:"sessionId,omitempty"`
	Player1   game.Player     `json:"player1"`
	Player2   game.Player     `json:"player2"`
	Board     [][]game.Player `json:"board"`
	Next      game.Player     `json:"next,omitempty"`
	Winner    game.Player     `json:"winner,omitempty"`
	Outcome   string          `json:"outcome"`
	Reason    string          `json:"reason,omitempty"`
}

// NewGameSnapshot captures g. res is the last accepted move result.
func NewGameSnapshot(sessionID string, g *game.Game, res game.Result) GameSnapshot {
	next, _ := g.NextTurn()

	outcome := "in_progress"
	switch {
	case g.Winner != game.Empty:
		outcome = game.Won.String()
	case g.IsDraw():
		outcome = game.Drawn.String()
	}

	snap := GameSnapshot{
		SessionID: sessionID,
		Player1:   g.Player1,
		Player2:   g.Player2,
		Board:     g.Board.Rows(),
		Next:      next,
		Winner:    g.Winner,
		Outcome:   outcome,
	}
	if res.Terminal() {
		snap.Reason = res.String()
	}
	return snap
}
