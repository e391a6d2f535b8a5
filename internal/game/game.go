package game

import (
	"fmt"
)

// Player is the opaque token a player places on the board.
// The empty token is reserved for unoccupied cells.
type Player string

// Outcome tells the caller what an accepted move did to the game.
type Outcome int

// Empty marks an unoccupied cell.
const Empty Player = ""

const (
	Continued Outcome = iota
	Won
	Drawn
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is returned for every accepted move.
type Result struct {
	Outcome Outcome
	// Winner is only set when Outcome is Won.
	Winner Player
}

// Terminal reports whether the move ended the game.
func (r Result) Terminal() bool {
	return r.Outcome == Won || r.Outcome == Drawn
}

func (r Result) String() string {
	switch r.Outcome {
	case Won:
		return fmt.Sprintf("%q wins!", string(r.Winner))
	case Drawn:
		return "Game is tied!"
	default:
		return "Move accepted."
	}
}

// Board is the 3x3 grid, indexed [row][col].
type Board [3][3]Player

// Game is a single tic-tac-toe match between two registered players.
// A Game is not safe for concurrent use; callers own the serialisation.
type Game struct {
	Player1 Player
	Player2 Player
	Board   Board
	Turn    Player
	Winner  Player
}

// New starts a game with an empty board where player1 moves first.
func New(player1, player2 Player) *Game {
	return &Game{
		Player1: player1,
		Player2: player2,
		Board:   Board{},
		Turn:    player1,
		Winner:  Empty,
	}
}

// ApplyMove validates and applies a move. Validation failures are returned as
// *MoveError and leave the game untouched.
func (g *Game) ApplyMove(player Player, pos Position) (Result, error) {
	if g.Over() {
		return Result{}, newMoveError(GameOver, Empty)
	}
	if err := pos.Validate(); err != nil {
		return Result{}, err
	}
	if g.Board[pos.Row][pos.Col] != Empty {
		return Result{}, newMoveError(PositionTaken, Empty)
	}
	if player != g.Turn {
		return Result{}, newMoveError(WrongTurn, g.Turn)
	}

	g.Board[pos.Row][pos.Col] = player

	if winner, ok := g.CheckWinner(); ok {
		g.Winner = winner
		return Result{Outcome: Won, Winner: winner}, nil
	}
	if BoardIsFull(g.Board) {
		return Result{Outcome: Drawn}, nil
	}

	g.Turn = g.opponent(player)
	return Result{Outcome: Continued}, nil
}

// CheckWinner scans the board for a completed line, checking Player1 before
// Player2. It does not read the cached Winner field.
func (g *Game) CheckWinner() (Player, bool) {
	for _, p := range [2]Player{g.Player1, g.Player2} {
		if _, ok := FindWinningCombination(g.Board, p); ok {
			return p, true
		}
	}
	return Empty, false
}

// NextTurn returns the player to move, or false once the game has ended.
func (g *Game) NextTurn() (Player, bool) {
	if g.Over() {
		return Empty, false
	}
	return g.Turn, true
}

// Over reports whether no further move can be applied.
func (g *Game) Over() bool {
	return g.Winner != Empty || BoardIsFull(g.Board)
}

// IsDraw checks if the game ended with a full board and no winner.
func (g *Game) IsDraw() bool {
	return g.Winner == Empty && BoardIsFull(g.Board)
}

// opponent derives the other player from the two registered identities.
func (g *Game) opponent(p Player) Player {
	if p == g.Player1 {
		return g.Player2
	}
	return g.Player1
}

// BoardIsFull reports whether every cell is occupied.
func BoardIsFull(b Board) bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Rows converts the board to a dynamic slice of slices.
func (b Board) Rows() [][]Player {
	rows := make([][]Player, 3)
	for i := range [3]int{} {
		rows[i] = make([]Player, 3)
		copy(rows[i], b[i][:])
	}
	return rows
}
