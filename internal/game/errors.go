package game

import (
	"fmt"
)

// ErrorKind classifies why a move was rejected.
type ErrorKind int

const (
	GameOver ErrorKind = iota + 1
	OutOfRange
	PositionTaken
	WrongTurn
)

func (k ErrorKind) String() string {
	switch k {
	case GameOver:
		return "game_over"
	case OutOfRange:
		return "out_of_range"
	case PositionTaken:
		return "position_taken"
	case WrongTurn:
		return "wrong_turn"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MoveError is returned by ApplyMove when a move is rejected.
type MoveError struct {
	Kind ErrorKind
	// Expected is the player holding the turn, set for WrongTurn.
	Expected Player
}

// Sentinels for errors.Is. A *MoveError matches the sentinel of the same Kind.
var (
	ErrGameOver      = &MoveError{Kind: GameOver}
	ErrOutOfRange    = &MoveError{Kind: OutOfRange}
	ErrPositionTaken = &MoveError{Kind: PositionTaken}
	ErrWrongTurn     = &MoveError{Kind: WrongTurn}
)

func newMoveError(kind ErrorKind, expected Player) *MoveError {
	return &MoveError{Kind: kind, Expected: expected}
}

func (e *MoveError) Error() string {
	switch e.Kind {
	case GameOver:
		return "Game is over."
	case OutOfRange:
		return "Position out of range."
	case PositionTaken:
		return "Position already taken."
	case WrongTurn:
		return fmt.Sprintf("%q moves next.", string(e.Expected))
	default:
		return "invalid move"
	}
}

// Is matches any *MoveError of the same Kind.
func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
