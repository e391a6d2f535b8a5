package play

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks . MoveSource

import (
	"context"
	"io"
)

// MoveSource supplies raw moves one at a time. Next returns io.EOF when no
// moves are left.
type MoveSource interface {
	Next(ctx context.Context) (string, error)
}

// ArgsSource replays a fixed list of raw moves, e.g. command line arguments.
type ArgsSource struct {
	moves []string
	pos   int
}

// NewArgsSource creates a MoveSource over moves.
func NewArgsSource(moves []string) *ArgsSource {
	return &ArgsSource{moves: moves}
}

func (s *ArgsSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.moves) {
		return "", io.EOF
	}
	m := s.moves[s.pos]
	s.pos++
	return m, nil
}
