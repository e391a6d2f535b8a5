package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/game"
)

const instrumentationName = "ctchen222/tictactoe/play"

var tracer = otel.Tracer(instrumentationName)

// Session drives a single game from raw textual moves, logging and recording
// every attempt. Like game.Game it is not safe for concurrent use.
type Session struct {
	ID     string
	Game   *game.Game
	logger *slog.Logger

	moves      metric.Int64Counter
	rejections metric.Int64Counter
	outcomes   metric.Int64Counter
}

// NewSession wraps g. A nil logger falls back to slog.Default.
func NewSession(g *game.Game, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()

	meter := otel.Meter(instrumentationName)
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Accepted moves"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	rejections, err := meter.Int64Counter("tictactoe.moves.rejected",
		metric.WithDescription("Rejected moves by reason"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rejections counter: %w", err)
	}
	outcomes, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Finished games by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create outcomes counter: %w", err)
	}

	return &Session{
		ID:         id,
		Game:       g,
		logger:     logger.With("session.id", id),
		moves:      moves,
		rejections: rejections,
		outcomes:   outcomes,
	}, nil
}

// ParseMove splits "player:row,col" into its parts. Without a "player:"
// prefix the returned player is game.Empty, meaning whoever holds the turn.
func ParseMove(raw string) (game.Player, string) {
	player, pos, found := strings.Cut(raw, ":")
	if !found {
		return game.Empty, strings.TrimSpace(raw)
	}
	return game.Player(strings.TrimSpace(player)), strings.TrimSpace(pos)
}

// Play applies one raw move. A finished game reports GameOver even when the
// input cannot be parsed.
func (s *Session) Play(ctx context.Context, raw string) (game.Result, error) {
	ctx, span := tracer.Start(ctx, "session.Play", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("move.raw", raw),
	))
	defer span.End()

	player, rawPos := ParseMove(raw)
	if player == game.Empty {
		player = s.Game.Turn
	}

	pos, err := game.ParsePosition(rawPos)
	if err == nil || s.Game.Over() {
		var res game.Result
		res, err = s.Game.ApplyMove(player, pos)
		if err == nil {
			s.accepted(ctx, span, player, pos, res)
			return res, nil
		}
	}

	s.rejected(ctx, span, player, raw, err)
	return game.Result{}, err
}

// Run plays moves from src until the game ends, the source is exhausted or
// ctx is done. Rejected moves are logged and skipped. The returned Result is
// the last accepted one; callers check Terminal to see whether the game ended.
func (s *Session) Run(ctx context.Context, src MoveSource) (game.Result, error) {
	var last game.Result
	for !s.Game.Over() {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		raw, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.InfoContext(ctx, "move source exhausted", "over", s.Game.Over())
			return last, nil
		}
		if err != nil {
			return last, fmt.Errorf("failed to read next move: %w", err)
		}

		res, err := s.Play(ctx, raw)
		if err != nil {
			continue
		}
		last = res
	}
	return last, nil
}

func (s *Session) accepted(ctx context.Context, span trace.Span, player game.Player, pos game.Position, res game.Result) {
	span.SetAttributes(
		attribute.String("move.player", string(player)),
		attribute.Int("move.row", pos.Row),
		attribute.Int("move.col", pos.Col),
		attribute.String("move.outcome", res.Outcome.String()),
	)
	s.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("player", string(player))))

	s.logger.DebugContext(ctx, "move applied",
		"player", string(player),
		"position", pos.String(),
		"outcome", res.Outcome.String(),
	)

	if !res.Terminal() {
		return
	}
	s.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", res.Outcome.String())))
	s.logger.InfoContext(ctx, "game finished",
		"outcome", res.Outcome.String(),
		"winner", string(res.Winner),
		"result", res.String(),
	)
}

func (s *Session) rejected(ctx context.Context, span trace.Span, player game.Player, raw string, err error) {
	reason := "unknown"
	var moveErr *game.MoveError
	if errors.As(err, &moveErr) {
		reason = moveErr.Kind.String()
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))

	s.logger.WarnContext(ctx, "move rejected",
		"player", string(player),
		"move", raw,
		"reason", reason,
		"error", err,
	)
}
