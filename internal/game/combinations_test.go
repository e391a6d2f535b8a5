package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinations_EveryLineForBothPlayers(t *testing.T) {
	for _, player := range []Player{x, o} {
		for i, c := range Combinations {
			t.Run(fmt.Sprintf("%s line %d", player, i), func(t *testing.T) {
				var b Board
				for _, pos := range c {
					b[pos.Row][pos.Col] = player
				}

				got, ok := FindWinningCombination(b, player)
				assert.True(t, ok)
				assert.Equal(t, c, got)
				assert.True(t, IsWinningCombination(b, c, player))

				other := o
				if player == o {
					other = x
				}
				_, ok = FindWinningCombination(b, other)
				assert.False(t, ok)
			})
		}
	}
}

func TestCombinations_DetectedThroughPlay(t *testing.T) {
	// For every line, let the second player complete it while the first
	// player scatters moves that never line up.
	for i, c := range Combinations {
		t.Run(fmt.Sprintf("line %d", i), func(t *testing.T) {
			g := New(x, o)
			inLine := map[Position]bool{c[0]: true, c[1]: true, c[2]: true}

			var fillers []Position
			for r := range [3]int{} {
				for col := range [3]int{} {
					p := Position{r, col}
					if !inLine[p] {
						fillers = append(fillers, p)
					}
				}
			}

			var res Result
			for step, target := range c {
				placed := false
				for j, f := range fillers {
					g.Board[f.Row][f.Col] = x
					_, xWins := FindWinningCombination(g.Board, x)
					g.Board[f.Row][f.Col] = Empty
					if xWins {
						continue
					}
					_, err := g.ApplyMove(x, f)
					assert.NoError(t, err)
					fillers = append(fillers[:j], fillers[j+1:]...)
					placed = true
					break
				}
				if !assert.True(t, placed, "no safe filler at step %d", step) {
					return
				}

				var err error
				res, err = g.ApplyMove(o, target)
				assert.NoError(t, err)
			}

			assert.Equal(t, Result{Outcome: Won, Winner: o}, res)
			assert.Equal(t, o, g.Winner)
		})
	}
}

func TestCheckWinningCombinations(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		player Player
		want   bool
	}{
		{
			name:   "No winner - empty board",
			board:  Board{},
			player: x,
			want:   false,
		},
		{
			name: "No winner - full board",
			board: Board{
				{x, o, o},
				{o, x, x},
				{o, x, o},
			},
			player: x,
			want:   false,
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				{x, o, o},
				{o, x, x},
				{o, o, x},
			},
			player: x,
			want:   true,
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				{x, x, o},
				{x, o, o},
				{o, x, x},
			},
			player: o,
			want:   true,
		},
		{
			name: "Winning line belongs to the opponent",
			board: Board{
				{o, o, o},
				{x, x, Empty},
				{x, Empty, Empty},
			},
			player: x,
			want:   false,
		},
		{
			name:   "Empty token never wins",
			board:  Board{},
			player: Empty,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := FindWinningCombination(tt.board, tt.player); got != tt.want {
				t.Errorf("FindWinningCombination() got = %v, want %v", got, tt.want)
			}
		})
	}
}
