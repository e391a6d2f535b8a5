package game

// Combination is a line of three cells that wins the game when one player
// holds all of them.
type Combination [3]Position

// Combinations lists every winning line: rows, then columns, then diagonals.
var Combinations = [8]Combination{
	// Rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// Columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// Diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// IsWinningCombination reports whether player holds all three cells of c.
func IsWinningCombination(b Board, c Combination, player Player) bool {
	for _, pos := range c {
		if b[pos.Row][pos.Col] != player {
			return false
		}
	}
	return true
}

// FindWinningCombination returns the first line completed by player.
func FindWinningCombination(b Board, player Player) (Combination, bool) {
	if player == Empty {
		return Combination{}, false
	}
	for _, c := range Combinations {
		if IsWinningCombination(b, c, player) {
			return c, true
		}
	}
	return Combination{}, false
}
