package game

import (
	"strings"
)

const (
	cellSeparator = "  |  "
	rowSeparator  = "--------------"
	emptyMarker   = "-"
)

// String renders the board as text, surrounded by blank lines.
func (b Board) String() string {
	lines := make([]string, 0, 7)
	lines = append(lines, "")
	for r := range [3]int{} {
		if r > 0 {
			lines = append(lines, rowSeparator)
		}
		cells := make([]string, 3)
		for c := range [3]int{} {
			cells[c] = marker(b[r][c])
		}
		lines = append(lines, strings.Join(cells, cellSeparator))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// String renders the game board.
func (g *Game) String() string {
	return g.Board.String()
}

func marker(p Player) string {
	if p == Empty {
		return emptyMarker
	}
	return string(p)
}
