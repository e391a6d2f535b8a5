package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardString(t *testing.T) {
	g := New(x, o)
	g.Board = Board{
		{o, o, x},
		{o, x, x},
		{o, x, o},
	}

	expected := `
O  |  O  |  X
--------------
O  |  X  |  X
--------------
O  |  X  |  O
`
	assert.Equal(t, expected, g.String())
}

func TestBoardString_EmptyCells(t *testing.T) {
	b := Board{
		{x, Empty, Empty},
		{Empty, o, Empty},
		{Empty, Empty, Empty},
	}

	expected := "\nX  |  -  |  -\n--------------\n-  |  O  |  -\n--------------\n-  |  -  |  -\n"
	assert.Equal(t, expected, b.String())
}
