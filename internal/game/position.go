package game

import (
	"fmt"
	"strconv"
	"strings"

	"ctchen222/tictactoe/internal/validator"
)

// Position addresses a board cell. Values outside the board are representable
// and rejected by Validate.
type Position struct {
	Row int `json:"row" validate:"gte=0,lte=2"`
	Col int `json:"col" validate:"gte=0,lte=2"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Validate returns ErrOutOfRange unless both axes are within the board.
func (p Position) Validate() error {
	if err := validator.GetValidator().Struct(p); err != nil {
		return newMoveError(OutOfRange, Empty)
	}
	return nil
}

// ParsePosition decomposes input such as "1,2", "1 2" or "(1, 2)" into a
// Position. Anything that is not exactly two integers is OutOfRange. The
// range itself is left to Validate.
func ParsePosition(raw string) (Position, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '(' || r == ')'
	})
	if len(parts) != 2 {
		return Position{}, newMoveError(OutOfRange, Empty)
	}

	var axes [2]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Position{}, newMoveError(OutOfRange, Empty)
		}
		axes[i] = n
	}
	return Position{Row: axes[0], Col: axes[1]}, nil
}
