package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionValidate(t *testing.T) {
	for r := range [3]int{} {
		for c := range [3]int{} {
			assert.NoError(t, Position{r, c}.Validate())
		}
	}

	invalid := []Position{{2, 3}, {3, 2}, {3, 3}, {9, 9}, {-1, -1}, {0, -1}}
	for _, p := range invalid {
		assert.ErrorIs(t, p.Validate(), ErrOutOfRange, "position %v", p)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		raw     string
		want    Position
		wantErr bool
	}{
		{raw: "0,0", want: Position{0, 0}},
		{raw: "1 2", want: Position{1, 2}},
		{raw: "(2, 1)", want: Position{2, 1}},
		{raw: "9,8", want: Position{9, 8}},
		{raw: "-1,-1", want: Position{-1, -1}},
		{raw: "0,0,0", wantErr: true},
		{raw: "1", wantErr: true},
		{raw: "something", wantErr: true},
		{raw: "false", wantErr: true},
		{raw: "a,b", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePosition(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOutOfRange)
				assert.EqualError(t, err, "Position out of range.")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
