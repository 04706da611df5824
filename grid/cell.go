package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BlockedToken marks an impassable cell in textual grids
const BlockedToken = "x"

// Cell is either a reward cell or a blocked cell
type Cell struct {
	reward  float64
	blocked bool
}

// Blocked is the impassable cell
var Blocked = Cell{blocked: true}

func RewardCell(v float64) Cell {
	return Cell{reward: v}
}

func (c Cell) IsBlocked() bool {
	return c.blocked
}

// Reward of the cell, false if the cell is blocked
func (c Cell) Reward() (float64, bool) {
	if c.blocked {
		return 0, false
	}
	return c.reward, true
}

func (c Cell) String() string {
	if c.blocked {
		return BlockedToken
	}
	return strconv.FormatFloat(c.reward, 'g', -1, 64)
}

func ParseCell(token string) (Cell, error) {
	token = strings.TrimSpace(token)
	if token == BlockedToken {
		return Blocked, nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Cell{}, errors.Wrapf(ErrConfiguration, "cell %q is neither a reward nor %q", token, BlockedToken)
	}
	if !finite(v) {
		return Cell{}, errors.Wrapf(ErrConfiguration, "cell %q is not a finite reward", token)
	}
	return RewardCell(v), nil
}

// ParseGrid converts a table of tokens into cells. The table must be non-empty and rectangular.
func ParseGrid(tokens [][]string) ([][]Cell, error) {
	if err := checkShape(len(tokens), func(i int) int { return len(tokens[i]) }); err != nil {
		return nil, err
	}
	cells := make([][]Cell, len(tokens))
	for i, row := range tokens {
		cells[i] = make([]Cell, len(row))
		for j, token := range row {
			c, err := ParseCell(token)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d col %d", i, j)
			}
			cells[i][j] = c
		}
	}
	return cells, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkShape(rows int, rowLen func(int) int) error {
	if rows == 0 {
		return errors.Wrap(ErrConfiguration, "grid has no rows")
	}
	width := rowLen(0)
	if width == 0 {
		return errors.Wrap(ErrConfiguration, "grid has no columns")
	}
	for i := 1; i < rows; i++ {
		if rowLen(i) != width {
			return errors.Wrapf(ErrConfiguration, "row %d has %d cells, expected %d", i, rowLen(i), width)
		}
	}
	return nil
}
