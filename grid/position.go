package grid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/zeu5/gridworld/types"
)

// Position (row, col) in the grid, the states of the environment
type Position struct {
	Row int
	Col int
}

var _ types.State = Position{}

func (p Position) Hash() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func (p Position) String() string {
	return p.Hash()
}

func (p Position) Move(d Direction) Position {
	delta := d.Delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

type Direction int

const (
	Right Direction = iota
	Left
	Down
	Up
	Stay
)

var _ types.Action = Right

// AllDirections in the order actions are enumerated
var AllDirections = []Direction{Right, Left, Down, Up, Stay}

var directionNames = []string{"right", "left", "down", "up", "stay"}

var directionDeltas = []Position{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{0, 0},
}

func (d Direction) valid() bool {
	return d >= Right && d <= Stay
}

func (d Direction) Hash() string {
	return d.String()
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Glyph is the single letter used when printing policies
func (d Direction) Glyph() string {
	if !d.valid() {
		return "?"
	}
	return directionNames[d][:1]
}

func (d Direction) Delta() Position {
	if !d.valid() {
		return Position{}
	}
	return directionDeltas[d]
}

// ParseDirection accepts the name or the glyph of a direction
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDirections {
		if s == d.String() || s == d.Glyph() {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrDomain, "unknown direction %q", s)
}

func toPosition(s types.State) (Position, error) {
	switch p := s.(type) {
	case Position:
		return p, nil
	case *Position:
		if p != nil {
			return *p, nil
		}
	}
	return Position{}, errors.Wrapf(ErrDomain, "state %v is not a grid position", s)
}

func toDirection(a types.Action) (Direction, error) {
	d, ok := a.(Direction)
	if !ok || !d.valid() {
		return 0, errors.Wrapf(ErrDomain, "action %v is not a direction", a)
	}
	return d, nil
}
