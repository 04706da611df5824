package grid

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/zeu5/gridworld/types"
)

// DefaultTransProb makes the environment deterministic
const DefaultTransProb = 1.0

// GridEnvironment is a finite grid MDP. Cells hold a reward or are blocked,
// blocked cells are not states. With a transition probability below one the
// remaining mass is spread over the other valid actions.
//
// The environment is immutable after construction and can be queried concurrently.
type GridEnvironment struct {
	height    int
	width     int
	cells     [][]Cell
	terminals map[Position]struct{}
	transProb float64
}

var _ types.MDP = &GridEnvironment{}

// NewGridEnvironment copies the cells and terminals.
// transProb must be in (0, 1].
func NewGridEnvironment(cells [][]Cell, terminals []Position, transProb float64) (*GridEnvironment, error) {
	if err := checkShape(len(cells), func(i int) int { return len(cells[i]) }); err != nil {
		return nil, err
	}
	if !(transProb > 0 && transProb <= 1) {
		return nil, errors.Wrapf(ErrConfiguration, "transition probability %v outside (0, 1]", transProb)
	}

	g := &GridEnvironment{
		height:    len(cells),
		width:     len(cells[0]),
		cells:     make([][]Cell, len(cells)),
		terminals: make(map[Position]struct{}, len(terminals)),
		transProb: transProb,
	}
	for i, row := range cells {
		g.cells[i] = make([]Cell, len(row))
		copy(g.cells[i], row)
		for j, c := range row {
			if r, ok := c.Reward(); ok && !finite(r) {
				return nil, errors.Wrapf(ErrConfiguration, "cell (%d, %d) has reward %v", i, j, r)
			}
		}
	}
	for _, t := range terminals {
		if !g.InBounds(t) {
			return nil, errors.Wrapf(ErrConfiguration, "terminal %s outside the grid", t)
		}
		if g.cells[t.Row][t.Col].IsBlocked() {
			return nil, errors.Wrapf(ErrConfiguration, "terminal %s is blocked", t)
		}
		g.terminals[t] = struct{}{}
	}
	return g, nil
}

// NewGridEnvironmentFromTokens parses the tokens with ParseGrid
func NewGridEnvironmentFromTokens(tokens [][]string, terminals []Position, transProb float64) (*GridEnvironment, error) {
	cells, err := ParseGrid(tokens)
	if err != nil {
		return nil, err
	}
	return NewGridEnvironment(cells, terminals, transProb)
}

func (g *GridEnvironment) Height() int {
	return g.height
}

func (g *GridEnvironment) Width() int {
	return g.width
}

func (g *GridEnvironment) TransProb() float64 {
	return g.transProb
}

func (g *GridEnvironment) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

func (g *GridEnvironment) Cell(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Row][p.Col], true
}

// Grid returns a copy of the cell table
func (g *GridEnvironment) Grid() [][]Cell {
	out := make([][]Cell, g.height)
	for i, row := range g.cells {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// String prints the cell tokens, one row per line
func (g *GridEnvironment) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		tokens := make([]string, len(row))
		for j, c := range row {
			tokens[j] = c.String()
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Terminals in row-major order
func (g *GridEnvironment) Terminals() []Position {
	out := make([]Position, 0, len(g.terminals))
	for t := range g.terminals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// open is true when the position is a state
func (g *GridEnvironment) open(p Position) bool {
	return g.InBounds(p) && !g.cells[p.Row][p.Col].IsBlocked()
}

func (g *GridEnvironment) state(s types.State) (Position, error) {
	p, err := toPosition(s)
	if err != nil {
		return p, err
	}
	if !g.InBounds(p) {
		return p, errors.Wrapf(ErrDomain, "state %s outside %dx%d grid", p, g.height, g.width)
	}
	if g.cells[p.Row][p.Col].IsBlocked() {
		return p, errors.Wrapf(ErrDomain, "state %s is blocked", p)
	}
	return p, nil
}

// States returns all the non-blocked positions in row-major order
func (g *GridEnvironment) States() []types.State {
	states := make([]types.State, 0, g.height*g.width)
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if !g.cells[i][j].IsBlocked() {
				states = append(states, Position{Row: i, Col: j})
			}
		}
	}
	return states
}

// Actions lists the directions whose neighbour is inside the grid and not blocked,
// in the order of AllDirections
func (g *GridEnvironment) Actions(s types.State) ([]types.ActionState, error) {
	p, err := g.state(s)
	if err != nil {
		return nil, err
	}
	return g.actions(p), nil
}

func (g *GridEnvironment) actions(p Position) []types.ActionState {
	res := make([]types.ActionState, 0, len(AllDirections))
	for _, d := range AllDirections {
		next := p.Move(d)
		if g.open(next) {
			res = append(res, types.ActionState{Action: d, Next: next})
		}
	}
	return res
}

// Reward of the cell at the state. Blocked cells yield 0.
func (g *GridEnvironment) Reward(s types.State) (float64, error) {
	p, err := toPosition(s)
	if err != nil {
		return 0, err
	}
	c, ok := g.Cell(p)
	if !ok {
		return 0, errors.Wrapf(ErrDomain, "state %s outside %dx%d grid", p, g.height, g.width)
	}
	r, _ := c.Reward()
	return r, nil
}

// Transitions returns the successor distribution of taking the action on the state.
//
// When deterministic, the intended neighbour is reached with probability 1, or the
// agent stays in place if that neighbour is outside the grid or blocked.
// Otherwise each valid action contributes one entry: the requested action gets
// the transition probability and the others share the rest equally. If the
// requested action is not valid the mass is uniform over the valid actions.
// Entries leading to the same state are not merged.
func (g *GridEnvironment) Transitions(s types.State, a types.Action) ([]types.Outcome, error) {
	p, err := g.state(s)
	if err != nil {
		return nil, err
	}
	d, err := toDirection(a)
	if err != nil {
		return nil, err
	}
	intended := p.Move(d)

	if g.transProb == 1 {
		if g.open(intended) {
			return []types.Outcome{{State: intended, Prob: 1}}, nil
		}
		return []types.Outcome{{State: p, Prob: 1}}, nil
	}

	valid := g.actions(p)
	res := make([]types.Outcome, 0, len(valid))
	if !g.open(intended) {
		prob := 1 / float64(len(valid))
		for _, as := range valid {
			res = append(res, types.Outcome{State: as.Next, Prob: prob})
		}
		return res, nil
	}

	if len(valid) == 1 {
		return nil, errors.Wrapf(ErrArithmetic, "state %s has a single valid action", p)
	}
	residual := (1 - g.transProb) / float64(len(valid)-1)
	for _, as := range valid {
		if as.Action == d {
			res = append(res, types.Outcome{State: as.Next, Prob: g.transProb})
		} else {
			res = append(res, types.Outcome{State: as.Next, Prob: residual})
		}
	}
	return res, nil
}

// IsTerminal is true iff the state is one of the terminals
func (g *GridEnvironment) IsTerminal(s types.State) bool {
	p, err := toPosition(s)
	if err != nil {
		return false
	}
	_, ok := g.terminals[p]
	return ok
}
