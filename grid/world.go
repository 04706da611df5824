package grid

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// World is the file description of a grid environment
type World struct {
	Grid      [][]string `yaml:"grid"`
	Terminals [][]int    `yaml:"terminals"`
	TransProb *float64   `yaml:"trans_prob,omitempty"`
	Start     []int      `yaml:"start,omitempty"`
}

// DefaultWorld is the classic 3x4 world with a wall in the middle
func DefaultWorld() *World {
	transProb := 0.8
	return &World{
		Grid: [][]string{
			{"0", "0", "0", "1"},
			{"0", "x", "0", "-1"},
			{"0", "0", "0", "0"},
		},
		Terminals: [][]int{{0, 3}, {1, 3}},
		TransProb: &transProb,
		Start:     []int{2, 0},
	}
}

func ParseWorld(bs []byte) (*World, error) {
	w := &World{}
	if err := yaml.Unmarshal(bs, w); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "decoding world: %s", err)
	}
	return w, nil
}

func LoadWorld(path string) (*World, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading world file")
	}
	return ParseWorld(bs)
}

func pair(v []int, what string) (Position, error) {
	if len(v) != 2 {
		return Position{}, errors.Wrapf(ErrConfiguration, "%s %v is not a [row, col] pair", what, v)
	}
	return Position{Row: v[0], Col: v[1]}, nil
}

func (w *World) Environment() (*GridEnvironment, error) {
	terminals := make([]Position, len(w.Terminals))
	for i, t := range w.Terminals {
		p, err := pair(t, "terminal")
		if err != nil {
			return nil, err
		}
		terminals[i] = p
	}
	transProb := DefaultTransProb
	if w.TransProb != nil {
		transProb = *w.TransProb
	}
	return NewGridEnvironmentFromTokens(w.Grid, terminals, transProb)
}

// StartPosition is the configured start or the first state of the environment
func (w *World) StartPosition(env *GridEnvironment) (Position, error) {
	if w.Start == nil {
		states := env.States()
		if len(states) == 0 {
			return Position{}, errors.Wrap(ErrConfiguration, "grid has no states")
		}
		return states[0].(Position), nil
	}
	p, err := pair(w.Start, "start")
	if err != nil {
		return p, err
	}
	if _, err := env.state(p); err != nil {
		return p, errors.Wrapf(ErrConfiguration, "start: %s", err)
	}
	return p, nil
}
