package types

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrEmptyDistribution is returned when a transition has no outcome with positive mass
var ErrEmptyDistribution = errors.New("transition distribution is empty")

// MDPEnvironment samples episodes from an MDP starting at a fixed state.
// Unlike the MDP it wraps, it keeps the current position and is not safe for concurrent use.
type MDPEnvironment struct {
	mdp   MDP
	start State
	cur   State
	src   rand.Source
}

var _ Environment = &MDPEnvironment{}

func NewMDPEnvironment(mdp MDP, start State, src rand.Source) *MDPEnvironment {
	return &MDPEnvironment{
		mdp:   mdp,
		start: start,
		cur:   start,
		src:   src,
	}
}

func (m *MDPEnvironment) Reset() (State, error) {
	if _, err := m.mdp.Actions(m.start); err != nil {
		return nil, errors.Wrap(err, "invalid start state")
	}
	m.cur = m.start
	return m.cur, nil
}

func (m *MDPEnvironment) Current() State {
	return m.cur
}

func (m *MDPEnvironment) Step(a Action) (State, float64, error) {
	outcomes, err := m.mdp.Transitions(m.cur, a)
	if err != nil {
		return nil, 0, err
	}
	weights := make([]float64, len(outcomes))
	for i, o := range outcomes {
		weights[i] = o.Prob
	}
	i, ok := sampleuv.NewWeighted(weights, m.src).Take()
	if !ok {
		return nil, 0, errors.Wrapf(ErrEmptyDistribution, "state %s action %s", m.cur.Hash(), a.Hash())
	}
	next := outcomes[i].State
	reward, err := m.mdp.Reward(next)
	if err != nil {
		return nil, 0, err
	}
	m.cur = next
	return next, reward, nil
}

func (m *MDPEnvironment) Actions(s State) ([]Action, error) {
	pairs, err := m.mdp.Actions(s)
	if err != nil {
		return nil, err
	}
	actions := make([]Action, len(pairs))
	for i, p := range pairs {
		actions[i] = p.Action
	}
	return actions, nil
}

func (m *MDPEnvironment) IsTerminal(s State) bool {
	return m.mdp.IsTerminal(s)
}
