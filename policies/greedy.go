package policies

import (
	"github.com/pkg/errors"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/types"
	"gonum.org/v1/gonum/floats"
)

// ErrNoAction is returned for states without any available action
var ErrNoAction = errors.New("no action available")

// Greedy picks the action with the highest expected immediate reward,
// looking one transition ahead in the MDP. Nothing is learned.
type Greedy struct {
	mdp types.MDP
}

var _ types.Policy = &Greedy{}

func NewGreedy(mdp types.MDP) *Greedy {
	return &Greedy{mdp: mdp}
}

// Q is the expected reward of the state reached by taking the action
func (g *Greedy) Q(state types.State, action types.Action) (float64, error) {
	outcomes, err := g.mdp.Transitions(state, action)
	if err != nil {
		return 0, err
	}
	probs := make([]float64, len(outcomes))
	rewards := make([]float64, len(outcomes))
	for i, o := range outcomes {
		r, err := g.mdp.Reward(o.State)
		if err != nil {
			return 0, err
		}
		probs[i] = o.Prob
		rewards[i] = r
	}
	return floats.Dot(probs, rewards), nil
}

// best returns the first action reaching the maximum Q value
func (g *Greedy) best(state types.State, actions []types.Action) (types.Action, float64, error) {
	if len(actions) == 0 {
		return nil, 0, errors.Wrapf(ErrNoAction, "state %s", state.Hash())
	}
	if len(actions) == 1 {
		q, err := g.Q(state, actions[0])
		if errors.Is(err, grid.ErrArithmetic) {
			// the only move keeps the agent in place, the state is absorbing
			q, err = g.mdp.Reward(state)
		}
		if err != nil {
			return nil, 0, err
		}
		return actions[0], q, nil
	}
	var bestAction types.Action
	bestVal := 0.0
	for i, a := range actions {
		q, err := g.Q(state, a)
		if err != nil {
			return nil, 0, err
		}
		if i == 0 || q > bestVal {
			bestAction = a
			bestVal = q
		}
	}
	return bestAction, bestVal, nil
}

func (g *Greedy) available(state types.State) ([]types.Action, error) {
	pairs, err := g.mdp.Actions(state)
	if err != nil {
		return nil, err
	}
	actions := make([]types.Action, len(pairs))
	for i, p := range pairs {
		actions[i] = p.Action
	}
	return actions, nil
}

// Value is the best expected immediate reward. It is 0 for terminal states and for
// states outside the state space, use Action to get the error of an invalid state.
func (g *Greedy) Value(state types.State) float64 {
	if g.mdp.IsTerminal(state) {
		return 0
	}
	actions, err := g.available(state)
	if err != nil {
		return 0
	}
	_, v, err := g.best(state, actions)
	if err != nil {
		return 0
	}
	return v
}

func (g *Greedy) Action(state types.State) (types.Action, error) {
	actions, err := g.available(state)
	if err != nil {
		return nil, err
	}
	a, _, err := g.best(state, actions)
	return a, err
}

func (g *Greedy) NextAction(_ int, state types.State, actions []types.Action) (types.Action, bool) {
	a, _, err := g.best(state, actions)
	if err != nil {
		return nil, false
	}
	return a, true
}

func (g *Greedy) UpdateIteration(_ int, _ *types.Trace) {}

func (g *Greedy) Update(_ int, _ types.State, _ types.Action, _ types.State) {}

func (g *Greedy) Reset() {}
