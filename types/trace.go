package types

import "encoding/json"

// Trace of an episode as quadruplets (state, action, nextState, reward)
type Trace struct {
	states     []State
	actions    []Action
	nextStates []State
	rewards    []float64
}

func NewTrace() *Trace {
	return &Trace{
		states:     make([]State, 0),
		actions:    make([]Action, 0),
		nextStates: make([]State, 0),
		rewards:    make([]float64, 0),
	}
}

func (t *Trace) Append(step int, state State, action Action, nextState State, reward float64) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.nextStates = append(t.nextStates, nextState)
	t.rewards = append(t.rewards, reward)
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (State, Action, State, bool) {
	if i < 0 || i >= len(t.states) {
		return nil, nil, nil, false
	}
	return t.states[i], t.actions[i], t.nextStates[i], true
}

// Return is the undiscounted sum of the rewards in the trace
func (t *Trace) Return() float64 {
	sum := 0.0
	for _, r := range t.rewards {
		sum += r
	}
	return sum
}

func (t *Trace) Last() (State, Action, State, bool) {
	if len(t.states) < 1 {
		return nil, nil, nil, false
	}
	lastIndex := len(t.states) - 1
	return t.states[lastIndex], t.actions[lastIndex], t.nextStates[lastIndex], true
}

type traceStep struct {
	State     string  `json:"state"`
	Action    string  `json:"action"`
	NextState string  `json:"next_state"`
	Reward    float64 `json:"reward"`
}

// MarshalJSON encodes the trace as a list of hashed steps
func (t *Trace) MarshalJSON() ([]byte, error) {
	steps := make([]traceStep, len(t.states))
	for i := range t.states {
		steps[i] = traceStep{
			State:     t.states[i].Hash(),
			Action:    t.actions[i].Hash(),
			NextState: t.nextStates[i].Hash(),
			Reward:    t.rewards[i],
		}
	}
	return json.Marshal(steps)
}
