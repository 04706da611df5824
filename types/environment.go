package types

// State of the system that policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
}

// An Action that a policy can take
type Action interface {
	// Should be deterministic
	Hash() string
}

// ActionState pairs an action with the state it leads to
type ActionState struct {
	Action Action
	Next   State
}

// Outcome is one entry of a transition distribution
type Outcome struct {
	State State
	Prob  float64
}

// MDP is the query interface consumed by solvers and agents.
// Implementations are read-only after construction.
type MDP interface {
	// All states in a deterministic order
	States() []State
	// Actions available from the state with their intended successors
	Actions(State) ([]ActionState, error)
	// Reward collected on the state
	Reward(State) (float64, error)
	// Possible successors and their probabilities when taking the action.
	// The same state may appear more than once.
	Transitions(State, Action) ([]Outcome, error)
	IsTerminal(State) bool
}

// Environment is an episodic view used by the Agent
type Environment interface {
	// Reset called at the start of each episode
	Reset() (State, error)
	// Step returns the next state and the reward collected on it
	Step(Action) (State, float64, error)
	Actions(State) ([]Action, error)
	IsTerminal(State) bool
}
