package types

import "github.com/pkg/errors"

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// RL Agent configured with the corresponding
// policy and environment
type Agent struct {
	config *AgentConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment Environment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, 0, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.RunEpisode(i)
		if err != nil {
			return errors.Wrapf(err, "episode %d", i)
		}
		a.traces = append(a.traces, trace)
	}
	return nil
}

func (a *Agent) Traces() []*Trace {
	return a.traces
}

// RunEpisode runs a single episode and returns the resulting trace.
// The episode ends at the horizon, on a terminal state or when no action is available.
func (a *Agent) RunEpisode(episode int) (*Trace, error) {
	trace := NewTrace()
	state, err := a.environment.Reset()
	if err != nil {
		return trace, err
	}

	for i := 0; i < a.config.Horizon; i++ {
		if a.environment.IsTerminal(state) {
			break
		}
		actions, err := a.environment.Actions(state)
		if err != nil {
			return trace, err
		}
		if len(actions) == 0 {
			break
		}
		nextAction, ok := a.policy.NextAction(i, state, actions)
		if !ok {
			break
		}
		nextState, reward, err := a.environment.Step(nextAction)
		if err != nil {
			return trace, err
		}
		a.policy.Update(i, state, nextAction, nextState)

		trace.Append(i, state, nextAction, nextState, reward)
		state = nextState
	}
	a.policy.UpdateIteration(episode, trace)

	return trace, nil
}
