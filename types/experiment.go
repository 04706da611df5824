package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/pkg/errors"
	"github.com/zeu5/gridworld/util"
)

type experimentRunConfig struct {
	// execution configuration
	CurrentRun int
	Episodes   int
	Horizon    int
	Analyzers  []Analyzer
	Context    context.Context

	// threshold to abort the experiment
	ConsecutiveErrorsAbort int

	RecordTraces   bool
	ReportSavePath string

	//misc
	LongestExpNameLen int
}

// Experiment encapsulates the different parameters to configure an agent and analyze the traces
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
	}
}

func (e *Experiment) recordTrace(rConfig *experimentRunConfig, trace *Trace) error {
	tracesFile := path.Join(rConfig.ReportSavePath, "traces", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".jsonl")
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	return util.AppendToFile(tracesFile, string(bs))
}

// Run the experiment for the specified number of episodes
// Each trace is handed to all the analyzers
func (e *Experiment) Run(rConfig *experimentRunConfig) error {
	agent := NewAgent(&AgentConfig{
		Episodes:    rConfig.Episodes,
		Horizon:     rConfig.Horizon,
		Policy:      e.policy,
		Environment: e.environment,
	})

	totalWithError := 0
	consecutiveErrors := 0
	totalTerminal := 0 // episodes that ended on a terminal state
	returns := 0.0

	EPPadding := len(strconv.Itoa(rConfig.Episodes))
	NamePadding := rConfig.LongestExpNameLen

	for episode := 0; episode < rConfig.Episodes; episode++ {
		select {
		case <-rConfig.Context.Done():
			fmt.Println("")
			return rConfig.Context.Err()
		default:
		}

		trace, err := agent.RunEpisode(episode)
		if err != nil {
			totalWithError += 1
			consecutiveErrors += 1
			if consecutiveErrors >= rConfig.ConsecutiveErrorsAbort {
				fmt.Printf("\n Aborting experiment %s : %d consecutive errors\n", e.Name, consecutiveErrors)
				return errors.Wrapf(err, "experiment %s", e.Name)
			}
		} else {
			consecutiveErrors = 0
		}

		if _, _, last, ok := trace.Last(); ok && e.environment.IsTerminal(last) {
			totalTerminal += 1
		}
		returns += trace.Return()

		if rConfig.RecordTraces {
			if err := e.recordTrace(rConfig, trace); err != nil {
				return errors.Wrap(err, "recording trace")
			}
		}

		for _, a := range rConfig.Analyzers {
			a.Analyze(rConfig.CurrentRun, episode, e.Name, trace)
		}

		// terminal execution display
		fmt.Printf("\rExp:%*s, Eps:%*d/%d, Err:%*d, Terminal:%*d, AvgReturn:%8.3f",
			NamePadding, e.Name, EPPadding, episode+1, rConfig.Episodes, EPPadding, totalWithError,
			EPPadding, totalTerminal, returns/float64(episode+1))
	}
	fmt.Println("")
	return nil
}

// Reset cleans the information learned by the policy
func (e *Experiment) Reset() {
	e.policy.Reset()
}

// Generic Dataset that contains information after processing the traces
type DataSet interface{}

// Analyzer compresses the information in the traces to a DataSet
type Analyzer interface {
	// Run, episode, experiment, trace
	Analyze(int, int, string, *Trace)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer
	Reset()
}

// Comparator differentiates between different datasets with associated names
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet) error

func NoopComparator() Comparator {
	return func(_ int, _ []string, _ []DataSet) error { return nil }
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Runs     int // number of runs
	Episodes int // number of episodes
	Horizon  int // number of steps

	RecordPath   string // path to store the results
	RecordTraces bool

	// threshold to abort an experiment
	ConsecutiveErrorsAbort int
}

// record the configuration of the comparison
func (c *Comparison) recordConfig() error {
	cfg := c.cConfig

	out := make(map[string]interface{})
	out["runs"] = cfg.Runs
	out["episodes"] = cfg.Episodes
	out["horizon"] = cfg.Horizon
	out["record_traces"] = cfg.RecordTraces

	experiments := make([]string, 0)
	for _, e := range c.Experiments {
		experiments = append(experiments, e.Name)
	}
	out["experiments"] = experiments

	analyzers := make([]string, 0)
	for name := range c.analyzers {
		analyzers = append(analyzers, name)
	}
	out["analyzers"] = analyzers

	bs, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return util.WriteToFile(path.Join(cfg.RecordPath, "comparison_config.json"), string(bs))
}

// Comparison contains the different experiments to compare
// The traces obtained from the experiments are analyzed
// The analyzed datasets are then compared
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

// NewComparison creates a comparison instance and the folders to record into
func NewComparison(config *ComparisonConfig) (*Comparison, error) {
	if err := os.MkdirAll(config.RecordPath, 0777); err != nil {
		return nil, err
	}
	if config.RecordTraces {
		if err := os.MkdirAll(path.Join(config.RecordPath, "traces"), 0777); err != nil {
			return nil, err
		}
	}

	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}, nil
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) error {
	if err := c.recordConfig(); err != nil {
		return errors.Wrap(err, "recording comparison config")
	}

	longestNameLen := 0
	for _, e := range c.Experiments {
		if len(e.Name) > longestNameLen {
			longestNameLen = len(e.Name)
		}
	}

	for run := 0; run < c.cConfig.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)

		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			if err := e.Run(c.prepareRunConfig(ctx, run, longestNameLen)); err != nil {
				return err
			}
			for name, a := range c.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
			e.Reset()
		}
		for name, comp := range c.comparators {
			if err := comp(run, names, datasets[name]); err != nil {
				return errors.Wrapf(err, "comparator %s", name)
			}
		}
	}
	return nil
}

// prepare the run configuration for the experiment
func (c *Comparison) prepareRunConfig(ctx context.Context, run, longestExpNameLen int) *experimentRunConfig {
	rCfg := &experimentRunConfig{
		CurrentRun:             run,
		Episodes:               c.cConfig.Episodes,
		Horizon:                c.cConfig.Horizon,
		Analyzers:              make([]Analyzer, 0),
		Context:                ctx,
		ConsecutiveErrorsAbort: c.cConfig.ConsecutiveErrorsAbort,
		RecordTraces:           c.cConfig.RecordTraces,
		ReportSavePath:         c.cConfig.RecordPath,
		LongestExpNameLen:      longestExpNameLen,
	}

	if rCfg.ConsecutiveErrorsAbort == 0 {
		rCfg.ConsecutiveErrorsAbort = 10
	}

	for _, a := range c.analyzers {
		rCfg.Analyzers = append(rCfg.Analyzers, a)
	}
	return rCfg
}
