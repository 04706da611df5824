package benchmarks

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/policies"
	"github.com/zeu5/gridworld/types"
	"github.com/zeu5/gridworld/util"
	"golang.org/x/exp/rand"
)

// GridComparison runs the random and the greedy policy on the world and
// records returns, coverage and visit heatmaps under a fresh run folder
func GridComparison(ctx context.Context, world *grid.World, env *grid.GridEnvironment, savePath string, recordTraces bool) (string, error) {
	start, err := world.StartPosition(env)
	if err != nil {
		return "", err
	}
	recordPath := path.Join(savePath, uuid.NewString())

	c, err := types.NewComparison(&types.ComparisonConfig{
		Runs:         runs,
		Episodes:     episodes,
		Horizon:      horizon,
		RecordPath:   recordPath,
		RecordTraces: recordTraces,
	})
	if err != nil {
		return "", err
	}
	c.AddAnalysis("Returns", types.NewReturnsAnalyzer(), types.ReturnsPlotter(path.Join(recordPath, "returns")))
	c.AddAnalysis("Coverage", types.NewCoverageAnalyzer(), types.CoveragePlotter(path.Join(recordPath, "coverage")))
	c.AddAnalysis("Visits", grid.NewVisitAnalyzer(env.Height(), env.Width()), grid.VisitHeatmapComparator(path.Join(recordPath, "visits")))

	// without a seed every invocation samples differently
	random := types.NewRandomPolicy()
	sourceSeed := uint64(time.Now().UnixNano())
	if seed != 0 {
		random = types.NewSeededRandomPolicy(seed)
		sourceSeed = seed
	}

	greedy := policies.NewGreedy(env)
	c.AddExperiment(types.NewExperiment(
		"Random",
		random,
		types.NewMDPEnvironment(env, start, rand.NewSource(sourceSeed)),
	))
	c.AddExperiment(types.NewExperiment(
		"Greedy",
		greedy,
		types.NewMDPEnvironment(env, start, rand.NewSource(sourceSeed+1)),
	))

	if err := c.Run(ctx); err != nil {
		return recordPath, err
	}

	if err := grid.SaveValueHeatmap(grid.ValueGrid(env, greedy), "Greedy values", path.Join(recordPath, "greedy_values.png")); err != nil {
		return recordPath, err
	}
	policy, err := grid.PolicyGrid(env, greedy)
	if err != nil {
		return recordPath, err
	}
	err = util.WriteToFile(path.Join(recordPath, "greedy_policy.txt"),
		env.String(),
		grid.FormatValueGrid(grid.ValueGrid(env, greedy)),
		grid.FormatPolicyGrid(policy),
	)
	return recordPath, err
}

func GridCommand() *cobra.Command {
	var recordTraces bool

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compare the random and greedy policies on the world",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, env, err := loadWorld()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			recordPath, err := GridComparison(ctx, world, env, saveFile, recordTraces)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", recordPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&recordTraces, "traces", false, "Record the traces of every episode")
	return cmd
}
