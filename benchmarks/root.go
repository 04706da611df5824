package benchmarks

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/grid"
)

var (
	worldFile string
	episodes  int
	horizon   int
	saveFile  string
	runs      int
	seed      uint64
)

// WorldEnvVar can hold the default world file, for example in a .env file
const WorldEnvVar = "GRIDWORLD_WORLD"

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gridworld",
		Short:         "Grid world MDP environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVarP(&worldFile, "world", "w", os.Getenv(WorldEnvVar), "YAML world file, the built-in world when empty")
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 1000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 50, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed of the random policy and the transition sampling, 0 picks a fresh one")
	// adding the subcommands here
	rootCommand.AddCommand(GridCommand())
	rootCommand.AddCommand(RenderCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// loadWorld reads the world flag and builds its environment
func loadWorld() (*grid.World, *grid.GridEnvironment, error) {
	world := grid.DefaultWorld()
	if worldFile != "" {
		w, err := grid.LoadWorld(worldFile)
		if err != nil {
			return nil, nil, err
		}
		world = w
	}
	env, err := world.Environment()
	if err != nil {
		return nil, nil, err
	}
	return world, env, nil
}
