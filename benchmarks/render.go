package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/policies"
)

func RenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the values and the policy of the greedy agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, env, err := loadWorld()
			if err != nil {
				return err
			}
			greedy := policies.NewGreedy(env)
			policy, err := grid.PolicyGrid(env, greedy)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, grid.FormatValueGrid(grid.ValueGrid(env, greedy)))
			fmt.Fprintln(out)
			fmt.Fprint(out, grid.FormatPolicyGrid(policy))
			return nil
		},
	}
}
