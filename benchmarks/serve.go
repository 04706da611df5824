package benchmarks

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/server"
)

func ServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the world MDP over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, env, err := loadWorld()
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %dx%d grid on %s\n", env.Height(), env.Width(), addr)
			return server.New(env).Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Address to listen on")
	return cmd
}
