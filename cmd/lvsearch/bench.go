package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	def := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated tree searches with concurrent workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.Config{
				Iterations: a.cfg.GetInt(cfgKeyIterations),
				Workers:    a.cfg.GetInt(cfgKeyWorkers),
				Depth:      a.cfg.GetUint(cfgKeyDepth),
				Goal:       a.cfg.GetUint64(cfgKeyGoal),
			}
			rep, err := bench.Run(cmd.Context(), cfg, a.log)
			if err != nil {
				return err
			}
			rep.Render(cmd.OutOrStdout())

			return nil
		},
	}

	cmd.Flags().Int(cfgKeyIterations, def.Iterations, "total number of searches")
	cmd.Flags().Int(cfgKeyWorkers, def.Workers, "concurrent workers")
	cmd.Flags().Uint(cfgKeyDepth, def.Depth, "tree depth")
	cmd.Flags().Uint64(cfgKeyGoal, def.Goal, "goal state")

	return cmd
}
