package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/treespace"
)

func newTreeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Search the bounded binary tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := treespace.Tree{MaxDepth: a.cfg.GetUint(cfgKeyDepth)}
			start := a.cfg.GetUint64(cfgKeyStart)
			goal := a.cfg.GetUint64(cfgKeyGoal)

			var opts []search.Option
			if n := a.cfg.GetInt(cfgKeyMaxVisited); n > 0 {
				opts = append(opts, search.WithMaxVisited(n))
			}
			opts = append(opts, search.WithContext(cmd.Context()))

			res, err := search.Run[uint64, treespace.Dir](tree, start, search.Equal(goal), opts...)
			if err != nil {
				return fmt.Errorf("tree search: %w", err)
			}
			if res.Found && a.cfg.GetBool(cfgKeyVerify) {
				end, err := search.Replay[uint64, treespace.Dir](tree, start, res.Path)
				if err != nil {
					return fmt.Errorf("verify: %w", err)
				}
				if end != goal {
					return fmt.Errorf("verify: path ends at %d, want %d", end, goal)
				}
				a.log.WithField("end", end).Debug("path verified")
			}

			return a.report(cmd, res.Found, logrus.Fields{
				"visited":    res.Visited,
				"expanded":   res.Expanded,
				"backtracks": res.Backtracks,
				"depth":      res.MaxDepth,
			}, formatDirs(res.Path))
		},
	}

	cmd.Flags().Uint64(cfgKeyStart, 0, "start state")
	cmd.Flags().Uint64(cfgKeyGoal, 2, "goal state")
	cmd.Flags().Uint(cfgKeyDepth, treespace.DefaultMaxDepth, "tree depth")
	cmd.Flags().Bool(cfgKeyVerify, false, "replay the path and check it reaches the goal")
	cmd.Flags().Int(cfgKeyMaxVisited, 0, "abort after this many states (0 = unlimited)")

	return cmd
}

// formatDirs renders a path as "Left Right ...", or "(start)" when empty.
func formatDirs(path []treespace.Dir) string {
	if len(path) == 0 {
		return "(start)"
	}
	parts := make([]string, len(path))
	for i, d := range path {
		parts[i] = d.String()
	}

	return strings.Join(parts, " ")
}
