package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Search a seeded random graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gopts := []core.GraphOption{core.WithDirected(!a.cfg.GetBool(cfgKeyUndirected))}
			if a.cfg.GetBool(cfgKeyLoops) {
				gopts = append(gopts, core.WithLoops())
			}
			g, err := builder.BuildGraph(gopts,
				[]builder.BuilderOption{builder.WithSeed(a.cfg.GetInt64(cfgKeySeed))},
				builder.RandomSparse(a.cfg.GetInt(cfgKeyVertices), a.cfg.GetFloat64(cfgKeyProbability)),
			)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"vertices": g.VertexCount(),
				"edges":    g.EdgeCount(),
			}).Debug("graph built")

			from, to := a.cfg.GetString(cfgKeyFrom), a.cfg.GetString(cfgKeyTo)
			if !g.HasVertex(from) {
				a.log.WithField("from", from).Warn("start vertex is not in the graph")
			}

			res, err := search.Run(g.Space(), from, search.Equal(to), search.WithContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("graph search: %w", err)
			}
			if res.Found && a.cfg.GetBool(cfgKeyVerify) {
				if err := verifyEdges(g.Space(), from, to, res.Path); err != nil {
					return err
				}
				a.log.WithField("end", to).Debug("path verified")
			}

			return a.report(cmd, res.Found, logrus.Fields{
				"visited":  res.Visited,
				"expanded": res.Expanded,
				"depth":    res.MaxDepth,
			}, formatEdges(from, res.Path))
		},
	}

	cmd.Flags().Int(cfgKeyVertices, 200, "number of vertices")
	cmd.Flags().Float64(cfgKeyProbability, 0.02, "edge probability")
	cmd.Flags().Int64(cfgKeySeed, 1, "random seed")
	cmd.Flags().String(cfgKeyFrom, "0", "start vertex")
	cmd.Flags().String(cfgKeyTo, "1", "goal vertex")
	cmd.Flags().Bool(cfgKeyUndirected, false, "build an undirected graph")
	cmd.Flags().Bool(cfgKeyLoops, false, "allow self-loops")
	cmd.Flags().Bool(cfgKeyVerify, false, "replay the path and check it reaches the goal")

	return cmd
}

// formatEdges renders a path as "0 -> 7 -> 3".
// verifyEdges replays path from start and checks that it ends at goal.
func verifyEdges(space search.Space[string, core.Edge], start, goal string, path []core.Edge) error {
	end, err := search.Replay(space, start, path)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if end != goal {
		return fmt.Errorf("verify: path ends at %q, want %q", end, goal)
	}

	return nil
}

func formatEdges(from string, path []core.Edge) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, from)
	for _, e := range path {
		parts = append(parts, e.To)
	}

	return strings.Join(parts, " -> ")
}
