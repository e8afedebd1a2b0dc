// Package bench times repeated searches over the bounded binary tree.
// Workers run concurrently; each owns its traversals and only shares the
// read-only tree space.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/treespace"
)

// ErrInvalidConfig is returned for non-positive iterations or workers.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark run.
type Config struct {
	Iterations int    // total searches, split across workers
	Workers    int    // concurrent workers
	Depth      uint   // tree depth
	Goal       uint64 // searched state
}

// DefaultConfig mirrors the classic micro-benchmark: depth 16, goal 2.
func DefaultConfig() Config {
	return Config{
		Iterations: 100,
		Workers:    1,
		Depth:      treespace.DefaultMaxDepth,
		Goal:       2,
	}
}

// WorkerStats aggregates one worker's timings.
type WorkerStats struct {
	Worker  int
	Runs    int
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
	Visited int // states discovered per search
	Found   bool
}

// Mean returns the average latency.
func (s WorkerStats) Mean() time.Duration {
	if s.Runs == 0 {
		return 0
	}

	return s.Total / time.Duration(s.Runs)
}

// Report is the outcome of Run.
type Report struct {
	Config  Config
	Workers []WorkerStats
	Wall    time.Duration
}

// Run executes cfg. The first failing worker cancels the others.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Report, error) {
	if cfg.Iterations <= 0 || cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: iterations=%d workers=%d", ErrInvalidConfig, cfg.Iterations, cfg.Workers)
	}
	if cfg.Workers > cfg.Iterations {
		cfg.Workers = cfg.Iterations
	}

	tree := treespace.Tree{MaxDepth: cfg.Depth}
	stats := make([]WorkerStats, cfg.Workers)
	eg, ctx := errgroup.WithContext(ctx)

	start := time.Now()
	for w := 0; w < cfg.Workers; w++ {
		runs := cfg.Iterations / cfg.Workers
		if w < cfg.Iterations%cfg.Workers {
			runs++
		}
		eg.Go(func() error {
			st, err := work(ctx, tree, cfg.Goal, runs)
			st.Worker = w
			stats[w] = st
			if err != nil {
				return fmt.Errorf("bench: worker %d: %w", w, err)
			}
			log.WithFields(logrus.Fields{
				"worker": w,
				"runs":   st.Runs,
				"mean":   st.Mean(),
			}).Debug("worker done")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Report{Config: cfg, Workers: stats, Wall: time.Since(start)}, nil
}

// work runs n searches sequentially.
func work(ctx context.Context, tree treespace.Tree, goal uint64, n int) (WorkerStats, error) {
	st := WorkerStats{Runs: 0}
	for i := 0; i < n; i++ {
		t0 := time.Now()
		res, err := search.Run[uint64, treespace.Dir](tree, 0, search.Equal(goal), search.WithContext(ctx))
		d := time.Since(t0)
		if err != nil {
			return st, err
		}
		st.Runs++
		st.Total += d
		if st.Min == 0 || d < st.Min {
			st.Min = d
		}
		if d > st.Max {
			st.Max = d
		}
		st.Visited = res.Visited
		st.Found = res.Found
	}

	return st, nil
}

// Render writes r as a table.
func (r *Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"worker", "runs", "visited", "found", "mean", "min", "max"})
	for _, s := range r.Workers {
		table.Append([]string{
			strconv.Itoa(s.Worker),
			humanize.Comma(int64(s.Runs)),
			humanize.Comma(int64(s.Visited)),
			strconv.FormatBool(s.Found),
			s.Mean().String(),
			s.Min.String(),
			s.Max.String(),
		})
	}
	table.Render()
	fmt.Fprintf(w, "%s searches in %s (depth %d, goal %d)\n",
		humanize.Comma(int64(r.Config.Iterations)), r.Wall, r.Config.Depth, r.Config.Goal)
}
