package main

import (
	"container/heap"
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// ── Frontier ────────────────────────────────────────────────────────

type frontierState struct {
	sequence []string
	prev     string // most recently applied reagent
	path     []string
	priority float64
	order    int // insertion order, breaks priority ties FIFO
}

// frontier is a max-heap on priority.
type frontier []*frontierState

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority > f[j].priority
	}
	return f[i].order < f[j].order
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierState)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return s
}

// ── Priority search ─────────────────────────────────────────────────

// PrioritySearch runs a best-first search from start over reagents and
// returns the first path whose sequence equals the exitus exactly.
//
// Each expansion applies every reagent except the one applied last; a reagent
// may still reappear further back in the path. Visited states are not
// deduplicated. The search gives up when the frontier empties, after
// cfg.MaxIterations pops, or when a popped path is already cfg.MaxDepth long.
func PrioritySearch(exitus, start Reagent, reagents []Reagent, cfg Config) SearchResult {
	target := exitus.Atoms
	c := NewCombinator(cfg.NegationPrefix)

	c.Reset(nil, nil)
	seq := c.AddReagent(&start)
	if c.Matches(target) {
		return SearchResult{Path: c.ReagentPath, Reason: StopFound}
	}

	f := &frontier{}
	order := 0
	heap.Push(f, &frontierState{
		sequence: seq,
		prev:     start.Name,
		path:     c.ReagentPath,
		priority: Heuristic(seq, target, 1),
	})

	expansions := 0
	for {
		if f.Len() == 0 {
			return SearchResult{Expansions: expansions, Reason: StopExhausted}
		}
		// The iteration cap is checked before popping, so it wins over the
		// depth cap when both are reached on the same step.
		if expansions >= cfg.MaxIterations {
			return SearchResult{Expansions: expansions, Reason: StopIterationLimit}
		}

		cur := heap.Pop(f).(*frontierState)
		if len(cur.path) >= cfg.MaxDepth {
			return SearchResult{Expansions: expansions, Reason: StopDepthLimit}
		}
		expansions++

		for i := range reagents {
			r := &reagents[i]
			if r.Name == cur.prev {
				continue
			}

			c.Reset(cur.sequence, cur.path)
			next := c.AddReagent(r)
			if c.Matches(target) {
				return SearchResult{Path: c.ReagentPath, Expansions: expansions, Reason: StopFound}
			}

			order++
			heap.Push(f, &frontierState{
				sequence: next,
				prev:     r.Name,
				path:     c.ReagentPath,
				priority: Heuristic(next, target, len(c.ReagentPath)),
				order:    order,
			})
		}
	}
}

// ── Fan-out per start ───────────────────────────────────────────────

// SearchStarts runs one PrioritySearch per start concurrently and returns every
// outcome in completion order. exitus and reagents are shared read-only; each
// search owns its combinator and frontier.
//
// Searches are not interrupted by ctx. A search that finishes after ctx is
// done logs a warning instead of delivering its result.
func SearchStarts(ctx context.Context, exitus Reagent, reagents, starts []Reagent, cfg Config, logger *slog.Logger) []StartResult {
	if len(starts) == 0 {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	results := make(chan StartResult, len(starts))

	var g errgroup.Group
	if cfg.MaxWorkers > 0 {
		g.SetLimit(cfg.MaxWorkers)
	}
	for _, start := range starts {
		start := start
		g.Go(func() error {
			_, span := tracer().Start(ctx, "priority_search",
				trace.WithAttributes(
					attribute.String("mutagen.start", start.Name),
					attribute.Int("mutagen.start.score", start.Score),
				),
			)
			t0 := time.Now()
			sr := PrioritySearch(exitus, start, reagents, cfg)
			res := StartResult{
				Start:      start,
				Path:       sr.Path,
				Elapsed:    time.Since(t0),
				Expansions: sr.Expansions,
				Reason:     sr.Reason,
			}
			span.SetAttributes(
				attribute.String("mutagen.outcome", sr.Reason.String()),
				attribute.Int("mutagen.expansions", sr.Expansions),
				attribute.Int("mutagen.path_length", len(sr.Path)),
			)
			span.End()
			observeSearch(res)

			logger.Debug("search done",
				"start", start.Name,
				"outcome", sr.Reason.String(),
				"expansions", sr.Expansions,
				"elapsed", res.Elapsed)

			if err := ctx.Err(); err != nil {
				logger.Warn("search result not delivered", "start", start.Name, "err", err)
				return nil
			}
			results <- res
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(results)
	}()

	out := make([]StartResult, 0, len(starts))
	for r := range results {
		out = append(out, r)
	}
	return out
}
