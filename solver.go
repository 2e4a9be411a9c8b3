package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Solver runs the full pipeline for one exitus and reagent pool: filter,
// start selection, then one priority search per viable start.
type Solver struct {
	exitus   Reagent
	reagents []Reagent
	cfg      Config
	logger   *slog.Logger
}

// NewSolver creates a solver. exitus and reagents must not be modified while
// Solve runs.
func NewSolver(exitus Reagent, reagents []Reagent, cfg Config) *Solver {
	return &Solver{
		exitus:   exitus,
		reagents: reagents,
		cfg:      cfg,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger.
func (s *Solver) WithLogger(logger *slog.Logger) *Solver {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Report is the outcome of one Solve run.
type Report struct {
	RunID   string
	Exitus  Reagent
	Removed []Reagent
	Starts  []Reagent
	// Results are in completion order, one per start.
	Results []StartResult
	Elapsed time.Duration
}

// Found returns the results that reached the exitus.
func (r *Report) Found() []StartResult {
	var out []StartResult
	for _, res := range r.Results {
		if res.Found() {
			out = append(out, res)
		}
	}
	return out
}

// Solve runs the pipeline. An empty pool or no viable start is not an error:
// the report simply has no results and no search is started.
func (s *Solver) Solve(ctx context.Context) *Report {
	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Exitus: s.exitus}
	log := s.logger.With("run", rep.RunID)

	ctx, span := tracer().Start(ctx, "solve",
		trace.WithAttributes(
			attribute.String("mutagen.run_id", rep.RunID),
			attribute.String("mutagen.exitus", s.exitus.Name),
			attribute.Int("mutagen.reagents", len(s.reagents)),
		),
	)
	defer span.End()

	log.Info("solve started", "exitus", s.exitus.Name, "reagents", len(s.reagents),
		"max_depth", s.cfg.MaxDepth, "max_iterations", s.cfg.MaxIterations)

	kept, removed := FilterReagents(s.exitus, s.reagents, s.cfg.NegationPrefix)
	rep.Removed = removed
	filterRemovedTotal.Add(float64(len(removed)))
	log.Info("filtered reagents", "kept", len(kept), "removed", len(removed))
	if len(removed) > 0 {
		log.Debug("removed reagents", "names", reagentNames(removed))
	}

	rep.Starts = ViableStarts(s.exitus, kept)
	span.SetAttributes(attribute.Int("mutagen.starts", len(rep.Starts)))
	if len(rep.Starts) == 0 {
		log.Info("no viable start reagents")
		solveTotal.WithLabelValues("no_starts").Inc()
		rep.Elapsed = time.Since(start)
		return rep
	}
	log.Info("viable starts", "count", len(rep.Starts), "best", rep.Starts[0].Name, "best_score", rep.Starts[0].Score)

	rep.Results = SearchStarts(ctx, s.exitus, s.reagents, rep.Starts, s.cfg, log)
	rep.Elapsed = time.Since(start)

	found := len(rep.Found())
	if found > 0 {
		solveTotal.WithLabelValues("found").Inc()
	} else {
		solveTotal.WithLabelValues("no_path").Inc()
	}
	span.SetAttributes(attribute.Int("mutagen.found", found))
	log.Info("solve done", "found", found, "searched", len(rep.Results), "elapsed", rep.Elapsed)
	return rep
}
