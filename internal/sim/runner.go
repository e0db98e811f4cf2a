// Package sim runs many independent battles in parallel and aggregates the
// outcomes. Every trial owns its battle instance and random source, so no
// battle state is shared between goroutines.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlecore/internal/rng"
)

// Outcome is the result of one trial.
type Outcome struct {
	Hit     bool
	Damage  uint16
	Fainted bool
}

// Trial plays one independent battle against src.
type Trial func(ctx context.Context, src rng.Source) (Outcome, error)

// Runner fans trials out over a fixed number of workers.
// Trial i always draws from a PCG seeded with Seed+i, so a report does not
// depend on Workers.
type Runner struct {
	Trials  int
	Workers int
	Seed    uint64
}

// Run executes all trials and merges their outcomes. The first trial error
// cancels the rest.
func (r Runner) Run(ctx context.Context, trial Trial) (Report, error) {
	if r.Trials <= 0 || r.Workers <= 0 {
		return Report{}, fmt.Errorf("runner needs positive trials and workers, got %d/%d", r.Trials, r.Workers)
	}
	workers := min(r.Workers, r.Trials)
	partial := make([]Report, workers)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			rep := newReport()
			for i := w; i < r.Trials; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := trial(gctx, rng.NewPCG(r.Seed+uint64(i)))
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				rep.add(out)
			}
			partial[w] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	total := newReport()
	for _, p := range partial {
		total.merge(p)
	}
	if total.Hits == 0 {
		total.Min = 0
	}
	slog.Info("simulation finished",
		"trials", total.Trials,
		"workers", workers,
		"hit_rate", total.HitRate(),
		"mean_damage", total.Mean(),
		"elapsed", time.Since(start))
	return total, nil
}

// Report aggregates trial outcomes.
type Report struct {
	Trials  int
	Hits    int
	Faints  int
	Min     uint16 // over hits only
	Max     uint16
	Total   uint64
	Damages map[uint16]int
}

func newReport() Report {
	return Report{Min: math.MaxUint16, Damages: make(map[uint16]int)}
}

func (r *Report) add(o Outcome) {
	r.Trials++
	if o.Fainted {
		r.Faints++
	}
	if !o.Hit {
		return
	}
	r.Hits++
	r.Total += uint64(o.Damage)
	r.Min = min(r.Min, o.Damage)
	r.Max = max(r.Max, o.Damage)
	r.Damages[o.Damage]++
}

func (r *Report) merge(o Report) {
	r.Trials += o.Trials
	r.Hits += o.Hits
	r.Faints += o.Faints
	r.Total += o.Total
	r.Min = min(r.Min, o.Min)
	r.Max = max(r.Max, o.Max)
	for d, n := range o.Damages {
		r.Damages[d] += n
	}
}

// HitRate is the share of trials that hit.
func (r Report) HitRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Trials)
}

// Mean is the average damage of hitting trials.
func (r Report) Mean() float64 {
	if r.Hits == 0 {
		return 0
	}
	return float64(r.Total) / float64(r.Hits)
}
