package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/udisondev/battlecore/internal/config"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/sim"
	"github.com/udisondev/battlecore/internal/team"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BATTLECORE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(config.NewLogger(cfg, os.Stdout))

	d, err := loadDataset(cfg.Dataset)
	if err != nil {
		return err
	}

	s := cfg.Simulation
	m, err := buildMatchup(d, s)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			return err
		}
	}
	slog.Info("starting simulation",
		"attacker", m.Attacker.Species.Name,
		"defender", m.Defender.Species.Name,
		"move", m.Move.Name,
		"trials", s.Trials,
		"seed", seed)

	runner := sim.Runner{Trials: s.Trials, Workers: s.Workers, Seed: seed}
	rep, err := runner.Run(ctx, sim.DamageTrial(d, m))
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}
	printReport(rep)
	return nil
}

func loadDataset(path string) (*dex.Table, error) {
	if path == "" {
		d, err := dex.Default()
		if err != nil {
			return nil, fmt.Errorf("loading embedded dataset: %w", err)
		}
		return d, nil
	}
	d, err := dex.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return d, nil
}

func buildMatchup(d *dex.Table, s config.Simulation) (sim.Matchup, error) {
	mv, err := d.MoveByName(s.Move)
	if err != nil {
		return sim.Matchup{}, fmt.Errorf("simulation move: %w", err)
	}
	attacker, err := buildMember(d, s.Attacker)
	if err != nil {
		return sim.Matchup{}, fmt.Errorf("attacker: %w", err)
	}
	defender, err := buildMember(d, s.Defender)
	if err != nil {
		return sim.Matchup{}, fmt.Errorf("defender: %w", err)
	}
	return sim.Matchup{Attacker: attacker, Defender: defender, Move: mv}, nil
}

func buildMember(d *dex.Table, c config.Combatant) (*team.Member, error) {
	sp, err := d.SpeciesByName(c.Species)
	if err != nil {
		return nil, err
	}
	m := &team.Member{
		Species: sp,
		Level:   c.Level,
		IVs:     spread(c.IVs),
		EVs:     spread(c.EVs),
	}
	if len(sp.Abilities) > 0 {
		m.Ability = sp.Abilities[0]
	}
	if c.Nature != "" {
		n, ok := dex.ParseNature(c.Nature)
		if !ok {
			return nil, fmt.Errorf("unknown nature %q", c.Nature)
		}
		m.Nature = n
	}
	if len(c.Moves) > team.MoveSlots {
		return nil, fmt.Errorf("%d moves, at most %d", len(c.Moves), team.MoveSlots)
	}
	for i, name := range c.Moves {
		if m.Moves[i], err = d.MoveByName(name); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func spread(s config.Spread) dex.BaseStats {
	return dex.BaseStats{s.HP, s.Attack, s.Defense, s.SpecialAttack, s.SpecialDefense, s.Speed}
}

func printReport(rep sim.Report) {
	fmt.Printf("trials: %d  hits: %d (%.1f%%)  faints: %d\n",
		rep.Trials, rep.Hits, rep.HitRate()*100, rep.Faints)
	fmt.Printf("damage: min %d  max %d  mean %.2f\n", rep.Min, rep.Max, rep.Mean())

	keys := make([]uint16, 0, len(rep.Damages))
	for k := range rep.Damages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("  %5d  %d\n", k, rep.Damages[k])
	}
}
