package sim_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/move"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/sim"
	"github.com/udisondev/battlecore/internal/testutil"
)

func matchup(t *testing.T, attacker, defender, mv string) sim.Matchup {
	t.Helper()
	return sim.Matchup{
		Attacker: testutil.Member(t, attacker, 50, []string{mv}),
		Defender: testutil.Member(t, defender, 50, nil),
		Move:     testutil.Move(t, mv),
	}
}

func TestRunner_DamageSpread(t *testing.T) {
	m := matchup(t, "Snorlax", "Snorlax", "Tackle")
	user, target := testutil.Duel(t, m.Attacker, m.Defender)
	ctx := battle.NewContext(&rng.Script{Ints: []int{47}}, user, target, 0, m.Move, 1)
	top := ctx.CalcMaxDamage()

	rep, err := sim.Runner{Trials: 2000, Workers: 4, Seed: 1}.Run(t.Context(), sim.DamageTrial(testutil.Dex(t), m))
	require.NoError(t, err)

	assert.Equal(t, 2000, rep.Trials)
	assert.Equal(t, 2000, rep.Hits, "Tackle never misses")
	assert.GreaterOrEqual(t, int(rep.Min)*100, int(top)*85-100)
	assert.LessOrEqual(t, rep.Max, 2*top, "critical hits double at most")
	assert.Greater(t, rep.Mean(), float64(top)*0.85)
	total := 0
	for _, n := range rep.Damages {
		total += n
	}
	assert.Equal(t, rep.Hits, total)
}

func TestRunner_IndependentOfWorkers(t *testing.T) {
	trial := sim.DamageTrial(testutil.Dex(t), matchup(t, "Snorlax", "Pikachu", "Jump Kick"))

	one, err := sim.Runner{Trials: 300, Workers: 1, Seed: 99}.Run(t.Context(), trial)
	require.NoError(t, err)
	many, err := sim.Runner{Trials: 300, Workers: 7, Seed: 99}.Run(t.Context(), trial)
	require.NoError(t, err)

	assert.Equal(t, one, many)
	assert.InDelta(t, 0.95, one.HitRate(), 0.05)
}

func TestRunner_TrialError(t *testing.T) {
	trial := sim.DamageTrial(testutil.Dex(t), matchup(t, "Gastly", "Snorlax", "Light Screen"))

	_, err := sim.Runner{Trials: 10, Workers: 2}.Run(t.Context(), trial)
	assert.ErrorIs(t, err, move.ErrNotImplemented)
}

func TestRunner_FirstErrorWins(t *testing.T) {
	_, err := sim.Runner{Trials: 100, Workers: 4}.Run(t.Context(), testutil.FailAfter(10))
	assert.ErrorIs(t, err, testutil.ErrSimulated)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	trial := func(context.Context, rng.Source) (sim.Outcome, error) { return sim.Outcome{}, nil }

	_, err := sim.Runner{Trials: 10, Workers: 2}.Run(ctx, trial)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunner_InvalidSettings(t *testing.T) {
	trial := func(context.Context, rng.Source) (sim.Outcome, error) { return sim.Outcome{}, nil }

	_, err := sim.Runner{Trials: 0, Workers: 2}.Run(t.Context(), trial)
	assert.Error(t, err)
	_, err = sim.Runner{Trials: 5, Workers: 0}.Run(t.Context(), trial)
	assert.Error(t, err)
}

func TestReport_NoHits(t *testing.T) {
	trial := func(context.Context, rng.Source) (sim.Outcome, error) { return sim.Outcome{}, nil }

	rep, err := sim.Runner{Trials: 3, Workers: 2}.Run(t.Context(), trial)
	require.NoError(t, err)
	assert.Zero(t, rep.Min)
	assert.Zero(t, rep.Mean())
	assert.Zero(t, rep.HitRate())
}
