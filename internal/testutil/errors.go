package testutil

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/sim"
)

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// FailingEffects rejects every ailment and flinch with ErrSimulated.
type FailingEffects struct{}

func (FailingEffects) ApplyAilment(*battle.DamageContext, dex.Ailment) error { return ErrSimulated }
func (FailingEffects) ApplyFlinch(*battle.DamageContext) error               { return ErrSimulated }

// FailAfter returns a trial that succeeds n times, then fails with ErrSimulated.
// Calls may come from several goroutines.
func FailAfter(n int64) sim.Trial {
	var calls atomic.Int64
	return func(context.Context, rng.Source) (sim.Outcome, error) {
		if calls.Add(1) > n {
			return sim.Outcome{}, ErrSimulated
		}
		return sim.Outcome{Hit: true, Damage: 1}, nil
	}
}
