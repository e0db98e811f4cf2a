// Package move dispatches a move use: target resolution, PP, and the
// per-effect behaviour on top of the damage pipeline.
package move

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/team"
)

// ErrNotImplemented is returned for effects the engine recognises but does
// not model yet.
var ErrNotImplemented = battle.ErrNotImplemented

// SlotIndirect is the slot of a move used through another move; it costs no PP.
const SlotIndirect = battle.SlotIndirect

// Resolver maps absolute slots to the combatants occupying them.
// Empty or fainted slots are dropped.
type Resolver interface {
	Resolve(targets []battle.AbsoluteTarget) []*battle.BattlePokemon
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(targets []battle.AbsoluteTarget) []*battle.BattlePokemon

func (f ResolverFunc) Resolve(targets []battle.AbsoluteTarget) []*battle.BattlePokemon {
	return f(targets)
}

// Executor runs moves against one random source.
type Executor struct {
	Rand      rng.Source
	Secondary battle.SecondaryEffects
}

// NewExecutor returns an executor whose ailment and flinch effects are unresolved.
func NewExecutor(src rng.Source) *Executor {
	return &Executor{Rand: src, Secondary: battle.UnresolvedEffects{}}
}

// Execute uses mv from slot. It returns false when the use was rejected:
// no target left, no PP, or a precondition of the effect failed.
// A returned error means the effect (or one of its secondary effects) is not
// modelled; state changes made before it stay applied.
func (e *Executor) Execute(user *battle.BattlePokemon, slot int, mv *dex.Move, r Resolver) (bool, error) {
	h, ok := handlers[mv.Effect]
	if !ok {
		return false, fmt.Errorf("effect %s of %s: %w", mv.Effect, mv.Name, ErrNotImplemented)
	}

	rel, err := Targets(user, mv)
	if err != nil {
		return false, fmt.Errorf("targets of %s: %w", mv.Name, err)
	}
	abs := make([]battle.AbsoluteTarget, len(rel))
	for i, t := range rel {
		abs[i] = t.Absolute(user.Position)
	}
	targets := r.Resolve(abs)
	if len(targets) == 0 {
		slog.Debug("no targets", "move", mv.Name, "user", user.Position)
		return false, nil
	}

	if slot >= 0 && slot < team.MoveSlots && !user.Bench.SpendPP(slot) {
		slog.Debug("no pp left", "move", mv.Name, "user", user.Position, "slot", slot)
		return false, nil
	}

	slog.Debug("move used",
		"move", mv.Name,
		"effect", mv.Effect,
		"user", user.Position,
		"targets", len(targets))

	return h(&action{
		exec:    e,
		user:    user,
		slot:    slot,
		move:    mv,
		targets: targets,
	})
}

// action is one move use after targets and PP were settled.
type action struct {
	exec    *Executor
	user    *battle.BattlePokemon
	slot    int
	move    *dex.Move
	targets []*battle.BattlePokemon
}

func (a *action) context(target *battle.BattlePokemon) *battle.DamageContext {
	return battle.NewContext(a.exec.Rand, a.user, target, a.slot, a.move, len(a.targets))
}

func (a *action) src() rng.Source { return a.exec.Rand }

func (a *action) fx() battle.SecondaryEffects { return a.exec.Secondary }
