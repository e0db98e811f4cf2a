package move

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/hook"
	"github.com/udisondev/battlecore/internal/rng"
)

const (
	dragonRageDamage = 40
	// Self-destructing moves halve the target's defense for their own strike.
	faintUserDefense = 0.5
)

func basic(a *action) (bool, error) {
	for _, t := range a.targets {
		if _, err := a.context(t).Execute(a.src(), a.fx()); err != nil {
			return true, err
		}
	}
	return true, nil
}

func faintUser(a *action) (bool, error) {
	key := hook.MoveKey(0, uint16(a.move.ID), 0)
	for _, t := range a.targets {
		if err := halvedDefenseStrike(a, t, key); err != nil {
			return true, err
		}
	}
	a.user.DirectDamage(a.user.HP())
	return true, nil
}

func halvedDefenseStrike(a *action, t *battle.BattlePokemon, key hook.Key) error {
	t.Hooks.Defense.Insert(key, battle.Multiplier(faintUserDefense))
	defer t.Hooks.Defense.Remove(key)

	_, err := a.context(t).Execute(a.src(), a.fx())
	return err
}

func dreamEater(a *action) (bool, error) {
	if len(a.targets) != 1 || !a.targets[0].IsAsleep() {
		slog.Debug("target is not asleep", "move", a.move.Name, "user", a.user.Position)
		return false, nil
	}
	_, err := a.context(a.targets[0]).Execute(a.src(), a.fx())
	return true, err
}

func snore(a *action) (bool, error) {
	if !a.user.IsAsleep() {
		slog.Debug("user is not asleep", "move", a.move.Name, "user", a.user.Position)
		return false, nil
	}
	return basic(a)
}

func haze(a *action) (bool, error) {
	for _, t := range a.targets {
		t.ResetStats()
	}
	return true, nil
}

// hitWeights maps a uniform draw in [0, 6) to a hit count.
var hitWeights = [6]int{2, 2, 3, 3, 4, 5}

// HitCount rolls 2-5 hits: 2 and 3 with 1/3 each, 4 and 5 with 1/6 each.
func HitCount(src rng.Source) int {
	return hitWeights[src.IntN(len(hitWeights))]
}

// multiHit checks accuracy once per target, then strikes until the count
// runs out or the target faints. Every strike after the first gets a fresh
// context and so its own critical roll.
func multiHit(count func(rng.Source) int) handler {
	return func(a *action) (bool, error) {
		for _, t := range a.targets {
			ctx := a.context(t)
			if !ctx.Hits(a.src()) {
				continue
			}
			hits := count(a.src())
			slog.Debug("multi-hit", "move", a.move.Name, "target", t.Position, "hits", hits)
			for i := range hits {
				if t.IsFainted() {
					break
				}
				if i > 0 {
					ctx = a.context(t)
				}
				if _, err := ctx.Core(a.src(), a.fx()); err != nil {
					return true, err
				}
			}
		}
		return true, nil
	}
}

func halfRecoilIfMiss(a *action) (bool, error) {
	for _, t := range a.targets {
		ctx := a.context(t)
		if ctx.Hits(a.src()) {
			if _, err := ctx.Core(a.src(), a.fx()); err != nil {
				return true, err
			}
			continue
		}
		crash := a.user.DirectPercentage(ctx.RollDamage(a.src()), -50)
		slog.Debug("crash damage", "move", a.move.Name, "user", a.user.Position, "damage", crash)
	}
	return true, nil
}

// fixedDamage returns HP to remove from the target, bypassing the formula.
type fixedDamage func(a *action, t *battle.BattlePokemon) uint16

// fixed applies damage that ignores power, stats and modifiers. Type
// immunity and accuracy still apply.
func fixed(dmg fixedDamage) handler {
	return func(a *action) (bool, error) {
		for _, t := range a.targets {
			if t.Efficacy(a.move.Type) == 0 {
				continue
			}
			if !a.context(t).Hits(a.src()) {
				continue
			}
			dealt := t.DirectDamage(dmg(a, t))
			slog.Debug("fixed damage", "move", a.move.Name, "target", t.Position, "damage", dealt)
		}
		return true, nil
	}
}

func superFang(_ *action, t *battle.BattlePokemon) uint16 {
	return max(t.HP()/2, 1)
}

func dragonRage(*action, *battle.BattlePokemon) uint16 {
	return dragonRageDamage
}

func userLevel(a *action, _ *battle.BattlePokemon) uint16 {
	return uint16(a.user.Level())
}

func psywave(a *action, _ *battle.BattlePokemon) uint16 {
	return uint16(uint32(a.user.Level()) * uint32(rng.Range(a.src(), 50, 150)) / 100)
}

func painSplit(a *action) (bool, error) {
	for _, t := range a.targets {
		mean := uint16((uint32(a.user.HP()) + uint32(t.HP())) / 2)
		a.user.Bench.SetHP(mean, a.user.MaxHP())
		t.Bench.SetHP(mean, t.MaxHP())
	}
	return true, nil
}

// flailPower holds the remaining-HP breakpoints, lowest first.
var flailPower = []struct {
	below float64
	power uint8
}{
	{0.0417, 200},
	{0.1042, 150},
	{0.2083, 100},
	{0.3542, 80},
	{0.6875, 40},
}

// FlailPower returns the power of a move that grows as the user's HP drops.
func FlailPower(hp, maxHP uint16) uint8 {
	r := float64(hp) / float64(max(maxHP, 1))
	for _, bp := range flailPower {
		if r < bp.below {
			return bp.power
		}
	}
	return 20
}

func flail(a *action) (bool, error) {
	for _, t := range a.targets {
		ctx := a.context(t)
		ctx.Power = FlailPower(a.user.HP(), a.user.MaxHP())
		if _, err := ctx.Execute(a.src(), a.fx()); err != nil {
			return true, err
		}
	}
	return true, nil
}

func splash(*action) (bool, error) {
	return true, nil
}
