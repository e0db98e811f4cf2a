package battle

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/hook"
	"github.com/udisondev/battlecore/internal/rng"
)

const (
	criticalMultiplier = 2.0
	spreadMultiplier   = 0.75
	minDamageRoll      = 85
	maxDamageRoll      = 100
	maxCriticalStage   = len(criticalOdds) - 1
)

// SlotIndirect marks a move not used from the user's own move slots
// (Metronome and friends); it bypasses PP.
const SlotIndirect = -1

// DamageContext is everything the pipeline needs for one user/target/move
// interaction. Move handlers may rewrite Power, Type or Class before calling
// into the pipeline; the pipeline itself never writes to it.
type DamageContext struct {
	User   *BattlePokemon
	Target *BattlePokemon
	Slot   int
	Move   *dex.Move

	Type        dex.Type
	Power       uint8
	Class       dex.DamageClass
	TargetCount int
	Critical    bool
}

// NewContext builds a context from move defaults and rolls the critical hit
// once, so every stage of the pipeline sees the same outcome.
func NewContext(src rng.Source, user, target *BattlePokemon, slot int, mv *dex.Move, targetCount int) *DamageContext {
	return &DamageContext{
		User:        user,
		Target:      target,
		Slot:        slot,
		Move:        mv,
		Type:        mv.Type,
		Power:       mv.Power,
		Class:       mv.DamageClass,
		TargetCount: targetCount,
		Critical:    RollCritical(src, user, mv),
	}
}

// RollCritical rolls against the combined critical stage of user and move.
func RollCritical(src rng.Source, user *BattlePokemon, mv *dex.Move) bool {
	stage := min(max(int(user.CriticalRate)+int(mv.Meta.CriticalRate), 0), maxCriticalStage)
	return src.IntN(criticalDie) < criticalOdds[stage]
}

// Accuracy returns the hit probability: listed accuracy scaled by the user's
// accuracy stage against the target's evasion stage, then the user's and the
// target's accuracy hooks. A move without accuracy always hits. The result is
// not clamped; values of 1 or more always hit.
func (c *DamageContext) Accuracy() float64 {
	if !c.Move.HasAccuracy() {
		return 1.0
	}
	stage := clampStage(int(c.User.Stage(dex.StatAccuracy)) - int(c.Target.Stage(dex.StatEvasion)))
	acc := float64(*c.Move.Accuracy) / 100 * AccuracyRatio(stage)
	acc = foldMul(c.User.Hooks.UserAccuracy, c, acc)
	return foldMul(c.Target.Hooks.TargetAccuracy, c, acc)
}

// Hits rolls the accuracy check. Certain hits consume no randomness.
func (c *DamageContext) Hits(src rng.Source) bool {
	acc := c.Accuracy()
	return acc >= 1 || src.Float64() < acc
}

// EffectiveCritical applies the target's critical cancels to the rolled outcome.
func (c *DamageContext) EffectiveCritical() bool {
	return hook.Fold(c.Target.Hooks.CriticalCancels, c.Critical, func(crit bool, h CancelHook) bool {
		return crit && !h.Cancel(c)
	})
}

func (c *DamageContext) offenseDefense() (dex.Stat, dex.Stat) {
	if c.Class == dex.DamageClassSpecial {
		return dex.StatSpecialAttack, dex.StatSpecialDefense
	}
	return dex.StatAttack, dex.StatDefense
}

// CalcMaxDamage runs the damage formula at the top of the random spread.
// It returns 0 only on type immunity; otherwise at least 1.
func (c *DamageContext) CalcMaxDamage() uint16 {
	critical := c.EffectiveCritical()
	offense, defense := c.offenseDefense()

	level := float64(2*int(c.User.Level())/5 + 2)
	power := math.Trunc(foldMul(c.User.Hooks.Power, c, float64(c.Power)))
	atk := math.Trunc(foldMul(c.User.Hooks.Attack, c, float64(c.User.Stat(offense, critical))))
	def := math.Trunc(foldMul(c.Target.Hooks.Defense, c, float64(c.Target.Stat(defense, critical))))
	def = max(def, 1)

	efficacy := c.Target.Efficacy(c.Type)
	if efficacy == 0 {
		return 0
	}

	modifier := c.User.STAB(c.Type) * efficacy
	if critical {
		modifier *= criticalMultiplier
	}
	if c.TargetCount > 1 {
		modifier *= spreadMultiplier
	}
	modifier = foldMul(c.User.Hooks.UserDamage, c, modifier)
	modifier = foldMul(c.Target.Hooks.TargetDamage, c, modifier)

	base := math.Trunc(math.Trunc(level*power*atk/def)/50) + 2
	dmg := math.Trunc(base * modifier)
	switch {
	case math.IsNaN(dmg) || dmg < 1:
		return 1
	case dmg > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(dmg)
}

// RollDamage applies the 85..100 random spread to the max damage.
// Immunity returns 0 without drawing.
func (c *DamageContext) RollDamage(src rng.Source) uint16 {
	top := c.CalcMaxDamage()
	if top == 0 {
		return 0
	}
	roll := uint32(rng.Range(src, minDamageRoll, maxDamageRoll))
	dmg := uint32(top) * roll / 100
	return uint16(min(max(dmg, 1), uint32(top)))
}

// DoDamage rolls damage and applies it to the target. Returns HP removed.
func (c *DamageContext) DoDamage(src rng.Source) uint16 {
	dmg := c.RollDamage(src)
	dealt := c.Target.DirectDamage(dmg)
	slog.Debug("damage dealt",
		"move", c.Move.Name,
		"user", c.User.Position,
		"target", c.Target.Position,
		"rolled", dmg,
		"dealt", dealt,
		"critical", c.Critical)
	return dealt
}

// SecondaryEffects inflicts ailments and flinch. Their resolution rules live
// outside the pipeline.
type SecondaryEffects interface {
	ApplyAilment(ctx *DamageContext, a dex.Ailment) error
	ApplyFlinch(ctx *DamageContext) error
}

// UnresolvedEffects rejects every secondary effect with ErrNotImplemented.
type UnresolvedEffects struct{}

func (UnresolvedEffects) ApplyAilment(ctx *DamageContext, a dex.Ailment) error {
	return fmt.Errorf("ailment %s from %s: %w", a, ctx.Move.Name, ErrNotImplemented)
}

func (UnresolvedEffects) ApplyFlinch(ctx *DamageContext) error {
	return fmt.Errorf("flinch from %s: %w", ctx.Move.Name, ErrNotImplemented)
}

// StatRecipient returns who receives the move's stat changes.
func (c *DamageContext) StatRecipient() *BattlePokemon {
	if c.Move.Meta.Category == dex.MetaDamageRaise || c.Move.Target == dex.TargetUser {
		return c.User
	}
	return c.Target
}

// Core runs damage and the move's payload without an accuracy check.
// Non-damaging moves always apply their payload; damaging moves only after
// dealing damage. Returns HP removed from the target.
func (c *DamageContext) Core(src rng.Source, fx SecondaryEffects) (uint16, error) {
	var dmg uint16
	if c.Power > 0 {
		dmg = c.DoDamage(src)
	}
	if c.Power > 0 && dmg == 0 {
		return 0, nil
	}

	meta := &c.Move.Meta
	status := c.Power == 0
	if dmg > 0 {
		c.User.DirectPercentage(dmg, meta.Drain)
	}
	c.User.DirectPercentage(c.User.MaxHP(), meta.Healing)

	if meta.Ailment != dex.AilmentNone && (status || rng.Chance(src, meta.AilmentChance)) {
		if err := fx.ApplyAilment(c, meta.Ailment); err != nil {
			return dmg, err
		}
	}
	if rng.Chance(src, meta.FlinchChance) {
		if err := fx.ApplyFlinch(c); err != nil {
			return dmg, err
		}
	}
	if !meta.StatChanges.IsZero() {
		apply := (status && meta.StatChance == 0) || rng.Chance(src, meta.StatChance)
		if apply {
			c.StatRecipient().ChangeStats(meta.StatChanges)
		}
	}
	return dmg, nil
}

// Execute is the ordinary move path: accuracy check, then Core.
// A miss returns 0 and no error.
func (c *DamageContext) Execute(src rng.Source, fx SecondaryEffects) (uint16, error) {
	if !c.Hits(src) {
		slog.Debug("move missed", "move", c.Move.Name, "user", c.User.Position, "target", c.Target.Position)
		return 0, nil
	}
	return c.Core(src, fx)
}
