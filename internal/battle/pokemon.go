package battle

import (
	"log/slog"
	"math"

	"github.com/udisondev/battlecore/internal/ailment"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/team"
)

const (
	stabBonus         = 1.5
	adaptabilityBonus = 2.0
)

// BattlePokemon is a combatant occupying a slot.
// Everything here is discarded when it leaves the field.
type BattlePokemon struct {
	Position AbsoluteTarget
	// Index into the owner's roster.
	Index int
	Bench *BenchPokemon
	Hooks *Hooks
	// Member is a private copy of the build; in-battle rewrites go here.
	Member *team.Member
	Types  []dex.Type
	// Volatile ailments; the major one lives on Bench.
	Volatile     ailment.Battler
	Stages       dex.StageChanges
	CriticalRate int8

	chart dex.TypeChart
}

// NewBattlePokemon puts bench into slot pos with fresh overlay hooks derived
// from the battle scope.
func NewBattlePokemon(pos AbsoluteTarget, index int, bench *BenchPokemon, battle *Hooks, chart dex.TypeChart) *BattlePokemon {
	m := bench.Member.Clone()
	return &BattlePokemon{
		Position: pos,
		Index:    index,
		Bench:    bench,
		Hooks:    battle.NewOverlay(),
		Member:   m,
		Types:    append([]dex.Type(nil), m.Species.Types...),
		chart:    chart,
	}
}

func (p *BattlePokemon) HP() uint16      { return p.Bench.HP() }
func (p *BattlePokemon) MaxHP() uint16   { return p.Member.Stat(dex.StatHP) }
func (p *BattlePokemon) Level() uint8    { return p.Member.Level }
func (p *BattlePokemon) IsFainted() bool { return p.Bench.Fainted() }

func (p *BattlePokemon) IsParalyzed() bool { return p.Bench.Status.IsParalyzed() }
func (p *BattlePokemon) IsAsleep() bool    { return p.Bench.Status.IsAsleep() }
func (p *BattlePokemon) IsFrozen() bool    { return p.Bench.Status.IsFrozen() }
func (p *BattlePokemon) IsBurned() bool    { return p.Bench.Status.IsBurned() }
func (p *BattlePokemon) IsPoisoned() bool  { return p.Bench.Status.IsPoisoned() }

// Stage returns the current stage of a changeable stat.
func (p *BattlePokemon) Stage(stat dex.Stat) int8 {
	return p.Stages[stat.StageIndex()]
}

// Stat returns a stat after stages. On a critical hit the attacker ignores
// its own drops and the defender ignores its own boosts. For HP it returns
// current hit points, and 1 for accuracy and evasion, which only exist as
// stages.
func (p *BattlePokemon) Stat(stat dex.Stat, critical bool) uint16 {
	switch stat {
	case dex.StatHP:
		return p.HP()
	case dex.StatAccuracy, dex.StatEvasion:
		return 1
	}
	stage := clampStage(int(p.Stage(stat)))
	if critical {
		switch stat {
		case dex.StatAttack, dex.StatSpecialAttack:
			stage = max(stage, 0)
		case dex.StatDefense, dex.StatSpecialDefense:
			stage = min(stage, 0)
		}
	}
	return ApplyStage(p.Member.Stat(stat), stage)
}

// ChangeStats applies stage deltas. Each delta is bounded to ±12 and each
// stage to [-6, 6].
func (p *BattlePokemon) ChangeStats(changes dex.StageChanges) {
	for i, c := range changes {
		if c == 0 {
			continue
		}
		c = min(max(c, -maxStageChange), maxStageChange)
		p.Stages[i] = clampStage(int(p.Stages[i]) + int(c))
	}
}

// ResetStats zeroes every stage.
func (p *BattlePokemon) ResetStats() {
	p.Stages = dex.StageChanges{}
}

// Efficacy is the product of the chart entries of t against every current type.
func (p *BattlePokemon) Efficacy(t dex.Type) float64 {
	e := 1.0
	for _, def := range p.Types {
		e *= p.chart.Efficacy(t, def).Modifier()
	}
	return e
}

// STAB returns the same-type attack bonus for a move of type t.
func (p *BattlePokemon) STAB(t dex.Type) float64 {
	for _, own := range p.Types {
		if own != t {
			continue
		}
		if p.Member.HasAbility(dex.AbilityAdaptability) {
			return adaptabilityBonus
		}
		return stabBonus
	}
	return 1.0
}

// DirectDamage removes up to amount HP, bypassing the damage pipeline.
func (p *BattlePokemon) DirectDamage(amount uint16) uint16 {
	dealt := p.Bench.Damage(amount)
	if p.IsFainted() {
		slog.Debug("combatant fainted", "slot", p.Position, "species", p.Member.Species.Name)
	}
	return dealt
}

// DirectHeal restores up to amount HP, never above max HP.
func (p *BattlePokemon) DirectHeal(amount uint16) uint16 {
	return p.Bench.Heal(amount, p.MaxHP())
}

// DirectPercentage heals (positive percent) or damages (negative percent) by
// percent of base, at least 1. Zero percent does nothing.
func (p *BattlePokemon) DirectPercentage(base uint16, percent int8) uint16 {
	if percent == 0 {
		return 0
	}
	mag := uint32(percent)
	if percent < 0 {
		mag = uint32(-int32(percent))
	}
	amount := max(uint32(base)*mag/100, 1)
	amount = min(amount, math.MaxUint16)
	if percent > 0 {
		return p.DirectHeal(uint16(amount))
	}
	return p.DirectDamage(uint16(amount))
}
