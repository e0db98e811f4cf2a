package battle

import (
	"github.com/udisondev/battlecore/internal/ailment"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/team"
)

// BenchPokemon is the part of a combatant that persists across switches.
type BenchPokemon struct {
	Member *team.Member
	Status ailment.Bench

	hp uint16
	pp [team.MoveSlots]uint8
}

// NewBench creates a combatant at full HP and PP.
func NewBench(m *team.Member) *BenchPokemon {
	b := &BenchPokemon{Member: m, hp: m.Stat(dex.StatHP)}
	for i := range b.pp {
		b.pp[i] = m.MaxPP(i)
	}
	return b
}

// HP returns current hit points.
func (b *BenchPokemon) HP() uint16 { return b.hp }

// MaxHP returns the build's HP stat.
func (b *BenchPokemon) MaxHP() uint16 { return b.Member.Stat(dex.StatHP) }

// Fainted reports whether HP reached zero.
func (b *BenchPokemon) Fainted() bool { return b.hp == 0 }

// PP returns the remaining PP of slot, 0 for an invalid slot.
func (b *BenchPokemon) PP(slot int) uint8 {
	if slot < 0 || slot >= len(b.pp) {
		return 0
	}
	return b.pp[slot]
}

// SpendPP consumes one PP from slot. Returns false when nothing is left.
func (b *BenchPokemon) SpendPP(slot int) bool {
	if b.PP(slot) == 0 {
		return false
	}
	b.pp[slot]--
	return true
}

// Damage lowers HP by amount, saturating at zero, and returns the HP lost.
func (b *BenchPokemon) Damage(amount uint16) uint16 {
	amount = min(amount, b.hp)
	b.hp -= amount
	return amount
}

// Heal raises HP by amount up to maxHP and returns the HP gained.
func (b *BenchPokemon) Heal(amount, maxHP uint16) uint16 {
	if b.hp >= maxHP {
		return 0
	}
	amount = min(amount, maxHP-b.hp)
	b.hp += amount
	return amount
}

// SetHP sets HP directly, capped at maxHP.
func (b *BenchPokemon) SetHP(hp, maxHP uint16) {
	b.hp = min(hp, maxHP)
}
