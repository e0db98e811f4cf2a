// Package team describes combatant builds: the species, spread, nature and
// moveset chosen before the battle starts.
package team

import (
	"math"

	"github.com/udisondev/battlecore/internal/dex"
)

// MoveSlots is the number of move slots on a build.
const MoveSlots = 4

// Member is one combatant build.
// Builds are expected to have passed an external Validator; Stat and MaxPP
// still saturate instead of overflowing on illegal values.
type Member struct {
	Species    *dex.Species
	Gender     dex.Gender
	Ability    dex.Ability
	Nature     dex.Nature
	Held       *dex.Item
	Friendship uint8
	EVs        dex.BaseStats
	IVs        dex.BaseStats
	Moves      [MoveSlots]*dex.Move
	PPUps      [MoveSlots]uint8
	Level      uint8
}

// Team is an ordered roster; the first member leads.
type Team []*Member

// Validator reports whether a build is legal.
// Legality (gender and ability consistency, EV/IV caps, learnsets, level
// bounds) is owned by the caller; the core never enforces it.
type Validator interface {
	Validate(m *Member) error
}

// Stat computes a permanent stat from base, IV, EV, level and nature.
// Accuracy and Evasion return 0; they only exist as stages.
func (m *Member) Stat(stat dex.Stat) uint16 {
	if int(stat) >= dex.PermanentStats || m.Species == nil {
		return 0
	}
	base := uint32(m.Species.BaseStats.Get(stat))
	iv := uint32(m.IVs.Get(stat))
	ev := uint32(m.EVs.Get(stat))
	level := uint32(m.Level)

	core := ((2*base + iv + ev/4) * level) / 100
	var v uint32
	switch {
	case stat == dex.StatHP:
		v = core + level + 10
	case m.natureRaises(stat):
		v = ((core + 5) * 11) / 10
	case m.natureLowers(stat):
		v = ((core + 5) * 9) / 10
	default:
		v = core + 5
	}
	return clampUint16(v)
}

func (m *Member) natureRaises(stat dex.Stat) bool {
	s, ok := m.Nature.Increased()
	return ok && s == stat
}

func (m *Member) natureLowers(stat dex.Stat) bool {
	s, ok := m.Nature.Decreased()
	return ok && s == stat
}

// MaxPP returns the PP of a move slot including PP Ups (each adds a fifth of base PP).
func (m *Member) MaxPP(slot int) uint8 {
	if slot < 0 || slot >= MoveSlots || m.Moves[slot] == nil {
		return 0
	}
	base := uint32(m.Moves[slot].PP)
	ups := uint32(min(m.PPUps[slot], 3))
	return uint8(min(base+(base/5)*ups, math.MaxUint8))
}

// Clone returns a shallow copy; dataset records stay shared.
func (m *Member) Clone() *Member {
	c := *m
	return &c
}

// HasAbility reports whether the build carries ability a.
func (m *Member) HasAbility(a dex.Ability) bool {
	return m.Ability == a
}

func clampUint16(v uint32) uint16 {
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
