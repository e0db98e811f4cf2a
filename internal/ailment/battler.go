package ailment

import "math/bits"

// Flag is a volatile status bit. Effects that never outlast the next turn are
// not represented.
type Flag uint32

const (
	FlagTelekinesis   Flag = 0x00000001
	FlagSmackedDown   Flag = 0x00000002
	FlagConfused      Flag = 0x00000004
	FlagInfatuated    Flag = 0x00000008
	FlagTrapped       Flag = 0x00000010
	FlagNightmare     Flag = 0x00000020
	FlagTormented     Flag = 0x00000040
	FlagMoveDisabled  Flag = 0x00000080
	FlagDrowsy        Flag = 0x00000100
	FlagHealBlocked   Flag = 0x00000200
	FlagNoGhostImmune Flag = 0x00000400
	FlagNoDarkImmune  Flag = 0x00000800
	FlagSeeded        Flag = 0x00001000
	FlagEmbargoed     Flag = 0x00002000
	FlagPerishing     Flag = 0x00004000
	FlagRooted        Flag = 0x00008000
	FlagCursed        Flag = 0x00010000
	FlagVeiled        Flag = 0x00020000
	FlagCurled        Flag = 0x00040000
	FlagLevitating    Flag = 0x00080000
	FlagMinimized     Flag = 0x00100000
	FlagSubstituted   Flag = 0x00200000
	FlagBadlyPoisoned Flag = 0x00400000
)

// counter slots for flags that carry a duration or magnitude
const (
	noCounter = -1 + iota
	counterConfusedAttacks
	counterTormentedSlot
	counterDisabledSlot
	counterHealBlockTurns
	counterEmbargoTurns
	counterPerish
	counterSubstituteHP
	counterBadlyPoisonedTurns

	counterCount
)

func counterSlot(f Flag) int {
	switch f {
	case FlagConfused:
		return counterConfusedAttacks
	case FlagTormented:
		return counterTormentedSlot
	case FlagMoveDisabled:
		return counterDisabledSlot
	case FlagHealBlocked:
		return counterHealBlockTurns
	case FlagEmbargoed:
		return counterEmbargoTurns
	case FlagPerishing:
		return counterPerish
	case FlagSubstituted:
		return counterSubstituteHP
	case FlagBadlyPoisoned:
		return counterBadlyPoisonedTurns
	}
	return noCounter
}

// HasCounter reports whether f carries an associated counter.
func (f Flag) HasCounter() bool {
	return counterSlot(f) != noCounter
}

// Battler is the volatile status of a combatant on the field.
// The zero value has no flags set. A fresh Battler is created on every switch-in.
type Battler struct {
	flags    Flag
	counters [counterCount]uint16
}

// Flags returns the raw bitset.
func (b *Battler) Flags() Flag { return b.flags }

// Has reports whether every bit of f is set.
func (b *Battler) Has(f Flag) bool {
	return b.flags&f == f
}

// Set raises a single flag and initialises its counter in the same step.
// counter is ignored for flags without one.
func (b *Battler) Set(f Flag, counter uint16) {
	mustSingle(f)
	b.flags |= f
	if slot := counterSlot(f); slot != noCounter {
		b.counters[slot] = counter
	}
}

// Clear lowers f. Counters are not touched; Counter ignores them once the bit is gone.
func (b *Battler) Clear(f Flag) {
	b.flags &^= f
}

// Counter returns the counter of f, trusted only while f is set.
func (b *Battler) Counter(f Flag) (uint16, bool) {
	slot := counterSlot(f)
	if slot == noCounter || !b.Has(f) {
		return 0, false
	}
	return b.counters[slot], true
}

// SetCounter updates the counter of an already raised flag.
// Returns false when f is not set or has no counter.
func (b *Battler) SetCounter(f Flag, counter uint16) bool {
	slot := counterSlot(f)
	if slot == noCounter || !b.Has(f) {
		return false
	}
	b.counters[slot] = counter
	return true
}

// Tick decrements the counter of f, lowering the flag when it reaches zero.
// Returns true while f remains set.
func (b *Battler) Tick(f Flag) bool {
	n, ok := b.Counter(f)
	if !ok {
		return false
	}
	if n > 0 {
		n--
	}
	if n == 0 {
		b.Clear(f)
		return false
	}
	b.counters[counterSlot(f)] = n
	return true
}

// Reset lowers every flag.
func (b *Battler) Reset() {
	b.flags = 0
}

func mustSingle(f Flag) {
	if bits.OnesCount32(uint32(f)) != 1 {
		panic("ailment: Set expects exactly one flag")
	}
}
