// Package ailment holds the status-condition state of a combatant: the
// persistent major status that survives switching, and the volatile flags
// that live only as long as the combatant stays on the field.
package ailment

// Major is the persistent, mutually exclusive status slot.
type Major uint8

const (
	MajorNone Major = iota
	MajorParalyzed
	MajorAsleep
	MajorFrozen
	MajorBurned
	MajorPoisoned
	MajorBadlyPoisoned
)

var majorNames = [...]string{"none", "paralyzed", "asleep", "frozen", "burned", "poisoned", "badly-poisoned"}

func (m Major) String() string {
	if int(m) < len(majorNames) {
		return majorNames[m]
	}
	return "unknown"
}

// Bench is the persistent status of a roster member.
type Bench struct {
	major      Major
	sleepTurns uint8
}

// Major returns the current major status.
func (b *Bench) Major() Major { return b.major }

// Set replaces the major status. sleepTurns is stored only for MajorAsleep.
func (b *Bench) Set(m Major, sleepTurns uint8) {
	b.major = m
	if m == MajorAsleep {
		b.sleepTurns = sleepTurns
	}
}

// Clear removes the major status. The sleep counter is left as is; it is
// never read unless the combatant is asleep.
func (b *Bench) Clear() {
	b.major = MajorNone
}

// SleepTurns returns the remaining sleep turns; ok is false when not asleep.
func (b *Bench) SleepTurns() (uint8, bool) {
	if b.major != MajorAsleep {
		return 0, false
	}
	return b.sleepTurns, true
}

// TickSleep spends one sleep turn and wakes the combatant when none remain.
// Returns true while still asleep.
func (b *Bench) TickSleep() bool {
	if b.major != MajorAsleep {
		return false
	}
	if b.sleepTurns > 0 {
		b.sleepTurns--
	}
	if b.sleepTurns == 0 {
		b.major = MajorNone
		return false
	}
	return true
}

func (b *Bench) IsParalyzed() bool { return b.major == MajorParalyzed }
func (b *Bench) IsAsleep() bool    { return b.major == MajorAsleep }
func (b *Bench) IsFrozen() bool    { return b.major == MajorFrozen }
func (b *Bench) IsBurned() bool    { return b.major == MajorBurned }

// IsPoisoned is true for both regular and bad poison.
func (b *Bench) IsPoisoned() bool {
	return b.major == MajorPoisoned || b.major == MajorBadlyPoisoned
}
