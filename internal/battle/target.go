package battle

// AbsoluteTarget is a concrete battle slot. Side is bit 1, position on the
// side is bit 0.
type AbsoluteTarget uint8

const (
	Battler1Slot1 AbsoluteTarget = iota
	Battler1Slot2
	Battler2Slot1
	Battler2Slot2

	SlotCount = int(Battler2Slot2) + 1
)

var absoluteNames = [...]string{"1.1", "1.2", "2.1", "2.2"}

func (a AbsoluteTarget) String() string {
	if int(a) < SlotCount {
		return absoluteNames[a]
	}
	return "unknown"
}

// Side returns 0 or 1.
func (a AbsoluteTarget) Side() int {
	return int(a>>1) & 1
}

// Relative returns where a sits as seen from user.
func (a AbsoluteTarget) Relative(user AbsoluteTarget) RelativeTarget {
	return RelativeTarget((a ^ user) & 3)
}

// RelativeTarget is a slot as seen from the acting combatant.
type RelativeTarget uint8

const (
	TargetUser RelativeTarget = iota
	TargetAlly
	TargetOpponentForward
	TargetOpponentAcross
)

var relativeNames = [...]string{"user", "ally", "opponent-forward", "opponent-across"}

func (r RelativeTarget) String() string {
	if int(r) < len(relativeNames) {
		return relativeNames[r]
	}
	return "unknown"
}

// Absolute converts r to a concrete slot for user.
func (r RelativeTarget) Absolute(user AbsoluteTarget) AbsoluteTarget {
	return AbsoluteTarget((uint8(r) ^ uint8(user)) & 3)
}
