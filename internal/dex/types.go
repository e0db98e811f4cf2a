package dex

// Type — элементальный тип атаки или покемона.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFighting
	TypeFlying
	TypePoison
	TypeGround
	TypeRock
	TypeBug
	TypeGhost
	TypeSteel
	TypeFire
	TypeWater
	TypeGrass
	TypeElectric
	TypePsychic
	TypeIce
	TypeDragon
	TypeDark
	TypeFairy

	TypeCount = int(TypeFairy) + 1
)

var typeNames = [...]string{
	"normal", "fighting", "flying", "poison", "ground", "rock", "bug", "ghost", "steel",
	"fire", "water", "grass", "electric", "psychic", "ice", "dragon", "dark", "fairy",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// ParseType resolves a type by name (case-insensitive).
func ParseType(name string) (Type, bool) {
	return parseName[Type](typeNames[:], name)
}

// Efficacy is a single type matchup, stored as a percentage.
type Efficacy uint8

const (
	EfficacyNone    Efficacy = 0
	EfficacyNotVery Efficacy = 50
	EfficacyRegular Efficacy = 100
	EfficacySuper   Efficacy = 200
)

// Modifier returns the damage multiplier of the matchup.
func (e Efficacy) Modifier() float64 {
	return float64(e) / 100.0
}

func (e Efficacy) valid() bool {
	switch e {
	case EfficacyNone, EfficacyNotVery, EfficacyRegular, EfficacySuper:
		return true
	}
	return false
}

// TypeChart answers type matchup queries.
type TypeChart interface {
	Efficacy(attack, defend Type) Efficacy
}

// EfficacyTable is a dense attack×defend matchup matrix.
// The zero value is unusable; build one with NewEfficacyTable.
type EfficacyTable [TypeCount][TypeCount]Efficacy

// NewEfficacyTable returns a table where every matchup is regular.
func NewEfficacyTable() *EfficacyTable {
	var t EfficacyTable
	for a := range t {
		for d := range t[a] {
			t[a][d] = EfficacyRegular
		}
	}
	return &t
}

func (t *EfficacyTable) Efficacy(attack, defend Type) Efficacy {
	if int(attack) >= TypeCount || int(defend) >= TypeCount {
		return EfficacyRegular
	}
	return t[attack][defend]
}
