package dex

// SpeciesID — идентификатор формы покемона в справочнике.
type SpeciesID uint16

// Ability identifies an ability. Only abilities the core inspects are named.
type Ability uint16

const (
	AbilityNone         Ability = 0
	AbilityAdaptability Ability = 91
	AbilityMagicGuard   Ability = 98
)

// ItemID identifies a held item.
type ItemID uint16

// Gender of a team member.
type Gender uint8

const (
	GenderFemale Gender = iota
	GenderMale
	GenderGenderless
)

var genderNames = [...]string{"female", "male", "genderless"}

func (g Gender) String() string {
	if int(g) < len(genderNames) {
		return genderNames[g]
	}
	return "unknown"
}

// ParseGender resolves a gender by name.
func ParseGender(name string) (Gender, bool) {
	return parseName[Gender](genderNames[:], name)
}

// Species is an immutable species record.
type Species struct {
	ID        SpeciesID
	Name      string
	Types     []Type // one or two entries
	BaseStats BaseStats
	Abilities []Ability
	// GenderRate is the female ratio in eighths; -1 means genderless.
	GenderRate int8
}

// HasType reports whether t is one of the species' types.
func (s *Species) HasType(t Type) bool {
	for _, st := range s.Types {
		if st == t {
			return true
		}
	}
	return false
}

// Item is an immutable item record.
type Item struct {
	ID       ItemID
	Name     string
	Holdable bool
}
