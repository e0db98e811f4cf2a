package dex

// MoveID — идентификатор атаки в справочнике.
type MoveID uint16

// DamageClass selects which offense/defense pair a move uses.
type DamageClass uint8

const (
	DamageClassStatus DamageClass = iota
	DamageClassPhysical
	DamageClassSpecial
)

var damageClassNames = [...]string{"status", "physical", "special"}

func (c DamageClass) String() string {
	if int(c) < len(damageClassNames) {
		return damageClassNames[c]
	}
	return "unknown"
}

// ParseDamageClass resolves a damage class by name.
func ParseDamageClass(name string) (DamageClass, bool) {
	return parseName[DamageClass](damageClassNames[:], name)
}

// Target is the abstract target specifier carried by a move.
type Target uint8

const (
	TargetSpecificMove Target = iota
	TargetSelectedPokemonReuseStolen
	TargetAlly
	TargetUsersField
	TargetUserOrAlly
	TargetOpponentsField
	TargetUser
	TargetRandomOpponent
	TargetAllOtherPokemon
	TargetSelectedPokemon
	TargetAllOpponents
	TargetEntireField
)

var targetNames = [...]string{
	"specific-move", "selected-pokemon-me-first", "ally", "users-field", "user-or-ally",
	"opponents-field", "user", "random-opponent", "all-other-pokemon", "selected-pokemon",
	"all-opponents", "entire-field",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "unknown"
}

// ParseTarget resolves a target specifier by name.
func ParseTarget(name string) (Target, bool) {
	return parseName[Target](targetNames[:], name)
}

// IsVariable reports whether the concrete target is chosen at runtime.
func (t Target) IsVariable() bool {
	switch t {
	case TargetSpecificMove, TargetSelectedPokemonReuseStolen, TargetUserOrAlly,
		TargetRandomOpponent, TargetSelectedPokemon:
		return true
	}
	return false
}

// MetaCategory is the broad mechanical family of a move.
type MetaCategory uint8

const (
	MetaDamage MetaCategory = iota
	MetaAilment
	MetaNetGoodStats
	MetaHeal
	MetaDamageAilment
	MetaSwagger
	MetaDamageLower
	MetaDamageRaise
	MetaDamageHeal
	MetaOHKO
	MetaWholeFieldEffect
	MetaFieldEffect
	MetaForceSwitch
	MetaUnique
)

var metaCategoryNames = [...]string{
	"damage", "ailment", "net-good-stats", "heal", "damage+ailment", "swagger",
	"damage+lower", "damage+raise", "damage+heal", "ohko", "whole-field-effect",
	"field-effect", "force-switch", "unique",
}

func (c MetaCategory) String() string {
	if int(c) < len(metaCategoryNames) {
		return metaCategoryNames[c]
	}
	return "unknown"
}

// ParseMetaCategory resolves a meta category by name ("damage+lower" == "damage-lower").
func ParseMetaCategory(name string) (MetaCategory, bool) {
	return parseName[MetaCategory](metaCategoryNames[:], name)
}

// Ailment is the status a move may inflict.
type Ailment uint8

const (
	AilmentNone Ailment = iota
	AilmentParalysis
	AilmentSleep
	AilmentFreeze
	AilmentBurn
	AilmentPoison
	AilmentConfusion
	AilmentInfatuation
	AilmentTrap
	AilmentNightmare
	AilmentTorment
	AilmentDisable
	AilmentYawn
	AilmentHealBlock
	AilmentNoTypeImmunity
	AilmentLeechSeed
	AilmentEmbargo
	AilmentPerishSong
	AilmentIngrain
)

var ailmentNames = [...]string{
	"none", "paralysis", "sleep", "freeze", "burn", "poison", "confusion", "infatuation",
	"trap", "nightmare", "torment", "disable", "yawn", "heal-block", "no-type-immunity",
	"leech-seed", "embargo", "perish-song", "ingrain",
}

func (a Ailment) String() string {
	if int(a) < len(ailmentNames) {
		return ailmentNames[a]
	}
	return "unknown"
}

// ParseAilment resolves an ailment by name.
func ParseAilment(name string) (Ailment, bool) {
	return parseName[Ailment](ailmentNames[:], name)
}

// MoveMeta carries the secondary-effect payload of a move.
// Chances are percentages; 0 on a damaging move means "never".
type MoveMeta struct {
	Category      MetaCategory
	Ailment       Ailment
	AilmentChance uint8
	FlinchChance  uint8
	StatChance    uint8
	StatChanges   StageChanges
	// Drain is a percentage of damage dealt: positive heals the user, negative is recoil.
	Drain int8
	// Healing is a percentage of the user's max HP.
	Healing      int8
	CriticalRate int8
	MinHits      uint8
	MaxHits      uint8
}

// Move is an immutable move record.
type Move struct {
	ID          MoveID
	Name        string
	Type        Type
	Power       uint8
	Accuracy    *uint8 // nil: never misses
	PP          uint8
	Priority    int8
	DamageClass DamageClass
	Target      Target
	Effect      Effect
	Meta        MoveMeta
}

// HasAccuracy reports whether the move can miss.
func (m *Move) HasAccuracy() bool {
	return m.Accuracy != nil
}
