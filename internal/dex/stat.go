package dex

// Stat identifies a combatant statistic.
// Accuracy and Evasion exist only as stage targets.
type Stat uint8

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpecialAttack
	StatSpecialDefense
	StatSpeed
	StatAccuracy
	StatEvasion
)

// ChangeableStats is the number of stats that carry a stage (everything but HP).
const ChangeableStats = 7

// PermanentStats is the number of stats with a base value (HP..Speed).
const PermanentStats = 6

var statNames = [...]string{
	"hp", "attack", "defense", "special-attack", "special-defense", "speed", "accuracy", "evasion",
}

func (s Stat) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}
	return "unknown"
}

// ParseStat resolves a stat by name (case-insensitive).
func ParseStat(name string) (Stat, bool) {
	return parseName[Stat](statNames[:], name)
}

// StageIndex returns the index of s in a stage array.
// Panics for HP, which never carries a stage.
func (s Stat) StageIndex() int {
	if s == StatHP || s > StatEvasion {
		panic("dex: stat " + s.String() + " has no stage")
	}
	return int(s) - 1
}

// StageStat is the inverse of StageIndex.
func StageStat(index int) Stat {
	return Stat(index + 1)
}

// BaseStats holds one value per permanent stat, indexed by Stat.
type BaseStats [PermanentStats]uint8

// Get returns the value for stat, or 0 for Accuracy/Evasion.
func (b BaseStats) Get(stat Stat) uint8 {
	if int(stat) >= PermanentStats {
		return 0
	}
	return b[stat]
}

// Total sums every entry.
func (b BaseStats) Total() uint16 {
	var sum uint16
	for _, v := range b {
		sum += uint16(v)
	}
	return sum
}

// StageChanges is a signed delta for each changeable stat, indexed by StageIndex.
type StageChanges [ChangeableStats]int8

// IsZero reports whether no stat changes.
func (c StageChanges) IsZero() bool {
	return c == StageChanges{}
}

// Nature adjusts two permanent stats by ±10%.
// Natures are numbered so that n/5 is the raised stat and n%5 the lowered one,
// over the order Attack, Defense, Speed, SpecialAttack, SpecialDefense.
type Nature uint8

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky

	natureCount = int(NatureQuirky) + 1
)

var natureNames = [...]string{
	"hardy", "lonely", "brave", "adamant", "naughty",
	"bold", "docile", "relaxed", "impish", "lax",
	"timid", "hasty", "serious", "jolly", "naive",
	"modest", "mild", "quiet", "bashful", "rash",
	"calm", "gentle", "sassy", "careful", "quirky",
}

var natureStats = [5]Stat{StatAttack, StatDefense, StatSpeed, StatSpecialAttack, StatSpecialDefense}

func (n Nature) String() string {
	if int(n) < natureCount {
		return natureNames[n]
	}
	return "unknown"
}

// ParseNature resolves a nature by name (case-insensitive).
func ParseNature(name string) (Nature, bool) {
	return parseName[Nature](natureNames[:], name)
}

// Increased returns the stat raised by the nature; ok is false for neutral natures.
func (n Nature) Increased() (Stat, bool) {
	if int(n) >= natureCount || n.neutral() {
		return 0, false
	}
	return natureStats[n/5], true
}

// Decreased returns the stat lowered by the nature; ok is false for neutral natures.
func (n Nature) Decreased() (Stat, bool) {
	if int(n) >= natureCount || n.neutral() {
		return 0, false
	}
	return natureStats[n%5], true
}

func (n Nature) neutral() bool {
	return n/5 == n%5
}
