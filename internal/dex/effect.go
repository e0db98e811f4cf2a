package dex

// Effect is the closed enumeration of move-effect categories.
// Each value names the unique mechanical behaviour of a move beyond plain damage.
type Effect uint8

const (
	EffectRegularDamage Effect = iota
	EffectSleepTarget
	EffectChancePoisonTarget
	EffectHealUserHalfInflicted
	EffectChanceBurnTarget
	EffectChanceFreezeTarget
	EffectChanceParalyzeTarget
	EffectFaintUser
	EffectDreamEater
	EffectMirrorMove
	EffectRaiseUserAttack
	EffectRaiseUserDefense
	EffectRaiseUserSpecialAttack
	EffectRaiseUserEvasion
	EffectNeverMisses
	EffectLowerTargetAttack
	EffectLowerTargetDefense
	EffectLowerTargetSpeed
	EffectLowerTargetAccuracy
	EffectLowerTargetEvasion
	EffectHaze
	EffectBide
	EffectHit2To3TurnsThenConfuseUser
	EffectSwitchOutTarget
	EffectHit2To5Times
	EffectConversion
	EffectChanceFlinchTarget
	EffectHealUserByHalfMaxHP
	EffectToxic
	EffectPayDay
	EffectLightScreen
	EffectTriAttack
	EffectRest
	EffectOneHitKO
	EffectRazorWind
	EffectSuperFang
	EffectDragonRage
	EffectSixteenthHP2To5Turns
	EffectIncreasedCritical
	EffectHitTwice
	EffectHalfRecoilIfMiss
	EffectMist
	EffectFocusEnergy
	EffectQuarterRecoil
	EffectConfuseTarget
	EffectRaiseUserAttack2
	EffectRaiseUserDefense2
	EffectRaiseUserSpeed2
	EffectRaiseUserSpecialAttack2
	EffectRaiseUserSpecialDefense2
	EffectTransform
	EffectLowerTargetAttack2
	EffectLowerTargetDefense2
	EffectLowerTargetSpeed2
	EffectLowerTargetSpecialDefense2
	EffectReflect
	EffectPoisonTarget
	EffectParalyzeTarget
	EffectChanceLowerTargetAttack
	EffectChanceLowerTargetDefense
	EffectChanceLowerTargetSpeed
	EffectChanceLowerTargetSpecialAttack
	EffectChanceLowerTargetSpecialDefense
	EffectChanceLowerTargetAccuracy
	EffectSkyAttack
	EffectChanceConfuseTarget
	EffectTwineedle
	EffectVitalThrow
	EffectSubstitute
	EffectRechargeNextTurn
	EffectRage
	EffectMimic
	EffectMetronome
	EffectLeechSeed
	EffectSplash
	EffectDisable
	EffectUserLevelDamage
	EffectPsywave
	EffectCounter
	EffectEncore
	EffectPainSplit
	EffectSnore
	EffectConversion2
	EffectGuaranteeNextMoveHit
	EffectSketch
	EffectSleepTalk
	EffectDestinyBond
	EffectMoreDamageWhenLessUserHP
	EffectSpite
	EffectFalseSwipe
	EffectCurePartyStatus
	EffectFast
	EffectTripleKick
	EffectThief
	EffectMeanLook
	EffectNightmare
	EffectFlameWheel
	EffectCurse
	EffectProtect
	EffectBellyDrum
	EffectSpikes
	EffectForesight
	EffectPerishSong
	EffectSandstorm
	EffectEndure
	EffectRollout
	EffectSwagger
	EffectFuryCutter
	EffectAttract
	EffectReturn
	EffectPresent
	EffectFrustration
	EffectSafeguard
	EffectMagnitude
	EffectBatonPass
	EffectPursuit
	EffectRapidSpin

	effectCount = int(EffectRapidSpin) + 1
)

var effectNames = [effectCount]string{
	"regular-damage", "sleep-target", "chance-poison-target", "heal-user-half-inflicted",
	"chance-burn-target", "chance-freeze-target", "chance-paralyze-target", "faint-user",
	"dream-eater", "mirror-move", "raise-user-attack", "raise-user-defense",
	"raise-user-special-attack", "raise-user-evasion", "never-misses", "lower-target-attack",
	"lower-target-defense", "lower-target-speed", "lower-target-accuracy", "lower-target-evasion",
	"haze", "bide", "hit-2-to-3-turns-then-confuse-user", "switch-out-target", "hit-2-to-5-times",
	"conversion", "chance-flinch-target", "heal-user-by-half-max-hp", "toxic", "pay-day",
	"light-screen", "tri-attack", "rest", "one-hit-ko", "razor-wind", "super-fang", "dragon-rage",
	"sixteenth-hp-2-to-5-turns", "increased-critical", "hit-twice", "half-recoil-if-miss", "mist",
	"focus-energy", "quarter-recoil", "confuse-target", "raise-user-attack-2",
	"raise-user-defense-2", "raise-user-speed-2", "raise-user-special-attack-2",
	"raise-user-special-defense-2", "transform", "lower-target-attack-2",
	"lower-target-defense-2", "lower-target-speed-2", "lower-target-special-defense-2", "reflect",
	"poison-target", "paralyze-target", "chance-lower-target-attack",
	"chance-lower-target-defense", "chance-lower-target-speed",
	"chance-lower-target-special-attack", "chance-lower-target-special-defense",
	"chance-lower-target-accuracy", "sky-attack", "chance-confuse-target", "twineedle",
	"vital-throw", "substitute", "recharge-next-turn", "rage", "mimic", "metronome", "leech-seed",
	"splash", "disable", "user-level-damage", "psywave", "counter", "encore", "pain-split",
	"snore", "conversion-2", "guarantee-next-move-hit", "sketch", "sleep-talk", "destiny-bond",
	"more-damage-when-less-user-hp", "spite", "false-swipe", "cure-party-status", "fast",
	"triple-kick", "thief", "mean-look", "nightmare", "flame-wheel", "curse", "protect",
	"belly-drum", "spikes", "foresight", "perish-song", "sandstorm", "endure", "rollout",
	"swagger", "fury-cutter", "attract", "return", "present", "frustration", "safeguard",
	"magnitude", "baton-pass", "pursuit", "rapid-spin",
}

func (e Effect) String() string {
	if int(e) < effectCount {
		return effectNames[e]
	}
	return "unknown"
}

// ParseEffect resolves an effect category by name.
func ParseEffect(name string) (Effect, bool) {
	return parseName[Effect](effectNames[:], name)
}
