package move

import (
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/rng"
)

// handler resolves one effect category. false aborts the whole use.
type handler func(a *action) (bool, error)

// handlers maps an effect category to its resolution. Categories missing
// here fail with ErrNotImplemented.
var handlers = map[dex.Effect]handler{}

func register(h handler, effects ...dex.Effect) {
	for _, e := range effects {
		if _, dup := handlers[e]; dup {
			panic("move: effect " + e.String() + " registered twice")
		}
		handlers[e] = h
	}
}

// Implemented reports whether effect e has a handler.
func Implemented(e dex.Effect) bool {
	_, ok := handlers[e]
	return ok
}

func init() {
	register(basic,
		dex.EffectRegularDamage,
		dex.EffectSleepTarget,
		dex.EffectChancePoisonTarget,
		dex.EffectHealUserHalfInflicted,
		dex.EffectChanceBurnTarget,
		dex.EffectChanceFreezeTarget,
		dex.EffectChanceParalyzeTarget,
		dex.EffectNeverMisses,
		dex.EffectLowerTargetAttack,
		dex.EffectLowerTargetDefense,
		dex.EffectLowerTargetSpeed,
		dex.EffectLowerTargetAccuracy,
		dex.EffectLowerTargetEvasion,
		dex.EffectChanceFlinchTarget,
		dex.EffectHealUserByHalfMaxHP,
		dex.EffectPayDay,
		dex.EffectIncreasedCritical,
		dex.EffectQuarterRecoil,
		dex.EffectConfuseTarget,
		dex.EffectLowerTargetAttack2,
		dex.EffectLowerTargetDefense2,
		dex.EffectLowerTargetSpeed2,
		dex.EffectLowerTargetSpecialDefense2,
		dex.EffectPoisonTarget,
		dex.EffectParalyzeTarget,
		dex.EffectChanceLowerTargetAttack,
		dex.EffectChanceLowerTargetDefense,
		dex.EffectChanceLowerTargetSpeed,
		dex.EffectChanceLowerTargetSpecialAttack,
		dex.EffectChanceLowerTargetSpecialDefense,
		dex.EffectChanceLowerTargetAccuracy,
		dex.EffectChanceConfuseTarget,
		dex.EffectVitalThrow,
		dex.EffectFast,
		dex.EffectRaiseUserAttack,
		dex.EffectRaiseUserDefense,
		dex.EffectRaiseUserSpecialAttack,
		dex.EffectRaiseUserEvasion,
		dex.EffectRaiseUserAttack2,
		dex.EffectRaiseUserDefense2,
		dex.EffectRaiseUserSpeed2,
		dex.EffectRaiseUserSpecialAttack2,
		dex.EffectRaiseUserSpecialDefense2,
	)
	register(faintUser, dex.EffectFaintUser)
	register(dreamEater, dex.EffectDreamEater)
	register(snore, dex.EffectSnore)
	register(haze, dex.EffectHaze)
	register(multiHit(HitCount), dex.EffectHit2To5Times)
	register(multiHit(func(rng.Source) int { return 2 }), dex.EffectHitTwice)
	register(halfRecoilIfMiss, dex.EffectHalfRecoilIfMiss)
	register(fixed(superFang), dex.EffectSuperFang)
	register(fixed(dragonRage), dex.EffectDragonRage)
	register(fixed(userLevel), dex.EffectUserLevelDamage)
	register(fixed(psywave), dex.EffectPsywave)
	register(painSplit, dex.EffectPainSplit)
	register(flail, dex.EffectMoreDamageWhenLessUserHP)
	register(splash, dex.EffectSplash)
}
