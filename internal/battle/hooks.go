package battle

import (
	"fmt"

	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/hook"
)

// DamageHook contributes a multiplier to a chained calculation.
type DamageHook interface {
	Modify(ctx *DamageContext) float64
}

// DamageHookFunc adapts a function to DamageHook.
type DamageHookFunc func(ctx *DamageContext) float64

func (f DamageHookFunc) Modify(ctx *DamageContext) float64 { return f(ctx) }

// Multiplier is a DamageHook returning a constant.
type Multiplier float64

func (m Multiplier) Modify(*DamageContext) float64 { return float64(m) }

// CancelHook vetoes a rolled critical hit.
type CancelHook interface {
	Cancel(ctx *DamageContext) bool
}

// CancelHookFunc adapts a function to CancelHook.
type CancelHookFunc func(ctx *DamageContext) bool

func (f CancelHookFunc) Cancel(ctx *DamageContext) bool { return f(ctx) }

// TargetingHook picks the concrete target of a move whose specifier needs a
// runtime choice.
type TargetingHook interface {
	Target(user *BattlePokemon, spec dex.Target) (RelativeTarget, error)
}

// TargetingHookFunc adapts a function to TargetingHook.
type TargetingHookFunc func(user *BattlePokemon, spec dex.Target) (RelativeTarget, error)

func (f TargetingHookFunc) Target(user *BattlePokemon, spec dex.Target) (RelativeTarget, error) {
	return f(user, spec)
}

// DefaultTargeting sends single-target picks at the opponent in front and
// user-or-ally picks at the user.
var DefaultTargeting TargetingHook = TargetingHookFunc(defaultTarget)

func defaultTarget(_ *BattlePokemon, spec dex.Target) (RelativeTarget, error) {
	switch spec {
	case dex.TargetSpecificMove:
		return 0, fmt.Errorf("targeting %s: %w", spec, ErrNotImplemented)
	case dex.TargetSelectedPokemonReuseStolen, dex.TargetRandomOpponent, dex.TargetSelectedPokemon:
		return TargetOpponentForward, nil
	case dex.TargetUserOrAlly:
		return TargetUser, nil
	}
	panic("battle: targeting hook called for fixed specifier " + spec.String())
}

type targetingSlot struct {
	hook TargetingHook
}

// Targeting is the single-slot targeting override: a battle-wide hook that a
// combatant may shadow with its own.
type Targeting struct {
	battle  *targetingSlot
	overlay TargetingHook
}

// Call resolves spec for user through the overlay hook if set, else the battle hook.
func (t *Targeting) Call(user *BattlePokemon, spec dex.Target) (RelativeTarget, error) {
	if t.overlay != nil {
		return t.overlay.Target(user, spec)
	}
	return t.battle.hook.Target(user, spec)
}

// SetBattle replaces the battle-wide hook for every combatant.
func (t *Targeting) SetBattle(h TargetingHook) { t.battle.hook = h }

// SetOverlay shadows the battle hook for this combatant only; nil restores it.
func (t *Targeting) SetOverlay(h TargetingHook) { t.overlay = h }

// Hooks is the full set of modifier chains seen by one combatant.
type Hooks struct {
	Targeting Targeting

	UserAccuracy    *hook.Map[DamageHook]
	TargetAccuracy  *hook.Map[DamageHook]
	CriticalCancels *hook.Map[CancelHook]
	Power           *hook.Map[DamageHook]
	Attack          *hook.Map[DamageHook]
	Defense         *hook.Map[DamageHook]
	UserDamage      *hook.Map[DamageHook]
	TargetDamage    *hook.Map[DamageHook]
}

// NewHooks creates the battle-scope chains.
func NewHooks() *Hooks {
	return &Hooks{
		Targeting:       Targeting{battle: &targetingSlot{hook: DefaultTargeting}},
		UserAccuracy:    hook.NewBattle[DamageHook](),
		TargetAccuracy:  hook.NewBattle[DamageHook](),
		CriticalCancels: hook.NewBattle[CancelHook](),
		Power:           hook.NewBattle[DamageHook](),
		Attack:          hook.NewBattle[DamageHook](),
		Defense:         hook.NewBattle[DamageHook](),
		UserDamage:      hook.NewBattle[DamageHook](),
		TargetDamage:    hook.NewBattle[DamageHook](),
	}
}

// NewOverlay returns chains sharing h's battle scope with empty overlays.
func (h *Hooks) NewOverlay() *Hooks {
	return &Hooks{
		Targeting:       Targeting{battle: h.Targeting.battle},
		UserAccuracy:    h.UserAccuracy.NewOverlay(),
		TargetAccuracy:  h.TargetAccuracy.NewOverlay(),
		CriticalCancels: h.CriticalCancels.NewOverlay(),
		Power:           h.Power.NewOverlay(),
		Attack:          h.Attack.NewOverlay(),
		Defense:         h.Defense.NewOverlay(),
		UserDamage:      h.UserDamage.NewOverlay(),
		TargetDamage:    h.TargetDamage.NewOverlay(),
	}
}

// foldMul multiplies init by every hook of m in key order.
func foldMul(m *hook.Map[DamageHook], ctx *DamageContext, init float64) float64 {
	return hook.Fold(m, init, func(acc float64, h DamageHook) float64 {
		return acc * h.Modify(ctx)
	})
}
