package move

import (
	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
)

var (
	onlyUser     = []battle.RelativeTarget{battle.TargetUser}
	onlyAlly     = []battle.RelativeTarget{battle.TargetAlly}
	usersSide    = []battle.RelativeTarget{battle.TargetUser, battle.TargetAlly}
	opponents    = []battle.RelativeTarget{battle.TargetOpponentForward, battle.TargetOpponentAcross}
	everyoneElse = []battle.RelativeTarget{battle.TargetAlly, battle.TargetOpponentForward, battle.TargetOpponentAcross}
	everyone     = []battle.RelativeTarget{battle.TargetUser, battle.TargetAlly, battle.TargetOpponentForward, battle.TargetOpponentAcross}
)

// Targets expands the move's target specifier into relative slots.
// Variable specifiers go through the user's targeting hook.
// The returned slice must not be modified.
func Targets(user *battle.BattlePokemon, mv *dex.Move) ([]battle.RelativeTarget, error) {
	switch mv.Target {
	case dex.TargetSpecificMove, dex.TargetSelectedPokemonReuseStolen, dex.TargetUserOrAlly,
		dex.TargetRandomOpponent, dex.TargetSelectedPokemon:
		rel, err := user.Hooks.Targeting.Call(user, mv.Target)
		if err != nil {
			return nil, err
		}
		return []battle.RelativeTarget{rel}, nil
	case dex.TargetAlly:
		return onlyAlly, nil
	case dex.TargetUsersField:
		return usersSide, nil
	case dex.TargetOpponentsField, dex.TargetAllOpponents:
		return opponents, nil
	case dex.TargetUser:
		return onlyUser, nil
	case dex.TargetAllOtherPokemon:
		return everyoneElse, nil
	case dex.TargetEntireField:
		return everyone, nil
	}
	panic("move: unknown target specifier " + mv.Target.String())
}
