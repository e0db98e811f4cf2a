package sim

import (
	"context"
	"fmt"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/format"
	"github.com/udisondev/battlecore/internal/move"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/team"
)

// Matchup is one attacker using one move on one defender.
type Matchup struct {
	Attacker *team.Member
	Defender *team.Member
	Move     *dex.Move
}

// slot returns the attacker's slot holding the move, SlotIndirect otherwise.
func (m Matchup) slot() int {
	for i, mv := range m.Attacker.Moves {
		if mv != nil && mv.ID == m.Move.ID {
			return i
		}
	}
	return move.SlotIndirect
}

// DamageTrial sets up a fresh single battle for m in every trial and reports
// what the defender lost.
func DamageTrial(chart dex.TypeChart, m Matchup) Trial {
	slot := m.slot()
	return func(_ context.Context, src rng.Source) (Outcome, error) {
		b, err := format.NewSingle(chart, team.Team{m.Attacker.Clone()}, team.Team{m.Defender.Clone()})
		if err != nil {
			return Outcome{}, err
		}
		user := b.Active(battle.Battler1Slot1)
		target := b.Active(battle.Battler2Slot1)

		if _, err := move.NewExecutor(src).Execute(user, slot, m.Move, b); err != nil {
			return Outcome{}, fmt.Errorf("%s: %w", m.Move.Name, err)
		}
		lost := target.MaxHP() - target.HP()
		return Outcome{Hit: lost > 0, Damage: lost, Fainted: target.IsFainted()}, nil
	}
}
