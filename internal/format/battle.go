// Package format owns battle topology: which roster members occupy which
// slots, switching, and turning absolute slots into combatants.
package format

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/team"
)

var (
	ErrEmptyTeam     = errors.New("team has too few members")
	ErrInvalidSwitch = errors.New("invalid switch")
)

// Layout is the number of active slots per side.
type Layout int

const (
	Single Layout = 1
	Double Layout = 2
)

func (l Layout) String() string {
	switch l {
	case Single:
		return "single"
	case Double:
		return "double"
	}
	return "unknown"
}

// Side is one trainer's roster and the combatants it has on the field.
type Side struct {
	Bench  []*battle.BenchPokemon
	Active [2]*battle.BattlePokemon
}

// IsActive reports whether roster member index is on the field.
func (s *Side) IsActive(index int) bool {
	for _, p := range s.Active {
		if p != nil && p.Index == index {
			return true
		}
	}
	return false
}

// Defeated reports whether every roster member has fainted.
func (s *Side) Defeated() bool {
	for _, b := range s.Bench {
		if !b.Fainted() {
			return false
		}
	}
	return true
}

// Battle is one battle instance. It is not safe for concurrent use.
type Battle struct {
	Layout Layout
	Hooks  *battle.Hooks
	Sides  [2]*Side

	chart dex.TypeChart
}

// NewSingle starts a one-on-one battle with each team's lead on the field.
func NewSingle(chart dex.TypeChart, team1, team2 team.Team) (*Battle, error) {
	return newBattle(Single, chart, team1, team2)
}

// NewDouble starts a two-on-two battle where each trainer fields its first
// two members.
func NewDouble(chart dex.TypeChart, team1, team2 team.Team) (*Battle, error) {
	return newBattle(Double, chart, team1, team2)
}

func newBattle(layout Layout, chart dex.TypeChart, teams ...team.Team) (*Battle, error) {
	b := &Battle{
		Layout: layout,
		Hooks:  battle.NewHooks(),
		chart:  chart,
	}
	for side, t := range teams {
		if len(t) < int(layout) {
			return nil, fmt.Errorf("side %d: %d members for %s battle: %w", side+1, len(t), layout, ErrEmptyTeam)
		}
		s := &Side{Bench: make([]*battle.BenchPokemon, len(t))}
		for i, m := range t {
			s.Bench[i] = battle.NewBench(m)
		}
		b.Sides[side] = s
		for pos := range int(layout) {
			b.enter(slotOf(side, pos), pos)
		}
	}
	slog.Debug("battle started", "layout", layout, "team1", len(teams[0]), "team2", len(teams[1]))
	return b, nil
}

func slotOf(side, pos int) battle.AbsoluteTarget {
	return battle.AbsoluteTarget(side<<1 | pos)
}

func (b *Battle) enter(slot battle.AbsoluteTarget, index int) *battle.BattlePokemon {
	side := b.Sides[slot.Side()]
	p := battle.NewBattlePokemon(slot, index, side.Bench[index], b.Hooks, b.chart)
	side.Active[slot&1] = p
	return p
}

// Active returns the combatant in slot, nil when the slot is unused.
func (b *Battle) Active(slot battle.AbsoluteTarget) *battle.BattlePokemon {
	if int(slot) >= battle.SlotCount || int(slot&1) >= int(b.Layout) {
		return nil
	}
	return b.Sides[slot.Side()].Active[slot&1]
}

// Resolve maps absolute slots to the live combatants in them, keeping order.
func (b *Battle) Resolve(targets []battle.AbsoluteTarget) []*battle.BattlePokemon {
	out := make([]*battle.BattlePokemon, 0, len(targets))
	for _, t := range targets {
		if p := b.Active(t); p != nil && !p.IsFainted() {
			out = append(out, p)
		}
	}
	return out
}

// Switch sends roster member index into slot. The incoming combatant starts
// with fresh stages, volatile ailments and overlay hooks; HP, PP and its
// major ailment carry over.
func (b *Battle) Switch(slot battle.AbsoluteTarget, index int) (*battle.BattlePokemon, error) {
	if b.Active(slot) == nil {
		return nil, fmt.Errorf("slot %s not in a %s battle: %w", slot, b.Layout, ErrInvalidSwitch)
	}
	side := b.Sides[slot.Side()]
	switch {
	case index < 0 || index >= len(side.Bench):
		return nil, fmt.Errorf("roster index %d out of range: %w", index, ErrInvalidSwitch)
	case side.IsActive(index):
		return nil, fmt.Errorf("roster index %d already active: %w", index, ErrInvalidSwitch)
	case side.Bench[index].Fainted():
		return nil, fmt.Errorf("roster index %d fainted: %w", index, ErrInvalidSwitch)
	}
	p := b.enter(slot, index)
	slog.Debug("switched in", "slot", slot, "index", index, "species", p.Member.Species.Name)
	return p, nil
}

// Winner returns the winning side (0 or 1) once the other is defeated, or
// -1 when both went down together.
func (b *Battle) Winner() (int, bool) {
	switch {
	case b.Sides[0].Defeated() && b.Sides[1].Defeated():
		return -1, true
	case b.Sides[1].Defeated():
		return 0, true
	case b.Sides[0].Defeated():
		return 1, true
	}
	return 0, false
}
