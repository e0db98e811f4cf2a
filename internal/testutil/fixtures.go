package testutil

import (
	"testing"

	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/team"
)

// Dex возвращает встроенный справочник; тест падает, если он не загрузился.
func Dex(t testing.TB) *dex.Table {
	t.Helper()

	d, err := dex.Default()
	if err != nil {
		t.Fatalf("loading embedded dataset: %v", err)
	}
	return d
}

// MemberOption tweaks a build created by Member.
type MemberOption func(*team.Member)

func WithNature(n dex.Nature) MemberOption {
	return func(m *team.Member) { m.Nature = n }
}

func WithAbility(a dex.Ability) MemberOption {
	return func(m *team.Member) { m.Ability = a }
}

func WithIVs(ivs dex.BaseStats) MemberOption {
	return func(m *team.Member) { m.IVs = ivs }
}

func WithEVs(evs dex.BaseStats) MemberOption {
	return func(m *team.Member) { m.EVs = evs }
}

func WithPPUps(ups [team.MoveSlots]uint8) MemberOption {
	return func(m *team.Member) { m.PPUps = ups }
}

// Member собирает билд по именам вида и атак из встроенного справочника.
// Нейтральная натура, нулевые IV/EV.
func Member(t testing.TB, species string, level uint8, moves []string, opts ...MemberOption) *team.Member {
	t.Helper()

	d := Dex(t)
	sp, err := d.SpeciesByName(species)
	if err != nil {
		t.Fatalf("species %q: %v", species, err)
	}
	if len(moves) > team.MoveSlots {
		t.Fatalf("%d moves given, at most %d allowed", len(moves), team.MoveSlots)
	}

	m := &team.Member{
		Species:    sp,
		Level:      level,
		Friendship: 70,
	}
	if len(sp.Abilities) > 0 {
		m.Ability = sp.Abilities[0]
	}
	for i, name := range moves {
		mv, err := d.MoveByName(name)
		if err != nil {
			t.Fatalf("move %q: %v", name, err)
		}
		m.Moves[i] = mv
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Move looks a move up by name.
func Move(t testing.TB, name string) *dex.Move {
	t.Helper()

	mv, err := Dex(t).MoveByName(name)
	if err != nil {
		t.Fatalf("move %q: %v", name, err)
	}
	return mv
}

// Duel puts user and target into opposing forward slots sharing one battle
// scope of hooks.
func Duel(t testing.TB, user, target *team.Member) (*battle.BattlePokemon, *battle.BattlePokemon) {
	t.Helper()

	hooks := battle.NewHooks()
	chart := Dex(t)
	u := battle.NewBattlePokemon(battle.Battler1Slot1, 0, battle.NewBench(user), hooks, chart)
	o := battle.NewBattlePokemon(battle.Battler2Slot1, 0, battle.NewBench(target), hooks, chart)
	return u, o
}
