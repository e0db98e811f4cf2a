package move_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/ailment"
	"github.com/udisondev/battlecore/internal/battle"
	"github.com/udisondev/battlecore/internal/dex"
	"github.com/udisondev/battlecore/internal/format"
	"github.com/udisondev/battlecore/internal/move"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/team"
	"github.com/udisondev/battlecore/internal/testutil"
)

const (
	noCrit  = 47
	yesCrit = 0
	topRoll = 15
)

type duel struct {
	b      *format.Battle
	user   *battle.BattlePokemon
	target *battle.BattlePokemon
}

func newDuel(t *testing.T, user, target *team.Member) duel {
	t.Helper()
	b, err := format.NewSingle(testutil.Dex(t), team.Team{user}, team.Team{target})
	require.NoError(t, err)
	return duel{b: b, user: b.Active(battle.Battler1Slot1), target: b.Active(battle.Battler2Slot1)}
}

func snorlax(t *testing.T, moves ...string) *team.Member {
	t.Helper()
	return testutil.Member(t, "Snorlax", 50, moves)
}

func (d duel) use(t *testing.T, src rng.Source, name string) (bool, error) {
	t.Helper()
	mv := testutil.Move(t, name)
	slot := move.SlotIndirect
	for i, m := range d.user.Member.Moves {
		if m == mv {
			slot = i
		}
	}
	return move.NewExecutor(src).Execute(d.user, slot, mv, d.b)
}

// maxDamage computes the top of the damage spread for name without side effects.
func (d duel) maxDamage(t *testing.T, name string) uint16 {
	t.Helper()
	ctx := battle.NewContext(&rng.Script{Ints: []int{noCrit}}, d.user, d.target, 0, testutil.Move(t, name), 1)
	return ctx.CalcMaxDamage()
}

// critDamage is maxDamage for a critical strike.
func (d duel) critDamage(t *testing.T, name string) uint16 {
	t.Helper()
	ctx := battle.NewContext(&rng.Script{Ints: []int{yesCrit}}, d.user, d.target, 0, testutil.Move(t, name), 1)
	return ctx.CalcMaxDamage()
}

func TestExecute_RegularDamage(t *testing.T) {
	d := newDuel(t, snorlax(t, "Tackle"), snorlax(t))
	want := d.maxDamage(t, "Tackle")
	src := &rng.Script{Ints: []int{noCrit, topRoll}}

	ok, err := d.use(t, src, "Tackle")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.target.MaxHP()-want, d.target.HP())
	assert.Equal(t, d.user.Member.MaxPP(0)-1, d.user.Bench.PP(0))
	assert.True(t, src.Done())
}

func TestExecute_NoTargets(t *testing.T) {
	d := newDuel(t, snorlax(t, "Tackle"), snorlax(t))
	nobody := move.ResolverFunc(func([]battle.AbsoluteTarget) []*battle.BattlePokemon { return nil })

	ok, err := move.NewExecutor(&rng.Script{}).Execute(d.user, 0, testutil.Move(t, "Tackle"), nobody)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, d.user.Member.MaxPP(0), d.user.Bench.PP(0), "no PP spent")
}

func TestExecute_OutOfPP(t *testing.T) {
	d := newDuel(t, snorlax(t, "Tackle"), snorlax(t))
	for d.user.Bench.SpendPP(0) {
	}

	ok, err := d.use(t, &rng.Script{}, "Tackle")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, d.target.MaxHP(), d.target.HP())
}

func TestExecute_IndirectSlotSkipsPP(t *testing.T) {
	d := newDuel(t, snorlax(t, "Tackle"), snorlax(t))

	ok, err := move.NewExecutor(&rng.Script{Ints: []int{noCrit, topRoll}}).
		Execute(d.user, move.SlotIndirect, testutil.Move(t, "Tackle"), d.b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.user.Member.MaxPP(0), d.user.Bench.PP(0))
}

func TestExecute_NotImplemented(t *testing.T) {
	d := newDuel(t, snorlax(t, "Light Screen"), snorlax(t))

	ok, err := d.use(t, &rng.Script{}, "Light Screen")
	assert.ErrorIs(t, err, move.ErrNotImplemented)
	assert.False(t, ok)
	assert.Equal(t, d.user.Member.MaxPP(0), d.user.Bench.PP(0), "rejected before PP")
	assert.False(t, move.Implemented(dex.EffectLightScreen))
	assert.True(t, move.Implemented(dex.EffectSplash))
}

func TestExecute_SecondaryNotImplemented(t *testing.T) {
	d := newDuel(t, testutil.Member(t, "Charmander", 50, []string{"Ember"}), snorlax(t))

	ok, err := d.use(t, &rng.Script{Ints: []int{noCrit, topRoll, 0}}, "Ember")
	assert.True(t, ok)
	assert.ErrorIs(t, err, move.ErrNotImplemented)
	assert.Less(t, d.target.HP(), d.target.MaxHP(), "damage before the ailment stays applied")
}

func TestExecute_Splash(t *testing.T) {
	d := newDuel(t, snorlax(t, "Splash"), snorlax(t))
	src := &rng.Script{}

	ok, err := d.use(t, src, "Splash")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.user.Member.MaxPP(0)-1, d.user.Bench.PP(0))
}

func TestExecute_RaiseUser(t *testing.T) {
	d := newDuel(t, snorlax(t, "Swords Dance"), snorlax(t))

	ok, err := d.use(t, &rng.Script{Ints: []int{noCrit}}, "Swords Dance")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int8(2), d.user.Stage(dex.StatAttack))
	assert.True(t, d.target.Stages.IsZero())
}

func TestExecute_Haze(t *testing.T) {
	d := newDuel(t, snorlax(t, "Haze"), snorlax(t))
	d.user.ChangeStats(dex.StageChanges{0: 3, 4: -1})
	d.target.ChangeStats(dex.StageChanges{1: -2, 6: 1})

	ok, err := d.use(t, &rng.Script{}, "Haze")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, d.user.Stages.IsZero())
	assert.True(t, d.target.Stages.IsZero())
}

func TestExecute_DreamEater(t *testing.T) {
	d := newDuel(t, snorlax(t, "Dream Eater"), snorlax(t))

	ok, err := d.use(t, &rng.Script{}, "Dream Eater")
	require.NoError(t, err)
	assert.False(t, ok, "target awake")
	assert.Equal(t, d.target.MaxHP(), d.target.HP())

	d.target.Bench.Status.Set(ailment.MajorAsleep, 3)
	ok, err = d.use(t, &rng.Script{Ints: []int{noCrit, topRoll}}, "Dream Eater")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Less(t, d.target.HP(), d.target.MaxHP())
}

func TestExecute_Snore(t *testing.T) {
	d := newDuel(t, snorlax(t, "Snore"), snorlax(t))

	ok, err := d.use(t, &rng.Script{}, "Snore")
	require.NoError(t, err)
	assert.False(t, ok, "user awake")

	d.user.Bench.Status.Set(ailment.MajorAsleep, 2)
	// crit, roll, flinch check (fails)
	ok, err = d.use(t, &rng.Script{Ints: []int{noCrit, topRoll, 99}}, "Snore")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Less(t, d.target.HP(), d.target.MaxHP())
}

func TestExecute_MultiHit(t *testing.T) {
	d := newDuel(t, snorlax(t, "Double Slap"), snorlax(t))
	per := d.maxDamage(t, "Double Slap")
	src := &rng.Script{
		Ints:   []int{noCrit, 5, topRoll, noCrit, topRoll, noCrit, topRoll, noCrit, topRoll, noCrit, topRoll},
		Floats: []float64{0.1},
	}

	ok, err := d.use(t, src, "Double Slap")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.target.MaxHP()-5*per, d.target.HP())
	assert.True(t, src.Done())
}

func TestExecute_MultiHitMiss(t *testing.T) {
	d := newDuel(t, snorlax(t, "Double Slap"), snorlax(t))
	src := &rng.Script{Ints: []int{noCrit}, Floats: []float64{0.9}}

	ok, err := d.use(t, src, "Double Slap")
	require.NoError(t, err)
	assert.True(t, ok, "a miss still uses the turn")
	assert.Equal(t, d.target.MaxHP(), d.target.HP())
	assert.True(t, src.Done(), "no hit count after a miss")
}

func TestExecute_HitTwice(t *testing.T) {
	d := newDuel(t, snorlax(t, "Double Kick"), snorlax(t))
	per := d.maxDamage(t, "Double Kick")

	src := &rng.Script{Ints: []int{noCrit, topRoll, noCrit, topRoll}}

	ok, err := d.use(t, src, "Double Kick")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.target.MaxHP()-2*per, d.target.HP())
	assert.True(t, src.Done())
}

func TestExecute_MultiHitRollsCriticalPerHit(t *testing.T) {
	d := newDuel(t, snorlax(t, "Double Kick"), snorlax(t))
	per := d.maxDamage(t, "Double Kick")
	crit := d.critDamage(t, "Double Kick")
	require.Greater(t, crit, per)
	src := &rng.Script{Ints: []int{yesCrit, topRoll, noCrit, topRoll}}

	ok, err := d.use(t, src, "Double Kick")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.target.MaxHP()-crit-per, d.target.HP())
	assert.True(t, src.Done())
}

func TestHitCount_Distribution(t *testing.T) {
	const trials = 60000
	src := rng.NewPCG(42)
	counts := map[int]int{}
	for range trials {
		counts[move.HitCount(src)]++
	}

	want := map[int]float64{2: 1.0 / 3, 3: 1.0 / 3, 4: 1.0 / 6, 5: 1.0 / 6}
	require.Len(t, counts, len(want))
	for hits, p := range want {
		assert.InDelta(t, p, float64(counts[hits])/trials, 0.01, "%d hits", hits)
	}
}

func TestExecute_HalfRecoilIfMiss(t *testing.T) {
	d := newDuel(t, snorlax(t, "Jump Kick"), snorlax(t))
	top := d.maxDamage(t, "Jump Kick")

	ok, err := d.use(t, &rng.Script{Ints: []int{noCrit, topRoll}, Floats: []float64{0.99}}, "Jump Kick")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.target.MaxHP(), d.target.HP())
	assert.Equal(t, d.user.MaxHP()-top/2, d.user.HP())
}

func TestExecute_FaintUser(t *testing.T) {
	d := newDuel(t,
		testutil.Member(t, "Clefairy", 5, []string{"Self-Destruct"}, testutil.WithNature(dex.NatureLonely)),
		snorlax(t),
	)

	ok, err := d.use(t, &rng.Script{Ints: []int{noCrit, topRoll}}, "Self-Destruct")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, d.user.IsFainted())
	assert.Equal(t, d.target.MaxHP()-6, d.target.HP(), "defense halved for the strike")
	assert.Zero(t, d.target.Hooks.Defense.Len(), "defense hook removed afterwards")
}

func TestExecute_FixedDamage(t *testing.T) {
	tests := []struct {
		name   string
		target *team.Member
		script rng.Script
		lost   func(d duel) uint16
	}{
		{"Dragon Rage", snorlax(t), rng.Script{Ints: []int{noCrit}}, func(duel) uint16 { return 40 }},
		{"Seismic Toss", snorlax(t), rng.Script{Ints: []int{noCrit}}, func(duel) uint16 { return 50 }},
		{"Night Shade", snorlax(t), rng.Script{}, func(duel) uint16 { return 0 }},
		{"Super Fang", snorlax(t), rng.Script{Ints: []int{noCrit}, Floats: []float64{0}}, func(d duel) uint16 { return d.target.MaxHP() / 2 }},
		{"Super Fang", testutil.Member(t, "Gastly", 50, nil), rng.Script{}, func(duel) uint16 { return 0 }},
		{"Psywave", snorlax(t), rng.Script{Ints: []int{noCrit, 100}}, func(duel) uint16 { return 75 }},
		{"Psywave", snorlax(t), rng.Script{Ints: []int{noCrit, 0}}, func(duel) uint16 { return 25 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDuel(t, snorlax(t, tt.name), tt.target)
			src := tt.script

			ok, err := d.use(t, &src, tt.name)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.lost(d), d.target.MaxHP()-d.target.HP())
			assert.True(t, src.Done())
		})
	}
}

func TestExecute_SuperFangMiss(t *testing.T) {
	d := newDuel(t, snorlax(t, "Super Fang"), snorlax(t))

	ok, err := d.use(t, &rng.Script{Ints: []int{noCrit}, Floats: []float64{0.95}}, "Super Fang")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d.target.MaxHP(), d.target.HP())
}

func TestExecute_PainSplit(t *testing.T) {
	d := newDuel(t, snorlax(t, "Pain Split"), testutil.Member(t, "Pikachu", 50, nil))
	d.user.DirectDamage(d.user.HP() - 20)
	mean := (20 + d.target.HP()) / 2

	ok, err := d.use(t, &rng.Script{}, "Pain Split")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, mean, d.user.HP())
	assert.Equal(t, mean, d.target.HP())
}

func TestFlailPower(t *testing.T) {
	tests := []struct {
		hp, max uint16
		want    uint8
	}{
		{1, 100, 200},
		{4, 100, 200},
		{5, 100, 150},
		{10, 100, 150},
		{20, 100, 100},
		{30, 100, 80},
		{50, 100, 40},
		{68, 100, 40},
		{69, 100, 20},
		{100, 100, 20},
		{0, 0, 200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, move.FlailPower(tt.hp, tt.max), "%d/%d", tt.hp, tt.max)
	}
}

func TestExecute_Flail(t *testing.T) {
	d := newDuel(t, snorlax(t, "Flail"), snorlax(t))
	d.user.DirectDamage(d.user.HP() - 1)

	ok, err := d.use(t, &rng.Script{Ints: []int{noCrit, topRoll}}, "Flail")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Less(t, d.target.HP(), d.target.MaxHP(), "power set before the strike")
}

func TestExecute_SecondaryErrorPropagates(t *testing.T) {
	d := newDuel(t, testutil.Member(t, "Pikachu", 50, []string{"Thunder Shock"}), snorlax(t))
	exec := move.NewExecutor(&rng.Script{Ints: []int{noCrit, topRoll, 0}})
	exec.Secondary = testutil.FailingEffects{}

	ok, err := exec.Execute(d.user, 0, testutil.Move(t, "Thunder Shock"), d.b)
	assert.True(t, ok)
	assert.ErrorIs(t, err, testutil.ErrSimulated)
}
