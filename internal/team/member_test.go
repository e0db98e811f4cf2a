package team

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/dex"
)

func clefairy(t *testing.T) *Member {
	t.Helper()
	table, err := dex.Default()
	require.NoError(t, err)
	species, err := table.SpeciesByName("Clefairy")
	require.NoError(t, err)
	pound, err := table.MoveByName("Pound")
	require.NoError(t, err)
	return &Member{
		Species:    species,
		Gender:     dex.GenderFemale,
		Ability:    dex.AbilityMagicGuard,
		Nature:     dex.NatureLonely,
		Friendship: 255,
		Moves:      [MoveSlots]*dex.Move{pound},
		Level:      5,
	}
}

func TestStat_Level5Clefairy(t *testing.T) {
	m := clefairy(t)

	assert.EqualValues(t, 22, m.Stat(dex.StatHP))
	// Lonely: +Attack
	assert.EqualValues(t, 9, m.Stat(dex.StatAttack))
	// Lonely: -Defense
	assert.EqualValues(t, 8, m.Stat(dex.StatDefense))
	assert.EqualValues(t, 11, m.Stat(dex.StatSpecialAttack))
	assert.EqualValues(t, 11, m.Stat(dex.StatSpecialDefense))
	assert.EqualValues(t, 8, m.Stat(dex.StatSpeed))
	assert.EqualValues(t, 0, m.Stat(dex.StatAccuracy))
}

func TestStat_IVsAndEVs(t *testing.T) {
	m := clefairy(t)
	m.Level = 100
	m.Nature = dex.NatureHardy
	m.IVs[dex.StatHP] = 31
	m.EVs[dex.StatHP] = 252

	// ((140 + 31 + 63) * 100) / 100 + 100 + 10
	assert.EqualValues(t, 344, m.Stat(dex.StatHP))
}

func TestStat_IllegalBuildSaturates(t *testing.T) {
	m := clefairy(t)
	m.Level = 255
	for i := range m.IVs {
		m.IVs[i] = 255
		m.EVs[i] = 255
	}
	assert.NotPanics(t, func() {
		for s := dex.StatHP; s <= dex.StatSpeed; s++ {
			assert.LessOrEqual(t, m.Stat(s), uint16(math.MaxUint16))
		}
	})
}

func TestMaxPP(t *testing.T) {
	m := clefairy(t)
	assert.EqualValues(t, 35, m.MaxPP(0))

	m.PPUps[0] = 3
	assert.EqualValues(t, 56, m.MaxPP(0))

	// more than three PP Ups counts as three
	m.PPUps[0] = 9
	assert.EqualValues(t, 56, m.MaxPP(0))

	assert.EqualValues(t, 0, m.MaxPP(1), "empty slot")
	assert.EqualValues(t, 0, m.MaxPP(7), "out of range")
}

func TestClone_IsIndependent(t *testing.T) {
	m := clefairy(t)
	c := m.Clone()
	c.Level = 50
	c.Moves[1] = c.Moves[0]

	assert.EqualValues(t, 5, m.Level)
	assert.Nil(t, m.Moves[1])
	assert.Same(t, m.Species, c.Species)
}
