package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
)

func TestLevelForExperience(t *testing.T) {
	cases := []struct {
		experience int
		level      int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{900, 4},
		{1600, 5},
		{2500, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForExperience(tc.experience), "experience %d", tc.experience)
	}
}

func TestLevelingMonotonicAndRecomputed(t *testing.T) {
	r, state := newTestReducer(t)

	previousLevel := state.Skills[domain.ActivityFishing].Level
	for _, amount := range []int{10, 0, 55, 120, 300, 7, 900, 1200} {
		state = r.Reduce(state, AddExperience{Activity: domain.ActivityFishing, Amount: amount})
		skill := state.Skills[domain.ActivityFishing]
		assert.GreaterOrEqual(t, skill.Level, previousLevel)
		assert.Equal(t, LevelForExperience(skill.Experience), skill.Level)
		previousLevel = skill.Level
	}
}

func TestLevelUpFreezesTwoEligiblePerks(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddExperience{Activity: domain.ActivityMining, Amount: 150})
	skill := state.Skills[domain.ActivityMining]
	require.Equal(t, 2, skill.Level)
	require.Len(t, skill.AvailablePerks, 2)
	assert.NotEqual(t, skill.AvailablePerks[0], skill.AvailablePerks[1])
	assert.True(t, state.ShowPerkSelection)
	require.NotNil(t, state.CurrentSkillLevelUp)
	assert.Equal(t, domain.ActivityMining, *state.CurrentSkillLevelUp)
}

func TestPerkGatingNeverOffersAboveLevel(t *testing.T) {
	cat := catalog.MustDefault()
	for seed := int64(0); seed < 50; seed++ {
		r := NewReducer(cat, seed)
		state := NewInitialState(cat)

		// Level 1 -> 2: mastery perks require level 5 and must never
		// appear in the frozen pair.
		state = r.Reduce(state, AddExperience{Activity: domain.ActivityFarming, Amount: 150})
		skill := state.Skills[domain.ActivityFarming]
		for _, perkID := range skill.AvailablePerks {
			perk, ok := cat.PerkByID(perkID)
			require.True(t, ok)
			assert.LessOrEqual(t, perk.LevelRequired, skill.Level,
				"perk %s offered below its level requirement", perkID)
		}
	}
}

func TestSelectPerkCommitsChoice(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddExperience{Activity: domain.ActivityCooking, Amount: 150})
	skill := state.Skills[domain.ActivityCooking]
	require.NotEmpty(t, skill.AvailablePerks)
	chosen := skill.AvailablePerks[0]

	state = r.Reduce(state, SelectPerk{Activity: domain.ActivityCooking, PerkID: chosen})
	skill = state.Skills[domain.ActivityCooking]
	assert.True(t, skill.HasPerk(chosen))
	assert.Empty(t, skill.AvailablePerks)
	assert.False(t, state.ShowPerkSelection)
	assert.Nil(t, state.CurrentSkillLevelUp)
}

func TestSelectPerkRejectsUnofferedPerk(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddExperience{Activity: domain.ActivityCooking, Amount: 150})
	state = r.Reduce(state, SelectPerk{Activity: domain.ActivityCooking, PerkID: "mining_gems"})

	skill := state.Skills[domain.ActivityCooking]
	assert.False(t, skill.HasPerk("mining_gems"))
	assert.NotEmpty(t, skill.AvailablePerks, "offer stays open after a rejected choice")
	require.NotNil(t, state.Notice)
	assert.Equal(t, domain.SeverityError, state.Notice.Severity)
}
