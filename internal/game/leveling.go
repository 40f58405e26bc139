package game

import (
	"math"

	"github.com/oakvale/homestead/internal/domain"
)

// experiencePerLevelUnit is the divisor of the level curve:
// level = floor(sqrt(experience/100)) + 1.
const experiencePerLevelUnit = 100

// LevelForExperience computes a skill level from cumulative
// experience. Levels are never incremented in place; every experience
// change recomputes from scratch.
func LevelForExperience(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Floor(math.Sqrt(float64(experience)/experiencePerLevelUnit))) + 1
}

func (r *Reducer) addExperience(state *domain.GameState, activity domain.Activity, amount int) {
	skill, ok := state.Skills[activity]
	if !ok {
		return
	}

	skill.Experience += amount
	if skill.Experience < 0 {
		skill.Experience = 0
	}
	newLevel := LevelForExperience(skill.Experience)
	leveledUp := newLevel > skill.Level
	skill.Level = newLevel

	if leveledUp {
		skill.AvailablePerks = r.rollPerkChoices(activity, skill)
		if len(skill.AvailablePerks) > 0 {
			state.ShowPerkSelection = true
			pending := activity
			state.CurrentSkillLevelUp = &pending
		}
	}

	state.Skills[activity] = skill
}

// rollPerkChoices freezes up to two random distinct perks the skill is
// eligible for and does not already hold.
func (r *Reducer) rollPerkChoices(activity domain.Activity, skill domain.Skill) []string {
	var eligible []string
	for _, perk := range r.catalog.PerksForActivity(activity) {
		if perk.LevelRequired > skill.Level || skill.HasPerk(perk.ID) {
			continue
		}
		eligible = append(eligible, perk.ID)
	}

	switch len(eligible) {
	case 0:
		return nil
	case 1:
		return eligible
	}

	first := r.rng.Intn(len(eligible))
	second := r.rng.Intn(len(eligible))
	for second == first {
		second = r.rng.Intn(len(eligible))
	}
	return []string{eligible[first], eligible[second]}
}

func (r *Reducer) selectPerk(state *domain.GameState, activity domain.Activity, perkID string) {
	skill, ok := state.Skills[activity]
	if !ok {
		return
	}

	offered := false
	for _, id := range skill.AvailablePerks {
		if id == perkID {
			offered = true
			break
		}
	}
	if !offered {
		setError(state, "Perk Selection", "That perk is not on offer.")
		return
	}

	skill.Perks = append(skill.Perks, perkID)
	skill.AvailablePerks = nil
	state.Skills[activity] = skill
	state.ShowPerkSelection = false
	state.CurrentSkillLevelUp = nil
}
