package matching

import "career-compass/internal/domain/position"

// preferred skills count at half weight and can lift the score by at
// most this much on top of the required-skill ratio
const (
	preferredWeight = 0.5
	bonusCap        = 0.2
)

// Score rates employee skills against a position's requirements on a
// [0,1] scale. A position without required skills scores 0.0 since
// there is nothing to match against. Each required skill contributes
// min(current, required) out of required; preferred skills form a
// separate ratio that adds up to bonusCap, clamped at 1.0.
func Score(employeeSkills map[string]int, pos position.Position) float64 {
	if len(pos.RequiredSkills) == 0 {
		return 0.0
	}

	var requiredScore, requiredMax float64
	for skill, requiredLevel := range pos.RequiredSkills {
		requiredMax += float64(requiredLevel)
		currentLevel := employeeSkills[skill]
		if currentLevel >= requiredLevel {
			requiredScore += float64(requiredLevel)
		} else {
			requiredScore += float64(currentLevel)
		}
	}
	if requiredMax <= 0 {
		return 0.0
	}
	base := requiredScore / requiredMax

	var bonusScore, bonusMax float64
	for skill, preferredLevel := range pos.PreferredSkills {
		bonusMax += float64(preferredLevel) * preferredWeight
		currentLevel := employeeSkills[skill]
		if currentLevel >= preferredLevel {
			bonusScore += float64(preferredLevel) * preferredWeight
		} else {
			bonusScore += float64(currentLevel) * preferredWeight
		}
	}

	if bonusMax > 0 {
		final := base + (bonusScore/bonusMax)*bonusCap
		if final > 1.0 {
			return 1.0
		}
		return final
	}

	return base
}
