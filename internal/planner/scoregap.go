package planner

import "github.com/ascent-prep/ascent/internal/domain"

// ClassifyScoreGap computes the point gap between current and target and
// buckets it. A target at or below the current score yields a zero gap;
// primary ordering validation lives with the caller, this is a floor.
func ClassifyScoreGap(cfg *Config, currentScore, targetScore int) domain.ScoreGap {
	gap := targetScore - currentScore
	if gap < 0 {
		gap = 0
	}

	return domain.ScoreGap{
		TotalGap:     gap,
		IsAchievable: gap <= cfg.MaxAchievableGap,
		Difficulty:   classifyDifficulty(gap),
	}
}

// classifyDifficulty buckets a gap with inclusive upper bounds, first match
// wins ascending.
func classifyDifficulty(gap int) domain.Difficulty {
	switch {
	case gap <= 100:
		return domain.DifficultySmall
	case gap <= 150:
		return domain.DifficultyModerate
	case gap <= 250:
		return domain.DifficultySignificant
	case gap <= 350:
		return domain.DifficultyLarge
	default:
		return domain.DifficultyVeryLarge
	}
}
