package analyzer

import "math"

// calculateScore combines the feature records into a single 0-100 engagement
// score. Every feature contributes an additive adjustment to a base of 50, so
// the order of adjustments never changes the clamped result.
func calculateScore(a Analysis) int {
	score := 50.0

	switch {
	case a.Hashtags.Found >= 2 && a.Hashtags.Found <= 5:
		score += 15
	case a.Hashtags.Found >= 1:
		score += 10
	default:
		score -= 10
	}

	switch a.CallToAction.Strength {
	case "strong":
		score += 20
	case "medium":
		score += 15
	case "weak":
		score += 10
	default:
		score -= 15
	}

	switch a.Length.Status {
	case "good":
		score += 15
	case "too_long":
		score -= 5
	case "too_short":
		score -= 10
	}

	score += math.Round(float64(a.Readability.Score) * 0.2)

	switch a.Sentiment.Engagement {
	case "high":
		score += 15
	case "medium":
		score += 10
	default:
		score -= 5
	}

	if a.Mentions.Found >= 1 && a.Mentions.Found <= 3 {
		score += 10
	} else if a.Mentions.Found > 3 {
		score -= 5
	}

	if a.Emojis.Found >= 1 && a.Emojis.Found <= 3 {
		score += 5
	}

	final := int(math.Round(score))
	if final < 0 {
		final = 0
	} else if final > 100 {
		final = 100
	}
	return final
}

func gradeForScore(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
