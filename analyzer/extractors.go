package analyzer

import (
	"regexp"
	"strings"
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)

	// Pictographs, transport symbols, supplemental symbols, misc symbols and dingbats.
	emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)
)

func extractHashtags(text string) HashtagFeature {
	matches := hashtagPattern.FindAllString(text, -1)
	found := len(matches)

	recommended := found
	if recommended < 3 {
		recommended = 3
	}

	return HashtagFeature{
		Found:       found,
		Recommended: recommended,
		List:        matches,
		Density:     density(found, countWords(text)),
	}
}

func extractMentions(text string) MentionFeature {
	matches := mentionPattern.FindAllString(text, -1)
	found := len(matches)

	recommended := found
	if recommended < 2 {
		recommended = 2
	}

	return MentionFeature{
		Found:       found,
		Recommended: recommended,
		List:        matches,
	}
}

func extractCallToAction(text string) CallToActionFeature {
	lower := strings.ToLower(text)

	var words []string
	for _, w := range ctaWords {
		if strings.Contains(lower, w) {
			words = append(words, w)
		}
	}

	count := len(words)
	strength := "none"
	switch {
	case count >= 3:
		strength = "strong"
	case count >= 2:
		strength = "medium"
	case count >= 1:
		strength = "weak"
	}

	return CallToActionFeature{
		Found:    count > 0,
		Strength: strength,
		Words:    words,
		Count:    count,
	}
}

func extractLength(text string) LengthFeature {
	chars := len(text)
	words := countWords(text)

	feature := LengthFeature{
		Characters: chars,
		Words:      words,
	}

	if chars > 280 {
		feature.Platform = "linkedin"
		feature.Optimal = "100-300"
		if chars > 500 {
			feature.Status = "too_long"
		} else {
			feature.Status = "good"
		}
	} else {
		feature.Platform = "twitter"
		feature.Optimal = "140-280"
		if chars < 100 {
			feature.Status = "too_short"
		} else {
			feature.Status = "good"
		}
	}

	return feature
}

func extractReadability(text string) ReadabilityFeature {
	sentences := countSentences(text)
	words := countWords(text)

	avg := 0.0
	if sentences > 0 {
		avg = float64(words) / float64(sentences)
	}

	score := 100
	level := "excellent"
	if avg > 20 {
		score -= 30
		level = "difficult"
	} else if avg > 15 {
		score -= 15
		level = "moderate"
	}

	// Very short texts are flagged regardless of sentence length.
	if words < 10 {
		score -= 20
		level = "too_short"
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	complexity := "low"
	if avg > 15 {
		complexity = "high"
	} else if avg > 10 {
		complexity = "medium"
	}

	return ReadabilityFeature{
		Score:               score,
		Level:               level,
		AvgWordsPerSentence: avg,
		Sentences:           sentences,
		Complexity:          complexity,
	}
}

func extractSentiment(text string) SentimentFeature {
	lower := strings.ToLower(text)

	positive := countLexiconHits(lower, positiveWords)
	negative := countLexiconHits(lower, negativeWords)
	engagement := countLexiconHits(lower, engagementWords)

	tone := "neutral"
	if positive > negative {
		tone = "positive"
	} else if negative > positive {
		tone = "negative"
	}

	level := "low"
	if engagement >= 3 {
		level = "high"
	} else if engagement >= 1 {
		level = "medium"
	}

	return SentimentFeature{
		Tone:            tone,
		Engagement:      level,
		PositiveWords:   positive,
		NegativeWords:   negative,
		EngagementWords: engagement,
	}
}

func extractEmojis(text string) EmojiFeature {
	matches := emojiPattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(matches))
	var unique []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			unique = append(unique, m)
		}
	}

	return EmojiFeature{
		Found:   len(matches),
		List:    unique,
		Density: density(len(matches), countWords(text)),
	}
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func countSentences(text string) int {
	count := 0
	for _, segment := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

func countLexiconHits(lower string, lexicon []string) int {
	count := 0
	for _, w := range lexicon {
		if strings.Contains(lower, w) {
			count++
		}
	}
	return count
}

// density guards against division by zero when the text has no word tokens.
func density(found, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(found) / float64(words) * 100
}
