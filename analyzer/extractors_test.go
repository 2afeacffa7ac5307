package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	t.Run("CountsAndList", func(t *testing.T) {
		f := extractHashtags("Launch day! #launch #tech #golang")
		if f.Found != 3 {
			t.Errorf("Expected 3 hashtags, got %d", f.Found)
		}
		if !reflect.DeepEqual(f.List, []string{"#launch", "#tech", "#golang"}) {
			t.Errorf("Unexpected hashtag list: %v", f.List)
		}
		if f.Recommended != 3 {
			t.Errorf("Expected recommended 3, got %d", f.Recommended)
		}
	})

	t.Run("RecommendsAtLeastThree", func(t *testing.T) {
		f := extractHashtags("just one #tag here")
		if f.Found != 1 || f.Recommended != 3 {
			t.Errorf("Expected found=1 recommended=3, got found=%d recommended=%d", f.Found, f.Recommended)
		}
	})

	t.Run("KeepsCountWhenAboveThree", func(t *testing.T) {
		f := extractHashtags("#a #b #c #d")
		if f.Recommended != 4 {
			t.Errorf("Expected recommended 4, got %d", f.Recommended)
		}
	})

	t.Run("DensityGuardsZeroWords", func(t *testing.T) {
		f := extractHashtags("")
		if f.Density != 0 {
			t.Errorf("Expected density 0 for empty text, got %f", f.Density)
		}
	})

	t.Run("Density", func(t *testing.T) {
		f := extractHashtags("one two #three four") // 1 hashtag, 4 words
		if f.Density != 25 {
			t.Errorf("Expected density 25, got %f", f.Density)
		}
	})
}

func TestExtractMentions(t *testing.T) {
	f := extractMentions("Thanks @alice and @bob!")
	if f.Found != 2 {
		t.Errorf("Expected 2 mentions, got %d", f.Found)
	}
	if f.Recommended != 2 {
		t.Errorf("Expected recommended 2, got %d", f.Recommended)
	}

	none := extractMentions("no mentions here")
	if none.Found != 0 || none.Recommended != 2 {
		t.Errorf("Expected found=0 recommended=2, got found=%d recommended=%d", none.Found, none.Recommended)
	}
}

func TestExtractCallToAction(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		found    bool
		strength string
	}{
		{"None", "a plain statement about weather", false, "none"},
		{"Weak", "Check out the new release", true, "weak"},
		{"Medium", "Subscribe now and share this post", true, "medium"},
		{"Strong", "Subscribe, share and comment below", true, "strong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extractCallToAction(tt.text)
			if f.Found != tt.found {
				t.Errorf("Expected found=%v, got %v", tt.found, f.Found)
			}
			if f.Strength != tt.strength {
				t.Errorf("Expected strength %q, got %q", tt.strength, f.Strength)
			}
		})
	}

	// Lexicon matching is substring containment, not word-boundary matching:
	// "watch" matches inside "watchful".
	t.Run("SubstringContainment", func(t *testing.T) {
		f := extractCallToAction("He remained watchful during the storm")
		if !f.Found {
			t.Error("Expected 'watch' to match inside 'watchful'")
		}
		if f.Count != 1 {
			t.Errorf("Expected count 1, got %d", f.Count)
		}
	})
}

func TestExtractLength(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		platform string
		status   string
	}{
		{"ShortTweet", strings.Repeat("a ", 20), "twitter", "too_short"},
		{"GoodTweet", strings.Repeat("ab ", 50), "twitter", "good"},
		{"GoodLinkedIn", strings.Repeat("ab ", 110), "linkedin", "good"},
		{"TooLong", strings.Repeat("ab ", 200), "linkedin", "too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extractLength(tt.text)
			if f.Platform != tt.platform {
				t.Errorf("Expected platform %q, got %q (chars=%d)", tt.platform, f.Platform, f.Characters)
			}
			if f.Status != tt.status {
				t.Errorf("Expected status %q, got %q (chars=%d)", tt.status, f.Status, f.Characters)
			}
		})
	}
}

func TestExtractReadability(t *testing.T) {
	t.Run("Excellent", func(t *testing.T) {
		f := extractReadability("This is short. So is this. And this one too. More words come here now.")
		if f.Level != "excellent" || f.Score != 100 {
			t.Errorf("Expected excellent/100, got %s/%d", f.Level, f.Score)
		}
	})

	t.Run("Difficult", func(t *testing.T) {
		text := strings.Repeat("word ", 25) + "."
		f := extractReadability(text)
		if f.Level != "difficult" {
			t.Errorf("Expected difficult, got %s", f.Level)
		}
		if f.Score != 70 {
			t.Errorf("Expected score 70, got %d", f.Score)
		}
		if f.Complexity != "high" {
			t.Errorf("Expected high complexity, got %s", f.Complexity)
		}
	})

	t.Run("Moderate", func(t *testing.T) {
		text := strings.Repeat("word ", 18) + "."
		f := extractReadability(text)
		if f.Level != "moderate" {
			t.Errorf("Expected moderate, got %s", f.Level)
		}
		if f.Score != 85 {
			t.Errorf("Expected score 85, got %d", f.Score)
		}
	})

	t.Run("TooShortOverridesLevel", func(t *testing.T) {
		f := extractReadability("Tiny post. Very tiny.")
		if f.Level != "too_short" {
			t.Errorf("Expected too_short, got %s", f.Level)
		}
		if f.Score != 80 {
			t.Errorf("Expected score 80, got %d", f.Score)
		}
	})

	t.Run("NoSentences", func(t *testing.T) {
		f := extractReadability("...")
		if f.Sentences != 0 {
			t.Errorf("Expected 0 sentences, got %d", f.Sentences)
		}
		if f.AvgWordsPerSentence != 0 {
			t.Errorf("Expected avg 0, got %f", f.AvgWordsPerSentence)
		}
	})
}

func TestExtractSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		tone string
	}{
		{"Positive", "What a great and amazing launch", "positive"},
		{"Negative", "A terrible, awful experience", "negative"},
		{"Neutral", "The meeting is at noon", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extractSentiment(tt.text)
			if f.Tone != tt.tone {
				t.Errorf("Expected tone %q, got %q", tt.tone, f.Tone)
			}
		})
	}

	t.Run("EngagementLevels", func(t *testing.T) {
		if got := extractSentiment("The meeting is at noon").Engagement; got != "low" {
			t.Errorf("Expected low engagement, got %q", got)
		}
		if got := extractSentiment("Tell me about it").Engagement; got != "low" {
			t.Errorf("Expected low engagement, got %q", got)
		}
		if got := extractSentiment("Here is a question for all").Engagement; got != "medium" {
			t.Errorf("Expected medium engagement, got %q", got)
		}
		if got := extractSentiment("What are your thoughts? Tell us together").Engagement; got != "high" {
			t.Errorf("Expected high engagement, got %q", got)
		}
	})
}

func TestExtractEmojis(t *testing.T) {
	f := extractEmojis("Launch day 🚀🚀🔥")
	if f.Found != 3 {
		t.Errorf("Expected 3 emojis, got %d", f.Found)
	}
	if len(f.List) != 2 {
		t.Errorf("Expected 2 unique emojis, got %d: %v", len(f.List), f.List)
	}

	none := extractEmojis("plain text only")
	if none.Found != 0 || len(none.List) != 0 {
		t.Errorf("Expected no emojis, got %d", none.Found)
	}
}
