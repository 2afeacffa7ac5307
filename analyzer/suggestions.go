package analyzer

// generateSuggestions runs a fixed, ordered sequence of rule checks against the
// feature records. Each rule appends at most one suggestion; the evaluation
// order is the order suggestions appear in the response, which is user-facing.
func generateSuggestions(a Analysis) []Suggestion {
	var suggestions []Suggestion

	if a.Hashtags.Found == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:        "hashtags",
			Priority:    "high",
			Icon:        "🏷️",
			Title:       "Add hashtags",
			Description: "Posts with hashtags get significantly more reach. Add 2-5 relevant hashtags.",
			Example:     "#marketing #socialmedia #growth",
		})
	} else if a.Hashtags.Found > 5 {
		suggestions = append(suggestions, Suggestion{
			Type:        "hashtags",
			Priority:    "medium",
			Icon:        "✂️",
			Title:       "Reduce hashtags",
			Description: "Too many hashtags can look spammy. Keep the 3-5 most relevant ones.",
			Example:     "Pick the hashtags that best match your audience",
		})
	}

	if !a.CallToAction.Found {
		suggestions = append(suggestions, Suggestion{
			Type:        "cta",
			Priority:    "high",
			Icon:        "📢",
			Title:       "Add a call-to-action",
			Description: "Tell readers what to do next. Posts with a clear CTA drive far more interaction.",
			Example:     "\"Share your thoughts in the comments!\" or \"Learn more at the link\"",
		})
	} else if a.CallToAction.Strength == "weak" {
		suggestions = append(suggestions, Suggestion{
			Type:        "cta",
			Priority:    "medium",
			Icon:        "💪",
			Title:       "Strengthen your call-to-action",
			Description: "One action phrase is a start. Combine two or three for a stronger push.",
			Example:     "\"Subscribe and share this with a friend who needs it\"",
		})
	}

	if a.Length.Status == "too_long" {
		suggestions = append(suggestions, Suggestion{
			Type:        "length",
			Priority:    "medium",
			Icon:        "📏",
			Title:       "Shorten your content",
			Description: "Long posts lose readers. Trim to the core message and move detail elsewhere.",
			Example:     "Lead with the hook, cut everything that doesn't support it",
		})
	} else if a.Length.Status == "too_short" {
		suggestions = append(suggestions, Suggestion{
			Type:        "length",
			Priority:    "low",
			Icon:        "📝",
			Title:       "Add more context",
			Description: "Very short posts can feel empty. Add a detail or story to give readers a reason to engage.",
			Example:     "What happened, why it matters, what you learned",
		})
	}

	if a.Mentions.Found == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:        "mentions",
			Priority:    "medium",
			Icon:        "👥",
			Title:       "Tag relevant people",
			Description: "Mentioning people or brands extends your reach to their audience.",
			Example:     "@colleague @partnerbrand",
		})
	}

	if a.Emojis.Found == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:        "emojis",
			Priority:    "low",
			Icon:        "😊",
			Title:       "Add emojis",
			Description: "A couple of emojis make posts friendlier and easier to scan.",
			Example:     "🚀 for launches, 💡 for tips, ✅ for lists",
		})
	}

	if a.Readability.Level == "difficult" {
		suggestions = append(suggestions, Suggestion{
			Type:        "readability",
			Priority:    "high",
			Icon:        "📖",
			Title:       "Improve readability",
			Description: "Your sentences average over 20 words. Break them up so the post scans easily.",
			Example:     "One idea per sentence. Short beats clever.",
		})
	}

	if a.Sentiment.Engagement == "low" {
		suggestions = append(suggestions, Suggestion{
			Type:        "engagement",
			Priority:    "medium",
			Icon:        "💬",
			Title:       "Use more engaging language",
			Description: "Speak to the reader directly and invite a response.",
			Example:     "\"What would you do?\" or \"Tell us your experience\"",
		})
	}

	return suggestions
}
