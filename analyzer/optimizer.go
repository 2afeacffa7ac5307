package analyzer

import "strings"

const (
	genericHashtags = "#trending #community #growth"
	genericCTA      = "What do you think? Share your thoughts in the comments below!"
)

// optimizeContent produces a best-effort rewrite that fills the two most
// impactful gaps: missing hashtags and a missing call-to-action. Text that
// already has both comes back unchanged apart from trimming.
func optimizeContent(text string, hashtags HashtagFeature, cta CallToActionFeature) string {
	optimized := strings.TrimSpace(text)

	if hashtags.Found == 0 {
		optimized += "\n\n" + genericHashtags
	}
	if !cta.Found {
		optimized += "\n\n" + genericCTA
	}

	return optimized
}
