package analyzer

// Fixed English word lists used by the call-to-action and sentiment extractors.
// Matching is substring containment on the lowercased text, so entries also
// match inside longer words ("watch" matches "watchful").
var ctaWords = []string{
	"click", "subscribe", "follow", "share", "comment", "like",
	"check out", "learn more", "sign up", "register", "download",
	"visit", "shop", "buy", "order", "join", "try", "discover",
	"watch", "tag a friend",
}

var positiveWords = []string{
	"great", "amazing", "awesome", "excellent", "fantastic", "love",
	"best", "wonderful", "incredible", "beautiful", "perfect", "happy",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "worst", "horrible",
	"disappointing", "poor", "sad", "angry",
}

var engagementWords = []string{
	"you", "your", "we", "our", "together", "community",
	"thoughts", "opinion", "question", "tell us",
}
