package analyzer

// AnalysisResult represents the complete engagement analysis of a piece of text
type AnalysisResult struct {
	Score            int          `json:"score"`
	Grade            string       `json:"grade"`
	Suggestions      []Suggestion `json:"suggestions"`
	Analysis         Analysis     `json:"analysis"`
	OptimizedContent string       `json:"optimizedContent,omitempty"`
}

// Analysis groups the seven feature records produced by the extractors
type Analysis struct {
	Hashtags     HashtagFeature      `json:"hashtags"`
	Mentions     MentionFeature      `json:"mentions"`
	CallToAction CallToActionFeature `json:"callToAction"`
	Length       LengthFeature       `json:"length"`
	Readability  ReadabilityFeature  `json:"readability"`
	Sentiment    SentimentFeature    `json:"sentiment"`
	Emojis       EmojiFeature        `json:"emojis"`
}

type HashtagFeature struct {
	Found       int      `json:"found"`
	Recommended int      `json:"recommended"`
	List        []string `json:"list"`
	Density     float64  `json:"density"`
}

type MentionFeature struct {
	Found       int      `json:"found"`
	Recommended int      `json:"recommended"`
	List        []string `json:"list"`
}

type CallToActionFeature struct {
	Found    bool     `json:"found"`
	Strength string   `json:"strength"` // none, weak, medium, strong
	Words    []string `json:"words"`
	Count    int      `json:"count"`
}

type LengthFeature struct {
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
	Platform   string `json:"platform"` // twitter, linkedin, general
	Optimal    string `json:"optimal"`
	Status     string `json:"status"` // good, too_short, too_long
}

type ReadabilityFeature struct {
	Score               int     `json:"score"`
	Level               string  `json:"level"` // excellent, moderate, difficult, too_short
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	Sentences           int     `json:"sentences"`
	Complexity          string  `json:"complexity"` // low, medium, high
}

type SentimentFeature struct {
	Tone            string `json:"tone"`       // positive, negative, neutral
	Engagement      string `json:"engagement"` // low, medium, high
	PositiveWords   int    `json:"positiveWords"`
	NegativeWords   int    `json:"negativeWords"`
	EngagementWords int    `json:"engagementWords"`
}

type EmojiFeature struct {
	Found   int      `json:"found"`
	List    []string `json:"list"` // deduplicated
	Density float64  `json:"density"`
}

// Suggestion is a single actionable recommendation for improving engagement
type Suggestion struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"` // high, medium, low
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}
