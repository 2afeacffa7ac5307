package analyzer

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/engagement-optimizer/backend/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	result    *AnalysisResult
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries               int           `json:"entries"`
	AnalysisCacheHits     int           `json:"analysisCacheHits"`
	AnalysisCacheMisses   int           `json:"analysisCacheMisses"`
	ExtractionCacheHits   int           `json:"extractionCacheHits"`
	ExtractionCacheMisses int           `json:"extractionCacheMisses"`
	CacheTTL              time.Duration `json:"cacheTTL"`
}

// Analyzer performs engagement analysis on extracted document text. The
// analysis itself is a pure function of the text; the Analyzer only adds a
// result cache and statistics around it.
type Analyzer struct {
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
}

// New creates a new Analyzer instance
func New(dataDir string) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	analyzer := &Analyzer{
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
	}

	go analyzer.periodicCleanup()

	return analyzer, nil
}

// periodicCleanup removes expired entries from the cache periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and ensures the cache size limit
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))

		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetMaxCacheSize sets the maximum number of entries in the result cache
func (a *Analyzer) SetMaxCacheSize(size int) {
	a.cacheMutex.Lock()
	a.maxCacheSize = size
	a.cacheMutex.Unlock()
	a.cleanup()
}

// SetCacheTTL sets the cache TTL
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the result cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// generateCacheKey creates a unique key for the text
func generateCacheKey(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	currentStats := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	entries := len(a.cache)
	ttl := a.cacheTTL
	a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:               entries,
		AnalysisCacheHits:     currentStats.AnalysisCacheHits,
		AnalysisCacheMisses:   currentStats.AnalysisCacheMisses,
		ExtractionCacheHits:   currentStats.ExtractionCacheHits,
		ExtractionCacheMisses: currentStats.ExtractionCacheMisses,
		CacheTTL:              ttl,
	}
}

// IsCached checks if a text is in the cache and not expired
func (a *Analyzer) IsCached(text string) bool {
	cacheKey := generateCacheKey(text)
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[cacheKey]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// Analyze performs a complete engagement analysis of the given text. The text
// arrives already extracted (PDF, OCR, HTML); contentType records where it
// came from and never influences the analysis itself.
func (a *Analyzer) Analyze(text, contentType string) *AnalysisResult {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	cacheKey := generateCacheKey(text)
	a.cacheMutex.RLock()
	if entry, found := a.cache[cacheKey]; found {
		if time.Since(entry.timestamp) < a.cacheTTL {
			a.stats.IncrementStats(1, 0, 0, 0)
			a.cacheMutex.RUnlock()
			return entry.result
		}
	}
	a.cacheMutex.RUnlock()

	a.stats.IncrementStats(0, 1, 0, 0)

	result := analyzeText(text)

	a.cacheMutex.Lock()
	a.cache[cacheKey] = cacheEntry{
		result:    result,
		timestamp: time.Now(),
	}
	a.cacheMutex.Unlock()

	return result
}

// analyzeText is the pure analysis pipeline: extract features, score, suggest,
// optimize. It never fails for any string input.
func analyzeText(text string) *AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return emptyResult()
	}

	analysis := Analysis{
		Hashtags:     extractHashtags(text),
		Mentions:     extractMentions(text),
		CallToAction: extractCallToAction(text),
		Length:       extractLength(text),
		Readability:  extractReadability(text),
		Sentiment:    extractSentiment(text),
		Emojis:       extractEmojis(text),
	}

	score := calculateScore(analysis)

	return &AnalysisResult{
		Score:            score,
		Grade:            gradeForScore(score),
		Suggestions:      generateSuggestions(analysis),
		Analysis:         analysis,
		OptimizedContent: optimizeContent(text, analysis.Hashtags, analysis.CallToAction),
	}
}

// emptyResult is returned for empty or whitespace-only input without invoking
// any extractor.
func emptyResult() *AnalysisResult {
	return &AnalysisResult{
		Score: 0,
		Grade: "F",
		Suggestions: []Suggestion{{
			Type:        "content",
			Priority:    "high",
			Icon:        "📄",
			Title:       "No text content found to analyze",
			Description: "No text content found to analyze",
			Example:     "Upload a document that contains readable text",
		}},
		Analysis: Analysis{
			CallToAction: CallToActionFeature{Strength: "none"},
			Length:       LengthFeature{Platform: "twitter", Optimal: "140-280", Status: "too_short"},
			Readability:  ReadabilityFeature{Level: "too_short", Complexity: "low"},
			Sentiment:    SentimentFeature{Tone: "neutral", Engagement: "low"},
		},
	}
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown ensures all statistics are saved and releases the cache
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}
