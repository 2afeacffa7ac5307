package extractor

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"github.com/engagement-optimizer/backend/stats"
)

// Result holds the text extracted from an uploaded document together with the
// metadata the API reports alongside the engagement analysis.
type Result struct {
	Text           string  `json:"text"`
	ContentType    string  `json:"contentType"` // pdf, html, image, unknown
	WordCount      int     `json:"wordCount"`
	CharacterCount int     `json:"characterCount"`
	PageCount      int     `json:"pageCount,omitempty"`
	Confidence     float64 `json:"confidence"` // 0-1, rough extraction quality
}

type cacheEntry struct {
	result    *Result
	timestamp time.Time
}

// Extractor turns uploaded document bytes into plain UTF-8 text. Extraction is
// the expensive half of a request, so results are cached by content hash.
type Extractor struct {
	cache        map[string]cacheEntry
	cacheMutex   sync.RWMutex
	cacheTTL     time.Duration
	maxCacheSize int
	stats        *stats.Storage
}

// New creates a new Extractor sharing the given statistics storage
func New(statsStorage *stats.Storage) *Extractor {
	return &Extractor{
		cache:        make(map[string]cacheEntry),
		cacheTTL:     10 * time.Minute,
		maxCacheSize: 10000,
		stats:        statsStorage,
	}
}

// Extract sniffs the content type of data and extracts its text
func (e *Extractor) Extract(data []byte, filename string) (*Result, error) {
	cacheKey := cacheKeyFor(data)

	e.cacheMutex.RLock()
	if entry, found := e.cache[cacheKey]; found {
		if time.Since(entry.timestamp) < e.cacheTTL {
			if e.stats != nil {
				e.stats.IncrementStats(0, 0, 1, 0)
			}
			e.cacheMutex.RUnlock()
			return entry.result, nil
		}
	}
	e.cacheMutex.RUnlock()

	if e.stats != nil {
		e.stats.IncrementStats(0, 0, 0, 1)
	}

	contentType := DetectContentType(data, filename)

	var (
		text      string
		pageCount int
		err       error
	)

	switch contentType {
	case "pdf":
		text, pageCount, err = extractPDF(data)
	case "html":
		text, err = extractHTML(data)
	case "image":
		text, err = extractImage(data, filename)
	default:
		text = string(data)
	}
	if err != nil {
		return nil, err
	}

	text = normalizeWhitespace(text)

	result := &Result{
		Text:           text,
		ContentType:    contentType,
		WordCount:      len(strings.Fields(text)),
		CharacterCount: len(text),
		PageCount:      pageCount,
		Confidence:     textConfidence(text),
	}

	e.cacheMutex.Lock()
	if len(e.cache) >= e.maxCacheSize {
		e.evictExpiredLocked()
	}
	e.cache[cacheKey] = cacheEntry{result: result, timestamp: time.Now()}
	e.cacheMutex.Unlock()

	return result, nil
}

// evictExpiredLocked drops expired entries; callers must hold cacheMutex
func (e *Extractor) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range e.cache {
		if now.Sub(entry.timestamp) > e.cacheTTL {
			delete(e.cache, key)
		}
	}
}

func cacheKeyFor(data []byte) string {
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:])
}

// DetectContentType classifies uploaded bytes as pdf, html, image or unknown
// from magic bytes, falling back to the filename extension
func DetectContentType(data []byte, filename string) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}

	switch {
	case bytes.HasPrefix(head, []byte("%PDF")):
		return "pdf"
	case bytes.HasPrefix(head, []byte("\x89PNG")),
		bytes.HasPrefix(head, []byte("\xFF\xD8\xFF")),
		bytes.HasPrefix(head, []byte("GIF8")),
		bytes.HasPrefix(head, []byte("BM")):
		return "image"
	}

	lower := strings.ToLower(string(head))
	if strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") {
		return "html"
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".html", ".htm":
		return "html"
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp":
		return "image"
	}

	return "unknown"
}

func extractPDF(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages with unsupported encodings rather than failing the
			// whole document
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), pageCount, nil
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return text, nil
}

// extractImage runs OCR by invoking the tesseract binary when it is installed
func extractImage(data []byte, filename string) (string, error) {
	tesseractPath, err := exec.LookPath("tesseract")
	if err != nil {
		return "", fmt.Errorf("OCR unavailable: tesseract not found in PATH")
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	tmpFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for OCR: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write temp file for OCR: %w", err)
	}
	tmpFile.Close()

	out, err := exec.Command(tesseractPath, tmpFile.Name(), "stdout", "-l", "eng").Output()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	return string(out), nil
}

// normalizeWhitespace collapses runs of whitespace left behind by PDF and HTML
// extraction while keeping paragraph breaks
func normalizeWhitespace(text string) string {
	var sb strings.Builder
	lastSpace := false
	for _, r := range text {
		if r == '\n' {
			sb.WriteRune('\n')
			lastSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				sb.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(sb.String())
}

// textConfidence scores extraction quality from 0 to 1 based on how much of
// the output looks like readable words. Garbled PDF streams and failed OCR
// produce mostly non-letter noise.
func textConfidence(text string) float64 {
	if text == "" {
		return 0
	}

	totalRunes := 0
	letterCount := 0
	printableCount := 0
	for _, r := range text {
		totalRunes++
		if unicode.IsLetter(r) {
			letterCount++
		}
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printableCount++
		}
	}
	if totalRunes == 0 {
		return 0
	}

	printableRatio := float64(printableCount) / float64(totalRunes)
	letterRatio := float64(letterCount) / float64(totalRunes)

	confidence := printableRatio * (0.5 + letterRatio/2)
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}
