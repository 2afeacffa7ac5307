package extractor

import (
	"strings"
	"testing"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
		want     string
	}{
		{"PDFMagic", []byte("%PDF-1.7 rest of file"), "doc", "pdf"},
		{"PNGMagic", []byte("\x89PNG\r\n\x1a\n"), "scan", "image"},
		{"JPEGMagic", []byte("\xFF\xD8\xFF\xE0"), "photo", "image"},
		{"HTMLDoctype", []byte("<!DOCTYPE html><html><body>x</body></html>"), "page", "html"},
		{"HTMLTag", []byte("  <HTML><head></head></HTML>"), "page", "html"},
		{"PDFExtension", []byte("no magic here"), "report.pdf", "pdf"},
		{"ImageExtension", []byte("no magic here"), "scan.jpeg", "image"},
		{"PlainText", []byte("just some plain text"), "notes.txt", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContentType(tt.data, tt.filename); got != tt.want {
				t.Errorf("DetectContentType() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestExtractPlainText(t *testing.T) {
	e := New(nil)

	result, err := e.Extract([]byte("Check out our launch! #go"), "post.txt")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if result.ContentType != "unknown" {
		t.Errorf("Expected content type unknown, got %q", result.ContentType)
	}
	if result.Text != "Check out our launch! #go" {
		t.Errorf("Unexpected text: %q", result.Text)
	}
	if result.WordCount != 5 {
		t.Errorf("Expected 5 words, got %d", result.WordCount)
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Errorf("Confidence out of range: %f", result.Confidence)
	}
}

func TestExtractHTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><title>ignored</title><style>body { color: red; }</style></head>
<body>
  <script>var skipped = true;</script>
  <h1>Launch day</h1>
  <p>Check out our new release!</p>
</body></html>`

	e := New(nil)
	result, err := e.Extract([]byte(html), "post.html")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if result.ContentType != "html" {
		t.Errorf("Expected content type html, got %q", result.ContentType)
	}
	if !strings.Contains(result.Text, "Launch day") || !strings.Contains(result.Text, "Check out our new release!") {
		t.Errorf("Expected body text, got %q", result.Text)
	}
	if strings.Contains(result.Text, "skipped") || strings.Contains(result.Text, "color: red") {
		t.Errorf("Script/style content leaked into text: %q", result.Text)
	}
}

func TestExtractCaching(t *testing.T) {
	e := New(nil)
	data := []byte("cache me")

	first, err := e.Extract(data, "a.txt")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	second, err := e.Extract(data, "a.txt")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if first != second {
		t.Error("Expected the cached result instance on the second call")
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a   b\t\tc", "a b c"},
		{"  leading and trailing  ", "leading and trailing"},
		{"line one\nline two", "line one\nline two"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeWhitespace(tt.in); got != tt.want {
			t.Errorf("normalizeWhitespace(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestTextConfidence(t *testing.T) {
	if got := textConfidence(""); got != 0 {
		t.Errorf("Expected 0 confidence for empty text, got %f", got)
	}

	readable := textConfidence("A perfectly normal sentence about launching products.")
	garbled := textConfidence("\x01\x02\x03\x04 %%## 0x91 \x7f\x1b ]]]]")
	if readable <= garbled {
		t.Errorf("Expected readable text (%f) to score above garbled bytes (%f)", readable, garbled)
	}
}
