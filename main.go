package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/engagement-optimizer/backend/analyzer"
	"github.com/engagement-optimizer/backend/extractor"
	"github.com/engagement-optimizer/backend/logging"
	"github.com/engagement-optimizer/backend/middleware"
)

const maxUploadSize = 10 << 20 // 10MB

var (
	engagementAnalyzer *analyzer.Analyzer
	textExtractor      *extractor.Extractor
	rateLimiter        *middleware.RateLimiter
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		// Default to release mode if not specified
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()
	setupGinMode()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	// Initialize services
	var err error
	engagementAnalyzer, err = analyzer.New(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize analyzer:", err)
	}
	defer engagementAnalyzer.Shutdown()

	textExtractor = extractor.New(engagementAnalyzer.GetStats())
	rateLimiter = middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5

	// Initialize statistics
	stats := logging.Initialize()

	// Initialize Gin router
	r := gin.Default()

	// Add middlewares
	r.Use(middleware.ErrorHandler())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Request statistics middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()

		ip := c.ClientIP()
		stats.TrackVisitor(ip)

		c.Next()

		// Only track analysis requests
		if c.Request.Method == "POST" &&
			(c.Request.URL.Path == "/api/analyze" || c.Request.URL.Path == "/api/analyze/text") {
			loadTime := float64(time.Since(start).Milliseconds())
			stats.TrackAnalysis(c.GetString("contentType"), loadTime, c.Writer.Status() >= 400)
		}

		// Periodically save statistics
		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save()
		}
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Engagement analysis endpoints
		api.POST("/analyze", analyzeUpload)
		api.POST("/analyze/text", analyzeText)

		// Statistics endpoint
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, stats.GetStatistics())
		})
	}

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082" // Default port
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// analyzeUpload accepts a multipart document upload, extracts its text and
// runs the engagement analysis on it
func analyzeUpload(c *gin.Context) {
	log.Printf("Analyze upload request received from: %s\n", c.ClientIP())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file provided",
		})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "File exceeds the 10MB upload limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read uploaded file",
		})
		return
	}

	extraction, err := textExtractor.Extract(data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Failed to extract text: " + err.Error(),
		})
		return
	}
	c.Set("contentType", extraction.ContentType)

	result := engagementAnalyzer.Analyze(extraction.Text, extraction.ContentType)

	c.JSON(http.StatusOK, gin.H{
		"analysis":   result,
		"extraction": extraction,
	})
}

// analyzeText accepts already-extracted text and runs the engagement analysis
func analyzeText(c *gin.Context) {
	log.Printf("Analyze text request received from: %s\n", c.ClientIP())

	var request struct {
		Text        string `json:"text"`
		ContentType string `json:"contentType"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if request.ContentType == "" {
		request.ContentType = "unknown"
	}
	c.Set("contentType", request.ContentType)

	result := engagementAnalyzer.Analyze(request.Text, request.ContentType)

	c.JSON(http.StatusOK, result)
}
