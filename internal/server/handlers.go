package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendingspotlight/spotlight/internal/common"
)

// handleHome reports the service banner and endpoint map.
func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Spending Spotlight API",
		"status":  "running",
		"version": apiVersion,
		"endpoints": gin.H{
			"health":  "/api/health",
			"analyze": "/api/analyze (POST)",
		},
	})
}

// handleHealth is the health check endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "Server is running!",
		"version": apiVersion,
	})
}

// handleAnalyze accepts a statement PDF plus a JSON array of expected
// category names, runs the pipeline, and returns the partitioned result.
// The uploaded file lives in the scratch directory only for the duration of
// the request.
func (s *Server) handleAnalyze(c *gin.Context) {
	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file uploaded"})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	categories, err := parseCategories(c.PostForm("categories"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No categories selected"})
		return
	}

	if file.Size > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Statement too large. Please upload files smaller than 16MB.",
			"suggestion": "Try splitting large statements into smaller files.",
		})
		return
	}

	// The client's filename never touches the filesystem.
	scratch := filepath.Join(s.cfg.UploadDir, uuid.NewString()+".pdf")
	if err := c.SaveUploadedFile(file, scratch); err != nil {
		s.logger.Error("failed to save upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze PDF"})
		return
	}
	defer func() { _ = os.Remove(scratch) }()

	text, err := s.extractor.ExtractText(scratch)
	if err != nil {
		s.logger.Warn("text extraction failed",
			"filename", file.Filename,
			"error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from PDF"})
		return
	}

	result, err := s.analyzer.Run(c.Request.Context(), text, categories)
	if err != nil {
		if errors.Is(err, common.ErrNoTransactionsFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No transactions found in PDF. Please ensure the PDF contains transaction details.",
			})
			return
		}
		s.logger.Error("pipeline run failed",
			"filename", file.Filename,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to analyze PDF",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"totalTransactions": result.TotalTransactions,
		"expected":          result.Expected,
		"unexpected":        result.Unexpected,
	})
}

// parseCategories decodes the categories form field (a JSON array of
// strings), trims entries, and rejects an empty set.
func parseCategories(raw string) ([]string, error) {
	if raw == "" {
		return nil, common.ErrInvalidCategorySet
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil, common.ErrInvalidCategorySet
	}

	cleaned := make([]string, 0, len(categories))
	for _, cat := range categories {
		cat = strings.TrimSpace(cat)
		if cat != "" {
			cleaned = append(cleaned, cat)
		}
	}

	if len(cleaned) == 0 {
		return nil, common.ErrInvalidCategorySet
	}

	return cleaned, nil
}
