// Package server exposes the analysis pipeline over HTTP. It owns request
// validation, upload lifecycle, CORS, and the translation of the pipeline's
// error conditions into structured JSON responses.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/spendingspotlight/spotlight/internal/extract"
	"github.com/spendingspotlight/spotlight/internal/model"
)

const apiVersion = "2.0.0"

// DefaultMaxUploadBytes caps statement uploads at 16MB.
const DefaultMaxUploadBytes = 16 << 20

// Analyzer runs the extraction and classification pipeline over statement
// text. Satisfied by *pipeline.Pipeline.
type Analyzer interface {
	Run(ctx context.Context, text string, categories []string) (*model.Result, error)
}

// Config holds HTTP server configuration.
type Config struct {
	Addr           string
	UploadDir      string
	MaxUploadBytes int64
}

// Server is the HTTP boundary in front of the pipeline.
type Server struct {
	cfg       Config
	extractor extract.TextExtractor
	analyzer  Analyzer
	logger    *slog.Logger
	router    *gin.Engine
}

// New wires the router, middleware and handlers. The upload scratch
// directory is created if it does not exist.
func New(cfg Config, extractor extract.TextExtractor, analyzer Analyzer, logger *slog.Logger) (*Server, error) {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(CORS())

	router.GET("/", s.handleHome)
	router.GET("/api/health", s.handleHealth)
	router.POST("/api/analyze", s.handleAnalyze)

	s.router = router
	return s, nil
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the configured address and blocks.
func (s *Server) Run() error {
	s.logger.Info("server starting", "addr", s.cfg.Addr)
	if err := s.router.Run(s.cfg.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
