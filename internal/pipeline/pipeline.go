// Package pipeline implements the extraction and classification pipeline:
// narrow a statement to its transaction-bearing region, split that region
// into bounded chunks, extract transaction lines per chunk through the
// reasoning oracle, deduplicate, and classify each unique transaction
// against the user's expected spending categories.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/spendingspotlight/spotlight/internal/common"
	"github.com/spendingspotlight/spotlight/internal/model"
)

// Oracle is the reasoning service as consumed by the pipeline. Every
// operation degrades to a documented default inside the implementation, so
// none of them return errors here.
type Oracle interface {
	IdentifyKeywords(ctx context.Context, preview string) model.KeywordReport
	ExtractTransactions(ctx context.Context, chunk model.Chunk) []string
	Classify(ctx context.Context, transaction string, categories []string) model.Label
}

// Stage identifies a pipeline phase for progress reporting.
type Stage string

// Progress stages reported to the optional Progress callback.
const (
	StageExtract  Stage = "extract"
	StageClassify Stage = "classify"
)

// Config bounds the pipeline's work for arbitrarily large documents.
type Config struct {
	// MaxChunkChars is the character ceiling per chunk.
	MaxChunkChars int
	// MaxChunks caps how many chunks are submitted to the oracle; text
	// beyond the cap is dropped, trading recall for bounded cost.
	MaxChunks int
	// FoldCaseDuplicates makes deduplication case-insensitive. Off by
	// default: statements sometimes carry distinct merchants whose names
	// differ only in case.
	FoldCaseDuplicates bool
}

// Pipeline composes the section locator, chunk planner, extractor,
// deduplicator and classifier into the end-to-end flow. Each run owns its
// own accumulators, so distinct runs may execute in parallel.
type Pipeline struct {
	oracle   Oracle
	logger   *slog.Logger
	locator  *SectionLocator
	planner  *ChunkPlanner
	foldCase bool

	// Progress, if set, is invoked after each completed oracle call during
	// the extract and classify stages.
	Progress func(stage Stage, completed, total int)
}

// New creates a pipeline over the given oracle. Zero config values fall back
// to the documented defaults.
func New(oracle Oracle, cfg Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		oracle:   oracle,
		logger:   logger,
		locator:  NewSectionLocator(oracle, logger),
		planner:  NewChunkPlanner(cfg.MaxChunkChars, cfg.MaxChunks),
		foldCase: cfg.FoldCaseDuplicates,
	}
}

// Run executes the full pipeline over the extracted statement text. It
// returns common.ErrNoTransactionsFound when deduplication leaves nothing to
// classify; oracle-level failures never terminate a run.
func (p *Pipeline) Run(ctx context.Context, text string, categories []string) (*model.Result, error) {
	region := p.locator.Locate(ctx, text)

	chunks := p.planner.Plan(region)
	p.logger.Debug("planned chunks",
		"region_chars", len(region),
		"chunks", len(chunks))

	raw := p.extract(ctx, chunks)

	unique := dedupe(raw, p.foldCase)
	if len(unique) == 0 {
		return nil, common.ErrNoTransactionsFound
	}

	expected, unexpected := p.classify(ctx, unique, categories)

	p.logger.Info("pipeline run complete",
		"total", len(unique),
		"expected", len(expected),
		"unexpected", len(unexpected))

	return &model.Result{
		TotalTransactions: len(unique),
		Expected:          expected,
		Unexpected:        unexpected,
	}, nil
}

func (p *Pipeline) report(stage Stage, completed, total int) {
	if p.Progress != nil {
		p.Progress(stage, completed, total)
	}
}
