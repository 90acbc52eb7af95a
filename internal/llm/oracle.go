package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendingspotlight/spotlight/internal/common"
	"github.com/spendingspotlight/spotlight/internal/model"
)

// DefaultKeywords is the fallback keyword set used when the oracle cannot
// identify section headings itself.
var DefaultKeywords = []string{"transactions", "activity", "details", "purchases"}

// Token budgets per operation. Keyword identification and classification are
// short answers; extraction returns whole transaction lists.
const (
	keywordMaxTokens  = 200
	extractMaxTokens  = 3000
	classifyMaxTokens = 10
)

// Oracle is the typed interface to the reasoning service. Every operation
// degrades to a documented default instead of returning an error: one failed
// call must only ever cost that call's contribution, never the run.
type Oracle struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   common.RetryOptions
}

// NewOracle creates an oracle backed by the configured provider.
func NewOracle(cfg Config, logger *slog.Logger) (*Oracle, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
	}
	// Single attempt per call unless configured otherwise.
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 1
	}

	return &Oracle{
		client:      client,
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		retryOpts:   retryOpts,
	}, nil
}

// NewOracleWithClient wires an oracle onto an existing transport. Used by
// tests to substitute a double for the network client.
func NewOracleWithClient(client Client, logger *slog.Logger) *Oracle {
	return &Oracle{
		client:      client,
		logger:      logger,
		rateLimiter: newRateLimiter(0),
		retryOpts:   common.RetryOptions{MaxAttempts: 1},
	}
}

// IdentifyKeywords asks the oracle which headings mark the transaction
// sections of a statement, given a bounded preview of its text. On any
// failure it falls back to DefaultKeywords with HasTransactions set, so the
// section locator still has something to scan for.
func (o *Oracle) IdentifyKeywords(ctx context.Context, preview string) model.KeywordReport {
	var report model.KeywordReport

	err := o.call(ctx, func() error {
		content, err := o.client.Complete(ctx, CompletionRequest{
			System:    keywordSystemPrompt,
			Prompt:    buildKeywordPrompt(preview),
			MaxTokens: keywordMaxTokens,
		})
		if err != nil {
			return err
		}

		report, err = parseKeywordReport(content)
		return err
	})
	if err != nil {
		o.logger.Warn("keyword identification failed, using default keywords",
			"error", err)
		return model.KeywordReport{
			HasTransactions: true,
			Keywords:        append([]string(nil), DefaultKeywords...),
		}
	}

	if len(report.Keywords) == 0 {
		report.Keywords = append([]string(nil), DefaultKeywords...)
	}

	return report
}

// ExtractTransactions asks the oracle for every transaction line in one
// chunk. On any failure it returns an empty list; the extractor carries on
// with the remaining chunks.
func (o *Oracle) ExtractTransactions(ctx context.Context, chunk model.Chunk) []string {
	var transactions []string

	err := o.call(ctx, func() error {
		content, err := o.client.Complete(ctx, CompletionRequest{
			System:    extractSystemPrompt,
			Prompt:    buildExtractPrompt(chunk.Index+1, chunk.Text),
			MaxTokens: extractMaxTokens,
		})
		if err != nil {
			return err
		}

		transactions, err = parseTransactionList(content)
		return err
	})
	if err != nil {
		o.logger.Warn("transaction extraction failed for chunk",
			"chunk", chunk.Index,
			"error", err)
		return nil
	}

	return transactions
}

// Classify asks the oracle for an Expected/Unexpected verdict on a single
// transaction against the user's category set. On any failure it returns the
// fail-closed Unexpected label so the transaction is surfaced for review
// rather than silently approved.
func (o *Oracle) Classify(ctx context.Context, transaction string, categories []string) model.Label {
	label := model.LabelUnexpected

	err := o.call(ctx, func() error {
		content, err := o.client.Complete(ctx, CompletionRequest{
			System:    classifySystemPrompt,
			Prompt:    buildClassifyPrompt(transaction, categories),
			MaxTokens: classifyMaxTokens,
		})
		if err != nil {
			return err
		}

		label = parseLabel(content)
		return nil
	})
	if err != nil {
		o.logger.Warn("classification failed, defaulting to Unexpected",
			"transaction", transaction,
			"error", err)
		return model.LabelUnexpected
	}

	return label
}

// call runs one oracle operation behind the rate limiter and the configured
// retry policy (a single attempt by default).
func (o *Oracle) call(ctx context.Context, operation func() error) error {
	if err := o.rateLimiter.wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	return common.WithRetry(ctx, func() error {
		if err := operation(); err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		return nil
	}, o.retryOpts)
}

// Close stops background goroutines and cleans up resources.
func (o *Oracle) Close() error {
	if o.rateLimiter != nil {
		o.rateLimiter.Close()
	}
	return nil
}
