package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/spendingspotlight/spotlight/internal/llm"
	"github.com/spendingspotlight/spotlight/internal/pipeline"
)

// buildPipeline constructs the oracle and pipeline from viper configuration.
// The caller owns the returned oracle and must Close it.
func buildPipeline(logger *slog.Logger) (*pipeline.Pipeline, *llm.Oracle, error) {
	cfg := llm.Config{
		Provider:   viper.GetString("llm.provider"),
		APIKey:     viper.GetString("llm.api_key"),
		Model:      viper.GetString("llm.model"),
		Endpoint:   viper.GetString("llm.endpoint"),
		Timeout:    viper.GetDuration("llm.timeout"),
		MaxRetries: viper.GetInt("llm.max_retries"),
		RetryDelay: viper.GetDuration("llm.retry_delay"),
		RateLimit:  viper.GetInt("llm.rate_limit"),
	}

	// Fall back to the provider's conventional environment variable when no
	// key is configured explicitly.
	if cfg.APIKey == "" {
		switch strings.ToLower(cfg.Provider) {
		case "anthropic":
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	oracle, err := llm.NewOracle(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	p := pipeline.New(oracle, pipeline.Config{
		MaxChunkChars:      viper.GetInt("pipeline.max_chunk_chars"),
		MaxChunks:          viper.GetInt("pipeline.max_chunks"),
		FoldCaseDuplicates: viper.GetBool("pipeline.fold_case_duplicates"),
	}, logger)

	return p, oracle, nil
}
