package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/spendingspotlight/spotlight/internal/common"
	"github.com/spendingspotlight/spotlight/internal/extract"
	"github.com/spendingspotlight/spotlight/internal/model"
	"github.com/spendingspotlight/spotlight/internal/pipeline"
)

func analyzeCmd() *cobra.Command {
	var categoriesFlag string

	cmd := &cobra.Command{
		Use:   "analyze <statement.pdf>",
		Short: "Analyze a local statement PDF",
		Long: `Analyze extracts the transactions from a statement PDF and labels each
one Expected or Unexpected against the given spending categories.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], categoriesFlag)
		},
	}

	cmd.Flags().StringVar(&categoriesFlag, "categories", "", "comma-separated expected categories (e.g. groceries,gas)")
	_ = cmd.MarkFlagRequired("categories")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path, categoriesFlag string) error {
	categories := splitCategories(categoriesFlag)
	if len(categories) == 0 {
		return common.NewUserError("at least one category is required", common.ErrInvalidCategorySet)
	}

	logger := slog.Default()

	text, err := extract.NewPDFExtractor().ExtractText(path)
	if err != nil {
		if errors.Is(err, common.ErrExtractionFailed) {
			return common.NewUserError("could not extract text from "+path, err)
		}
		return err
	}

	p, oracle, err := buildPipeline(logger)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer func() { _ = oracle.Close() }()

	var bar *progressbar.ProgressBar
	var barStage pipeline.Stage
	p.Progress = func(stage pipeline.Stage, completed, total int) {
		if bar == nil || barStage != stage {
			barStage = stage
			bar = progressbar.Default(int64(total), string(stage))
		}
		_ = bar.Set(completed)
	}

	result, err := p.Run(cmd.Context(), text, categories)
	if err != nil {
		if errors.Is(err, common.ErrNoTransactionsFound) {
			return common.NewUserError("no transactions found in "+path, err)
		}
		return err
	}

	printResult(cmd, result)
	return nil
}

func splitCategories(raw string) []string {
	var categories []string
	for _, cat := range strings.Split(raw, ",") {
		cat = strings.TrimSpace(cat)
		if cat != "" {
			categories = append(categories, cat)
		}
	}
	return categories
}

func printResult(cmd *cobra.Command, result *model.Result) {
	cmd.Printf("\n%d transactions\n", result.TotalTransactions)

	cmd.Printf("\nExpected (%d):\n", len(result.Expected))
	for _, txn := range result.Expected {
		cmd.Printf("  %s\n", txn.Transaction)
	}

	cmd.Printf("\nUnexpected (%d):\n", len(result.Unexpected))
	for _, txn := range result.Unexpected {
		cmd.Printf("  %s\n", txn.Transaction)
	}
}
