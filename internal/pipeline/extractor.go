package pipeline

import (
	"context"

	"github.com/spendingspotlight/spotlight/internal/model"
)

// extract drives the oracle over each chunk in index order, accumulating the
// returned transaction lines. A failed chunk contributes nothing but never
// aborts the chunks after it; each chunk gets a single attempt.
func (p *Pipeline) extract(ctx context.Context, chunks []model.Chunk) []string {
	var raw []string

	for i, chunk := range chunks {
		lines := p.oracle.ExtractTransactions(ctx, chunk)
		raw = append(raw, lines...)

		p.logger.Debug("chunk extracted",
			"chunk", chunk.Index,
			"lines", len(lines))
		p.report(StageExtract, i+1, len(chunks))
	}

	return raw
}
