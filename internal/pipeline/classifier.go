package pipeline

import (
	"context"

	"github.com/spendingspotlight/spotlight/internal/model"
)

// classify labels each unique transaction and partitions the results into
// the expected and unexpected buckets. Every transaction lands in exactly
// one bucket; list order follows the unique transaction iteration order.
// The oracle's fail-closed default means a failed call surfaces its
// transaction as Unexpected rather than dropping it.
func (p *Pipeline) classify(ctx context.Context, transactions, categories []string) (expected, unexpected []model.ClassifiedTransaction) {
	expected = make([]model.ClassifiedTransaction, 0, len(transactions))
	unexpected = make([]model.ClassifiedTransaction, 0, len(transactions))

	for i, txn := range transactions {
		label := p.oracle.Classify(ctx, txn, categories)

		classified := model.ClassifiedTransaction{
			Transaction:    txn,
			Classification: label,
		}
		if label == model.LabelExpected {
			expected = append(expected, classified)
		} else {
			unexpected = append(unexpected, classified)
		}

		p.report(StageClassify, i+1, len(transactions))
	}

	return expected, unexpected
}
