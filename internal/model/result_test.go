package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSONShape(t *testing.T) {
	result := Result{
		TotalTransactions: 1,
		Expected: []ClassifiedTransaction{
			{Transaction: "01/02 WHOLE FOODS $54.12", Classification: LabelExpected},
		},
		Unexpected: []ClassifiedTransaction{},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	// Field names are part of the API contract with the frontend.
	assert.JSONEq(t, `{
		"totalTransactions": 1,
		"expected": [{"transaction": "01/02 WHOLE FOODS $54.12", "classification": "Expected"}],
		"unexpected": []
	}`, string(data))
}

func TestKeywordReportAcceptsOracleJSON(t *testing.T) {
	var report KeywordReport
	err := json.Unmarshal([]byte(`{"has_transactions": true, "section_keywords": ["Transactions"]}`), &report)
	require.NoError(t, err)

	assert.True(t, report.HasTransactions)
	assert.Equal(t, []string{"Transactions"}, report.Keywords)
}
