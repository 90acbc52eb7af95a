package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendingspotlight/spotlight/internal/model"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain json untouched",
			content: `{"has_transactions": true}`,
			want:    `{"has_transactions": true}`,
		},
		{
			name:    "json fence",
			content: "```json\n[\"a\", \"b\"]\n```",
			want:    `["a", "b"]`,
		},
		{
			name:    "bare fence",
			content: "```\n[\"a\"]\n```",
			want:    `["a"]`,
		},
		{
			name:    "surrounding whitespace",
			content: "  \n```json\n{}\n```\n  ",
			want:    `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.content))
		})
	}
}

func TestParseKeywordReport(t *testing.T) {
	report, err := parseKeywordReport(`{"has_transactions": true, "section_keywords": [" Transactions ", "Account Activity"]}`)
	require.NoError(t, err)

	assert.True(t, report.HasTransactions)
	assert.Equal(t, []string{"transactions", "account activity"}, report.Keywords)
}

func TestParseKeywordReportFenced(t *testing.T) {
	report, err := parseKeywordReport("```json\n{\"has_transactions\": false, \"section_keywords\": []}\n```")
	require.NoError(t, err)

	assert.False(t, report.HasTransactions)
	assert.Empty(t, report.Keywords)
}

func TestParseKeywordReportMalformed(t *testing.T) {
	_, err := parseKeywordReport("I could not find any sections.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse keyword report")
}

func TestParseTransactionList(t *testing.T) {
	transactions, err := parseTransactionList(`["01/02 COFFEE $4.50", "01/03 GAS $40.00"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"01/02 COFFEE $4.50", "01/03 GAS $40.00"}, transactions)
}

func TestParseTransactionListMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "prose", content: "Here are the transactions I found:"},
		{name: "object not array", content: `{"transactions": []}`},
		{name: "truncated", content: `["01/02 COFFEE $4.50",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTransactionList(tt.content)
			assert.Error(t, err)
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.Label
	}{
		{name: "exact expected", content: "Expected", want: model.LabelExpected},
		{name: "lowercase", content: "expected", want: model.LabelExpected},
		{name: "verbose expected", content: "expected, matches groceries", want: model.LabelExpected},
		{name: "whitespace", content: "  Expected\n", want: model.LabelExpected},
		{name: "exact unexpected", content: "Unexpected", want: model.LabelUnexpected},
		{name: "hedged reply", content: "unsure", want: model.LabelUnexpected},
		{name: "expected mentioned late", content: "this looks expected", want: model.LabelUnexpected},
		{name: "empty reply", content: "", want: model.LabelUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLabel(tt.content))
		})
	}
}
