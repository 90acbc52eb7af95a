package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spendingspotlight/spotlight/internal/model"
)

// cleanMarkdownWrapper strips fenced code blocks the model sometimes wraps
// around its output despite instructions not to.
func cleanMarkdownWrapper(content string) string {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return strings.TrimPrefix(strings.TrimPrefix(s, "```json"), "```")
		}
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// parseKeywordReport parses the identify-keywords response. Keywords are
// lowercased so the section locator can match case-insensitively.
func parseKeywordReport(content string) (model.KeywordReport, error) {
	content = cleanMarkdownWrapper(content)

	var report model.KeywordReport
	if err := json.Unmarshal([]byte(content), &report); err != nil {
		return model.KeywordReport{}, fmt.Errorf("failed to parse keyword report: %w", err)
	}

	for i, kw := range report.Keywords {
		report.Keywords[i] = strings.ToLower(strings.TrimSpace(kw))
	}

	return report, nil
}

// parseTransactionList parses the extract-transactions response, a JSON array
// of transaction strings.
func parseTransactionList(content string) ([]string, error) {
	content = cleanMarkdownWrapper(content)

	var transactions []string
	if err := json.Unmarshal([]byte(content), &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transaction list: %w", err)
	}

	return transactions, nil
}

// parseLabel maps a free-text classification reply onto a label. Only a
// reply beginning with "expected" (case-insensitive) is accepted as
// Expected; everything else is the fail-closed Unexpected.
func parseLabel(content string) model.Label {
	reply := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(reply, "expected") {
		return model.LabelExpected
	}
	return model.LabelUnexpected
}
