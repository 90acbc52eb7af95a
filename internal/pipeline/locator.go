package pipeline

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// previewChars bounds how much of the document the oracle sees when
	// identifying section keywords.
	previewChars = 3000

	// minSectionLines guards against cutting the region off at an end
	// marker before any meaningful amount of it has been collected.
	minSectionLines = 50
)

// endMarkers are headings that commonly follow the transaction section of a
// statement. Matching is case-insensitive substring, like the keywords.
var endMarkers = []string{
	"interest information",
	"important information",
	"in case of errors",
}

// SectionLocator narrows full statement text down to the region that carries
// the transactions, using oracle-identified section keywords.
type SectionLocator struct {
	oracle Oracle
	logger *slog.Logger
}

// NewSectionLocator creates a locator over the given oracle.
func NewSectionLocator(oracle Oracle, logger *slog.Logger) *SectionLocator {
	return &SectionLocator{oracle: oracle, logger: logger}
}

// Locate returns the transaction-bearing region of text. If no keyword ever
// matches, it returns the full input unchanged: over-including is cheaper
// than losing transactions.
func (l *SectionLocator) Locate(ctx context.Context, text string) string {
	preview := text
	if len(preview) > previewChars {
		preview = preview[:previewChars]
	}

	report := l.oracle.IdentifyKeywords(ctx, preview)
	l.logger.Debug("section keywords identified",
		"keywords", report.Keywords,
		"has_transactions", report.HasTransactions)

	region := collectSection(text, report.Keywords)
	if len(region) == 0 {
		l.logger.Debug("no transaction section detected, using full text")
		return text
	}

	return strings.Join(region, "\n")
}

// collectSection scans line by line. A keyword hit toggles collection on;
// once at least minSectionLines have been collected, an end-marker line is
// appended (it may itself describe a transaction) and collection stops.
func collectSection(text string, keywords []string) []string {
	var section []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		if containsAny(lower, keywords) {
			inSection = true
		}

		if inSection && containsAny(lower, endMarkers) && len(section) > minSectionLines {
			section = append(section, line)
			break
		}

		if inSection {
			section = append(section, line)
		}
	}

	return section
}

func containsAny(line string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(line, needle) {
			return true
		}
	}
	return false
}
