// Package extract converts uploaded statement documents to plain text for
// the pipeline. The pipeline itself never touches file formats; it consumes
// the TextExtractor contract only.
package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/spendingspotlight/spotlight/internal/common"
)

// MinTextLength is the threshold below which an extraction result is treated
// as a failure: statements shorter than this are scanned images or empty
// files, not text the pipeline can work with.
const MinTextLength = 50

// TextExtractor converts a document on disk into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PDFExtractor extracts plain text from PDF statements, page by page.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns the text of every page joined with newlines. A result
// shorter than MinTextLength returns common.ErrExtractionFailed.
func (e *PDFExtractor) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}
	defer func() { _ = f.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	content := strings.Join(pages, "\n")
	if len(strings.TrimSpace(content)) < MinTextLength {
		return "", common.ErrExtractionFailed
	}

	return content, nil
}
