package llm

import (
	"fmt"
	"strings"
)

// System instructions for the three oracle operations.
const (
	keywordSystemPrompt  = "You are a document analyzer. Identify transaction sections."
	extractSystemPrompt  = "Extract transaction lines. Return valid JSON only."
	classifySystemPrompt = "You are a financial assistant. Classify transactions accurately."
)

// buildKeywordPrompt asks the model whether a statement preview contains
// transactions and which headings mark the transaction sections.
func buildKeywordPrompt(preview string) string {
	return fmt.Sprintf(`Analyze this bank statement preview and tell me:
1. Does this section contain actual transactions?
2. What keywords indicate transaction sections? (e.g., "Transactions", "Activity", "Purchases")

Preview:
%s

Reply in JSON format:
{"has_transactions": true/false, "section_keywords": ["keyword1", "keyword2"]}`, preview)
}

// buildExtractPrompt asks the model to pull every transaction line out of one
// chunk of statement text. The section number is 1-based for the model's
// benefit only.
func buildExtractPrompt(sectionNumber int, chunk string) string {
	return fmt.Sprintf(`Extract ALL transaction lines from this bank statement section.

A transaction line MUST have:
- A date (can be abbreviated like "Sep 9" or full "September 9")
- A merchant/vendor name or description
- An amount (dollars)

INCLUDE lines like:
- "Sep 10 Sep 11 ROGERS ******8621 888-764-3771 ON 185.98"
- "Oct 14 POS PURCHASE W/PIN ($130.02) AMAR CONVENIENCE MANTECA CA"
- "Nov 03 REAL TIME CREDIT $1,200.00 RTP CREDIT DALJIT SINGH"
- "001 Sep 9 Sep 10 LONDON DRUGS 17 DELTA BC 27.63"

EXCLUDE:
- Account summaries, headers, footers
- Balance information, totals, subtotals
- Page numbers, statement dates
- Terms and conditions
- Customer addresses
- Lines that only say "Continued" or "Page X of Y"

Text section %d:
%s

Return a JSON array of transaction strings: ["transaction1", "transaction2", ...]
Return [] if no transactions found.
JSON only, no markdown.`, sectionNumber, chunk)
}

// buildClassifyPrompt asks the model for a one-word Expected/Unexpected
// verdict. The merchant-to-category mapping is guidance, not a lookup table;
// final labeling authority rests with the model's output.
func buildClassifyPrompt(transaction string, categories []string) string {
	return fmt.Sprintf(`You are classifying credit card/bank transactions as either 'Expected' or 'Unexpected'.

The user expects spending in these categories: %s.

Map merchants intelligently:
- Grocery stores (Thrifty Foods, Safeway, Walmart grocery, Whole Foods, etc.) → groceries
- Gas stations (Chevron, Esso, Shell, Arco, etc.) → gas
- Restaurants, cafes, food delivery, sweets shops → dining or food or food pickup
- Streaming services (Netflix, Spotify, Apple Music, etc.) → media
- Phone/internet bills (Rogers, Telus, Verizon, AT&T, etc.) → bills
- Pharmacies (London Drugs, CVS, Walgreens, etc.) → medical
- Amazon, online retailers → online shopping
- Parking, airports, hotels → travel
- Car services, automotive → travel or maintenance
- One-time government fees (passport, immigration) → check if user has custom categories for these
- Clothing stores, fashion → online shopping or entertainment
- Banks, financial transfers → bills or money transfer

Transaction: "%s"

Reply with ONLY one word: Expected or Unexpected`, strings.Join(categories, ", "), transaction)
}
