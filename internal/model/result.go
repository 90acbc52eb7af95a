// Package model defines the core domain types shared across the application.
package model

// Label marks a transaction as matching the user's expected spending or not.
type Label string

const (
	// LabelExpected means the transaction fits one of the user's categories.
	LabelExpected Label = "Expected"
	// LabelUnexpected is the fail-closed default: anything the oracle did not
	// positively confirm is surfaced for the user to review.
	LabelUnexpected Label = "Unexpected"
)

// ClassifiedTransaction pairs a raw transaction line with its label.
type ClassifiedTransaction struct {
	Transaction    string `json:"transaction"`
	Classification Label  `json:"classification"`
}

// Result is the outcome of one full pipeline run. It is built once and never
// mutated afterwards; it has no lifecycle beyond the request that produced it.
type Result struct {
	Expected          []ClassifiedTransaction `json:"expected"`
	Unexpected        []ClassifiedTransaction `json:"unexpected"`
	TotalTransactions int                     `json:"totalTransactions"`
}

// KeywordReport is the oracle's answer to "where do the transactions live?".
type KeywordReport struct {
	Keywords        []string `json:"section_keywords"`
	HasTransactions bool     `json:"has_transactions"`
}

// Chunk is a bounded, contiguous slice of the relevant text region. Chunks
// are non-overlapping and ordered; concatenating them in index order
// reconstructs a prefix of the region they were cut from.
type Chunk struct {
	Text  string
	Index int
}
