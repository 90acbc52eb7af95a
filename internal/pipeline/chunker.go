package pipeline

import (
	"github.com/spendingspotlight/spotlight/internal/model"
)

// Chunk planning defaults. Ten chunks of 12,000 characters cover roughly
// 40-60 pages of transactions before the cost ceiling kicks in.
const (
	DefaultMaxChunkChars = 12000
	DefaultMaxChunks     = 10
)

// ChunkPlanner splits a text region into contiguous, non-overlapping,
// bounded chunks. It caps both chunk size and chunk count so the number of
// oracle calls stays bounded no matter how large the document is; text
// beyond the count ceiling is dropped.
type ChunkPlanner struct {
	maxChars  int
	maxChunks int
}

// NewChunkPlanner creates a planner. Non-positive limits fall back to the
// defaults.
func NewChunkPlanner(maxChars, maxChunks int) *ChunkPlanner {
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkChars
	}
	if maxChunks <= 0 {
		maxChunks = DefaultMaxChunks
	}
	return &ChunkPlanner{maxChars: maxChars, maxChunks: maxChunks}
}

// Plan slices text into at most maxChunks chunks of at most maxChars
// characters each, in order. Concatenating the returned chunks reconstructs
// a prefix of the input.
func (p *ChunkPlanner) Plan(text string) []model.Chunk {
	if len(text) == 0 {
		return nil
	}

	chunks := make([]model.Chunk, 0, p.maxChunks)
	for start := 0; start < len(text) && len(chunks) < p.maxChunks; start += p.maxChars {
		end := start + p.maxChars
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, model.Chunk{
			Index: len(chunks),
			Text:  text[start:end],
		})
	}

	return chunks
}
