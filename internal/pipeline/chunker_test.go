package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkPlannerPlan(t *testing.T) {
	tests := []struct {
		name      string
		maxChars  int
		maxChunks int
		textLen   int
		want      int
	}{
		{name: "empty text", maxChars: 10, maxChunks: 5, textLen: 0, want: 0},
		{name: "fits in one chunk", maxChars: 100, maxChunks: 5, textLen: 42, want: 1},
		{name: "exact boundary", maxChars: 50, maxChunks: 5, textLen: 100, want: 2},
		{name: "one char over boundary", maxChars: 50, maxChunks: 5, textLen: 101, want: 3},
		{name: "capped at max chunks", maxChars: 10, maxChunks: 3, textLen: 1000, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := NewChunkPlanner(tt.maxChars, tt.maxChunks)
			chunks := planner.Plan(strings.Repeat("a", tt.textLen))

			require.Len(t, chunks, tt.want)
			for i, chunk := range chunks {
				assert.Equal(t, i, chunk.Index)
				assert.LessOrEqual(t, len(chunk.Text), tt.maxChars)
				assert.NotEmpty(t, chunk.Text)
			}
		})
	}
}

func TestChunkPlannerReconstructsPrefix(t *testing.T) {
	text := "0123456789abcdefghij"
	planner := NewChunkPlanner(7, 10)

	chunks := planner.Plan(text)

	var joined strings.Builder
	for _, chunk := range chunks {
		joined.WriteString(chunk.Text)
	}
	assert.Equal(t, text, joined.String())
}

func TestChunkPlannerDropsTextBeyondCap(t *testing.T) {
	planner := NewChunkPlanner(4, 2)

	chunks := planner.Plan("aaaabbbbcccc")

	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaa", chunks[0].Text)
	assert.Equal(t, "bbbb", chunks[1].Text)
}

func TestChunkPlannerDefaults(t *testing.T) {
	planner := NewChunkPlanner(0, -1)

	assert.Equal(t, DefaultMaxChunkChars, planner.maxChars)
	assert.Equal(t, DefaultMaxChunks, planner.maxChunks)
}
