package pipeline

import (
	"context"
	"strings"
	"sync"

	"github.com/spendingspotlight/spotlight/internal/model"
)

// MockOracle is a test implementation of the Oracle interface. It returns
// deterministic results based on the input text so pipeline behavior can be
// asserted without a network.
type MockOracle struct {
	// Keywords returned by IdentifyKeywords. Defaults to {"transactions"}.
	Keywords []string
	// ExtractByChunk scripts extraction output per chunk index. A missing
	// index yields no transactions.
	ExtractByChunk map[int][]string
	// ExtractFails makes every extraction call return nothing, simulating a
	// run where the oracle is down.
	ExtractFails bool
	// ExpectedMerchants lists lowercase substrings that classify as Expected.
	ExpectedMerchants []string

	mu            sync.Mutex
	extractCalls  []int
	classifyCalls []string
}

// IdentifyKeywords returns the configured keyword set.
func (m *MockOracle) IdentifyKeywords(_ context.Context, _ string) model.KeywordReport {
	keywords := m.Keywords
	if keywords == nil {
		keywords = []string{"transactions"}
	}
	return model.KeywordReport{HasTransactions: true, Keywords: keywords}
}

// ExtractTransactions returns the scripted lines for the chunk.
func (m *MockOracle) ExtractTransactions(_ context.Context, chunk model.Chunk) []string {
	m.mu.Lock()
	m.extractCalls = append(m.extractCalls, chunk.Index)
	m.mu.Unlock()

	if m.ExtractFails {
		return nil
	}
	return m.ExtractByChunk[chunk.Index]
}

// Classify labels a transaction Expected when it mentions one of the
// configured merchants, Unexpected otherwise.
func (m *MockOracle) Classify(_ context.Context, transaction string, _ []string) model.Label {
	m.mu.Lock()
	m.classifyCalls = append(m.classifyCalls, transaction)
	m.mu.Unlock()

	lower := strings.ToLower(transaction)
	for _, merchant := range m.ExpectedMerchants {
		if strings.Contains(lower, merchant) {
			return model.LabelExpected
		}
	}
	return model.LabelUnexpected
}

// ExtractCalls returns the chunk indices extraction was called with, in order.
func (m *MockOracle) ExtractCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.extractCalls...)
}

// ClassifyCalls returns the transactions classification was called with, in order.
func (m *MockOracle) ClassifyCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.classifyCalls...)
}
