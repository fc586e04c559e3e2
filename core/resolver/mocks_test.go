package resolver

import (
	"context"
	"sync"

	"anifinder-api/core/domain"
)

// mockSearchProvider is a mock implementation of the SearchProvider interface
type mockSearchProvider struct {
	mu         sync.Mutex
	queries    []string
	searchFunc func(ctx context.Context, query string) (*domain.SearchResultSet, error)
}

func (m *mockSearchProvider) Search(ctx context.Context, query string) (*domain.SearchResultSet, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return &domain.SearchResultSet{Query: query}, nil
}

func (m *mockSearchProvider) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

// resultsByQuery returns a searchFunc serving fixed result sets per query
func resultsByQuery(sets map[string][]domain.SearchCandidate) func(ctx context.Context, query string) (*domain.SearchResultSet, error) {
	return func(ctx context.Context, query string) (*domain.SearchResultSet, error) {
		return &domain.SearchResultSet{Query: query, Data: sets[query]}, nil
	}
}

// mockLogger records log calls
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }
