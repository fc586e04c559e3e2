package handlers

import (
	"context"
	"sync"
	"testing"

	"anifinder-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
)

// newTestAPI returns a humatest API configured like the server: no $schema links
func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	config := huma.DefaultConfig("AniFinder API", "test")
	config.Transformers = nil
	config.CreateHooks = nil
	_, api := humatest.New(t, config)
	return api
}

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

// mockMetadataService is a mock implementation of the MetadataService interface
type mockMetadataService struct {
	lookupFunc func(ctx context.Context, search, lang string) (*domain.Anime, error)
	lastLang   string
	calls      int
}

func (m *mockMetadataService) LookupAnime(ctx context.Context, search, lang string) (*domain.Anime, error) {
	m.calls++
	m.lastLang = lang
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, search, lang)
	}
	return nil, nil
}

// mockLogger records log messages
type mockLogger struct {
	mu     sync.Mutex
	errors []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fields)
}
