package anime

import (
	"context"
	"errors"
	"sync"
	"time"

	"anifinder-api/core/domain"
)

// mockMetadataProvider is a mock implementation of the AnimeMetadataProvider interface
type mockMetadataProvider struct {
	mu         sync.Mutex
	searches   []string
	searchFunc func(ctx context.Context, search string) (*domain.Anime, error)
}

func (m *mockMetadataProvider) SearchMedia(ctx context.Context, search string) (*domain.Anime, error) {
	m.mu.Lock()
	m.searches = append(m.searches, search)
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, search)
	}
	return nil, nil
}

func (m *mockMetadataProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.searches)
}

// mockTranslator is a mock implementation of the Translator interface
type mockTranslator struct {
	translateFunc func(ctx context.Context, text, targetLang string) (string, error)
	calls         int
}

func (m *mockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.calls++
	if m.translateFunc != nil {
		return m.translateFunc(ctx, text, targetLang)
	}
	return text, nil
}

// mockCache is an in-memory implementation of the Cache interface
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockLogger records warnings
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
