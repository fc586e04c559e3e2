package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	coreerrors "anifinder-api/core/errors"
	"anifinder-api/core/interfaces"
	stdhttp "anifinder-api/infrastructure/http/standard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errors.New("miss")
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

const translatedJSON = `[[["Naruto regresa. ","Naruto returns. ",null,null,10],["Tras dos años.","After two years.",null,null,10]],null,"en"]`

func newTestTranslator(t *testing.T, cache interfaces.Cache, handler http.HandlerFunc) *Translator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewTranslator(server.URL, interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{Timeout: 5 * time.Second}),
		Cache:      cache,
	})
}

func TestTranslate_JoinsSentences(t *testing.T) {
	var query map[string][]string
	translator := newTestTranslator(t, nil, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(translatedJSON))
	})

	out, err := translator.Translate(context.Background(), "Naruto returns. After two years.", "es")

	require.NoError(t, err)
	assert.Equal(t, "Naruto regresa. Tras dos años.", out)
	assert.Equal(t, []string{"gtx"}, query["client"])
	assert.Equal(t, []string{"auto"}, query["sl"])
	assert.Equal(t, []string{"es"}, query["tl"])
	assert.Equal(t, []string{"t"}, query["dt"])
	assert.Equal(t, []string{"Naruto returns. After two years."}, query["q"])
}

func TestTranslate_EmptyTextSkipsNetwork(t *testing.T) {
	calls := 0
	translator := newTestTranslator(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	out, err := translator.Translate(context.Background(), "   ", "es")

	require.NoError(t, err)
	assert.Equal(t, "   ", out)
	assert.Zero(t, calls)
}

func TestTranslate_MissingLanguage(t *testing.T) {
	translator := NewTranslator("", interfaces.Dependencies{})

	_, err := translator.Translate(context.Background(), "hello", "")

	assert.True(t, coreerrors.IsValidation(err))
}

func TestTranslate_CachesResult(t *testing.T) {
	calls := 0
	cache := newMapCache()
	translator := newTestTranslator(t, cache, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(translatedJSON))
	})

	first, err := translator.Translate(context.Background(), "Naruto returns. After two years.", "es")
	require.NoError(t, err)
	second, err := translator.Translate(context.Background(), "Naruto returns. After two years.", "es")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	cached, err := cache.Get(context.Background(), cacheKey("Naruto returns. After two years.", "es"))
	require.NoError(t, err)
	assert.Equal(t, first, string(cached))
}

func TestTranslate_CacheKeyIncludesLanguage(t *testing.T) {
	assert.NotEqual(t, cacheKey("hello", "es"), cacheKey("hello", "fr"))
	assert.Contains(t, cacheKey("hello", "es"), "translate:es:")
}

func TestTranslate_Non200(t *testing.T) {
	translator := newTestTranslator(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := translator.Translate(context.Background(), "hello", "es")

	var apiErr *coreerrors.ExternalAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "translate", apiErr.API)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestTranslate_MalformedBody(t *testing.T) {
	translator := newTestTranslator(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := translator.Translate(context.Background(), "hello", "es")

	assert.Error(t, err)
}

func TestDecodeSentences(t *testing.T) {
	tests := []struct {
		name    string
		payload []interface{}
		want    string
		wantErr bool
	}{
		{name: "empty payload", payload: []interface{}{}, wantErr: true},
		{name: "null sentences", payload: []interface{}{nil}, wantErr: true},
		{
			name: "skips malformed chunks",
			payload: []interface{}{[]interface{}{
				[]interface{}{"Hola"},
				"junk",
				[]interface{}{},
				[]interface{}{" mundo"},
			}},
			want: "Hola mundo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSentences(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
