// ABOUTME: Google Translate client backed by the public gtx endpoint
// ABOUTME: Decodes the nested array response and caches translations by language and text hash

package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"anifinder-api/core/errors"
	"anifinder-api/core/interfaces"
)

// DefaultEndpoint is the public Google Translate endpoint used by the gtx client
const DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

const (
	apiName         = "translate"
	cacheKeyPrefix  = "translate:"
	defaultCacheTTL = 7 * 24 * time.Hour
)

// Translator implements interfaces.Translator
type Translator struct {
	endpoint   string
	httpClient interfaces.HTTPClient
	cache      interfaces.Cache
	cacheTTL   time.Duration
	logger     interfaces.Logger
}

// NewTranslator creates a translator. cache may be nil to disable caching.
func NewTranslator(endpoint string, deps interfaces.Dependencies) *Translator {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Translator{
		endpoint:   endpoint,
		httpClient: deps.HTTPClient,
		cache:      deps.Cache,
		cacheTTL:   defaultCacheTTL,
		logger:     deps.Logger,
	}
}

// Translate returns text translated into targetLang
func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if targetLang == "" {
		return "", &errors.ValidationError{Field: "lang", Message: "target language is required"}
	}

	key := cacheKey(text, targetLang)
	if t.cache != nil {
		if cached, err := t.cache.Get(ctx, key); err == nil && len(cached) > 0 {
			return string(cached), nil
		}
	}

	translated, err := t.fetch(ctx, text, targetLang)
	if err != nil {
		return "", err
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, key, []byte(translated), t.cacheTTL); err != nil && t.logger != nil {
			t.logger.Warn("Failed to cache translation", map[string]interface{}{
				"lang":  targetLang,
				"error": err.Error(),
			})
		}
	}

	return translated, nil
}

func (t *Translator) fetch(ctx context.Context, text, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	resp, err := t.httpClient.Get(ctx, t.endpoint+"?"+params.Encode())
	if err != nil {
		return "", fmt.Errorf("failed to call translate: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body(), 256))
		return "", &errors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(snippet)),
		}
	}

	var payload []interface{}
	if err := json.NewDecoder(resp.Body()).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}

	return decodeSentences(payload)
}

// decodeSentences joins the translated chunks found at payload[0][i][0]
func decodeSentences(payload []interface{}) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("unexpected translate response: empty payload")
	}
	sentences, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translate response: missing sentences")
	}

	var b strings.Builder
	for _, s := range sentences {
		parts, ok := s.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if chunk, ok := parts[0].(string); ok {
			b.WriteString(chunk)
		}
	}
	return b.String(), nil
}

func cacheKey(text, lang string) string {
	sum := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + lang + ":" + hex.EncodeToString(sum[:])
}
