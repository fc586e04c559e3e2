// ABOUTME: AnimeFLV search provider that scrapes the site's browse page
// ABOUTME: Converts listing HTML into a typed search result set with absolute watch URLs

package animeflv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"anifinder-api/core/domain"
	"anifinder-api/core/errors"
	"anifinder-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the public AnimeFLV site
const DefaultBaseURL = "https://www3.animeflv.net"

const apiName = "animeflv"

// Provider implements interfaces.SearchProvider against AnimeFLV
type Provider struct {
	baseURL    *url.URL
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewProvider creates a provider. An empty baseURL uses DefaultBaseURL.
func NewProvider(baseURL string, httpClient interfaces.HTTPClient, logger interfaces.Logger) (*Provider, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid animeflv base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid animeflv base URL %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	return &Provider{
		baseURL:    u,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Search queries the browse page for query
func (p *Provider) Search(ctx context.Context, query string) (*domain.SearchResultSet, error) {
	searchURL := p.baseURL.JoinPath("browse")
	searchURL.RawQuery = url.Values{"q": {query}}.Encode()

	resp, err := p.httpClient.Get(ctx, searchURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to search animeflv: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		// Drain a little of the body so the message is useful in logs
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body(), 256))
		return nil, &errors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(snippet)),
		}
	}

	results, err := p.parse(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to parse animeflv results: %w", err)
	}
	results.Query = query

	if p.logger != nil {
		p.logger.Debug("AnimeFLV search completed", map[string]interface{}{
			"query":   query,
			"results": len(results.Data),
		})
	}

	return results, nil
}

// parse extracts candidates from a browse page
func (p *Provider) parse(body io.Reader) (*domain.SearchResultSet, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	results := &domain.SearchResultSet{Data: []domain.SearchCandidate{}}

	doc.Find("ul.ListAnimes li article").Each(func(_ int, article *goquery.Selection) {
		results.Data = append(results.Data, p.candidate(article))
	})

	return results, nil
}

func (p *Provider) candidate(article *goquery.Selection) domain.SearchCandidate {
	c := domain.SearchCandidate{
		Title:  text(article.Find("h3.Title").First()),
		Type:   text(article.Find("span.Type").First()),
		Rating: text(article.Find("span.Vts").First()),
	}

	if href, ok := article.Find("a[href]").First().Attr("href"); ok {
		if abs := p.absolute(href); abs != "" {
			c.URL = abs
			c.ID = path.Base(strings.TrimRight(abs, "/"))
		}
	}

	if src, ok := article.Find("div.Image img").First().Attr("src"); ok {
		c.Cover = p.absolute(src)
	}

	// First paragraph holds type and rating, the synopsis comes after it
	paragraphs := article.Find("div.Description > p")
	if paragraphs.Length() > 1 {
		paragraphs.Slice(1, goquery.ToEnd).Each(func(_ int, para *goquery.Selection) {
			if t := text(para); t != "" {
				c.Synopsis = t
			}
		})
	}

	if c.Title == "" {
		c.Title = text(article.Find("div.Description div.Title").First())
	}

	return c
}

// absolute resolves ref against the base URL. Unparseable refs yield "".
func (p *Provider) absolute(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return p.baseURL.ResolveReference(u).String()
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
