// ABOUTME: AniList GraphQL client for anime metadata lookups
// ABOUTME: Runs a single Media search query and maps the response into the domain model

package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"anifinder-api/core/domain"
	"anifinder-api/core/errors"
	"anifinder-api/core/interfaces"
	"anifinder-api/pkg/utils/html"
	"github.com/samber/lo"
)

// DefaultEndpoint is the public AniList GraphQL endpoint
const DefaultEndpoint = "https://graphql.anilist.co"

const apiName = "anilist"

// mediaQuery selects the fields the app displays
const mediaQuery = `
query ($search: String) {
	Media (search: $search, type: ANIME) {
		id
		title {
			romaji
			english
			native
		}
		coverImage {
			large
			extraLarge
		}
		bannerImage
		averageScore
		popularity
		description(asHtml: false)
		genres
		trailer {
			id
			site
		}
		characters(perPage: 5, sort: [ROLE, RELEVANCE, ID]) {
			nodes {
				id
				name {
					full
				}
				image {
					large
				}
			}
		}
	}
}`

type media struct {
	ID    int `json:"id"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
		Native  string `json:"native"`
	} `json:"title"`
	CoverImage struct {
		Large      string `json:"large"`
		ExtraLarge string `json:"extraLarge"`
	} `json:"coverImage"`
	BannerImage  string   `json:"bannerImage"`
	AverageScore int      `json:"averageScore"`
	Popularity   int      `json:"popularity"`
	Description  string   `json:"description"`
	Genres       []string `json:"genres"`
	Trailer      *struct {
		ID   string `json:"id"`
		Site string `json:"site"`
	} `json:"trailer"`
	Characters struct {
		Nodes []characterNode `json:"nodes"`
	} `json:"characters"`
}

type characterNode struct {
	ID   int `json:"id"`
	Name struct {
		Full string `json:"full"`
	} `json:"name"`
	Image struct {
		Large string `json:"large"`
	} `json:"image"`
}

type graphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type mediaResponse struct {
	Data struct {
		Media *media `json:"Media"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// Client implements interfaces.AnimeMetadataProvider
type Client struct {
	endpoint   string
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewClient creates an AniList client. An empty endpoint uses DefaultEndpoint.
func NewClient(endpoint string, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SearchMedia returns the best AniList match for search, or nil when there is none
func (c *Client) SearchMedia(ctx context.Context, search string) (*domain.Anime, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": mediaQuery,
		"variables": map[string]interface{}{
			"search": search,
		},
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to query anilist: %w", err)
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read anilist response: %w", err)
	}

	var parsed mediaResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	// AniList answers an unmatched search with 404 and a null Media
	if resp.StatusCode() == http.StatusNotFound && decodeErr == nil && parsed.Data.Media == nil {
		c.debug("AniList search found nothing", search, 0)
		return nil, nil
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &errors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(parsed.Errors, raw),
		}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to parse anilist response: %w", decodeErr)
	}

	if parsed.Data.Media == nil {
		if len(parsed.Errors) > 0 {
			return nil, fmt.Errorf("anilist query failed: %s", errorMessage(parsed.Errors, raw))
		}
		return nil, nil
	}

	anime := toDomain(parsed.Data.Media)
	c.debug("AniList search completed", search, anime.ID)
	return anime, nil
}

func (c *Client) debug(msg, search string, id int) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, map[string]interface{}{
		"search": search,
		"id":     id,
	})
}

func errorMessage(errs []graphQLError, raw []byte) string {
	if len(errs) > 0 {
		return strings.Join(lo.Map(errs, func(e graphQLError, _ int) string {
			return e.Message
		}), "; ")
	}
	if len(raw) > 256 {
		raw = raw[:256]
	}
	return strings.TrimSpace(string(raw))
}

func toDomain(m *media) *domain.Anime {
	anime := &domain.Anime{
		ID: m.ID,
		Title: domain.AnimeTitle{
			Romaji:  m.Title.Romaji,
			English: m.Title.English,
			Native:  m.Title.Native,
		},
		CoverImage: domain.CoverImage{
			Large:      m.CoverImage.Large,
			ExtraLarge: m.CoverImage.ExtraLarge,
		},
		BannerImage:  m.BannerImage,
		AverageScore: m.AverageScore,
		Popularity:   m.Popularity,
		Description:  html.StripHTML(m.Description),
		Genres:       lo.Ternary(m.Genres == nil, []string{}, m.Genres),
	}

	if m.Trailer != nil && m.Trailer.ID != "" {
		anime.Trailer = &domain.Trailer{ID: m.Trailer.ID, Site: m.Trailer.Site}
	}

	anime.Characters = lo.Map(m.Characters.Nodes, func(n characterNode, _ int) domain.Character {
		return domain.Character{ID: n.ID, Name: n.Name.Full, Image: n.Image.Large}
	})

	return anime
}
