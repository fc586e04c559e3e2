// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"anifinder-api/core/domain"
)

// TitleResolver turns a user-entered title into a watch-page URL
type TitleResolver interface {
	Resolve(ctx context.Context, title string) (domain.Resolution, error)
}

// MetadataService looks up anime metadata, translating the description
// into lang when lang is non-empty
type MetadataService interface {
	LookupAnime(ctx context.Context, search string, lang string) (*domain.Anime, error)
}
