// ABOUTME: Anime metadata domain model
// ABOUTME: Mirrors the subset of AniList media fields the app displays

package domain

// AnimeTitle holds the title variants of an anime
type AnimeTitle struct {
	Romaji  string `json:"romaji"`
	English string `json:"english,omitempty"`
	Native  string `json:"native,omitempty"`
}

// CoverImage holds cover art URLs
type CoverImage struct {
	Large      string `json:"large"`
	ExtraLarge string `json:"extraLarge"`
}

// Trailer identifies a trailer on an external video site
type Trailer struct {
	ID   string `json:"id"`
	Site string `json:"site"`
}

// Character is a main character of an anime
type Character struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Anime is the metadata record for a single anime
type Anime struct {
	ID           int         `json:"id"`
	Title        AnimeTitle  `json:"title"`
	CoverImage   CoverImage  `json:"coverImage"`
	BannerImage  string      `json:"bannerImage,omitempty"`
	AverageScore int         `json:"averageScore"`
	Popularity   int         `json:"popularity"`
	Description  string      `json:"description"`
	Genres       []string    `json:"genres"`
	Trailer      *Trailer    `json:"trailer,omitempty"`
	Characters   []Character `json:"characters"`

	// TranslatedDescription is Description in TranslationLanguage.
	// It equals Description when translation was skipped or failed.
	TranslatedDescription string `json:"translatedDescription,omitempty"`
	TranslationLanguage   string `json:"translationLanguage,omitempty"`
}

// DisplayTitle returns the English title when present, otherwise romaji
func (a *Anime) DisplayTitle() string {
	if a.Title.English != "" {
		return a.Title.English
	}
	return a.Title.Romaji
}
