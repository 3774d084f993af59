package movies

import "time"

// Content types for the contentType filter.
const (
	ContentTypeMovie  = "movie"
	ContentTypeSeries = "series"
)

// GenreRef is the minimal genre shape embedded in a movie.
type GenreRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Episode belongs to a season of a series.
type Episode struct {
	Title         string `json:"title"`
	EpisodeNumber int    `json:"episodeNumber"`
	Duration      string `json:"duration"`
	Description   string `json:"description,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
	ReleaseDate   string `json:"releaseDate,omitempty"`
}

// Season groups episodes of a series.
type Season struct {
	Name         string    `json:"name"`
	SeasonNumber int       `json:"seasonNumber"`
	Episodes     []Episode `json:"episodes"`
}

// Movie is a catalog title, either a movie or a series.
type Movie struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	ContentType    string     `json:"contentType"`
	Description    string     `json:"description"`
	MaturityRating string     `json:"maturityRating"`
	ReleaseYear    int        `json:"releaseYear"`
	Duration       string     `json:"duration"`
	ThumbnailURL   string     `json:"thumbnailUrl"`
	Director       string     `json:"director"`
	IsFeatured     bool       `json:"isFeatured"`
	Genres         []GenreRef `json:"genres,omitempty"`
	Seasons        []Season   `json:"seasons,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// MovieList is the paginated list response.
type MovieList struct {
	Movies      []Movie `json:"movies"`
	TotalMovies int     `json:"totalMovies"`
}

// ListParams are the pagination, sort and filter parameters for List.
// SortBy and Direction default to "id" and "desc" when empty.
type ListParams struct {
	Page        int
	SortBy      string
	Direction   string
	Query       string
	ContentType string
}

// CreateInput is the payload for creating a title.
type CreateInput struct {
	Title          string   `json:"title"`
	ContentType    string   `json:"contentType"`
	Description    string   `json:"description"`
	MaturityRating string   `json:"maturityRating"`
	ReleaseYear    int      `json:"releaseYear"`
	Duration       string   `json:"duration"`
	ThumbnailURL   string   `json:"thumbnailUrl"`
	Director       string   `json:"director"`
	IsFeatured     bool     `json:"isFeatured,omitempty"`
	GenreIDs       []int64  `json:"genreIds,omitempty"`
	ActorIDs       []int64  `json:"actorIds,omitempty"`
	Seasons        []Season `json:"seasons,omitempty"`
}

// UpdateInput mirrors CreateInput for full replacement of a title.
type UpdateInput = CreateInput
