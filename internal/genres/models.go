package genres

import "time"

// Genre is a catalog genre.
type Genre struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GenreList is the paginated list response.
type GenreList struct {
	Genres      []Genre `json:"genres"`
	TotalGenres int     `json:"totalGenres"`
}

// ListParams are the pagination, sort and filter parameters for List.
// FetchAll bypasses pagination, for pickers that need every genre.
type ListParams struct {
	Page      int
	SortBy    string
	Direction string
	Query     string
	Status    string
	FetchAll  bool
}

// Input is the payload for creating or updating a genre.
type Input struct {
	Name string `json:"name"`
}
