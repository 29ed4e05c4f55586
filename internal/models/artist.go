package models

// Artist represents a performer that can be booked into shows
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone,omitempty"`
	Website            string   `json:"website,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
}

// ArtistDetail is an artist plus its shows split into past and upcoming
type ArtistDetail struct {
	Artist
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// SearchResults holds a name-fragment search response for either entity kind
type SearchResults struct {
	Count   int   `json:"count"`
	Results []Ref `json:"data"`
}

// Ref identifies a venue or artist by id and name
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
