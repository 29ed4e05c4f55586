package models

// Venue represents a location that hosts shows
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone,omitempty"`
	Website            string   `json:"website,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
}

// VenueArea groups the venues sharing a (city, state) pair
type VenueArea struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Venues []Ref  `json:"venues"`
}

// VenueDetail is a venue plus its shows split into past and upcoming
type VenueDetail struct {
	Venue
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}
