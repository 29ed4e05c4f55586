package models

import "time"

// Show pairs one artist with one venue at a start time
type Show struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"start_time"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
}

// VenueShowEntry is one show on a venue detail page; the venue is already
// known, so the entry carries the artist side.
type VenueShowEntry struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShowEntry is one show on an artist detail page; it carries the venue
// side instead.
type ArtistShowEntry struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ShowListing is one row on the shows index page, joined with both endpoints
type ShowListing struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"start_time"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}
