package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// bootstrapDemoData inserts a small directory of venues, artists and shows
// so a fresh install has pages worth browsing. It is a no-op once any
// venue exists.
func bootstrapDemoData(ctx context.Context, db *sql.DB) error {
	venuesTableExists, err := tableExists(ctx, db, "venues")
	if err != nil {
		return fmt.Errorf("check venues table: %w", err)
	}
	if !venuesTableExists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedVenue struct {
		Name               string
		Genres             []string
		Address            string
		City               string
		State              string
		Phone              string
		Website            string
		FacebookLink       string
		SeekingTalent      bool
		SeekingDescription string
		ImageLink          string
	}

	type seedArtist struct {
		Name               string
		Genres             []string
		City               string
		State              string
		Phone              string
		Website            string
		FacebookLink       string
		SeekingVenue       bool
		SeekingDescription string
		ImageLink          string
	}

	type seedShow struct {
		Venue     string
		Artist    string
		StartTime time.Time
	}

	seedVenues := []seedVenue{
		{
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
		},
	}

	seedArtists := []seedArtist{
		{
			Name:               "Guns N Petals",
			Genres:             []string{"Rock n Roll"},
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
		},
		{
			Name:         "Matt Quevedo",
			Genres:       []string{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    []string{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
		},
	}

	seedShows := []seedShow{
		{Venue: "The Musical Hop", Artist: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		{Venue: "Park Square Live Music & Coffee", Artist: "Matt Quevedo", StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
		{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	venueIDs := make(map[string]int64, len(seedVenues))
	for _, v := range seedVenues {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, genres, address, city, state, phone, website, facebook_link, seeking_talent, seeking_description, image_link)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, v.Name, pq.Array(v.Genres), v.Address, v.City, v.State, v.Phone, v.Website, v.FacebookLink, v.SeekingTalent, v.SeekingDescription, v.ImageLink).Scan(&id); err != nil {
			return fmt.Errorf("insert demo venue %q: %w", v.Name, err)
		}
		venueIDs[v.Name] = id
	}

	artistIDs := make(map[string]int64, len(seedArtists))
	for _, a := range seedArtists {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, genres, city, state, phone, website, facebook_link, seeking_venue, seeking_description, image_link)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, a.Name, pq.Array(a.Genres), a.City, a.State, a.Phone, a.Website, a.FacebookLink, a.SeekingVenue, a.SeekingDescription, a.ImageLink).Scan(&id); err != nil {
			return fmt.Errorf("insert demo artist %q: %w", a.Name, err)
		}
		artistIDs[a.Name] = id
	}

	for _, s := range seedShows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
		`, artistIDs[s.Artist], venueIDs[s.Venue], s.StartTime); err != nil {
			return fmt.Errorf("insert demo show at %q: %w", s.Venue, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}

func tableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var name sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT to_regclass($1)`, table).Scan(&name); err != nil {
		return false, err
	}
	return name.Valid, nil
}
