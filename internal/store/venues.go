package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lib/pq"

	"showbill/internal/models"
)

// CreateVenue persists a new venue and returns it with its assigned id.
// Field validation happens at the form boundary before this is called.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	query := `
		INSERT INTO venues (name, genres, address, city, state, phone, website,
		                    facebook_link, seeking_talent, seeking_description, image_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		venue.Name, pq.Array(venue.Genres), venue.Address, venue.City, venue.State,
		venue.Phone, venue.Website, venue.FacebookLink,
		venue.SeekingTalent, venue.SeekingDescription, venue.ImageLink,
	).Scan(&venue.ID)
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}

	return venue, nil
}

// ListVenuesByArea groups every venue by its distinct (city, state) pair,
// areas sorted ascending. Venues within an area keep collection order.
// An empty store yields an empty slice.
func (s *Store) ListVenuesByArea(ctx context.Context) ([]models.VenueArea, error) {
	query := `SELECT id, name, city, state FROM venues`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	type venueRow struct {
		id                int64
		name, city, state string
	}

	var venues []venueRow
	for rows.Next() {
		var v venueRow
		if err := rows.Scan(&v.id, &v.name, &v.city, &v.state); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	type areaKey struct{ city, state string }
	seen := make(map[areaKey]bool)
	var keys []areaKey
	for _, v := range venues {
		k := areaKey{v.city, v.state}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].city != keys[j].city {
			return keys[i].city < keys[j].city
		}
		return keys[i].state < keys[j].state
	})

	areas := make([]models.VenueArea, 0, len(keys))
	for _, k := range keys {
		area := models.VenueArea{City: k.city, State: k.state}
		for _, v := range venues {
			if v.city == k.city && v.state == k.state {
				area.Venues = append(area.Venues, models.Ref{ID: v.id, Name: v.name})
			}
		}
		areas = append(areas, area)
	}

	return areas, nil
}

// SearchVenuesByName matches venues whose name contains the fragment,
// case-insensitively. An empty fragment matches every venue; no match is a
// zero count, not an error.
func (s *Store) SearchVenuesByName(ctx context.Context, fragment string) (*models.SearchResults, error) {
	query := `
		SELECT id, name
		FROM venues
		WHERE name ILIKE '%' || $1 || '%'
	`

	rows, err := s.db.QueryContext(ctx, query, fragment)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	results := &models.SearchResults{}
	for rows.Next() {
		var ref models.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		results.Results = append(results.Results, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	results.Count = len(results.Results)
	return results, nil
}

// GetVenue returns a venue with its shows partitioned against now. The
// caller supplies now so each call evaluates against a single consistent
// instant.
func (s *Store) GetVenue(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error) {
	query := `
		SELECT id, name, genres, address, city, state, phone, website,
		       facebook_link, seeking_talent, seeking_description, image_link
		FROM venues
		WHERE id = $1
	`

	var d models.VenueDetail
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Name, pq.Array(&d.Genres), &d.Address, &d.City, &d.State,
		&d.Phone, &d.Website, &d.FacebookLink,
		&d.SeekingTalent, &d.SeekingDescription, &d.ImageLink,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select venue: %w", err)
	}

	showsQuery := `
		SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN artists a ON s.artist_id = a.id
		WHERE s.venue_id = $1
	`

	rows, err := s.db.QueryContext(ctx, showsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select venue shows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.VenueShowEntry
		if err := rows.Scan(&e.ArtistID, &e.ArtistName, &e.ArtistImageLink, &e.StartTime); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		if s.boundary.isPast(e.StartTime, now) {
			d.PastShows = append(d.PastShows, e)
		} else {
			d.UpcomingShows = append(d.UpcomingShows, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue shows: %w", err)
	}

	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return &d, nil
}

// UpdateVenue replaces the venue's fields. The caller passes the complete
// field set; the edit form is pre-populated, so untouched fields round-trip.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	query := `
		UPDATE venues
		SET name = $1, genres = $2, address = $3, city = $4, state = $5,
		    phone = $6, website = $7, facebook_link = $8,
		    seeking_talent = $9, seeking_description = $10, image_link = $11
		WHERE id = $12
		RETURNING id, name, genres, address, city, state, phone, website,
		          facebook_link, seeking_talent, seeking_description, image_link
	`

	var v models.Venue
	err := s.db.QueryRowContext(ctx, query,
		venue.Name, pq.Array(venue.Genres), venue.Address, venue.City, venue.State,
		venue.Phone, venue.Website, venue.FacebookLink,
		venue.SeekingTalent, venue.SeekingDescription, venue.ImageLink, id,
	).Scan(
		&v.ID, &v.Name, pq.Array(&v.Genres), &v.Address, &v.City, &v.State,
		&v.Phone, &v.Website, &v.FacebookLink,
		&v.SeekingTalent, &v.SeekingDescription, &v.ImageLink,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	return &v, nil
}

// DeleteVenue removes a venue and its dependent shows as one transaction,
// returning the deleted venue's name.
func (s *Store) DeleteVenue(ctx context.Context, id int64) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var name string
	err = tx.QueryRowContext(ctx, `
		SELECT name
		FROM venues
		WHERE id = $1
	`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrVenueNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select venue: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM shows
		WHERE venue_id = $1
	`, id); err != nil {
		return "", fmt.Errorf("delete venue shows: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM venues
		WHERE id = $1
	`, id); err != nil {
		return "", fmt.Errorf("delete venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return name, nil
}
