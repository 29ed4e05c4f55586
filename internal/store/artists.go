package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"showbill/internal/models"
)

// CreateArtist persists a new artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	query := `
		INSERT INTO artists (name, genres, city, state, phone, website,
		                     facebook_link, seeking_venue, seeking_description, image_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		artist.Name, pq.Array(artist.Genres), artist.City, artist.State,
		artist.Phone, artist.Website, artist.FacebookLink,
		artist.SeekingVenue, artist.SeekingDescription, artist.ImageLink,
	).Scan(&artist.ID)
	if err != nil {
		return nil, fmt.Errorf("insert artist: %w", err)
	}

	return artist, nil
}

// ListArtists returns every artist as an id/name pair for the index page.
func (s *Store) ListArtists(ctx context.Context) ([]models.Ref, error) {
	query := `SELECT id, name FROM artists`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Ref
	for rows.Next() {
		var ref models.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// SearchArtistsByName matches artists whose name contains the fragment,
// case-insensitively.
func (s *Store) SearchArtistsByName(ctx context.Context, fragment string) (*models.SearchResults, error) {
	query := `
		SELECT id, name
		FROM artists
		WHERE name ILIKE '%' || $1 || '%'
	`

	rows, err := s.db.QueryContext(ctx, query, fragment)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	results := &models.SearchResults{}
	for rows.Next() {
		var ref models.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		results.Results = append(results.Results, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	results.Count = len(results.Results)
	return results, nil
}

// GetArtist returns an artist with its shows partitioned against now. Show
// entries carry the venue side, since the artist is already known.
func (s *Store) GetArtist(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error) {
	query := `
		SELECT id, name, genres, city, state, phone, website,
		       facebook_link, seeking_venue, seeking_description, image_link
		FROM artists
		WHERE id = $1
	`

	var d models.ArtistDetail
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Name, pq.Array(&d.Genres), &d.City, &d.State,
		&d.Phone, &d.Website, &d.FacebookLink,
		&d.SeekingVenue, &d.SeekingDescription, &d.ImageLink,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}

	showsQuery := `
		SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		WHERE s.artist_id = $1
	`

	rows, err := s.db.QueryContext(ctx, showsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select artist shows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.ArtistShowEntry
		if err := rows.Scan(&e.VenueID, &e.VenueName, &e.VenueImageLink, &e.StartTime); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		if s.boundary.isPast(e.StartTime, now) {
			d.PastShows = append(d.PastShows, e)
		} else {
			d.UpcomingShows = append(d.UpcomingShows, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist shows: %w", err)
	}

	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return &d, nil
}

// UpdateArtist replaces the artist's fields.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	query := `
		UPDATE artists
		SET name = $1, genres = $2, city = $3, state = $4, phone = $5,
		    website = $6, facebook_link = $7,
		    seeking_venue = $8, seeking_description = $9, image_link = $10
		WHERE id = $11
		RETURNING id, name, genres, city, state, phone, website,
		          facebook_link, seeking_venue, seeking_description, image_link
	`

	var a models.Artist
	err := s.db.QueryRowContext(ctx, query,
		artist.Name, pq.Array(artist.Genres), artist.City, artist.State,
		artist.Phone, artist.Website, artist.FacebookLink,
		artist.SeekingVenue, artist.SeekingDescription, artist.ImageLink, id,
	).Scan(
		&a.ID, &a.Name, pq.Array(&a.Genres), &a.City, &a.State,
		&a.Phone, &a.Website, &a.FacebookLink,
		&a.SeekingVenue, &a.SeekingDescription, &a.ImageLink,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update artist: %w", err)
	}

	return &a, nil
}

// DeleteArtist removes an artist and its dependent shows as one transaction,
// returning the deleted artist's name.
func (s *Store) DeleteArtist(ctx context.Context, id int64) (string, error) {
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
		FROM artists
		WHERE id = $1
	`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrArtistNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select artist: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM shows
		WHERE artist_id = $1
	`, id); err != nil {
		return "", fmt.Errorf("delete artist shows: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM artists
		WHERE id = $1
	`, id); err != nil {
		return "", fmt.Errorf("delete artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return name, nil
}
