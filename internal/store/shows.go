package store

import (
	"context"
	"fmt"
	"strings"

	"showbill/internal/models"
)

// CreateShow persists a new show. Both referenced ids must exist; a missing
// endpoint surfaces as ErrArtistNotFound or ErrVenueNotFound and nothing is
// written.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)
	`, show.ArtistID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check artist: %w", err)
	}
	if !exists {
		return nil, ErrArtistNotFound
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)
	`, show.VenueID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}
	if !exists {
		return nil, ErrVenueNotFound
	}

	query := `
		INSERT INTO shows (start_time, artist_id, venue_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, show.StartTime, show.ArtistID, show.VenueID).Scan(&show.ID)
	if err != nil {
		// An endpoint deleted between the existence check and the insert
		// trips the foreign key instead.
		if pgErr := pgError(err); pgErr != nil && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "artist") {
				return nil, ErrArtistNotFound
			}
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("insert show: %w", err)
	}

	return show, nil
}

// ListShows returns every show joined with both endpoints for the index page.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	query := `
		SELECT s.id, s.start_time, v.id, v.name, a.id, a.name, a.image_link
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		INNER JOIN artists a ON s.artist_id = a.id
		ORDER BY s.start_time DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowListing
	for rows.Next() {
		var l models.ShowListing
		if err := rows.Scan(
			&l.ID, &l.StartTime, &l.VenueID, &l.VenueName,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, l)
	}

	return shows, rows.Err()
}

// DeleteShow removes a show.
func (s *Store) DeleteShow(ctx context.Context, id int64) error {
	query := `DELETE FROM shows WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	if rows == 0 {
		return ErrShowNotFound
	}

	return nil
}
