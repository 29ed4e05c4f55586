package venues

import (
	"context"
	"time"

	"showbill/internal/models"
)

// Store defines persistence operations for venues
type Store interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListVenuesByArea(ctx context.Context) ([]models.VenueArea, error)
	SearchVenuesByName(ctx context.Context, fragment string) (*models.SearchResults, error)
	GetVenue(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error)
	UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) (string, error)
}

// Service coordinates venue-related operations
type Service interface {
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListByArea(ctx context.Context) ([]models.VenueArea, error)
	SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error)
	Get(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type service struct {
	store Store
}

// New constructs a venues Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) ListByArea(ctx context.Context) ([]models.VenueArea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListVenuesByArea(ctx)
}

func (s *service) SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchVenuesByName(ctx, fragment)
}

func (s *service) Get(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetVenue(ctx, id, now)
}

func (s *service) Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.DeleteVenue(ctx, id)
}
