package artists

import (
	"context"
	"time"

	"showbill/internal/models"
)

// Store defines persistence operations for artists
type Store interface {
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Ref, error)
	SearchArtistsByName(ctx context.Context, fragment string) (*models.SearchResults, error)
	GetArtist(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error)
	UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) (string, error)
}

// Service coordinates artist-related operations
type Service interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	List(ctx context.Context) ([]models.Ref, error)
	SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error)
	Get(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type service struct {
	store Store
}

// New constructs an artists Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) List(ctx context.Context) ([]models.Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchArtistsByName(ctx, fragment)
}

func (s *service) Get(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id, now)
}

func (s *service) Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.DeleteArtist(ctx, id)
}
