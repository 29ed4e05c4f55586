package shows

import (
	"context"

	"showbill/internal/models"
)

// Store defines persistence operations for shows. CreateShow verifies both
// referenced endpoints exist before writing.
type Store interface {
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	DeleteShow(ctx context.Context, id int64) error
}

// Service coordinates show-related operations
type Service interface {
	Create(ctx context.Context, show *models.Show) (*models.Show, error)
	List(ctx context.Context) ([]models.ShowListing, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a shows Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, show *models.Show) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateShow(ctx, show)
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteShow(ctx, id)
}
