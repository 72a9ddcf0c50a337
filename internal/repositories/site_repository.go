package repositories

import (
	"context"

	"github.com/Zafert/pointr-challenge/internal/models"
)

type SiteRepository interface {
	Create(ctx context.Context, s *models.Site) error
	GetByID(ctx context.Context, id string) (*models.Site, error)
	List(ctx context.Context) ([]*models.Site, error)
	Delete(ctx context.Context, id string) (*models.Site, error)
	Count(ctx context.Context) int
}

type siteRepo struct {
	store *MemoryRepo[*models.Site]
}

func NewSiteRepository() SiteRepository {
	return &siteRepo{store: NewMemoryRepo[*models.Site]()}
}

func (r *siteRepo) Create(ctx context.Context, s *models.Site) error {
	return r.store.Create(ctx, s)
}

func (r *siteRepo) GetByID(ctx context.Context, id string) (*models.Site, error) {
	return r.store.GetByID(ctx, id)
}

func (r *siteRepo) List(ctx context.Context) ([]*models.Site, error) {
	return r.store.List(ctx, nil)
}

func (r *siteRepo) Delete(ctx context.Context, id string) (*models.Site, error) {
	return r.store.Delete(ctx, id)
}

func (r *siteRepo) Count(ctx context.Context) int {
	return r.store.Count(ctx)
}
