package repositories

import (
	"context"

	"github.com/Zafert/pointr-challenge/internal/models"
)

type BuildingRepository interface {
	Create(ctx context.Context, b *models.Building) error
	GetByID(ctx context.Context, id string) (*models.Building, error)
	List(ctx context.Context) ([]*models.Building, error)
	ListBySiteID(ctx context.Context, siteID string) ([]*models.Building, error)
	Delete(ctx context.Context, id string) (*models.Building, error)
}

type buildingRepo struct {
	store *MemoryRepo[*models.Building]
}

func NewBuildingRepository() BuildingRepository {
	return &buildingRepo{store: NewMemoryRepo[*models.Building]()}
}

func (r *buildingRepo) Create(ctx context.Context, b *models.Building) error {
	return r.store.Create(ctx, b)
}

func (r *buildingRepo) GetByID(ctx context.Context, id string) (*models.Building, error) {
	return r.store.GetByID(ctx, id)
}

func (r *buildingRepo) List(ctx context.Context) ([]*models.Building, error) {
	return r.store.List(ctx, nil)
}

func (r *buildingRepo) ListBySiteID(ctx context.Context, siteID string) ([]*models.Building, error) {
	return r.store.List(ctx, func(b *models.Building) bool { return b.SiteID == siteID })
}

func (r *buildingRepo) Delete(ctx context.Context, id string) (*models.Building, error) {
	return r.store.Delete(ctx, id)
}
