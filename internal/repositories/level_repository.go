package repositories

import (
	"context"

	"github.com/Zafert/pointr-challenge/internal/models"
)

type LevelRepository interface {
	Create(ctx context.Context, l *models.Level) error
	GetByID(ctx context.Context, id string) (*models.Level, error)
	List(ctx context.Context) ([]*models.Level, error)
	ListByBuildingID(ctx context.Context, buildingID string) ([]*models.Level, error)
	Delete(ctx context.Context, id string) (*models.Level, error)
}

type levelRepo struct {
	store *MemoryRepo[*models.Level]
}

func NewLevelRepository() LevelRepository {
	return &levelRepo{store: NewMemoryRepo[*models.Level]()}
}

func (r *levelRepo) Create(ctx context.Context, l *models.Level) error {
	return r.store.Create(ctx, l)
}

func (r *levelRepo) GetByID(ctx context.Context, id string) (*models.Level, error) {
	return r.store.GetByID(ctx, id)
}

func (r *levelRepo) List(ctx context.Context) ([]*models.Level, error) {
	return r.store.List(ctx, nil)
}

func (r *levelRepo) ListByBuildingID(ctx context.Context, buildingID string) ([]*models.Level, error) {
	return r.store.List(ctx, func(l *models.Level) bool { return l.BuildingID == buildingID })
}

func (r *levelRepo) Delete(ctx context.Context, id string) (*models.Level, error) {
	return r.store.Delete(ctx, id)
}
