package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/models"
	"github.com/Zafert/pointr-challenge/internal/repositories"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

type BuildingService interface {
	// ListBuildings returns every building, or only those whose siteId
	// equals siteID when it is non-empty.
	ListBuildings(ctx context.Context, siteID string) ([]*models.Building, error)
	GetBuilding(ctx context.Context, id string) (*models.Building, error)
	CreateBuilding(ctx context.Context, req dtos.CreateBuildingRequest) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id string) (*models.Building, error)
}

type buildingService struct {
	repo repositories.BuildingRepository
	now  func() time.Time
}

func NewBuildingService(repo repositories.BuildingRepository) BuildingService {
	return &buildingService{repo: repo, now: utcNow}
}

func (s *buildingService) ListBuildings(ctx context.Context, siteID string) ([]*models.Building, error) {
	var (
		buildings []*models.Building
		err       error
	)
	if siteID != "" {
		buildings, err = s.repo.ListBySiteID(ctx, siteID)
	} else {
		buildings, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgBuildingsListFailed, err)
	}
	return buildings, nil
}

func (s *buildingService) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	building, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgBuildingGetFailed, err)
	}
	if building == nil {
		return nil, utils.NewNotFoundError(constants.MsgBuildingNotFound)
	}
	return building, nil
}

// CreateBuilding stores a new building. The siteId is not checked against
// the site collection.
func (s *buildingService) CreateBuilding(ctx context.Context, req dtos.CreateBuildingRequest) (*models.Building, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(constants.MsgBuildingRequired)
	}

	floors := utils.Val(req.Floors)
	if floors == 0 {
		floors = constants.DefaultBuildingFloors
	}

	now := s.now()
	building := &models.Building{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		SiteID:      req.SiteID,
		Address:     req.Address,
		Coordinates: req.Coordinates.Clone(),
		Floors:      floors,
		Levels:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, building); err != nil {
		return nil, utils.NewInternalError(constants.MsgBuildingCreateFail, err)
	}
	utils.Logger.WithField("building_id", building.ID).Debug("Building created")
	return building, nil
}

func (s *buildingService) DeleteBuilding(ctx context.Context, id string) (*models.Building, error) {
	building, err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFoundError(constants.MsgBuildingNotFound)
	}
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgBuildingDeleteFail, err)
	}
	utils.Logger.WithField("building_id", id).Debug("Building deleted")
	return building, nil
}
