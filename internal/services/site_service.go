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

type SiteService interface {
	ListSites(ctx context.Context) ([]*models.Site, error)
	GetSite(ctx context.Context, id string) (*models.Site, error)
	CreateSite(ctx context.Context, req dtos.CreateSiteRequest) (*models.Site, error)
	DeleteSite(ctx context.Context, id string) (*models.Site, error)
}

type siteService struct {
	repo repositories.SiteRepository
	now  func() time.Time
}

func NewSiteService(repo repositories.SiteRepository) SiteService {
	return &siteService{repo: repo, now: utcNow}
}

func (s *siteService) ListSites(ctx context.Context) ([]*models.Site, error) {
	sites, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgSitesListFailed, err)
	}
	return sites, nil
}

func (s *siteService) GetSite(ctx context.Context, id string) (*models.Site, error) {
	site, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgSiteGetFailed, err)
	}
	if site == nil {
		return nil, utils.NewNotFoundError(constants.MsgSiteNotFound)
	}
	return site, nil
}

func (s *siteService) CreateSite(ctx context.Context, req dtos.CreateSiteRequest) (*models.Site, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(constants.MsgSiteRequired)
	}

	now := s.now()
	site := &models.Site{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Coordinates: req.Coordinates.Clone(),
		Buildings:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, site); err != nil {
		return nil, utils.NewInternalError(constants.MsgSiteCreateFail, err)
	}
	utils.Logger.WithField("site_id", site.ID).Debug("Site created")
	return site, nil
}

func (s *siteService) DeleteSite(ctx context.Context, id string) (*models.Site, error) {
	site, err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFoundError(constants.MsgSiteNotFound)
	}
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgSiteDeleteFail, err)
	}
	utils.Logger.WithField("site_id", id).Debug("Site deleted")
	return site, nil
}
