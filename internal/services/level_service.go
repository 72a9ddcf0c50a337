package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/models"
	"github.com/Zafert/pointr-challenge/internal/repositories"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

type LevelService interface {
	// ListLevels returns every level, or only those whose buildingId
	// equals buildingID when it is non-empty.
	ListLevels(ctx context.Context, buildingID string) ([]*models.Level, error)
	GetLevel(ctx context.Context, id string) (*models.Level, error)
	CreateLevel(ctx context.Context, req dtos.CreateLevelRequest) (*models.Level, error)
	ImportLevels(ctx context.Context, levels json.RawMessage) (*BulkImportResult, error)
	DeleteLevel(ctx context.Context, id string) (*models.Level, error)
}

// BulkImportResult reports the outcome of ImportLevels. Imported records
// are already stored even when Errors is non-empty.
type BulkImportResult struct {
	Imported   []*models.Level
	Errors     []string
	TotalCount int
}

func (r *BulkImportResult) HasErrors() bool { return len(r.Errors) > 0 }

func (r *BulkImportResult) ImportedCount() int { return len(r.Imported) }

type levelService struct {
	repo repositories.LevelRepository
	now  func() time.Time
}

func NewLevelService(repo repositories.LevelRepository) LevelService {
	return &levelService{repo: repo, now: utcNow}
}

func (s *levelService) ListLevels(ctx context.Context, buildingID string) ([]*models.Level, error) {
	var (
		levels []*models.Level
		err    error
	)
	if buildingID != "" {
		levels, err = s.repo.ListByBuildingID(ctx, buildingID)
	} else {
		levels, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgLevelsListFailed, err)
	}
	return levels, nil
}

func (s *levelService) GetLevel(ctx context.Context, id string) (*models.Level, error) {
	level, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgLevelGetFailed, err)
	}
	if level == nil {
		return nil, utils.NewNotFoundError(constants.MsgLevelNotFound)
	}
	return level, nil
}

// CreateLevel stores a single level. The buildingId is not checked against
// the building collection, and a floorNumber of 0 is valid.
func (s *levelService) CreateLevel(ctx context.Context, req dtos.CreateLevelRequest) (*models.Level, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(constants.MsgLevelRequired)
	}

	level := s.newLevel(req)
	if err := s.repo.Create(ctx, level); err != nil {
		return nil, utils.NewInternalError(constants.MsgLevelImportFailed, err)
	}
	utils.Logger.WithField("level_id", level.ID).Debug("Level imported")
	return level, nil
}

// ImportLevels decodes levels as a JSON array and imports each element on
// its own. Elements that fail are reported as "Level N: ..." (1-based) and
// skipped; elements that succeed stay stored regardless of later failures.
// An absent, non-array or empty input is a validation error and stores
// nothing.
func (s *levelService) ImportLevels(ctx context.Context, levels json.RawMessage) (*BulkImportResult, error) {
	var items []json.RawMessage
	if len(levels) == 0 || json.Unmarshal(levels, &items) != nil || len(items) == 0 {
		return nil, utils.NewValidationError(constants.MsgBulkEmpty)
	}

	result := &BulkImportResult{
		Imported:   make([]*models.Level, 0, len(items)),
		Errors:     []string{},
		TotalCount: len(items),
	}

	for i, item := range items {
		var req dtos.CreateLevelRequest
		if err := json.Unmarshal(item, &req); err != nil {
			result.Errors = append(result.Errors, itemError(i, constants.MsgBulkItemInvalid))
			continue
		}
		if err := validate.Struct(req); err != nil {
			result.Errors = append(result.Errors, itemError(i, constants.MsgBulkItemMissing))
			continue
		}

		level := s.newLevel(req)
		if err := s.repo.Create(ctx, level); err != nil {
			utils.Logger.WithError(err).WithField("index", i).Error("Failed to store imported level")
			result.Errors = append(result.Errors, itemError(i, constants.MsgLevelImportFailed))
			continue
		}
		result.Imported = append(result.Imported, level)
	}

	utils.Logger.WithFields(logrus.Fields{
		"imported": result.ImportedCount(),
		"total":    result.TotalCount,
		"errors":   len(result.Errors),
	}).Info("Bulk level import finished")
	return result, nil
}

func (s *levelService) DeleteLevel(ctx context.Context, id string) (*models.Level, error) {
	level, err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFoundError(constants.MsgLevelNotFound)
	}
	if err != nil {
		return nil, utils.NewInternalError(constants.MsgLevelDeleteFail, err)
	}
	utils.Logger.WithField("level_id", id).Debug("Level deleted")
	return level, nil
}

func (s *levelService) newLevel(req dtos.CreateLevelRequest) *models.Level {
	now := s.now()
	return &models.Level{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		BuildingID:  req.BuildingID,
		FloorNumber: utils.Val(req.FloorNumber),
		MapData:     normalizeMapData(req.MapData),
		Coordinates: req.Coordinates.Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func itemError(index int, message string) string {
	return fmt.Sprintf("Level %d: %s", index+1, message)
}
