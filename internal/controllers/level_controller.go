package controllers

import (
	"net/http"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/models"
	"github.com/Zafert/pointr-challenge/internal/routes"
	"github.com/Zafert/pointr-challenge/internal/services"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

type LevelController struct {
	levelService services.LevelService
}

func NewLevelController(levelService services.LevelService) *LevelController {
	return &LevelController{levelService: levelService}
}

// GET /api/levels[?buildingId=]
func (c *LevelController) ListLevelsHandler(w http.ResponseWriter, r *http.Request) {
	levels, err := c.levelService.ListLevels(r.Context(), r.URL.Query().Get(routes.QueryBuildingID))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListResponse(levels))
}

// GET /api/levels/{id}
func (c *LevelController) GetLevelHandler(w http.ResponseWriter, r *http.Request) {
	level, err := c.levelService.GetLevel(r.Context(), pathID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ItemResponse[*models.Level]{Success: true, Data: level})
}

// POST /api/levels
func (c *LevelController) ImportLevelHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateLevelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	level, err := c.levelService.CreateLevel(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.ItemResponse[*models.Level]{
		Success: true,
		Message: constants.MsgLevelImported,
		Data:    level,
	})
}

// POST /api/levels/bulk
func (c *LevelController) BulkImportLevelsHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.BulkLevelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := c.levelService.ImportLevels(r.Context(), req.Levels)
	if err != nil {
		status, message := http.StatusInternalServerError, constants.MsgBulkFailed
		if utils.IsAppErrorCode(err, utils.ErrCodeValidation) {
			status, message = http.StatusBadRequest, constants.MsgBulkEmpty
		} else {
			utils.Logger.WithError(err).Error("Bulk level import failed")
		}
		utils.RespondWithJSON(w, status, dtos.BulkLevelErrorResponse{
			Success: false,
			Message: message,
			Errors:  []string{},
		})
		return
	}

	if result.HasErrors() {
		utils.RespondWithJSON(w, http.StatusBadRequest, dtos.BulkLevelErrorResponse{
			Success:       false,
			Message:       constants.MsgBulkPartialFailure,
			Errors:        result.Errors,
			ImportedCount: result.ImportedCount(),
			TotalCount:    result.TotalCount,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.BulkLevelResponse{
		Success: true,
		Message: constants.MsgBulkAllImported,
		Data:    result.Imported,
		Count:   result.ImportedCount(),
	})
}

// DELETE /api/levels/{id}
func (c *LevelController) DeleteLevelHandler(w http.ResponseWriter, r *http.Request) {
	level, err := c.levelService.DeleteLevel(r.Context(), pathID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ItemResponse[*models.Level]{
		Success: true,
		Message: constants.MsgLevelDeleted,
		Data:    level,
	})
}
