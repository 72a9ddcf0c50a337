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

type BuildingController struct {
	buildingService services.BuildingService
}

func NewBuildingController(buildingService services.BuildingService) *BuildingController {
	return &BuildingController{buildingService: buildingService}
}

// GET /api/buildings[?siteId=]
func (c *BuildingController) ListBuildingsHandler(w http.ResponseWriter, r *http.Request) {
	buildings, err := c.buildingService.ListBuildings(r.Context(), r.URL.Query().Get(routes.QuerySiteID))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListResponse(buildings))
}

// GET /api/buildings/{id}
func (c *BuildingController) GetBuildingHandler(w http.ResponseWriter, r *http.Request) {
	building, err := c.buildingService.GetBuilding(r.Context(), pathID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ItemResponse[*models.Building]{Success: true, Data: building})
}

// POST /api/buildings
func (c *BuildingController) CreateBuildingHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateBuildingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	building, err := c.buildingService.CreateBuilding(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.ItemResponse[*models.Building]{
		Success: true,
		Message: constants.MsgBuildingCreated,
		Data:    building,
	})
}

// DELETE /api/buildings/{id}
func (c *BuildingController) DeleteBuildingHandler(w http.ResponseWriter, r *http.Request) {
	building, err := c.buildingService.DeleteBuilding(r.Context(), pathID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ItemResponse[*models.Building]{
		Success: true,
		Message: constants.MsgBuildingDeleted,
		Data:    building,
	})
}
