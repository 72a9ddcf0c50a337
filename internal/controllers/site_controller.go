package controllers

import (
	"net/http"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/models"
	"github.com/Zafert/pointr-challenge/internal/services"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

type SiteController struct {
	siteService services.SiteService
}

func NewSiteController(siteService services.SiteService) *SiteController {
	return &SiteController{siteService: siteService}
}

// GET /api/sites
func (c *SiteController) ListSitesHandler(w http.ResponseWriter, r *http.Request) {
	sites, err := c.siteService.ListSites(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListResponse(sites))
}

// GET /api/sites/{id}
func (c *SiteController) GetSiteHandler(w http.ResponseWriter, r *http.Request) {
	site, err := c.siteService.GetSite(r.Context(), pathID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ItemResponse[*models.Site]{Success: true, Data: site})
}

// POST /api/sites
func (c *SiteController) CreateSiteHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateSiteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	site, err := c.siteService.CreateSite(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.ItemResponse[*models.Site]{
		Success: true,
		Message: constants.MsgSiteCreated,
		Data:    site,
	})
}

// DELETE /api/sites/{id}
func (c *SiteController) DeleteSiteHandler(w http.ResponseWriter, r *http.Request) {
	site, err := c.siteService.DeleteSite(r.Context(), pathID(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ItemResponse[*models.Site]{
		Success: true,
		Message: constants.MsgSiteDeleted,
		Data:    site,
	})
}
