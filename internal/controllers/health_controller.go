package controllers

import (
	"net/http"
	"time"

	"github.com/Zafert/pointr-challenge/internal/app"
	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{
		Status:    constants.MsgHealthOK,
		Message:   constants.ServiceTitle + " is running",
		Timestamp: time.Now().UTC(),
	})
}
