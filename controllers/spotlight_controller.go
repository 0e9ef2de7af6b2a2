package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

type SpotlightController struct {
	SpotlightSvc *services.SpotlightService
	log          *slog.Logger
}

func NewSpotlightController(svc *services.SpotlightService, log *slog.Logger) *SpotlightController {
	return &SpotlightController{SpotlightSvc: svc, log: log}
}

// GetSpotlight answers null until a spotlight has been published.
func (sc *SpotlightController) GetSpotlight(c *gin.Context) {
	spot, err := sc.SpotlightSvc.Get(c.Request.Context())
	if err != nil {
		utils.ServerError(c, sc.log, err)
		return
	}
	if spot == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (sc *SpotlightController) UpdateSpotlight(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	spot, err := sc.SpotlightSvc.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, sc.log, err, "Spotlight not found")
		return
	}
	c.JSON(http.StatusOK, spot)
}
