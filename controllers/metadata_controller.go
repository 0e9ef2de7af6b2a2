package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

type MetadataController struct {
	MetadataSvc *services.MetadataService
	log         *slog.Logger
}

func NewMetadataController(svc *services.MetadataService, log *slog.Logger) *MetadataController {
	return &MetadataController{MetadataSvc: svc, log: log}
}

func (mc *MetadataController) GetMetadata(c *gin.Context) {
	m, err := mc.MetadataSvc.Get(c.Request.Context())
	if err != nil {
		utils.ServerError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MetadataController) UpdateMetadata(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	m, err := mc.MetadataSvc.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, mc.log, err, "Metadata not found")
		return
	}
	c.JSON(http.StatusOK, m)
}
