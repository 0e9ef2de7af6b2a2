package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactSvc *services.ContactService
	log        *slog.Logger
}

func NewContactController(svc *services.ContactService, log *slog.Logger) *ContactController {
	return &ContactController{ContactSvc: svc, log: log}
}

// SubmitMessage POST /api/contact
func (cc *ContactController) SubmitMessage(c *gin.Context) {
	var patch services.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Please enter all fields")
		return
	}

	msg, err := cc.ContactSvc.Create(c.Request.Context(), patch)
	if err != nil {
		if services.IsValidation(err) {
			utils.JSONMessage(c, http.StatusBadRequest, "Please enter all fields")
			return
		}
		utils.ServerError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (cc *ContactController) GetMessages(c *gin.Context) {
	messages, err := cc.ContactSvc.List(c.Request.Context())
	if err != nil {
		utils.ServerError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
