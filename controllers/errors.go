package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// respondError maps a service error onto its status and {"msg"} body.
// notFound is the message used for ErrNotFound.
func respondError(c *gin.Context, log *slog.Logger, err error, notFound string) {
	switch {
	case services.IsValidation(err):
		utils.JSONMessage(c, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		utils.JSONMessage(c, http.StatusNotFound, notFound)
	case services.IsInvalidCredentials(err):
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid credentials")
	case services.IsUnauthenticated(err):
		utils.JSONMessage(c, http.StatusUnauthorized, "Token is not valid")
	default:
		utils.ServerError(c, log, err)
	}
}

// bindPatch decodes the request body into a field patch. It answers 400 and
// returns false when the body is not a JSON object.
func bindPatch(c *gin.Context) (services.Patch, bool) {
	var patch services.Patch
	if err := c.ShouldBindJSON(&patch); err != nil || patch == nil {
		utils.JSONMessage(c, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	return patch, true
}
