package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/middleware"
	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	AuthSvc *services.AuthService
	log     *slog.Logger
}

func NewAuthController(svc *services.AuthService, log *slog.Logger) *AuthController {
	return &AuthController{AuthSvc: svc, log: log}
}

// Login POST /api/admin/login
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Username == "" || payload.Password == "" {
		utils.JSONMessage(c, http.StatusBadRequest, "Please enter all fields")
		return
	}

	token, admin, err := ac.AuthSvc.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, ac.log, err, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}

// Me GET /api/admin/me
func (ac *AuthController) Me(c *gin.Context) {
	id, ok := middleware.AdminID(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "Token is not valid")
		return
	}

	admin, err := ac.AuthSvc.Me(c.Request.Context(), id)
	if err != nil {
		if services.IsNotFound(err) {
			utils.JSONMessage(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		utils.ServerError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}
