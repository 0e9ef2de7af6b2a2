package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

const msgTestimonialNotFound = "Testimonial not found"

type TestimonialController struct {
	TestimonialSvc *services.TestimonialService
	log            *slog.Logger
}

func NewTestimonialController(svc *services.TestimonialService, log *slog.Logger) *TestimonialController {
	return &TestimonialController{TestimonialSvc: svc, log: log}
}

func (tc *TestimonialController) GetTestimonials(c *gin.Context) {
	testimonials, err := tc.TestimonialSvc.List(c.Request.Context())
	if err != nil {
		utils.ServerError(c, tc.log, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (tc *TestimonialController) CreateTestimonial(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	t, err := tc.TestimonialSvc.Create(c.Request.Context(), patch)
	if err != nil {
		respondError(c, tc.log, err, msgTestimonialNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (tc *TestimonialController) UpdateTestimonial(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusNotFound, msgTestimonialNotFound)
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	t, err := tc.TestimonialSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, tc.log, err, msgTestimonialNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (tc *TestimonialController) DeleteTestimonial(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusNotFound, msgTestimonialNotFound)
		return
	}

	if err := tc.TestimonialSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, tc.log, err, msgTestimonialNotFound)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Testimonial removed")
}
