package controllers

import (
	"log/slog"
	"net/http"

	"c4knives-backend/services"
	"c4knives-backend/utils"

	"github.com/gin-gonic/gin"
)

const msgProductNotFound = "Product not found"

type ProductController struct {
	ProductSvc *services.ProductService
	log        *slog.Logger
}

func NewProductController(svc *services.ProductService, log *slog.Logger) *ProductController {
	return &ProductController{ProductSvc: svc, log: log}
}

// GetProducts GET /api/products
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.ProductSvc.List(c.Request.Context())
	if err != nil {
		utils.ServerError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID GET /api/products/:id
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}

	product, err := pc.ProductSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.log, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	product, err := pc.ProductSvc.Create(c.Request.Context(), patch)
	if err != nil {
		respondError(c, pc.log, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	product, err := pc.ProductSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, pc.log, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		utils.JSONMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}

	if err := pc.ProductSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, pc.log, err, msgProductNotFound)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Product removed")
}
