package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"c4knives-backend/controllers"
	"c4knives-backend/middleware"
	"c4knives-backend/utils"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Products    *controllers.ProductController
	Spotlight   *controllers.SpotlightController
	Testimonial *controllers.TestimonialController
	Metadata    *controllers.MetadataController
	Contact     *controllers.ContactController
}

type Options struct {
	// AdminPrefix is inserted as a path segment in front of guarded routes,
	// e.g. "manage" turns POST /api/products into POST /api/products/manage.
	AdminPrefix    string
	AllowedOrigins []string
	Logger         *slog.Logger
}

func adminPath(prefix, rest string) string {
	if prefix == "" {
		return rest
	}
	return "/" + prefix + rest
}

// SetupRouter builds the whole routing table once from opts.
func SetupRouter(ctl Controllers, auth middleware.Authenticator, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.Logger(log), middleware.Metrics())
	r.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		utils.ServerError(c, log, fmt.Errorf("panic: %v", rec))
		c.Abort()
	}))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.TokenHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	guard := middleware.RequireAdmin(auth)
	p := opts.AdminPrefix

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/login", ctl.Auth.Login)
			admin.GET("/me", guard, ctl.Auth.Me)
		}

		products := api.Group("/products")
		{
			products.GET("", ctl.Products.GetProducts)
			products.GET("/:id", ctl.Products.GetProductByID)
			products.POST(adminPath(p, ""), guard, ctl.Products.CreateProduct)
			products.PUT(adminPath(p, "/:id"), guard, ctl.Products.UpdateProduct)
			products.DELETE(adminPath(p, "/:id"), guard, ctl.Products.DeleteProduct)
		}

		spotlight := api.Group("/spotlight")
		{
			spotlight.GET("", ctl.Spotlight.GetSpotlight)
			spotlight.PUT(adminPath(p, ""), guard, ctl.Spotlight.UpdateSpotlight)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", ctl.Testimonial.GetTestimonials)
			testimonials.POST(adminPath(p, ""), guard, ctl.Testimonial.CreateTestimonial)
			testimonials.PUT(adminPath(p, "/:id"), guard, ctl.Testimonial.UpdateTestimonial)
			testimonials.DELETE(adminPath(p, "/:id"), guard, ctl.Testimonial.DeleteTestimonial)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", ctl.Contact.SubmitMessage)
			contact.GET(adminPath(p, "/messages"), guard, ctl.Contact.GetMessages)
		}

		metadata := api.Group("/metadata")
		{
			metadata.GET("", ctl.Metadata.GetMetadata)
			metadata.PUT(adminPath(p, ""), guard, ctl.Metadata.UpdateMetadata)
		}
	}

	return r
}
