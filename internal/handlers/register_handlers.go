package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/karunya-trust/donation_backend/cmd/docs"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	donationCreateLimiter gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", GetHealth)

	setupAPIV1Routes(r, services, donationCreateLimiter)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	donationCreateLimiter gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	registerDonationRoutes(v1, services.Donation, services.Receipt, donationCreateLimiter)
	registerCampaignRoutes(v1, services.Campaign)
	registerSessionRoutes(v1, services.Session)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
