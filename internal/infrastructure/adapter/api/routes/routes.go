package routes

import (
	authport "github.com/fundr-ph/donation-ledger/internal/domain/port/auth"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens authport.TokenService,
	logger coreport.Logger,
	authHandler *handler.AuthHandler,
	campaignHandler *handler.CampaignHandler,
	donationHandler *handler.DonationHandler,
	reportHandler *handler.ReportHandler,
	userHandler *handler.UserHandler,
) {
	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.SignUp)
		authRoutes.POST("/signin", authHandler.SignIn)
	}

	router.GET("/campaigns", campaignHandler.ListCampaigns)

	// Authenticated routes
	authenticated := router.Group("/", middleware.Auth(tokens, logger))
	{
		authenticated.POST("/donations", donationHandler.RecordDonation)
		authenticated.GET("/donations", donationHandler.GetHistory)

		authenticated.GET("/users/me", userHandler.GetProfile)
		authenticated.PATCH("/users/me", userHandler.UpdateProfile)

		// Access control for the report lives in the report service
		authenticated.GET("/admin/report", reportHandler.GetReport)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
