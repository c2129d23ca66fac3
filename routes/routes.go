package routes

import (
	"net/http"
	"time"

	"lablink/handlers"
	"lablink/middleware"
	"lablink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPartnerRoutes registers partner account endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.POST("/register", hb.Partner.RegisterHandler)
		api.POST("/login", hb.Partner.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.PartnerAuthMiddleware(hb.PartnerRepo))
		api.GET("/me", hb.Partner.GetProfileHandler)
		api.PATCH("/me", hb.Partner.UpdateProfileHandler)
		api.GET("/me/bookings", hb.Partner.MyBookingsHandler)
		api.GET("/me/earnings", hb.Partner.EarningsHandler)
	}
}

// RegisterCatalogRoutes registers the storefront's browsable catalogue.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/tests", hb.Catalog.ListTestsHandler)
		api.GET("/tests/:id", hb.Catalog.GetTestHandler)
		api.GET("/scans", hb.Catalog.ListScansHandler)
		api.GET("/scans/:id", hb.Catalog.GetScanHandler)
		api.GET("/packages", hb.Catalog.ListPackagesHandler)
		api.GET("/packages/:id", hb.Catalog.GetPackageHandler)
		api.GET("/centres", hb.Catalog.ListCentresHandler)
		api.GET("/centres/:id", hb.Catalog.GetCentreHandler)
		api.GET("/centres/:id/pricing", hb.Catalog.GetCentrePricingHandler)
	}
}

// RegisterCartRoutes registers the session cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.PartnerAuthMiddleware(hb.PartnerRepo))
		api.GET("", hb.Cart.GetCartHandler)
		api.POST("/items", hb.Cart.AddItemHandler)
		api.DELETE("/items/:id", hb.Cart.RemoveItemHandler)
		api.PUT("/items", hb.Cart.UpdateQuantityHandler)
		api.DELETE("", hb.Cart.ClearCartHandler)
	}
}

// RegisterCheckoutRoutes registers the wizard, commit and confirmation endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.PartnerAuthMiddleware(hb.PartnerRepo))
		api.GET("/draft", hb.Checkout.GetDraftHandler)
		api.PUT("/draft/patient", hb.Checkout.SetPatientHandler)
		api.PUT("/draft/collection", hb.Checkout.SetCollectionHandler)
		api.PUT("/draft/payment", hb.Checkout.SetPaymentHandler)
		api.PUT("/step", hb.Checkout.SetStepHandler)
		api.POST("/advance", hb.Checkout.AdvanceHandler)
		api.POST("/reset", hb.Checkout.ResetHandler)
		api.POST("/submit", hb.Checkout.SubmitHandler)
		api.GET("/state", hb.Checkout.StateHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.PartnerAuthMiddleware(hb.PartnerRepo))
		bookings.GET("/:bookingID", hb.Checkout.GetBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.GET("/dashboard", hb.Admin.DashboardHandler)

		adminGroup.GET("/partners", hb.Admin.GetAllPartnersHandler)
		adminGroup.PUT("/partners/:id/active", hb.Admin.SetPartnerActiveHandler)
		adminGroup.PUT("/partners/:id/commission", hb.Admin.SetPartnerCommissionHandler)

		adminGroup.GET("/bookings", hb.Admin.GetAllBookingsHandler)
		adminGroup.GET("/bookings/:id", hb.Admin.GetBookingHandler)
		adminGroup.PUT("/bookings/:id/status", hb.Admin.UpdateBookingStatusHandler)

		adminGroup.GET("/commissions", hb.Admin.GetCommissionsHandler)
		adminGroup.PUT("/commissions/:id/approve", hb.Admin.ApproveCommissionHandler)
		adminGroup.PUT("/commissions/:id/pay", hb.Admin.MarkCommissionPaidHandler)

		adminGroup.POST("/centres", hb.Admin.CreateCentreHandler)
		adminGroup.PATCH("/centres/:id", hb.Admin.UpdateCentreHandler)
		adminGroup.DELETE("/centres/:id", hb.Admin.DeleteCentreHandler)
		adminGroup.POST("/centres/:id/pricing", hb.Admin.SetCentrePricingHandler)
		adminGroup.DELETE("/centres/:id/pricing/:pricingID", hb.Admin.DeleteCentrePricingHandler)

		adminGroup.POST("/tests", hb.Admin.CreateTestHandler)
		adminGroup.PATCH("/tests/:id", hb.Admin.UpdateTestHandler)
		adminGroup.DELETE("/tests/:id", hb.Admin.DeleteTestHandler)
		adminGroup.POST("/scans", hb.Admin.CreateScanHandler)
		adminGroup.PATCH("/scans/:id", hb.Admin.UpdateScanHandler)
		adminGroup.DELETE("/scans/:id", hb.Admin.DeleteScanHandler)
		adminGroup.POST("/packages", hb.Admin.CreatePackageHandler)
		adminGroup.PATCH("/packages/:id", hb.Admin.UpdatePackageHandler)
		adminGroup.DELETE("/packages/:id", hb.Admin.DeletePackageHandler)

		adminGroup.GET("/settings", hb.Admin.GetSettingsHandler)
		adminGroup.PUT("/settings", hb.Admin.UpsertSettingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPartnerRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
