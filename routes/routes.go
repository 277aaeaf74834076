package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glossify/handlers"
	"glossify/utils"
)

// HandlerBundle collects the wired handlers for route registration.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Catalog *handlers.CatalogHandler
	Vehicle *handlers.VehicleHandler
}

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", hb.Booking.InitiateSession)
		booking.GET("/session/:sessionID", hb.Booking.GetSummary)
		booking.DELETE("/session/:sessionID", hb.Booking.Cancel)

		booking.PUT("/session/:sessionID/vehicle", hb.Booking.UpdateVehicle)
		booking.PUT("/session/:sessionID/service-tier", hb.Booking.SelectServiceTier)
		booking.PUT("/session/:sessionID/addons", hb.Booking.ToggleAddon)
		booking.PUT("/session/:sessionID/schedule", hb.Booking.SetSchedule)
		booking.PUT("/session/:sessionID/payment-method", hb.Booking.SetPaymentMethod)

		booking.POST("/session/:sessionID/carousel", hb.Booking.Carousel)
		booking.POST("/session/:sessionID/advance", hb.Booking.Advance)
		booking.POST("/session/:sessionID/retreat", hb.Booking.Retreat)
		booking.POST("/session/:sessionID/reset", hb.Booking.Reset)
		booking.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
	}
}

// RegisterCatalogRoutes registers catalog browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/:vehicleType/service", hb.Catalog.GetServiceCatalog)
		catalog.GET("/:vehicleType/addons/:category", hb.Catalog.GetAddonCatalog)
	}
}

// RegisterVehicleRoutes registers vehicle reference endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *HandlerBundle) {
	vehicles := r.Group("/api/vehicles")
	{
		vehicles.GET("", hb.Vehicle.ListVehicleTypes)
		vehicles.GET("/:vehicleType/reference", hb.Vehicle.GetReference)
	}
}

// RegisterRoutes wires CORS, health, and all API route groups.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
}
