package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/fixera/marketplace-api/internal/audit"
	"github.com/fixera/marketplace-api/internal/cache"
	"github.com/fixera/marketplace-api/internal/config"
	domainBooking "github.com/fixera/marketplace-api/internal/domain/booking"
	domainVendor "github.com/fixera/marketplace-api/internal/domain/vendor"
	"github.com/fixera/marketplace-api/internal/handlers"
	"github.com/fixera/marketplace-api/internal/middleware"
	ucBooking "github.com/fixera/marketplace-api/internal/usecase/booking"
	ucVendor "github.com/fixera/marketplace-api/internal/usecase/vendor"
)

// Store is the storage surface the routes need. Both the gorm and the
// in-memory repositories satisfy it.
type Store interface {
	domainBooking.Repository
	domainVendor.Repository
}

func RegisterRoutes(
	r *gin.Engine,
	store Store,
	auditSink audit.Sink,
	vendorCache *cache.VendorCache,
	cfg *config.Config,
	logger *zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(auditSink, logger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(store, auditDispatcher)
	setStatusUC := ucBooking.NewSetBookingStatus(store, auditDispatcher)
	listCustomerUC := ucBooking.NewListCustomerBookings(store)
	listVendorUC := ucBooking.NewListVendorBookings(store)
	earningsUC := ucBooking.NewVendorEarnings(store)
	analyticsUC := ucBooking.NewMonthlyAnalytics(store)

	// ======================================================
	// USE CASES — VENDORS
	// ======================================================
	createVendorUC := ucVendor.NewCreateVendorProfile(store, auditDispatcher, vendorCache)
	updateVendorUC := ucVendor.NewUpdateVendorProfile(store, auditDispatcher, vendorCache)
	getVendorUC := ucVendor.NewGetVendorProfile(store)
	listPublicUC := ucVendor.NewListPublicVendors(store, vendorCache)
	roleUC := ucVendor.NewRoleOf(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		setStatusUC,
		listCustomerUC,
		listVendorUC,
		earningsUC,
		analyticsUC,
	)

	vendorHandler := handlers.NewVendorHandler(
		createVendorUC,
		updateVendorUC,
		getVendorUC,
		listPublicUC,
		roleUC,
	)

	// ======================================================
	// OPERATIONAL ENDPOINTS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// public browse listing, no bearer token; throttled per client IP
		api.GET("/vendors", middleware.RateLimitMiddleware(cfg), vendorHandler.ListPublic)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		// auth runs first, so the limiter keys by resolved principal
		secured.Use(middleware.RateLimitMiddleware(cfg))
		{
			secured.POST("/vendors", vendorHandler.Create)
			secured.PUT("/vendors/me", vendorHandler.Update)
			secured.GET("/vendors/me", vendorHandler.GetMe)
			secured.GET("/vendors/role", vendorHandler.Role)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/user", bookingHandler.ListForCustomer)
			secured.GET("/bookings/vendor", bookingHandler.ListForVendor)
			secured.GET("/bookings/vendor/earnings", bookingHandler.Earnings)
			secured.GET("/bookings/vendor/analytics", bookingHandler.Analytics)
			secured.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
		}
	}
}
