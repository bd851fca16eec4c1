// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadready/internal/http/handlers"
	"roadready/internal/http/middleware"
)

// RouterDeps carries the services the API surface needs. Handlers depend on
// small interfaces so tests can swap in stubs.
type RouterDeps struct {
	TestCenters handlers.TestCenterDirectory
	Addons      handlers.AddonCatalogue
	Coupons     handlers.CouponVerifier
	Geo         handlers.Geocoder
	Quoter      handlers.Quoter
	Bookings    handlers.BookingService
	AdminToken  string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.AdminToken))

	testCenterHandler := handlers.NewTestCenterHandler(deps.TestCenters)
	api.GET("/test-centers", testCenterHandler.List)
	api.GET("/test-centers/:id", testCenterHandler.Get)

	addonHandler := handlers.NewAddonHandler(deps.Addons)
	api.GET("/addons", addonHandler.List)

	couponHandler := handlers.NewCouponHandler(deps.Coupons)
	api.POST("/coupons/verify", couponHandler.Verify)

	geoHandler := handlers.NewGeoHandler(deps.Geo)
	api.POST("/address-search", geoHandler.SearchAddress)
	api.POST("/distance", geoHandler.Distance)

	quoteHandler := handlers.NewQuoteHandler(deps.Quoter)
	api.POST("/quotes", quoteHandler.Create)

	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings", bookingHandler.List)
	api.GET("/bookings/:id", bookingHandler.Get)
	api.POST("/bookings/:id/confirm", bookingHandler.Confirm)
	api.POST("/bookings/:id/complete", bookingHandler.Complete)
	api.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	return r
}
