package api

import (
	"log"
	stdhttp "net/http"

	h "console/internal/http/handlers"
	"console/internal/http/middleware"
	"console/internal/session"

	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	CORSOrigins  []string
	CookieSecure bool
}

func NewRouter(hs *h.Handlers, store session.Store, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(opts.CORSOrigins),
		middleware.Session(store, middleware.SessionOptions{Secure: opts.CookieSecure}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hs.DBCheck)
		api.GET("/routes", h.Routes)

		// Admin auth
		admin := api.Group("/admin")
		admin.POST("/login", hs.AdminLogin)
		admin.POST("/resend-otp", hs.AdminResendOTP)
		admin.POST("/verify-otp", hs.AdminVerifyOTP)
		admin.POST("/logout", hs.AdminLogout)

		// Admin console
		console := admin.Group("", middleware.RequireAdmin())
		console.GET("/me", h.AdminMe)
		console.GET("/dashboard", hs.Dashboard)
		console.GET("/dashboard/export", hs.DashboardExport)
		console.GET("/bookings", hs.ListBookings)
		console.GET("/bookings/export", hs.ExportBookings)
		console.GET("/bookings/:code", hs.GetBooking)
		console.GET("/bookings/:code/pdf", hs.GetBookingPDF)
		console.GET("/settings/backup", middleware.RequireRoles("admin", "superadmin"), hs.SettingsBackup)
		console.GET("/trips", hs.AdminTrips)
		console.GET("/cities", hs.ListCities)
		manage := console.Group("", middleware.RequireRoles("admin", "superadmin"))
		manage.POST("/cities", hs.CreateCity)
		manage.PUT("/cities/:id", hs.UpdateCity)
		manage.DELETE("/cities/:id", hs.DeleteCity)

		// Trips (public)
		trips := api.Group("/trips")
		trips.GET("/search", hs.SearchTrips)
		trips.GET("/:id", hs.GetTrip)

		// Customer auth
		auth := api.Group("/auth")
		auth.POST("/send-otp", hs.SendOTP)
		auth.POST("/verify-otp", hs.VerifyOTP)
		auth.POST("/logout", hs.Logout)

		// Customer
		customer := api.Group("", middleware.RequireUser())
		customer.GET("/auth/me", h.Me)
		customer.POST("/checkout", hs.StartCheckout)
		customer.POST("/checkout/verify", hs.VerifyCheckout)
		customer.GET("/my-trips", hs.MyTrips)
		customer.GET("/my-trips/:code/e-ticket", hs.MyTripETicket)
	}

	h.SetRouter(r)
	return r
}
