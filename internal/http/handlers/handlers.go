package handlers

import (
	"database/sql"
	"time"

	"console/internal/backend"
	"console/internal/bookingview"
	"console/internal/http/middleware"
	"console/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers holds what the console endpoints share. Services are built per
// request so every log line carries the request id.
type Handlers struct {
	Backend    *backend.Client
	Normalizer bookingview.Normalizer
	PublicURL  string
	DB         *sql.DB
	Now        func() time.Time
}

func (h *Handlers) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		Source:     h.Backend,
		Normalizer: h.Normalizer,
		Now:        h.Now,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handlers) dashboard(c *gin.Context) services.DashboardService {
	return services.DashboardService{Trips: h.Backend, Bookings: h.bookings(c), RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) settings(c *gin.Context) services.SettingsService {
	return services.SettingsService{Trips: h.Backend, Bookings: h.bookings(c), RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) cities(c *gin.Context) services.CityService {
	return services.CityService{Store: h.Backend, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) trips(c *gin.Context) services.TripService {
	return services.TripService{Finder: h.Backend, All: h.Backend, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) auth(c *gin.Context) services.AuthService {
	return services.AuthService{Client: h.Backend, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) checkout(c *gin.Context) services.CheckoutService {
	return services.CheckoutService{
		Payments:  h.Backend,
		Trips:     h.Backend,
		PublicURL: h.PublicURL,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handlers) myTrips(c *gin.Context) services.MyTripsService {
	reqID := middleware.GetRequestID(c)
	return services.MyTripsService{
		Source:     h.Backend,
		Normalizer: h.Normalizer,
		Docs:       services.DocsService{RequestID: reqID},
		Now:        h.Now,
		RequestID:  reqID,
	}
}

func adminToken(c *gin.Context) string {
	return middleware.GetSession(c).AdminToken()
}
