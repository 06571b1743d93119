package routes

import (
	"barberpro/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/catalog", h.GetCatalog)
		booking.POST("/session", h.StartSession)
		booking.GET("/session/:sessionID", h.GetSession)
		booking.PATCH("/session/:sessionID", h.UpdateSession)
		booking.POST("/session/:sessionID/next", h.Advance)
		booking.POST("/session/:sessionID/back", h.Back)
		booking.POST("/session/:sessionID/reset", h.Reset)
		booking.GET("/session/:sessionID/calendar", h.CalendarLinks)
		booking.GET("/session/:sessionID/calendar.ics", h.CalendarICS)
	}
}
