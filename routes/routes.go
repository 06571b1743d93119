package routes

import (
	"barberpro/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, appt *handlers.AppointmentHandler, booking *handlers.BookingHandler) {
	r.GET("/health", handlers.HealthHandler)

	RegisterAppointmentRoutes(r, appt)
	RegisterBookingRoutes(r, booking)
}

// RegisterAppointmentRoutes registers the direct submission endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", h.CreateAppointment)
		api.GET("", h.ListAppointments)
	}
}
