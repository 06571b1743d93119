package handlers

import (
	"net/http"
	"strings"

	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/models"
	"barberpro/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the plain submission and retrieval endpoints.
// These sit behind the widget as a second line of defense: the wizard
// validates client-side state, this validates the wire payload again.
type AppointmentHandler struct {
	Repo   appointmentRepo.AppointmentRepository
	Logger *zap.Logger
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Logger: logger}
}

type createAppointmentRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// CreateAppointment books an appointment from a direct submission.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Service == "" || req.Date == "" || req.Time == "" ||
		strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !booking.ValidEmail(strings.TrimSpace(req.Email)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	appt := models.Appointment{
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Notes:   req.Notes,
	}
	saved, err := h.Repo.Save(c.Request.Context(), appt)
	if err != nil {
		h.Logger.Error("Failed to save appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"appointment": saved,
		"message":     "Appointment booked successfully!",
	})
}

// ListAppointments returns the current collection of bookings.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to fetch appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": appointments,
		"message":      "Appointments retrieved successfully",
	})
}
