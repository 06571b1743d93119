package handlers

import (
	"errors"
	"net/http"

	"barberpro/models"
	"barberpro/services/booking"
	"barberpro/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP. Validation failures
// are not transport errors: the session comes back with fieldErrors set and
// the step unchanged, which is what the widget renders inline.
type BookingHandler struct {
	Wizard   booking.WizardService
	Calendar *calendar.Builder
	Catalog  models.Catalog
	Logger   *zap.Logger
}

func NewBookingHandler(wizard booking.WizardService, builder *calendar.Builder, catalog models.Catalog, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Wizard: wizard, Calendar: builder, Catalog: catalog, Logger: logger}
}

// GetCatalog returns the services, barbers and time slots the widget offers.
func (h *BookingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog)
}

// StartSession opens a fresh wizard session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Wizard.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current state of a wizard session.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

type updateSessionRequest struct {
	Draft       map[string]string           `json:"draft"`
	Preferences *models.ReminderPreferences `json:"preferences"`
}

// UpdateSession applies draft field updates and/or reminder preferences.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	ctx := c.Request.Context()

	session, err := h.Wizard.GetSession(ctx, sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	if len(req.Draft) > 0 {
		if session, err = h.Wizard.UpdateDraft(ctx, sessionID, req.Draft); err != nil {
			h.respondSessionError(c, err)
			return
		}
	}
	if req.Preferences != nil {
		if session, err = h.Wizard.SetPreferences(ctx, sessionID, *req.Preferences); err != nil {
			h.respondSessionError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance attempts the next step; from the details step this submits the
// booking.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, err := h.Wizard.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if booking.IsSubmissionError(err) {
			h.Logger.Warn("Booking submission failed", zap.String("sessionId", c.Param("sessionID")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to book appointment. Please try again.",
				"session": session,
			})
			return
		}
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Back moves to the previous step.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Wizard.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Reset returns the wizard to a fresh first step.
func (h *BookingHandler) Reset(c *gin.Context) {
	session, err := h.Wizard.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CalendarLinks returns "add to calendar" deep links for a confirmed booking.
func (h *BookingHandler) CalendarLinks(c *gin.Context) {
	event, ok := h.eventForSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"google":  h.Calendar.GoogleCalendarURL(event),
		"outlook": h.Calendar.OutlookCalendarURL(event),
	})
}

// CalendarICS serves the downloadable calendar file for a confirmed booking.
func (h *BookingHandler) CalendarICS(c *gin.Context) {
	event, ok := h.eventForSession(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="appointment.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(h.Calendar.ICSFile(event)))
}

// eventForSession rebuilds the calendar event for a confirmed session. A
// wizard that has not reached the confirmed step has nothing to export.
func (h *BookingHandler) eventForSession(c *gin.Context) (models.CalendarEvent, bool) {
	session, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return models.CalendarEvent{}, false
	}
	if session.Step != models.StepConfirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "booking is not confirmed yet"})
		return models.CalendarEvent{}, false
	}

	svc, ok := h.Catalog.ServiceByID(session.Draft.Service)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "booked service is no longer in the catalog"})
		return models.CalendarEvent{}, false
	}
	barber, ok := h.Catalog.BarberByID(session.Draft.Barber)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "booked barber is no longer in the catalog"})
		return models.CalendarEvent{}, false
	}

	event, err := h.Calendar.BuildEvent(svc, barber, session.Draft)
	if err != nil {
		h.Logger.Error("Failed to build calendar event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build calendar event"})
		return models.CalendarEvent{}, false
	}
	return event, true
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	h.Logger.Error("Booking session error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
}
