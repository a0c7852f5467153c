package handlers

import (
	"errors"
	"net/http"

	"event_agency_backend/internal/models"
	"event_agency_backend/internal/services"
	"event_agency_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler holds the event service.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// CreateEvent handles the creation of a new event.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "name and date are required"))
		return
	}

	id, err := h.eventService.CreateEvent(req)
	if err != nil {
		if errors.Is(err, services.ErrEventValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "invalid event data"))
			return
		}
		utils.LogError(err, "CreateEvent: Error from eventService.CreateEvent")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "failed to create event"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetEvents handles fetching all events, newest first, with client names
// resolved.
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetEvents()
	if err != nil {
		utils.LogError(err, "GetEvents: Error from eventService.GetEvents")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "failed to fetch events"))
		return
	}

	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}
