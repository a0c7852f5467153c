package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"event_agency_backend/internal/models"
	"event_agency_backend/internal/repositories"
)

var (
	// ErrEventValidation is returned when event data fails validation.
	ErrEventValidation = errors.New("event data validation error")

	// ErrDateFormat is returned when the event date cannot be parsed.
	ErrDateFormat = errors.New("invalid date format")
)

// eventDateLayouts are the accepted wire formats for the event date, most
// specific first. The datetime-local input of the booking form sends
// "2006-01-02T15:04".
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// CreateEventRequest DTO. ClientID is optional and not validated for
// existence; a dangling reference is resolved to a null client name at
// read time.
type CreateEventRequest struct {
	Name           string  `json:"name" binding:"required"`
	ClientID       *int64  `json:"client_id"`
	BookingChannel *string `json:"booking_channel"`
	Venue          *string `json:"venue"`
	Date           string  `json:"date" binding:"required"`
	Type           *string `json:"type"`
	Attendant      *string `json:"attendant"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

// EventService handles event business logic.
type EventService interface {
	CreateEvent(req CreateEventRequest) (int64, error)
	GetEvents() ([]models.Event, error)
}

type eventService struct {
	eventRepo repositories.EventRepository
	db        *sql.DB
}

// NewEventService creates a new instance of EventService.
func NewEventService(repo repositories.EventRepository, db *sql.DB) EventService {
	return &eventService{eventRepo: repo, db: db}
}

func parseEventDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range eventDateLayouts {
		if date, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, raw)
}

// CreateEvent validates required fields, parses the date, and persists a
// new event, returning the generated identifier. Status defaults to
// "pending" when omitted.
func (s *eventService) CreateEvent(req CreateEventRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, fmt.Errorf("%w: name cannot be empty", ErrEventValidation)
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return 0, err
	}

	status := models.EventStatusPending
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = *req.Status
	}

	event := &models.Event{
		Name:           req.Name,
		ClientID:       req.ClientID,
		BookingChannel: req.BookingChannel,
		Venue:          req.Venue,
		Date:           date,
		Type:           req.Type,
		Attendant:      req.Attendant,
		Status:         status,
		Notes:          req.Notes,
	}

	id, err := s.eventRepo.CreateEvent(s.db, event)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// GetEvents returns all events sorted by date descending, enriched with
// the client name.
func (s *eventService) GetEvents() ([]models.Event, error) {
	events, err := s.eventRepo.GetEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}
