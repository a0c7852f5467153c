package repositories

import (
	"database/sql"
	"fmt"

	"event_agency_backend/internal/models"
)

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	CreateEvent(executor SQLExecutor, event *models.Event) (int64, error)
	GetEvents() ([]models.Event, error)
}

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

// CreateEvent inserts a new event and returns the generated identifier.
// ClientID is stored as given; its existence is not checked at write time.
func (r *eventRepository) CreateEvent(executor SQLExecutor, event *models.Event) (int64, error) {
	query := `INSERT INTO events (name, client_id, booking_channel, venue, date, type, attendant, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		event.Name, event.ClientID, event.BookingChannel, event.Venue,
		event.Date, event.Type, event.Attendant, event.Status, event.Notes,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return 0, fmt.Errorf("%w: creating event: %v", ErrDatabaseError, err)
	}
	return event.ID, nil
}

// GetEvents retrieves all events ordered by date descending, each enriched
// with the client name via a left join. A missing or dangling client
// reference yields a null client_name, never an error.
func (r *eventRepository) GetEvents() ([]models.Event, error) {
	events := []models.Event{}
	query := `SELECT e.id, e.name, e.client_id, e.booking_channel, e.venue, e.date,
	                 e.type, e.attendant, e.status, e.notes, e.created_at,
	                 c.name AS client_name
	          FROM events e
	          LEFT JOIN clients c ON e.client_id = c.id
	          ORDER BY e.date DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var event models.Event
		var clientID sql.NullInt64
		var clientName sql.NullString
		if err := rows.Scan(
			&event.ID, &event.Name, &clientID, &event.BookingChannel, &event.Venue,
			&event.Date, &event.Type, &event.Attendant, &event.Status, &event.Notes,
			&event.CreatedAt, &clientName,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning event: %v", ErrDatabaseError, err)
		}
		if clientID.Valid {
			event.ClientID = &clientID.Int64
		}
		if clientName.Valid {
			event.ClientName = &clientName.String
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating event rows: %v", ErrDatabaseError, err)
	}

	return events, nil
}
