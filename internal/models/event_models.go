package models

import "time"

// EventStatusPending is the status value counted by the dashboard.
// Any other value is allowed and simply not counted.
const EventStatusPending = "pending"

// Event represents a booked event. ClientID optionally references a
// client; the reference is not enforced at write time, so read paths must
// tolerate a dangling or absent reference.
type Event struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	ClientID       *int64    `json:"client_id" db:"client_id"`
	BookingChannel *string   `json:"booking_channel" db:"booking_channel"`
	Venue          *string   `json:"venue" db:"venue"`
	Date           time.Time `json:"date" db:"date"`
	Type           *string   `json:"type" db:"type"`
	Attendant      *string   `json:"attendant" db:"attendant"`
	Status         string    `json:"status" db:"status"`
	Notes          *string   `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// ClientName is resolved by a left join at read time. It is null when
	// the event has no client or the reference dangles.
	ClientName *string `json:"client_name"`
}
