package repositories

import (
	"regexp"
	"testing"
	"time"

	"event_agency_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventColumns() []string {
	return []string{
		"id", "name", "client_id", "booking_channel", "venue", "date",
		"type", "attendant", "status", "notes", "created_at", "client_name",
	}
}

func TestCreateEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := int64(3)
	date := time.Date(2026, 9, 1, 19, 0, 0, 0, time.Local)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO events`)).
		WithArgs("Casamento", &clientID, nil, nil, date, nil, nil, "pending", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), now))

	repo := NewEventRepository(db)
	event := &models.Event{Name: "Casamento", ClientID: &clientID, Date: date, Status: "pending"}
	id, err := repo.CreateEvent(db, event)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEventStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO events`)).
		WillReturnError(assert.AnError)

	repo := NewEventRepository(db)
	_, err = repo.CreateEvent(db, &models.Event{Name: "Show", Date: time.Now(), Status: "pending"})
	assert.ErrorIs(t, err, ErrDatabaseError)
}

func TestGetEventsEnrichment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(eventColumns()).
		// joined client present
		AddRow(int64(3), "Casamento", int64(1), "phone", "Salão Azul", now, "wedding", "Carla", "pending", nil, now, "Ana").
		// client_id set but the client row no longer exists (dangling)
		AddRow(int64(2), "Formatura", int64(99), nil, nil, now.Add(-time.Hour), nil, nil, "confirmed", nil, now, nil).
		// no client at all
		AddRow(int64(1), "Feira", nil, nil, nil, now.Add(-48*time.Hour), nil, nil, "pending", nil, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN clients c ON e.client_id = c.id`)).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, err := repo.GetEvents()
	require.NoError(t, err)
	require.Len(t, events, 3)

	require.NotNil(t, events[0].ClientName)
	assert.Equal(t, "Ana", *events[0].ClientName)

	// Dangling and absent references resolve to a null client name, not an error.
	require.NotNil(t, events[1].ClientID)
	assert.Equal(t, int64(99), *events[1].ClientID)
	assert.Nil(t, events[1].ClientName)

	assert.Nil(t, events[2].ClientID)
	assert.Nil(t, events[2].ClientName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM events e`)).
		WillReturnError(assert.AnError)

	repo := NewEventRepository(db)
	_, err = repo.GetEvents()
	assert.ErrorIs(t, err, ErrDatabaseError)
}
