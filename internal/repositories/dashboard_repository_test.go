package repositories

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Events {today, today, yesterday} with statuses {pending, confirmed,
	// pending} yield 2 for today and 2 for pending; the pending count is
	// status-only, independent of the date.
	mock.ExpectQuery(regexp.QuoteMeta(`FROM events`)).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"events_today", "events_pending"}).AddRow(2, 2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	repo := NewDashboardRepository(db)
	summary, err := repo.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.EventsToday)
	assert.Equal(t, 2, summary.EventsPending)
	assert.Equal(t, 5, summary.ActiveClients)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummaryEventsQueryFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM events`)).
		WillReturnError(assert.AnError)

	repo := NewDashboardRepository(db)
	_, err = repo.GetSummary()
	assert.ErrorIs(t, err, ErrDatabaseError)
}

func TestGetSummaryClientsQueryFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM events`)).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"events_today", "events_pending"}).AddRow(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients`)).
		WillReturnError(assert.AnError)

	repo := NewDashboardRepository(db)
	_, err = repo.GetSummary()
	assert.ErrorIs(t, err, ErrDatabaseError)
}
