package repositories

import (
	"database/sql"
	"fmt"

	"event_agency_backend/internal/models"
)

// DashboardRepository computes the aggregate counts for the dashboard.
type DashboardRepository interface {
	GetSummary() (*models.DashboardSummary, error)
}

type dashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository.
func NewDashboardRepository(db *sql.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetSummary counts today's events (calendar day in the database server's
// zone), events with status 'pending', and all clients. Every call reads
// current storage state; nothing is cached.
func (r *dashboardRepository) GetSummary() (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	eventsQuery := `SELECT
	                  COUNT(*) FILTER (WHERE date::date = CURRENT_DATE) AS events_today,
	                  COUNT(*) FILTER (WHERE status = $1) AS events_pending
	                FROM events`
	err := r.db.QueryRow(eventsQuery, models.EventStatusPending).Scan(
		&summary.EventsToday, &summary.EventsPending,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: counting events: %v", ErrDatabaseError, err)
	}

	clientsQuery := `SELECT COUNT(*) FROM clients`
	if err := r.db.QueryRow(clientsQuery).Scan(&summary.ActiveClients); err != nil {
		return nil, fmt.Errorf("%w: counting clients: %v", ErrDatabaseError, err)
	}

	return summary, nil
}
