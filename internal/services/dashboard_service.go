package services

import (
	"fmt"

	"event_agency_backend/internal/models"
	"event_agency_backend/internal/repositories"
)

// DashboardService computes the aggregate counts for the dashboard.
type DashboardService interface {
	GetSummary() (*models.DashboardSummary, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: repo}
}

// GetSummary returns today's event count, the pending event count, and the
// total client count, reflecting current storage state on every call.
func (s *dashboardService) GetSummary() (*models.DashboardSummary, error) {
	summary, err := s.dashboardRepo.GetSummary()
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", err)
	}
	return summary, nil
}
