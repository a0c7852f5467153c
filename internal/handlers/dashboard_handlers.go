package handlers

import (
	"net/http"

	"event_agency_backend/internal/services"
	"event_agency_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetSummary handles the dashboard aggregate counts.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		utils.LogError(err, "GetSummary: Error from dashboardService.GetSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "failed to load dashboard"))
		return
	}
	c.JSON(http.StatusOK, summary)
}
