package handlers

import (
	"errors"
	"net/http"

	"event_agency_backend/internal/models"
	"event_agency_backend/internal/services"
	"event_agency_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// CreateClient handles the creation of a new client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "name and phone are required"))
		return
	}

	id, err := h.clientService.CreateClient(req)
	if err != nil {
		if errors.Is(err, services.ErrClientValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "invalid client data"))
			return
		}
		utils.LogError(err, "CreateClient: Error from clientService.CreateClient")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "failed to create client"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetClients handles fetching all clients, sorted by name.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetClients()
	if err != nil {
		utils.LogError(err, "GetClients: Error from clientService.GetClients")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "failed to fetch clients"))
		return
	}

	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}
