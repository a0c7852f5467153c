package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event_agency_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(AuthMiddleware())
	engine.GET("/protected", func(c *gin.Context) {
		name, _ := c.Get("userName")
		c.JSON(http.StatusOK, gin.H{"name": name})
	})
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("test-secret")

	validToken, err := utils.GenerateAccessToken(7, "Carla", "admin")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedSubstr: `"error"`,
		},
		{
			name:           "not bearer",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
			expectedSubstr: `"error"`,
		},
		{
			name:           "bearer without token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedSubstr: `"error"`,
		},
		{
			name:           "tampered token",
			authHeader:     "Bearer " + validToken + "x",
			expectedStatus: http.StatusForbidden,
			expectedSubstr: `"error"`,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"Carla"`,
		},
	}

	engine := setupProtectedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedSubstr)
		})
	}
}
