package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/types"
)

type stubValidator struct {
	userID uuid.UUID
}

func (s stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if token != "valid-token" {
		return nil, errors.New("signature is invalid")
	}
	return &types.TokenClaims{UserID: s.userID, Email: "user@example.com"}, nil
}

func authTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(stubValidator{userID: userID}), func(c *gin.Context) {
		id := c.MustGet("user_id").(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	userID := uuid.New()
	r := authTestRouter(userID)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	r := authTestRouter(uuid.New())

	for _, header := range []string{"", "Token valid-token", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	r := authTestRouter(uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
