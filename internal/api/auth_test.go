package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/types"
)

func setupAuthRouter(t *testing.T) (*TestEnv, *gin.Engine) {
	t.Helper()
	env := SetupTestDB(t)
	handler := NewAuthHandler(env.AuthService)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return env, router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	_, router := setupAuthRouter(t)

	w := postJSON(t, router, "/api/v1/auth/register", types.RegisterRequest{
		Email:       "new@example.com",
		Password:    "password123",
		DisplayName: "New User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)

	w = postJSON(t, router, "/api/v1/auth/login", types.LoginRequest{
		Email:    "new@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, router := setupAuthRouter(t)

	req := types.RegisterRequest{Email: "dup@example.com", Password: "password123", DisplayName: "Dup"}
	w := postJSON(t, router, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/register", req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env, router := setupAuthRouter(t)
	env.CreateTestUser(t, "known@example.com")

	w := postJSON(t, router, "/api/v1/auth/login", types.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	_, router := setupAuthRouter(t)

	w := postJSON(t, router, "/api/v1/auth/register", types.RegisterRequest{
		Email:       "not-an-email",
		Password:    "short",
		DisplayName: "X",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
