package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/revocations"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

// --- helpers ---

func newTestServer(t *testing.T) (*Server, *users.MemoryRepository, *revocations.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Address:            ":0",
		JWTSecretKey:       "test-secret",
		JWTHeaderName:      "x-token",
		AccessTokenTTL:     time.Hour,
		GinMode:            gin.TestMode,
		CORSAllowedOrigins: "*",
	}

	usersRepo := users.NewMemoryRepository()
	revRepo := revocations.NewMemoryRepository()
	svc := services.NewUserService(usersRepo, revRepo, cfg, logging.NewNopLogger())

	return NewServer(cfg, logging.NewNopLogger(), svc, revRepo), usersRepo, revRepo
}

func doPost(t *testing.T, s *Server, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- create_user ---

func TestCreateUser_Success(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, msgUserRegistered, body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got: %s", w.Body.String())
	assert.Equal(t, "alice123", data["username"])
	assert.Equal(t, float64(1000), data["id"])
	assert.NotEmpty(t, data["date_created"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s, usersRepo, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Other2@x"}`, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{msgUsernameTaken}, errs["username"])

	assert.Equal(t, 1, usersRepo.Count())
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	s, _, _ := newTestServer(t)

	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "username too short",
			body:      `{"username":"abc","password":"Secret1!"}`,
			wantField: "username",
			wantMsg:   "Username must have 4-32 characters!",
		},
		{
			name:      "password without uppercase",
			body:      `{"username":"alice123","password":"alllowercase1!"}`,
			wantField: "password",
			wantMsg:   msgPasswordPolicy,
		},
		{
			name:      "missing username",
			body:      `{"password":"Secret1!"}`,
			wantField: "username",
			wantMsg:   "username is a required field!",
		},
		{
			name:      "missing password",
			body:      `{"username":"alice123"}`,
			wantField: "password",
			wantMsg:   "password is a required field!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doPost(t, s, "/auth/create_user", tt.body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			body := parseBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, msgValidationsErrors, body["message"])
			errs := body["errors"].(map[string]any)
			assert.Contains(t, errs[tt.wantField], tt.wantMsg)
		})
	}
}

func TestCreateUser_MinimalValidPassword(t *testing.T) {
	s, _, _ := newTestServer(t)

	// 8 chars, all four classes present.
	w := doPost(t, s, "/auth/create_user", `{"username":"bob4567","password":"Aa1!aaaa"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, false, body["success"])
}

// --- user_login ---

func TestUserLogin_Success(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doPost(t, s, "/auth/user_login", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, msgLoginSuccessful, body["message"])
	assert.NotEmpty(t, body["access_token"])
}

func TestUserLogin_EnumerationResistance(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	wUnknown := doPost(t, s, "/auth/user_login", `{"username":"nobody99","password":"Secret1!"}`, nil)
	wWrong := doPost(t, s, "/auth/user_login", `{"username":"alice123","password":"Wrong9$x"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.Equal(t, wUnknown.Body.String(), wWrong.Body.String())
}

func TestUserLogin_ValidationErrors(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/user_login", `{"username":"","password":""}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, msgValidationErrors, body["message"])
	assert.Equal(t, float64(http.StatusBadRequest), body["code"])

	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs["username"], "username is a required field!")
	assert.Contains(t, errs["password"], "password is a required field!")
}

// --- user_logout and full lifecycle ---

func TestLifecycle_RegisterLoginLogoutReuse(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	data := parseBody(t, w)["data"].(map[string]any)
	require.Equal(t, "alice123", data["username"])

	w = doPost(t, s, "/auth/user_login", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := parseBody(t, w)["access_token"].(string)
	require.NotEmpty(t, token)

	headers := map[string]string{"x-token": token}

	w = doPost(t, s, "/auth/user_logout", `{"username":"alice123"}`, headers)
	require.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, msgUserLoggedOut, body["message"])

	// The same token no longer opens any guarded endpoint.
	w = doPost(t, s, "/auth/user_logout", `{"username":"alice123"}`, headers)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, msgTokenRevoked, parseBody(t, w)["message"])
}

func TestUserLogout_UnknownUsername(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doPost(t, s, "/auth/user_login", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := parseBody(t, w)["access_token"].(string)

	w = doPost(t, s, "/auth/user_logout", `{"username":"nobody99"}`, map[string]string{"x-token": token})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, msgUserNotFound, parseBody(t, w)["message"])
}

func TestUserLogout_ValidationErrors(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doPost(t, s, "/auth/create_user", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doPost(t, s, "/auth/user_login", `{"username":"alice123","password":"Secret1!"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := parseBody(t, w)["access_token"].(string)

	w = doPost(t, s, "/auth/user_logout", `{"username":""}`, map[string]string{"x-token": token})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, msgValidationErrors, body["message"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs["username"], "username is a required field!")
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", parseBody(t, w)["status"])
}
