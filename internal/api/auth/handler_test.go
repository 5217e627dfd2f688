package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chitrakalakar/config"
	"chitrakalakar/database"
	routes "chitrakalakar/internal/app/http"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSignupBuyerApprovedImmediately(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Priya",
		"email":    "priya@example.com",
		"password": "password1",
		"role":     "user",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Account created", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, true, user["is_approved"])
	assert.Equal(t, "user", user["role"])
}

func TestSignupArtistStartsPending(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name":       "Ravi",
		"email":      "ravi@example.com",
		"password":   "password1",
		"role":       "artist",
		"location":   "Chennai",
		"categories": []string{"oil", "acrylic"},
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Account created - pending admin approval", body["message"])
	assert.Equal(t, false, body["user"].(map[string]any)["is_approved"])

	var stored users.User
	require.NoError(t, database.DB.Where("email = ?", "ravi@example.com").First(&stored).Error)
	assert.False(t, stored.IsApproved)
	assert.True(t, stored.IsActive)
}

func TestSignupRejectsBadInput(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"admin role", gin.H{"name": "x", "email": "x@example.com", "password": "password1", "role": "admin"}},
		{"weak password", gin.H{"name": "x", "email": "x@example.com", "password": "short1"}},
		{"no digits", gin.H{"name": "x", "email": "x@example.com", "password": "passwordonly"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/signup", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{"name": "Priya", "email": "dup@example.com", "password": "password1"}
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/auth/signup", body, "").Code)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name": "Priya", "email": "priya@example.com", "password": "password1",
	}, "").Code)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "priya@example.com", "password": "password1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "priya@example.com", "password": "wrongpass1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	r := setupRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name": "Priya", "email": "priya@example.com", "password": "password1",
	}, "").Code)

	require.NoError(t, database.DB.Model(&users.User{}).
		Where("email = ?", "priya@example.com").
		Update("is_active", false).Error)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "priya@example.com", "password": "password1",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name": "Ravi", "email": "ravi@example.com", "password": "password1", "role": "artist",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/auth/profile", gin.H{
		"location":   "Chennai",
		"bio":        "Painter working in oils.",
		"categories": []string{"oil", "watercolor"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "Chennai", user["location"])
	assert.Equal(t, "Painter working in oils.", user["bio"])
	assert.Equal(t, []any{"oil", "watercolor"}, user["categories"])
	assert.Equal(t, "artist", user["role"])
}

func TestProfileCannotChangeRole(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name": "Priya", "email": "priya@example.com", "password": "password1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	doJSON(t, r, http.MethodPut, "/api/auth/profile", gin.H{"role": "admin"}, token)

	var stored users.User
	require.NoError(t, database.DB.Where("email = ?", "priya@example.com").First(&stored).Error)
	assert.Equal(t, users.RoleUser, stored.Role)
}

func TestMeRequiresToken(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
