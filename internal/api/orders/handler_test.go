package orders_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chitrakalakar/config"
	"chitrakalakar/database"
	ordersapi "chitrakalakar/internal/api/orders"
	routes "chitrakalakar/internal/app/http"
	domain "chitrakalakar/internal/domain/orders"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
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

func seedUser(t *testing.T, role, city string) users.User {
	t.Helper()
	u := users.User{
		Name:       "Test " + role,
		Email:      uuid.NewString() + "@example.com",
		Role:       role,
		Location:   city,
		IsApproved: true,
		IsActive:   true,
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func tokenFor(t *testing.T, u users.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return s
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

func createOrder(t *testing.T, r *gin.Engine, buyer users.User, city string) domain.CustomOrder {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/orders/custom", gin.H{
		"title":          "Family portrait",
		"category":       "oil",
		"budget":         5000,
		"preferred_city": city,
	}, tokenFor(t, buyer))
	require.Equal(t, http.StatusOK, w.Code)

	var order domain.CustomOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	return order
}

func TestCreateCustomOrderMatchesByCity(t *testing.T) {
	r := setupRouter(t)
	buyer := seedUser(t, users.RoleUser, "Chennai")
	local := seedUser(t, users.RoleArtist, "Chennai")
	remote := seedUser(t, users.RoleArtist, "Delhi")

	pending := seedUser(t, users.RoleArtist, "Chennai")
	require.NoError(t, database.DB.Model(&pending).Update("is_approved", false).Error)

	order := createOrder(t, r, buyer, "Chennai")

	assert.Equal(t, []string{local.ID}, []string(order.MatchedArtists))
	assert.Equal(t, []string{remote.ID}, []string(order.FallbackArtists))
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{6}$`, order.OrderNumber)
}

func TestMatchedSetsAreFrozen(t *testing.T) {
	r := setupRouter(t)
	buyer := seedUser(t, users.RoleUser, "Chennai")
	seedUser(t, users.RoleArtist, "Chennai")

	order := createOrder(t, r, buyer, "Chennai")
	require.Len(t, order.MatchedArtists, 1)

	// an artist approved after the fact does not appear on the old order
	seedUser(t, users.RoleArtist, "Chennai")

	var stored domain.CustomOrder
	require.NoError(t, database.DB.First(&stored, "id = ?", order.ID).Error)
	assert.Len(t, []string(stored.MatchedArtists), 1)
}

func TestGetUserOrdersAccess(t *testing.T) {
	r := setupRouter(t)
	buyer := seedUser(t, users.RoleUser, "Chennai")
	stranger := seedUser(t, users.RoleUser, "Delhi")
	admin := seedUser(t, users.RoleAdmin, "")
	seedUser(t, users.RoleArtist, "Chennai")

	createOrder(t, r, buyer, "Chennai")

	w := doJSON(t, r, http.MethodGet, "/api/orders/custom/user/"+buyer.ID, nil, tokenFor(t, buyer))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/custom/user/"+buyer.ID, nil, tokenFor(t, stranger))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/custom/user/"+buyer.ID, nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelectArtist(t *testing.T) {
	r := setupRouter(t)
	buyer := seedUser(t, users.RoleUser, "Chennai")
	local := seedUser(t, users.RoleArtist, "Chennai")
	remote := seedUser(t, users.RoleArtist, "Delhi")
	order := createOrder(t, r, buyer, "Chennai")

	// an id absent from both matched sets cannot be selected
	w := doJSON(t, r, http.MethodPatch, "/api/orders/custom/"+order.ID+"/select-artist?artist_id="+uuid.NewString(), nil, tokenFor(t, buyer))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/custom/"+order.ID+"/select-artist?artist_id="+local.ID, nil, tokenFor(t, buyer))
	require.Equal(t, http.StatusOK, w.Code)

	var stored domain.CustomOrder
	require.NoError(t, database.DB.First(&stored, "id = ?", order.ID).Error)
	require.NotNil(t, stored.ArtistID)
	assert.Equal(t, local.ID, *stored.ArtistID)

	// and re-selection is refused
	w = doJSON(t, r, http.MethodPatch, "/api/orders/custom/"+order.ID+"/select-artist?artist_id="+remote.ID, nil, tokenFor(t, buyer))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFallbackCapAppliesEndToEnd(t *testing.T) {
	r := setupRouter(t)
	buyer := seedUser(t, users.RoleUser, "Chennai")
	for i := 0; i < ordersapi.FallbackCap+3; i++ {
		seedUser(t, users.RoleArtist, "Delhi")
	}

	order := createOrder(t, r, buyer, "Chennai")
	assert.Empty(t, []string(order.MatchedArtists))
	assert.Len(t, []string(order.FallbackArtists), ordersapi.FallbackCap)
}
