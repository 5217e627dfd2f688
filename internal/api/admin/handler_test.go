package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chitrakalakar/config"
	"chitrakalakar/database"
	routes "chitrakalakar/internal/app/http"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/users"
	"chitrakalakar/internal/domain/works"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

func seedUser(t *testing.T, role string, approved bool) users.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)
	pw := string(hash)
	u := users.User{
		Name:       role + " user",
		Email:      role + "-" + uuid.NewString() + "@example.com",
		Password:   &pw,
		Role:       role,
		IsApproved: approved,
		IsActive:   true,
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func seedArtworkFor(t *testing.T, artistID string) string {
	t.Helper()
	a := works.Artwork{ArtistID: artistID, Title: "Piece", Category: "oil", Price: 100}
	require.NoError(t, database.DB.Create(&a).Error)
	return a.ID
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

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	r := setupRouter(t)
	buyer := seedUser(t, users.RoleUser, true)

	w := doJSON(t, r, http.MethodGet, "/api/admin/pending-artists", nil, tokenFor(t, buyer))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/pending-artists", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApproveArtist(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, false)

	w := doJSON(t, r, http.MethodGet, "/api/admin/pending-artists", nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), artist.ID)

	w = doJSON(t, r, http.MethodPost, "/api/admin/approve-artist", gin.H{
		"artist_id": artist.ID, "approved": true,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored users.User
	require.NoError(t, database.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.True(t, stored.IsApproved)

	w = doJSON(t, r, http.MethodGet, "/api/admin/pending-artists", nil, tokenFor(t, admin))
	assert.NotContains(t, w.Body.String(), artist.ID)
}

func TestRejectArtistKeepsAccount(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, false)

	w := doJSON(t, r, http.MethodPost, "/api/admin/approve-artist", gin.H{
		"artist_id": artist.ID, "approved": false,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored users.User
	require.NoError(t, database.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.False(t, stored.IsApproved)
}

func TestApproveArtistNotFound(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)

	w := doJSON(t, r, http.MethodPost, "/api/admin/approve-artist", gin.H{
		"artist_id": "00000000-0000-0000-0000-000000000000", "approved": true,
	}, tokenFor(t, admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveArtworkAndRejectDeletes(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, true)

	approved := works.Artwork{ArtistID: artist.ID, Title: "Sunrise", Price: 500}
	rejected := works.Artwork{ArtistID: artist.ID, Title: "Plagiarized", Price: 100}
	require.NoError(t, database.DB.Create(&approved).Error)
	require.NoError(t, database.DB.Create(&rejected).Error)

	w := doJSON(t, r, http.MethodGet, "/api/admin/pending-artworks", nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), artist.Name)

	w = doJSON(t, r, http.MethodPost, "/api/admin/approve-artwork", gin.H{
		"artwork_id": approved.ID, "approved": true,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/approve-artwork", gin.H{
		"artwork_id": rejected.ID, "approved": false,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored works.Artwork
	require.NoError(t, database.DB.First(&stored, "id = ?", approved.ID).Error)
	assert.True(t, stored.IsApproved)

	err := database.DB.First(&works.Artwork{}, "id = ?", rejected.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApproveExhibitionStaysPendingUntilFeePaid(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, true)

	e := exhibitions.Exhibition{ArtistID: artist.ID, Title: "Monsoon", DurationDays: 7, Fees: exhibitions.DefaultFee}
	require.NoError(t, database.DB.Create(&e).Error)

	w := doJSON(t, r, http.MethodPost, "/api/admin/approve-exhibition", gin.H{
		"exhibition_id": e.ID, "approved": true,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored exhibitions.Exhibition
	require.NoError(t, database.DB.First(&stored, "id = ?", e.ID).Error)
	assert.True(t, stored.IsApproved)
	assert.Equal(t, exhibitions.StatusPendingApproval, stored.Status)
}

func TestApproveExhibitionActivatesWhenFeeAlreadyPaid(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, true)

	e := exhibitions.Exhibition{ArtistID: artist.ID, Title: "Monsoon", DurationDays: 7, FeePaid: true}
	require.NoError(t, database.DB.Create(&e).Error)

	w := doJSON(t, r, http.MethodPost, "/api/admin/approve-exhibition", gin.H{
		"exhibition_id": e.ID, "approved": true,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored exhibitions.Exhibition
	require.NoError(t, database.DB.First(&stored, "id = ?", e.ID).Error)
	assert.Equal(t, exhibitions.StatusActive, stored.Status)
	require.NotNil(t, stored.EndDate)
}

func TestRejectExhibitionDeletes(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, true)

	e := exhibitions.Exhibition{ArtistID: artist.ID, Title: "Monsoon", DurationDays: 7}
	require.NoError(t, database.DB.Create(&e).Error)

	w := doJSON(t, r, http.MethodPost, "/api/admin/approve-exhibition", gin.H{
		"exhibition_id": e.ID, "approved": false,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	err := database.DB.First(&exhibitions.Exhibition{}, "id = ?", e.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArchiveExhibition(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	artist := seedUser(t, users.RoleArtist, true)

	start := time.Now().Add(-10 * 24 * time.Hour)
	end := start.AddDate(0, 0, 7)
	elapsed := exhibitions.Exhibition{
		ArtistID: artist.ID, Title: "Done", DurationDays: 7,
		Status: exhibitions.StatusActive, IsApproved: true, FeePaid: true,
		StartDate: &start, EndDate: &end,
	}
	require.NoError(t, database.DB.Create(&elapsed).Error)

	runningStart := time.Now().Add(-24 * time.Hour)
	running := exhibitions.Exhibition{
		ArtistID: artist.ID, Title: "Running", DurationDays: 7,
		Status: exhibitions.StatusActive, IsApproved: true, FeePaid: true,
		StartDate: &runningStart,
	}
	require.NoError(t, database.DB.Create(&running).Error)

	w := doJSON(t, r, http.MethodPost, "/api/admin/archive-exhibition/"+elapsed.ID, nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored exhibitions.Exhibition
	require.NoError(t, database.DB.First(&stored, "id = ?", elapsed.ID).Error)
	assert.Equal(t, exhibitions.StatusArchived, stored.Status)

	w = doJSON(t, r, http.MethodPost, "/api/admin/archive-exhibition/"+running.ID, nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestToggleUserStatusIdempotentPair(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	buyer := seedUser(t, users.RoleUser, true)

	w := doJSON(t, r, http.MethodPost, "/api/admin/toggle-user-status/"+buyer.ID, nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored users.User
	require.NoError(t, database.DB.First(&stored, "id = ?", buyer.ID).Error)
	assert.False(t, stored.IsActive)

	w = doJSON(t, r, http.MethodPost, "/api/admin/toggle-user-status/"+buyer.ID, nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&stored, "id = ?", buyer.ID).Error)
	assert.True(t, stored.IsActive)
}

func TestDashboardCounts(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, users.RoleAdmin, true)
	seedUser(t, users.RoleArtist, false)
	seedUser(t, users.RoleArtist, false)
	seedUser(t, users.RoleUser, true)

	w := doJSON(t, r, http.MethodGet, "/api/admin/dashboard", nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		PendingArtists int64 `json:"pending_artists"`
		TotalUsers     int64 `json:"total_users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.PendingArtists)
	assert.Equal(t, int64(4), stats.TotalUsers)
}
