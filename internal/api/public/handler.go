package public

import (
	"net/http"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/featured"
	"chitrakalakar/internal/domain/orders"
	"chitrakalakar/internal/domain/users"
	"chitrakalakar/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlatformStats struct {
	TotalArtists      int64   `json:"total_artists"`
	TotalArtworks     int64   `json:"total_artworks"`
	CompletedProjects int64   `json:"completed_projects"`
	TotalExhibitions  int64   `json:"total_exhibitions"`
	SatisfactionRate  float64 `json:"satisfaction_rate"`
}

func GetStats(c *gin.Context) {
	var stats PlatformStats

	database.DB.Model(&users.User{}).
		Where("role = ? AND is_approved = ?", users.RoleArtist, true).
		Count(&stats.TotalArtists)
	database.DB.Model(&works.Artwork{}).Where("is_approved = ?", true).Count(&stats.TotalArtworks)
	database.DB.Model(&orders.CustomOrder{}).
		Where("status = ?", orders.StatusCompleted).
		Count(&stats.CompletedProjects)
	database.DB.Model(&exhibitions.Exhibition{}).Where("is_approved = ?", true).Count(&stats.TotalExhibitions)

	var cancelled int64
	database.DB.Model(&orders.CustomOrder{}).
		Where("status = ?", orders.StatusCancelled).
		Count(&cancelled)
	if total := stats.CompletedProjects + cancelled; total > 0 {
		stats.SatisfactionRate = float64(stats.CompletedProjects) / float64(total) * 100
	}

	c.JSON(http.StatusOK, stats)
}

type FeaturedRegisteredArtist struct {
	users.User
	ArtworkCount      int64 `json:"artwork_count"`
	CompletedProjects int64 `json:"completed_projects"`
}

// GetFeaturedArtists merges the admin-curated contemporary entries with
// registered artists flagged is_featured.
func GetFeaturedArtists(c *gin.Context) {
	var curated []featured.Artist
	if err := database.DB.Preload("Artworks").Order("created_at DESC").Find(&curated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load featured artists"})
		return
	}

	var registered []users.User
	err := database.DB.
		Where("role = ? AND is_approved = ? AND is_active = ? AND is_featured = ?",
			users.RoleArtist, true, true, true).
		Limit(8).
		Find(&registered).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	enriched := make([]FeaturedRegisteredArtist, 0, len(registered))
	for _, a := range registered {
		row := FeaturedRegisteredArtist{User: a}
		database.DB.Model(&works.Artwork{}).
			Where("artist_id = ? AND is_approved = ?", a.ID, true).
			Count(&row.ArtworkCount)
		database.DB.Model(&orders.CustomOrder{}).
			Where("artist_id = ? AND status = ?", a.ID, orders.StatusCompleted).
			Count(&row.CompletedProjects)
		enriched = append(enriched, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"contemporary_artists": curated,
		"artists":              enriched,
	})
}

func GetFeaturedArtistDetail(c *gin.Context) {
	var artist featured.Artist
	err := database.DB.Preload("Artworks").Where("id = ?", c.Param("id")).First(&artist).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Featured artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// GetArtists is the public artist directory: approved and active only.
func GetArtists(c *gin.Context) {
	var artists []users.User
	err := database.DB.
		Where("role = ? AND is_approved = ? AND is_active = ?", users.RoleArtist, true, true).
		Order("name ASC").
		Find(&artists).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// GetArtistProfile returns a public artist profile with approved works only.
func GetArtistProfile(c *gin.Context) {
	id := c.Param("id")

	var artist users.User
	err := database.DB.
		Where("id = ? AND role = ? AND is_approved = ? AND is_active = ?",
			id, users.RoleArtist, true, true).
		First(&artist).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	var artworks []works.Artwork
	database.DB.
		Where("artist_id = ? AND is_approved = ?", id, true).
		Order("created_at DESC").
		Find(&artworks)

	c.JSON(http.StatusOK, gin.H{"artist": artist, "artworks": artworks})
}

type ExhibitionListing struct {
	exhibitions.Exhibition
	ArtistName   string `json:"artist_name"`
	ArtworkCount int    `json:"artwork_count"`
}

func GetExhibitions(c *gin.Context) {
	listExhibitions(c, database.DB.Where("is_approved = ?", true))
}

func GetActiveExhibitions(c *gin.Context) {
	listExhibitions(c, database.DB.Where("is_approved = ? AND status = ?", true, exhibitions.StatusActive))
}

// GetArchivedExhibitions lists archived exhibitions: read-only, free to view.
func GetArchivedExhibitions(c *gin.Context) {
	listExhibitions(c, database.DB.Where("is_approved = ? AND status = ?", true, exhibitions.StatusArchived))
}

// GetExhibitionDetail returns one public exhibition with its approved
// artworks and bumps the view counter.
func GetExhibitionDetail(c *gin.Context) {
	id := c.Param("id")

	var exhibition exhibitions.Exhibition
	err := database.DB.
		Where("id = ? AND is_approved = ? AND status IN ?",
			id, true, []string{exhibitions.StatusActive, exhibitions.StatusArchived}).
		First(&exhibition).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	database.DB.Model(&exhibition).Update("views", gorm.Expr("views + 1"))

	var artworks []works.Artwork
	if len(exhibition.ArtworkIDs) > 0 {
		database.DB.
			Where("id IN ? AND is_approved = ?", []string(exhibition.ArtworkIDs), true).
			Find(&artworks)
	}

	var artist users.User
	database.DB.Select("id", "name").Where("id = ?", exhibition.ArtistID).First(&artist)

	c.JSON(http.StatusOK, gin.H{
		"exhibition":  exhibition,
		"artworks":    artworks,
		"artist_name": artist.Name,
	})
}

func listExhibitions(c *gin.Context, query *gorm.DB) {
	var list []exhibitions.Exhibition
	if err := query.Order("created_at DESC").Limit(50).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}

	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ArtistID)
	}
	names := map[string]string{}
	if len(ids) > 0 {
		var rows []users.User
		database.DB.Select("id", "name").Where("id IN ?", ids).Find(&rows)
		for _, u := range rows {
			names[u.ID] = u.Name
		}
	}

	out := make([]ExhibitionListing, 0, len(list))
	for _, e := range list {
		out = append(out, ExhibitionListing{
			Exhibition:   e,
			ArtistName:   names[e.ArtistID],
			ArtworkCount: len(e.ArtworkIDs),
		})
	}
	c.JSON(http.StatusOK, gin.H{"exhibitions": out})
}
