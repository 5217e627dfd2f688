package admin

import (
	"net/http"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/featured"
	"chitrakalakar/internal/domain/users"
	"chitrakalakar/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type featuredArtworkInput struct {
	Title    string  `json:"title" binding:"required"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Year     string  `json:"year"`
}

type featuredArtistInput struct {
	Name       string                 `json:"name" binding:"required"`
	Bio        string                 `json:"bio"`
	Avatar     string                 `json:"avatar"`
	Location   string                 `json:"location"`
	Categories []string               `json:"categories"`
	Artworks   []featuredArtworkInput `json:"artworks"`
}

// CreateFeaturedArtist adds an admin-curated "contemporary artist" entry,
// not tied to any registered account.
func CreateFeaturedArtist(c *gin.Context) {
	var req featuredArtistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Artworks) > featured.MaxArtworks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 10 artworks per featured artist"})
		return
	}
	if !users.BioWithinLimit(req.Bio) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bio exceeds 2500 words"})
		return
	}

	artist := featured.Artist{
		Name:       req.Name,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		Location:   req.Location,
		Categories: datatypes.NewJSONSlice(req.Categories),
	}
	for _, a := range req.Artworks {
		artist.Artworks = append(artist.Artworks, featured.Artwork{
			Title:    a.Title,
			Category: a.Category,
			ImageURL: a.ImageURL,
			Price:    a.Price,
			Year:     a.Year,
		})
	}

	if err := database.DB.Create(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create featured artist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "artist": artist})
}

func UpdateFeaturedArtist(c *gin.Context) {
	id := c.Param("id")

	var req featuredArtistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Artworks) > featured.MaxArtworks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 10 artworks per featured artist"})
		return
	}
	if !users.BioWithinLimit(req.Bio) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bio exceeds 2500 words"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var artist featured.Artist
		if err := tx.Where("id = ?", id).First(&artist).Error; err != nil {
			return err
		}

		artist.Name = req.Name
		artist.Bio = req.Bio
		artist.Avatar = req.Avatar
		artist.Location = req.Location
		artist.Categories = datatypes.NewJSONSlice(req.Categories)
		if err := tx.Save(&artist).Error; err != nil {
			return err
		}

		// Replace the embedded showcase wholesale.
		if err := tx.Where("featured_artist_id = ?", artist.ID).Delete(&featured.Artwork{}).Error; err != nil {
			return err
		}
		for _, a := range req.Artworks {
			row := featured.Artwork{
				FeaturedArtistID: artist.ID,
				Title:            a.Title,
				Category:         a.Category,
				ImageURL:         a.ImageURL,
				Price:            a.Price,
				Year:             a.Year,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Featured artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Featured artist updated"})
}

func DeleteFeaturedArtist(c *gin.Context) {
	res := database.DB.Where("id = ?", c.Param("id")).Delete(&featured.Artist{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete featured artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Featured artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Featured artist deleted"})
}

func GetFeaturedArtists(c *gin.Context) {
	var list []featured.Artist
	if err := database.DB.Preload("Artworks").Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load featured artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": list})
}

// FeatureRegisteredArtist toggles homepage promotion for a real account.
func FeatureRegisteredArtist(c *gin.Context) {
	var req struct {
		ArtistID string `json:"artist_id" binding:"required"`
		Featured *bool  `json:"featured" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&users.User{}).
		Where("id = ? AND role = ? AND is_approved = ?", req.ArtistID, users.RoleArtist, true).
		Update("is_featured", *req.Featured)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approved artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GetApprovedArtists(c *gin.Context) {
	var artists []users.User
	err := database.DB.
		Where("role = ? AND is_approved = ?", users.RoleArtist, true).
		Order("name ASC").
		Find(&artists).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// GetArtistPreview returns an artist plus their full portfolio, approved or
// not, for moderation review.
func GetArtistPreview(c *gin.Context) {
	id := c.Param("id")

	var artist users.User
	if err := database.DB.Where("id = ? AND role = ?", id, users.RoleArtist).First(&artist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	var artworks []works.Artwork
	database.DB.Where("artist_id = ?", id).Order("created_at DESC").Find(&artworks)

	c.JSON(http.StatusOK, gin.H{"artist": artist, "artworks": artworks})
}
