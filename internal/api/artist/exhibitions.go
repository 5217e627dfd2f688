package artist

import (
	"net/http"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/billing"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetExhibitions(c *gin.Context) {
	artistID := c.GetString("user_id")

	var list []exhibitions.Exhibition
	err := database.DB.
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exhibitions": list})
}

// CreateExhibition submits a paid, time-boxed exhibition. The artwork cap and
// ownership of every referenced artwork are re-validated here, not trusted
// from the client. The listing fee invoice is created alongside; the
// exhibition goes active only after admin approval AND fee confirmation.
func CreateExhibition(c *gin.Context) {
	artistID := c.GetString("user_id")

	var req struct {
		Title        string   `json:"title" binding:"required"`
		Description  string   `json:"description"`
		ArtworkIDs   []string `json:"artwork_ids" binding:"required"`
		DurationDays int      `json:"duration_days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.ArtworkIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exhibition needs at least one artwork"})
		return
	}
	if len(req.ArtworkIDs) > exhibitions.MaxArtworks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 10 artworks per exhibition"})
		return
	}
	if req.DurationDays <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be positive"})
		return
	}

	var owned int64
	database.DB.Model(&works.Artwork{}).
		Where("artist_id = ? AND id IN ?", artistID, req.ArtworkIDs).
		Count(&owned)
	if owned != int64(len(req.ArtworkIDs)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All artworks must belong to you"})
		return
	}

	var exhibition exhibitions.Exhibition
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		exhibition = exhibitions.Exhibition{
			ArtistID:     artistID,
			Title:        req.Title,
			Description:  req.Description,
			ArtworkIDs:   datatypes.NewJSONSlice(req.ArtworkIDs),
			Status:       exhibitions.StatusPendingApproval,
			DurationDays: req.DurationDays,
			Fees:         exhibitions.DefaultFee,
		}
		if err := tx.Create(&exhibition).Error; err != nil {
			return err
		}

		invoice := billing.Payment{
			UserID:       artistID,
			OrderType:    billing.OrderTypeExhibitionFee,
			ExhibitionID: &exhibition.ID,
			Amount:       exhibition.Fees,
			Currency:     "INR",
			Status:       billing.StatusInitiated,
		}
		return tx.Create(&invoice).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"exhibition": exhibition,
		"message":    "Exhibition submitted for approval",
	})
}
