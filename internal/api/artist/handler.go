package artist

import (
	"net/http"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/orders"
	"chitrakalakar/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalEarnings     float64 `json:"total_earnings"`
	PortfolioViews    int64   `json:"portfolio_views"`
	CompletedOrders   int64   `json:"completed_orders"`
	InProgressOrders  int64   `json:"in_progress_orders"`
	ActiveExhibitions int64   `json:"active_exhibitions"`
	TotalArtworks     int64   `json:"total_artworks"`
	ApprovedArtworks  int64   `json:"approved_artworks"`
	TotalExhibitions  int64   `json:"total_exhibitions"`
	PortfolioValue    float64 `json:"portfolio_value"`
}

func Dashboard(c *gin.Context) {
	artistID := c.GetString("user_id")
	var stats DashboardStats

	database.DB.Model(&works.Artwork{}).Where("artist_id = ?", artistID).Count(&stats.TotalArtworks)
	database.DB.Model(&works.Artwork{}).
		Where("artist_id = ? AND is_approved = ?", artistID, true).
		Count(&stats.ApprovedArtworks)
	database.DB.Model(&works.Artwork{}).
		Where("artist_id = ?", artistID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.PortfolioValue)

	database.DB.Model(&exhibitions.Exhibition{}).Where("artist_id = ?", artistID).Count(&stats.TotalExhibitions)
	database.DB.Model(&exhibitions.Exhibition{}).
		Where("artist_id = ? AND status = ?", artistID, exhibitions.StatusActive).
		Count(&stats.ActiveExhibitions)
	database.DB.Model(&exhibitions.Exhibition{}).
		Where("artist_id = ?", artistID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&stats.PortfolioViews)

	database.DB.Model(&orders.CustomOrder{}).
		Where("artist_id = ? AND status = ?", artistID, orders.StatusCompleted).
		Count(&stats.CompletedOrders)
	database.DB.Model(&orders.CustomOrder{}).
		Where("artist_id = ? AND status = ?", artistID, orders.StatusInProgress).
		Count(&stats.InProgressOrders)
	database.DB.Model(&orders.CustomOrder{}).
		Where("artist_id = ? AND status = ?", artistID, orders.StatusCompleted).
		Select("COALESCE(SUM(artist_receives), 0)").
		Scan(&stats.TotalEarnings)

	c.JSON(http.StatusOK, stats)
}

func GetPortfolio(c *gin.Context) {
	artistID := c.GetString("user_id")

	var artworks []works.Artwork
	err := database.DB.
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&artworks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load portfolio"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

type artworkInput struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	Dimensions  string  `json:"dimensions"`
}

// AddArtwork submits a new artwork; it stays out of public listings until an
// admin approves it.
func AddArtwork(c *gin.Context) {
	artistID := c.GetString("user_id")

	var req artworkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	artwork := works.Artwork{
		ArtistID:    artistID,
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    req.Currency,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Dimensions:  req.Dimensions,
		IsApproved:  false,
	}
	if err := database.DB.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "artwork": artwork, "message": "Artwork submitted for approval"})
}

// UpdateArtwork edits an owned artwork. Edits reset the approval flag so the
// change passes moderation again.
func UpdateArtwork(c *gin.Context) {
	artistID := c.GetString("user_id")
	id := c.Param("id")

	var req artworkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	res := database.DB.Model(&works.Artwork{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"category":    req.Category,
			"price":       req.Price,
			"currency":    req.Currency,
			"image_url":   req.ImageURL,
			"description": req.Description,
			"dimensions":  req.Dimensions,
			"is_approved": false,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Artwork updated"})
}

func DeleteArtwork(c *gin.Context) {
	artistID := c.GetString("user_id")
	id := c.Param("id")

	res := database.DB.Where("id = ? AND artist_id = ?", id, artistID).Delete(&works.Artwork{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Artwork deleted"})
}

func GetOrders(c *gin.Context) {
	artistID := c.GetString("user_id")

	var list []orders.CustomOrder
	err := database.DB.
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	var totalEarnings float64
	for _, o := range list {
		if o.Status == orders.StatusCompleted {
			totalEarnings += o.ArtistReceives
		}
	}

	c.JSON(http.StatusOK, gin.H{"orders": list, "total_earnings": totalEarnings})
}

func UpdateOrderStatus(c *gin.Context) {
	artistID := c.GetString("user_id")
	id := c.Param("id")

	status := c.Query("status")
	if status == "" {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			status = body.Status
		}
	}
	if !orders.IsArtistStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	res := database.DB.Model(&orders.CustomOrder{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Update("status", status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
}
