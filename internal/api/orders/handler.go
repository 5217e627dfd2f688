package orders

import (
	"net/http"

	"chitrakalakar/database"
	domain "chitrakalakar/internal/domain/orders"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// CreateCustomOrder records a buyer request and matches artists by location.
// The matched sets are frozen on the order; later artist approvals do not
// refresh them.
func CreateCustomOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Title            string  `json:"title" binding:"required"`
		Description      string  `json:"description"`
		Category         string  `json:"category" binding:"required"`
		Budget           float64 `json:"budget" binding:"required"`
		Currency         string  `json:"currency"`
		PreferredCity    string  `json:"preferred_city" binding:"required"`
		PreferredPincode string  `json:"preferred_pincode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	var candidates []users.User
	err := database.DB.
		Where("role = ? AND is_approved = ? AND is_active = ?", users.RoleArtist, true, true).
		Order("created_at ASC").
		Find(&candidates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	match := MatchArtists(candidates, req.PreferredCity)

	order := domain.CustomOrder{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Budget:           req.Budget,
		Currency:         req.Currency,
		PreferredCity:    req.PreferredCity,
		PreferredPincode: req.PreferredPincode,
		MatchedArtists:   datatypes.NewJSONSlice(match.Priority),
		FallbackArtists:  datatypes.NewJSONSlice(match.Fallback),
		Status:           domain.StatusPending,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetUserOrders lists a buyer's own orders; admins may read anyone's.
func GetUserOrders(c *gin.Context) {
	requester := c.GetString("user_id")
	role := c.GetString("role")
	target := c.Param("id")

	if requester != target && role != users.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var list []domain.CustomOrder
	err := database.DB.
		Where("user_id = ?", target).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// SelectArtist assigns the order to one of its matched artists.
func SelectArtist(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")
	artistID := c.Query("artist_id")
	if artistID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing artist_id"})
		return
	}

	var order domain.CustomOrder
	if err := database.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.ArtistID != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order already assigned"})
		return
	}
	if !containsID(order.MatchedArtists, artistID) && !containsID(order.FallbackArtists, artistID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artist was not matched for this order"})
		return
	}

	if err := database.DB.Model(&order).Update("artist_id", artistID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign artist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Artist selected"})
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
