package admin

import (
	"net/http"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/billing"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateSubAdmin provisions a lead_chitrakar or kalakar account. Only the
// admin role reaches this handler.
func CreateSubAdmin(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != users.RoleLeadChitrakar && req.Role != users.RoleKalakar {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be lead_chitrakar or kalakar"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	pw := string(hashed)

	user := users.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   &pw,
		Role:       req.Role,
		IsApproved: true,
		IsActive:   true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func GetSubAdmins(c *gin.Context) {
	var list []users.User
	err := database.DB.
		Where("role IN ?", []string{users.RoleLeadChitrakar, users.RoleKalakar}).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sub-admins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sub_admins": list})
}

// LeadChitrakarApproveArtwork lets the lead chitrakar moderate artworks only;
// the decision semantics match the admin action.
func LeadChitrakarApproveArtwork(c *gin.Context) {
	var req struct {
		ArtworkID string `json:"artwork_id" binding:"required"`
		Approved  *bool  `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := setArtworkApproval(req.ArtworkID, *req.Approved); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	message := "Artwork rejected"
	if *req.Approved {
		message = "Artwork approved"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// KalakarExhibitionAnalytics is a read-only view for the kalakar role.
func KalakarExhibitionAnalytics(c *gin.Context) {
	var list []exhibitions.Exhibition
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}

	var totalViews int64
	var active, archived int64
	for _, e := range list {
		totalViews += e.Views
		switch e.Status {
		case exhibitions.StatusActive:
			active++
		case exhibitions.StatusArchived:
			archived++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"exhibitions":          list,
		"total_views":          totalViews,
		"active_exhibitions":   active,
		"archived_exhibitions": archived,
	})
}

func KalakarPaymentRecords(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
