package admin

import (
	"net/http"
	"time"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/orders"
	"chitrakalakar/internal/domain/users"
	"chitrakalakar/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardStats struct {
	PendingArtists     int64   `json:"pending_artists"`
	PendingArtworks    int64   `json:"pending_artworks"`
	PendingExhibitions int64   `json:"pending_exhibitions"`
	TotalUsers         int64   `json:"total_users"`
	TotalOrders        int64   `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
}

type PendingArtwork struct {
	works.Artwork
	ArtistName string `json:"artist_name"`
}

type PendingExhibition struct {
	exhibitions.Exhibition
	ArtistName string `json:"artist_name"`
}

// Dashboard recomputes every aggregate on each request. Read-after-write,
// no caching.
func Dashboard(c *gin.Context) {
	var stats DashboardStats

	database.DB.Model(&users.User{}).
		Where("role = ? AND is_approved = ?", users.RoleArtist, false).
		Count(&stats.PendingArtists)
	database.DB.Model(&works.Artwork{}).Where("is_approved = ?", false).Count(&stats.PendingArtworks)
	database.DB.Model(&exhibitions.Exhibition{}).Where("is_approved = ?", false).Count(&stats.PendingExhibitions)
	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&orders.CustomOrder{}).Count(&stats.TotalOrders)

	database.DB.Model(&orders.CustomOrder{}).
		Where("status = ?", orders.StatusCompleted).
		Select("COALESCE(SUM(commission_fee), 0)").
		Scan(&stats.TotalRevenue)

	c.JSON(http.StatusOK, stats)
}

func GetPendingArtists(c *gin.Context) {
	var artists []users.User
	err := database.DB.
		Where("role = ? AND is_approved = ?", users.RoleArtist, false).
		Order("created_at ASC").
		Find(&artists).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pending artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// ApproveArtist flips the approval gate. A rejected artist is retained with
// is_approved=false; accounts are never hard-deleted.
func ApproveArtist(c *gin.Context) {
	var req struct {
		ArtistID string `json:"artist_id" binding:"required"`
		Approved *bool  `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&users.User{}).
		Where("id = ? AND role = ?", req.ArtistID, users.RoleArtist).
		Update("is_approved", *req.Approved)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	message := "Artist rejected"
	if *req.Approved {
		message = "Artist approved"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func GetPendingArtworks(c *gin.Context) {
	var artworks []works.Artwork
	err := database.DB.
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&artworks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pending artworks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": withArtworkArtistNames(artworks)})
}

// ApproveArtwork approves or rejects. A rejected artwork is deleted outright.
func ApproveArtwork(c *gin.Context) {
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

func GetPendingExhibitions(c *gin.Context) {
	var list []exhibitions.Exhibition
	err := database.DB.
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pending exhibitions"})
		return
	}

	out := make([]PendingExhibition, 0, len(list))
	names := artistNames(exhibitionArtistIDs(list))
	for _, e := range list {
		out = append(out, PendingExhibition{Exhibition: e, ArtistName: names[e.ArtistID]})
	}
	c.JSON(http.StatusOK, gin.H{"exhibitions": out})
}

// ApproveExhibition approves or rejects. Approval alone does not publish the
// exhibition; it goes active only once the listing fee is also confirmed.
func ApproveExhibition(c *gin.Context) {
	var req struct {
		ExhibitionID string `json:"exhibition_id" binding:"required"`
		Approved     *bool  `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exhibition exhibitions.Exhibition
	if err := database.DB.Where("id = ?", req.ExhibitionID).First(&exhibition).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	if !*req.Approved {
		if err := database.DB.Delete(&exhibition).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject exhibition"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Exhibition rejected"})
		return
	}

	exhibition.IsApproved = true
	_ = exhibition.Activate(time.Now()) // no-op until the fee is paid

	if err := database.DB.Save(&exhibition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve exhibition"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Exhibition approved", "status": exhibition.Status})
}

// ArchiveExhibition is the manual, lazy archival action. There is no
// scheduled sweep; an admin archives an exhibition once its window elapsed.
func ArchiveExhibition(c *gin.Context) {
	id := c.Param("id")

	var exhibition exhibitions.Exhibition
	if err := database.DB.Where("id = ?", id).First(&exhibition).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	if err := exhibition.Archive(time.Now()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&exhibition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive exhibition"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Exhibition archived"})
}

func GetAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

// ToggleUserStatus flips is_active; applying it twice restores the original.
func ToggleUserStatus(c *gin.Context) {
	id := c.Param("id")

	var user users.User
	if err := database.DB.Where("id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	newStatus := !user.IsActive
	if err := database.DB.Model(&user).Update("is_active", newStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "is_active": newStatus})
}

func GetAllOrders(c *gin.Context) {
	var list []orders.CustomOrder
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

/* ---------------- helpers ---------------- */

// setArtworkApproval applies the moderation decision: approve keeps the
// record public, reject deletes it.
func setArtworkApproval(artworkID string, approved bool) error {
	if approved {
		res := database.DB.Model(&works.Artwork{}).
			Where("id = ?", artworkID).
			Update("is_approved", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}

	res := database.DB.Where("id = ?", artworkID).Delete(&works.Artwork{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func withArtworkArtistNames(artworks []works.Artwork) []PendingArtwork {
	ids := make([]string, 0, len(artworks))
	for _, a := range artworks {
		ids = append(ids, a.ArtistID)
	}
	names := artistNames(ids)

	out := make([]PendingArtwork, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, PendingArtwork{Artwork: a, ArtistName: names[a.ArtistID]})
	}
	return out
}

func exhibitionArtistIDs(list []exhibitions.Exhibition) []string {
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ArtistID)
	}
	return ids
}

func artistNames(ids []string) map[string]string {
	names := map[string]string{}
	if len(ids) == 0 {
		return names
	}

	var rows []users.User
	database.DB.Select("id", "name").Where("id IN ?", ids).Find(&rows)
	for _, u := range rows {
		names[u.ID] = u.Name
	}
	return names
}
