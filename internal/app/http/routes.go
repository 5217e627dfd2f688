package routes

import (
	adminapi "chitrakalakar/internal/api/admin"
	artistapi "chitrakalakar/internal/api/artist"
	authapi "chitrakalakar/internal/api/auth"
	ordersapi "chitrakalakar/internal/api/orders"
	"chitrakalakar/internal/api/payments"
	publicapi "chitrakalakar/internal/api/public"
	"chitrakalakar/internal/app/http/middleware"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", payments.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	api := r.Group("/api")

	// Public browsing surface
	public := api.Group("/public")
	public.GET("/stats", publicapi.GetStats)
	public.GET("/featured-artists", publicapi.GetFeaturedArtists)
	public.GET("/featured-artist/:id", publicapi.GetFeaturedArtistDetail)
	public.GET("/artists", publicapi.GetArtists)
	public.GET("/artists/:id", publicapi.GetArtistProfile)
	public.GET("/exhibitions", publicapi.GetExhibitions)
	public.GET("/exhibitions/active", publicapi.GetActiveExhibitions)
	public.GET("/exhibitions/archived", publicapi.GetArchivedExhibitions)
	public.GET("/exhibitions/detail/:id", publicapi.GetExhibitionDetail)

	// Signup/login take sanitized input
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.SanitizeAndCleanInputMiddleware())
	authGroup.POST("/signup", authapi.Signup)
	authGroup.POST("/login", authapi.Login)

	me := api.Group("/auth")
	me.Use(middleware.AuthMiddleware())
	me.GET("/me", authapi.GetMe)
	me.PUT("/profile", middleware.SanitizeAndCleanInputMiddleware(), authapi.UpdateProfile)

	// Buyer surface
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/orders/custom", ordersapi.CreateCustomOrder)
	auth.GET("/orders/custom/user/:id", ordersapi.GetUserOrders)
	auth.PATCH("/orders/custom/:id/select-artist", ordersapi.SelectArtist)
	auth.POST("/payments/checkout", payments.CreateCheckout)
	auth.GET("/payments/status/:session_id", payments.GetStatus)

	// Artist surface; approval enforced server side
	artist := api.Group("/artist")
	artist.Use(middleware.AuthMiddleware(), middleware.RequireApprovedArtist())
	artist.GET("/dashboard", artistapi.Dashboard)
	artist.GET("/portfolio", artistapi.GetPortfolio)
	artist.POST("/portfolio", artistapi.AddArtwork)
	artist.PUT("/portfolio/:id", artistapi.UpdateArtwork)
	artist.DELETE("/portfolio/:id", artistapi.DeleteArtwork)
	artist.POST("/portfolio/upload-image", artistapi.UploadImage)
	artist.GET("/orders", artistapi.GetOrders)
	artist.PUT("/orders/:id/status", artistapi.UpdateOrderStatus)
	artist.GET("/exhibitions", artistapi.GetExhibitions)
	artist.POST("/exhibitions", artistapi.CreateExhibition)

	// Admin surface
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.GET("/pending-artists", adminapi.GetPendingArtists)
	admin.POST("/approve-artist", adminapi.ApproveArtist)
	admin.GET("/pending-artworks", adminapi.GetPendingArtworks)
	admin.POST("/approve-artwork", adminapi.ApproveArtwork)
	admin.GET("/pending-exhibitions", adminapi.GetPendingExhibitions)
	admin.POST("/approve-exhibition", adminapi.ApproveExhibition)
	admin.POST("/archive-exhibition/:id", adminapi.ArchiveExhibition)
	admin.GET("/all-users", adminapi.GetAllUsers)
	admin.POST("/toggle-user-status/:id", adminapi.ToggleUserStatus)
	admin.GET("/all-orders", adminapi.GetAllOrders)

	admin.GET("/featured-artists", adminapi.GetFeaturedArtists)
	admin.GET("/approved-artists", adminapi.GetApprovedArtists)
	admin.GET("/artist-preview/:id", adminapi.GetArtistPreview)
	admin.POST("/feature-contemporary-artist", adminapi.CreateFeaturedArtist)
	admin.PUT("/featured-artist/:id", adminapi.UpdateFeaturedArtist)
	admin.DELETE("/featured-artist/:id", adminapi.DeleteFeaturedArtist)
	admin.POST("/feature-registered-artist", adminapi.FeatureRegisteredArtist)

	admin.POST("/create-sub-admin", adminapi.CreateSubAdmin)
	admin.GET("/sub-admins", adminapi.GetSubAdmins)

	// Sub-admin roles share the /api/admin prefix but carry their own gates
	lead := api.Group("/admin/lead-chitrakar")
	lead.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin, users.RoleLeadChitrakar))
	lead.POST("/approve-artwork", adminapi.LeadChitrakarApproveArtwork)

	kalakar := api.Group("/admin/kalakar")
	kalakar.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin, users.RoleKalakar))
	kalakar.GET("/exhibitions-analytics", adminapi.KalakarExhibitionAnalytics)
	kalakar.GET("/payment-records", adminapi.KalakarPaymentRecords)
}
