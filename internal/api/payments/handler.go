package payments

import (
	"fmt"
	"net/http"
	"os"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/billing"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateCheckout starts a Stripe checkout session for a membership purchase
// or an exhibition listing fee and records a local payment row.
func CreateCheckout(c *gin.Context) {
	var body struct {
		OrderType    string                 `json:"order_type" binding:"required"`
		Amount       float64                `json:"amount" binding:"required"`
		Currency     string                 `json:"currency"`
		ExhibitionID string                 `json:"exhibition_id"`
		Metadata     map[string]interface{} `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.OrderType != billing.OrderTypeMembership && body.OrderType != billing.OrderTypeExhibitionFee {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order_type"})
		return
	}
	if body.OrderType == billing.OrderTypeExhibitionFee && body.ExhibitionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing exhibition_id"})
		return
	}
	if body.Currency == "" {
		body.Currency = "INR"
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetString("user_id")
	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(appURL + "/payment-cancel"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),

		CustomerEmail:     stripe.String(user.Email),
		ClientReferenceID: stripe.String(user.ID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(body.Currency),
					UnitAmount: stripe.Int64(int64(body.Amount * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(checkoutLabel(body.OrderType)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},

		Metadata: map[string]string{
			"user_id":       user.ID,
			"order_type":    body.OrderType,
			"exhibition_id": body.ExhibitionID,
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	// Exhibition fees already have an invoice from exhibition creation;
	// attach the session to it rather than inserting a second row.
	var payment billing.Payment
	err = gorm.ErrRecordNotFound
	if body.OrderType == billing.OrderTypeExhibitionFee {
		err = database.DB.
			Where("user_id = ? AND order_type = ? AND exhibition_id = ? AND stripe_session_id IS NULL",
				user.ID, billing.OrderTypeExhibitionFee, body.ExhibitionID).
			First(&payment).Error
	}
	if err == nil {
		payment.StripeSessionID = &s.ID
		payment.Amount = body.Amount
		payment.Currency = body.Currency
		payment.Metadata = datatypes.JSONMap(body.Metadata)
		if err := database.DB.Save(&payment).Error; err != nil {
			fmt.Println("❌ Failed to record payment:", err)
		}
	} else {
		payment = billing.Payment{
			UserID:          user.ID,
			OrderType:       body.OrderType,
			StripeSessionID: &s.ID,
			Amount:          body.Amount,
			Currency:        body.Currency,
			Status:          billing.StatusInitiated,
			Metadata:        datatypes.JSONMap(body.Metadata),
		}
		if body.ExhibitionID != "" {
			payment.ExhibitionID = &body.ExhibitionID
		}
		if err := database.DB.Create(&payment).Error; err != nil {
			fmt.Println("❌ Failed to record payment:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"session_id": s.ID, "url": s.URL})
}

// GetStatus polls Stripe for a session and syncs the local payment row.
func GetStatus(c *gin.Context) {
	sessionID := c.Param("session_id")

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	s, err := checkoutsession.Get(sessionID, nil)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		if err := markSessionPaid(sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":     s.ID,
		"payment_status": string(s.PaymentStatus),
		"amount_total":   s.AmountTotal,
		"currency":       string(s.Currency),
	})
}

func checkoutLabel(orderType string) string {
	if orderType == billing.OrderTypeMembership {
		return "ChitraKalakar Membership"
	}
	return "Exhibition Listing Fee"
}
