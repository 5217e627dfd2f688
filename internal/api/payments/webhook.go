package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"chitrakalakar/database"
	"chitrakalakar/internal/domain/billing"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
	"gorm.io/gorm"
)

func StripeWebhook(c *gin.Context) {
	endpointSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		fmt.Println("❌ Stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		if err := markSessionPaid(session.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
}

// markSessionPaid settles a checkout session: the payment row goes to paid,
// and the purchased thing is applied. Membership flips has_membership; an
// exhibition fee confirms fee_paid and activates the exhibition if the admin
// approval already landed. Idempotent per session.
func markSessionPaid(sessionID string) error {
	var payment billing.Payment
	if err := database.DB.Where("stripe_session_id = ?", sessionID).First(&payment).Error; err != nil {
		return errors.New("payment not found for session")
	}
	if payment.Status == billing.StatusPaid {
		return nil
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Update("status", billing.StatusPaid).Error; err != nil {
			return err
		}

		switch payment.OrderType {
		case billing.OrderTypeMembership:
			return tx.Model(&users.User{}).
				Where("id = ?", payment.UserID).
				Update("has_membership", true).Error

		case billing.OrderTypeExhibitionFee:
			if payment.ExhibitionID == nil {
				return nil
			}
			var exhibition exhibitions.Exhibition
			if err := tx.Where("id = ?", *payment.ExhibitionID).First(&exhibition).Error; err != nil {
				return err
			}
			exhibition.FeePaid = true
			_ = exhibition.Activate(time.Now()) // no-op until admin approval
			return tx.Save(&exhibition).Error
		}
		return nil
	})
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
