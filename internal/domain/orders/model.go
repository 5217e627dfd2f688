package orders

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending         = "pending"
	StatusInProgress      = "in_progress"
	StatusPendingApproval = "pending_approval"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

// ArtistStatuses are the transitions an artist may apply to an assigned order.
var ArtistStatuses = []string{StatusInProgress, StatusPendingApproval, StatusCompleted}

func IsArtistStatus(status string) bool {
	for _, s := range ArtistStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type CustomOrder struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex" json:"order_number"`
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`

	// Set once the buyer picks an artist from the matched sets.
	ArtistID *string `gorm:"type:uuid;index" json:"artist_id,omitempty"`

	Title            string  `gorm:"not null" json:"title"`
	Description      string  `json:"description,omitempty"`
	Category         string  `json:"category"`
	Budget           float64 `json:"budget"`
	Currency         string  `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	PreferredCity    string  `json:"preferred_city"`
	PreferredPincode string  `json:"preferred_pincode,omitempty"`

	// Computed at creation time from the then-approved artist set and never
	// recomputed afterwards.
	MatchedArtists  datatypes.JSONSlice[string] `json:"matched_artists"`
	FallbackArtists datatypes.JSONSlice[string] `json:"fallback_artists"`

	Amount         float64 `json:"amount"`
	CommissionFee  float64 `json:"commission_fee"`
	ArtistReceives float64 `json:"artist_receives"`

	Status string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *CustomOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber(time.Now())
	}
	return nil
}

// NewOrderNumber yields a reference like ORD-20250901-A1B2C3.
func NewOrderNumber(now time.Time) string {
	b := make([]byte, 3)
	rand.Read(b)
	return "ORD-" + now.Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(b))
}
