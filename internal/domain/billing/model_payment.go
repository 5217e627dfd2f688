package billing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderTypeMembership    = "membership"
	OrderTypeExhibitionFee = "exhibition_fee"
)

const (
	StatusInitiated = "initiated"
	StatusPaid      = "paid"
	StatusFailed    = "failed"
)

type Payment struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	OrderType    string  `gorm:"type:varchar(30);not null" json:"order_type"`
	ExhibitionID *string `gorm:"type:uuid" json:"exhibition_id,omitempty"`

	// Nil until a Stripe checkout session is opened for this payment.
	StripeSessionID *string `gorm:"uniqueIndex" json:"stripe_session_id,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	Status          string  `gorm:"type:varchar(20);not null;default:'initiated'" json:"status"`

	Metadata datatypes.JSONMap `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
