package works

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artwork struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	Title       string  `gorm:"not null" json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
	Dimensions  string  `json:"dimensions,omitempty"`

	IsForExhibition bool `gorm:"not null;default:false" json:"is_for_exhibition"`
	IsApproved      bool `gorm:"not null;default:false" json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
