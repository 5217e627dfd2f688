package featured

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxArtworks caps the embedded showcase of a curated entry.
const MaxArtworks = 10

// Artist is an admin-curated "contemporary artist" entry for homepage
// promotion. It is not backed by a registered account.
type Artist struct {
	ID         string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string                      `gorm:"not null" json:"name"`
	Bio        string                      `json:"bio,omitempty"`
	Avatar     string                      `json:"avatar,omitempty"`
	Location   string                      `json:"location,omitempty"`
	Categories datatypes.JSONSlice[string] `json:"categories,omitempty"`

	Artworks []Artwork `gorm:"foreignKey:FeaturedArtistID;constraint:OnDelete:CASCADE;" json:"artworks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Artwork struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"id"`
	FeaturedArtistID string `gorm:"type:uuid;not null;index" json:"-"`

	Title    string  `gorm:"not null" json:"title"`
	Category string  `json:"category,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Year     string  `json:"year,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps curated artworks in their own table; the default name
// "artworks" collides with works.Artwork and makes AutoMigrate skip one of
// the two models.
func (Artwork) TableName() string { return "featured_artworks" }

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
