package users

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser          = "user"
	RoleArtist        = "artist"
	RoleInstitution   = "institution"
	RoleAdmin         = "admin"
	RoleLeadChitrakar = "lead_chitrakar"
	RoleKalakar       = "kalakar"
)

// MaxBioWords is enforced server side on profile updates and curated entries.
const MaxBioWords = 2500

type User struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	Role       string                      `gorm:"not null;default:'user'" json:"role"`
	Location   string                      `json:"location,omitempty"`
	Bio        string                      `json:"bio,omitempty"`
	Avatar     string                      `json:"avatar,omitempty"`
	Categories datatypes.JSONSlice[string] `json:"categories,omitempty"`

	IsApproved    bool `gorm:"not null;default:false" json:"is_approved"`
	IsActive      bool `gorm:"not null;default:true" json:"is_active"`
	IsFeatured    bool `gorm:"not null;default:false" json:"is_featured"`
	HasMembership bool `gorm:"not null;default:false" json:"has_membership"`

	CreatedAt time.Time `json:"joined_at"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsSignupRole reports whether role may be chosen at signup.
// Admin and sub-admin roles are assigned internally only.
func IsSignupRole(role string) bool {
	switch role {
	case RoleUser, RoleArtist, RoleInstitution:
		return true
	}
	return false
}

// ApprovedAtSignup implements the artist-approval gate: artists wait for an
// admin, everyone else is approved immediately.
func ApprovedAtSignup(role string) bool {
	return role != RoleArtist
}

func BioWithinLimit(bio string) bool {
	return len(strings.Fields(bio)) <= MaxBioWords
}
