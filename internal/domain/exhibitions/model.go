package exhibitions

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPendingApproval = "pending_approval"
	StatusActive          = "active"
	StatusArchived        = "archived"
)

// MaxArtworks is the hard cap per exhibition, re-validated server side.
const MaxArtworks = 10

// DefaultFee is the flat listing fee charged on creation.
const DefaultFee = 1000

var (
	ErrTooManyArtworks = errors.New("exhibition exceeds artwork limit")
	ErrNotActivatable  = errors.New("exhibition needs admin approval and a confirmed fee payment")
	ErrNotArchivable   = errors.New("exhibition duration has not elapsed")
)

type Exhibition struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `json:"description,omitempty"`
	ArtworkIDs  datatypes.JSONSlice[string] `json:"artwork_ids"`

	Status       string     `gorm:"type:varchar(20);not null;default:'pending_approval'" json:"status"`
	DurationDays int        `gorm:"not null" json:"duration_days"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Views        int64      `gorm:"not null;default:0" json:"views"`
	Fees         float64    `gorm:"not null;default:1000" json:"fees"`

	IsApproved bool `gorm:"not null;default:false" json:"is_approved"`
	FeePaid    bool `gorm:"not null;default:false" json:"fee_paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Exhibition) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Activate transitions pending_approval -> active. Both the admin approval
// and the fee payment must already be confirmed; the caller persists.
func (e *Exhibition) Activate(now time.Time) error {
	if e.Status != StatusPendingApproval {
		return nil
	}
	if !e.IsApproved || !e.FeePaid {
		return ErrNotActivatable
	}
	end := now.AddDate(0, 0, e.DurationDays)
	e.Status = StatusActive
	e.StartDate = &now
	e.EndDate = &end
	return nil
}

// DurationElapsed reports whether an active exhibition has run its course.
func (e *Exhibition) DurationElapsed(now time.Time) bool {
	if e.Status != StatusActive || e.StartDate == nil {
		return false
	}
	return now.Sub(*e.StartDate) >= time.Duration(e.DurationDays)*24*time.Hour
}

// Archive transitions active -> archived. Archival is admin triggered, not
// scheduled; an exhibition still inside its window cannot be archived.
func (e *Exhibition) Archive(now time.Time) error {
	if e.Status == StatusArchived {
		return nil
	}
	if !e.DurationElapsed(now) {
		return ErrNotArchivable
	}
	e.Status = StatusArchived
	return nil
}
