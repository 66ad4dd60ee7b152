package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dispute is a damage report filed against a booking. BookingID is stored as
// a plain string with no enforced integrity; readers must treat the booking
// as possibly missing.
type Dispute struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Estimation  float64   `gorm:"not null" json:"estimation"`
	BookingID   string    `gorm:"size:64;not null;index" json:"bookingId"`
	Solved      bool      `gorm:"default:false" json:"solved"`
	Agree       bool      `gorm:"default:false" json:"agree"`
	Disagree    bool      `gorm:"default:false;index" json:"disagree"`
	Image       []string  `gorm:"serializer:json" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (d *Dispute) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
