package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location holds the optional listing coordinates. Listings created without
// map data keep both fields null.
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Property is a rental listing. Image entries are filenames, not URLs;
// consumers resolve them against the static file base.
type Property struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	PropertyName string    `gorm:"size:200;not null" json:"property_name"`
	Image        []string  `gorm:"serializer:json" json:"image"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	Location     Location  `gorm:"embedded" json:"location"`
	Address      string    `gorm:"size:255" json:"address"`
	Category     string    `gorm:"size:100" json:"category"`
	// No column default so a false value survives the insert.
	Status       bool      `gorm:"index" json:"status"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Verification string    `gorm:"size:20;default:'pending';index" json:"verification"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (p *Property) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
