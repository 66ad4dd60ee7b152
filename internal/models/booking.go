package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatusBooked marks an active rental; "booked" rows feed the rented
// list view and the total-rents counter.
const BookingStatusBooked = "booked"

// Booking links a tenant to a property for a date range. Date ordering
// (end >= start) is not enforced here: bookings are written by the consumer
// app and rejecting historic rows would hide them from the admin views.
type Booking struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	PropertyID uuid.UUID  `gorm:"type:uuid;index" json:"property_id"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index" json:"tenant_id"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;index" json:"owner_id"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Approval   string     `gorm:"size:30" json:"approval"`
	Status     string     `gorm:"size:30;index" json:"status"`
	Message    string     `gorm:"size:500" json:"message"`
	TotalPrice float64    `json:"totalPrice"`
	Returned   bool       `gorm:"default:false" json:"returned"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
