package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the wallet attached to a user, one per user by convention.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	AccountNo string    `gorm:"size:50;not null;index" json:"account_no"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Balance   float64   `gorm:"default:0" json:"balance"`
	Deposit   float64   `gorm:"default:0" json:"deposit"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Account) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
