package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types.
const (
	TxTypeTransfer   = "transfer"
	TxTypeWithdrawal = "withdrawal"
	TxTypeDeposit    = "deposit"
)

// Transaction statuses.
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Transaction is a wallet movement written by the payment flow. TxRef is the
// gateway reference and must be globally unique.
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type          string    `gorm:"size:20;not null" json:"type"`
	Amount        float64   `gorm:"not null" json:"amount"`
	TxRef         string    `gorm:"size:100;not null;uniqueIndex" json:"tx_ref"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	FromAccountNo string    `gorm:"size:50;not null" json:"fromAccountNo"`
	ToAccountNo   string    `gorm:"size:50;not null" json:"toAccountNo"`
	Seen          bool      `gorm:"default:false" json:"seen"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
