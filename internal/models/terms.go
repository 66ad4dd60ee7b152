package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Terms is a versioned terms-and-conditions document. The only entity this
// service creates, edits and deletes directly.
type Terms struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Version   string    `gorm:"size:50;not null" json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Terms) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
