package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification states shared by Profile and Property. Pending records move to
// verified or rejected through the admin panel; there is no way back.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Profile holds the KYC data attached to a user. ProfilePicture and IDImage
// are bare filenames resolved against the static file base by consumers.
type Profile struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	FirstName      string     `gorm:"size:100" json:"first_name"`
	MiddleName     string     `gorm:"size:100" json:"middle_name"`
	LastName       string     `gorm:"size:100" json:"last_name"`
	PhoneNumber    string     `gorm:"size:30" json:"phoneNumber"`
	Address        string     `gorm:"size:255" json:"address"`
	ProfilePicture string     `gorm:"size:255" json:"profile_picture"`
	IDImage        string     `gorm:"size:255" json:"id_image"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Verification   string     `gorm:"size:20;default:'pending';index" json:"verification"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
