package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Marketplace roles. Users carrying RoleBoth rent out and rent in.
const (
	RoleAdmin    = 0
	RoleTenant   = 1
	RoleLandlord = 2
	RoleBoth     = 3
)

// User is the marketplace account record. Accounts are created by the
// end-user signup flow; this service only reads them, except for the
// bootstrap admin seed.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	UserName string    `gorm:"size:100;index" json:"user_name"`
	Email    string    `gorm:"size:255;index" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	// No column default: role 0 is the admin operator and a default tag
	// would make GORM drop the zero value on insert.
	Role int `gorm:"not null;index" json:"role"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
