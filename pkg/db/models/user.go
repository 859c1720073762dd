package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the single administrative identity. Exactly one row is
// provisioned at startup.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(128);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
