package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request is a customer-submitted contact lead. Rows are append-only:
// no update or delete path exists.
type Request struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"column:phone;type:varchar(50);not null" json:"phone"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (r *Request) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
