package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog is a named grouping of products, optionally with an image.
type Catalog struct {
	ID    uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Image *string   `gorm:"column:image;type:varchar(512)" json:"image"`
}

func (c *Catalog) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
