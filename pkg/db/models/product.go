package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable item. CatalogID is a nullable reference; the image
// path points into the upload directory (or an external URL for seeded
// demo rows).
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Quantity    int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Description *string         `gorm:"column:description;type:text" json:"description"`
	Image       *string         `gorm:"column:image;type:varchar(512)" json:"image"`
	CatalogID   *uuid.UUID      `gorm:"column:catalog_id;type:uuid;index" json:"catalog_id"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
